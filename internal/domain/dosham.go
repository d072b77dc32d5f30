package domain

import "fmt"

// DoshamResult is one person's Chevvai Dosham check.
type DoshamResult struct {
	HasDosham bool     `json:"has_dosham"`
	Details   []string `json:"details"`
}

// DoshamComparison pairs both checks. Symmetric affliction (both or neither)
// is a Match.
type DoshamComparison struct {
	Bride  DoshamResult `json:"bride"`
	Groom  DoshamResult `json:"groom"`
	Status Status       `json:"status"`
}

// doshamHouses are the Mars positions, counted from a reference house, that
// flag Chevvai Dosham. A distance of 0 counts as 12.
var doshamHouses = map[int]bool{2: true, 4: true, 7: true, 8: true, 12: true}

// CheckChevvaiDosham looks at Mars from the Lagnam and from the Moon. When the
// Moon is missing from the chart, rasiID stands in for its house.
func CheckChevvaiDosham(chart Chart, rasiID int) DoshamResult {
	res := DoshamResult{Details: []string{}}

	mars, ok := chart.HouseOf(Mars)
	if !ok {
		return res
	}

	if la, ok := chart.HouseOf(Lagnam); ok {
		if d := houseDistance(mars, la); doshamHouses[d] {
			res.Details = append(res.Details, fmt.Sprintf("Mars in house %d from Lagnam", d))
		}
	}

	moon, ok := chart.HouseOf(Moon)
	if !ok {
		moon = rasiID
	}
	if moon >= 1 && moon <= rasiCount {
		if d := houseDistance(mars, moon); doshamHouses[d] {
			res.Details = append(res.Details, fmt.Sprintf("Mars in house %d from Moon", d))
		}
	}

	res.HasDosham = len(res.Details) > 0
	return res
}

// CompareDosham pairs two checks into a verdict.
func CompareDosham(bride, groom DoshamResult) DoshamComparison {
	status := StatusNoMatch
	if bride.HasDosham == groom.HasDosham {
		status = StatusMatch
	}
	return DoshamComparison{Bride: bride, Groom: groom, Status: status}
}

func houseDistance(house, from int) int {
	d := (house - from + rasiCount) % rasiCount
	if d == 0 {
		return rasiCount
	}
	return d
}
