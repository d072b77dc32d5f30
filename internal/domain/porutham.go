package domain

import (
	"fmt"
	"math"
)

// Status is the outcome of a single porutham.
type Status string

const (
	StatusMatch   Status = "Match"
	StatusNoMatch Status = "No Match"
	StatusNeutral Status = "Neutral"
)

// RuleID keys the porutham results.
type RuleID string

const (
	RuleDina           RuleID = "dina"
	RuleGana           RuleID = "gana"
	RuleMahendra       RuleID = "mahendra"
	RuleSthreeDheerkha RuleID = "sthreeDheerkha"
	RuleYoni           RuleID = "yoni"
	RuleRasi           RuleID = "rasi"
	RuleRasiAthipathi  RuleID = "rasiAthipathi"
	RuleVasya          RuleID = "vasya"
	RuleRajju          RuleID = "rajju"
	RuleVedhai         RuleID = "vedhai"
	RuleNadi           RuleID = "nadi"
	RuleVruksha        RuleID = "vruksha"
)

// RuleOrder is the display and summation order of the twelve poruthams.
var RuleOrder = []RuleID{
	RuleDina, RuleGana, RuleMahendra, RuleSthreeDheerkha, RuleYoni, RuleRasi,
	RuleRasiAthipathi, RuleVasya, RuleRajju, RuleVedhai, RuleNadi, RuleVruksha,
}

// ImportantRules feed the "important matches" count behind the verdict.
var ImportantRules = []RuleID{RuleRasi, RuleRasiAthipathi, RuleRajju, RuleMahendra, RuleYoni}

// MaxScore is the "out of" figure used for the percentage.
const MaxScore = 12.0

// minImportantMatches is how many ImportantRules must match for a positive verdict.
const minImportantMatches = 3

// RuleResult is one porutham's outcome.
type RuleResult struct {
	Name        string  `json:"name"`
	Status      Status  `json:"status"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// Results holds every porutham keyed by rule.
type Results map[RuleID]RuleResult

// Total sums the score contributions in RuleOrder.
func (r Results) Total() float64 {
	var total float64
	for _, id := range RuleOrder {
		total += r[id].Score
	}
	return total
}

// CountMatches counts how many of the given rules have status Match.
func (r Results) CountMatches(ids ...RuleID) int {
	n := 0
	for _, id := range ids {
		if r[id].Status == StatusMatch {
			n++
		}
	}
	return n
}

// Party is the scoring view of a birth profile. Charts are optional; without
// a Rasi chart no Chevvai Dosham can be detected.
type Party struct {
	StarID        int   `json:"star_id"`
	RasiID        int   `json:"rasi_id"`
	RasiChart     Chart `json:"rasi_chart,omitempty"`
	NavamsamChart Chart `json:"navamsam_chart,omitempty"`
}

// Porutham is the full compatibility report for a bride and groom.
type Porutham struct {
	Results          Results          `json:"results"`
	Recommendation   string           `json:"recommendation"`
	CanMarry         bool             `json:"can_marry"`
	Score            float64          `json:"score"`
	ImportantMatches int              `json:"important_matches"`
	Dosham           DoshamComparison `json:"dosham_result"`
	Summary          SummaryReport    `json:"summary_report"`
}

// Verdict messages, in priority order.
const (
	MsgRajjuVeto      = "Rajju porutham does not match. As per tradition the marriage is not recommended, irrespective of the other poruthams."
	MsgDoshamMismatch = "Chevvai Dosham is present in only one horoscope. The marriage is not recommended without remedies."
	MsgCompatible     = "The important poruthams match. The couple can proceed with the marriage."
	MsgConsult        = "Too few important poruthams match. Please consult an astrologer before proceeding."
)

// Evaluate scores a bride and groom. It reports false when any star or rasi
// ID fails to resolve, so speculative callers can skip the pair.
func Evaluate(bride, groom Party) (Porutham, bool) {
	bs, ok := StarByID(bride.StarID)
	if !ok {
		return Porutham{}, false
	}
	gs, ok := StarByID(groom.StarID)
	if !ok {
		return Porutham{}, false
	}
	br, ok := RasiByID(bride.RasiID)
	if !ok {
		return Porutham{}, false
	}
	gr, ok := RasiByID(groom.RasiID)
	if !ok {
		return Porutham{}, false
	}

	results := Results{
		RuleDina:           dinaPorutham(bs, gs),
		RuleGana:           ganaPorutham(bs, gs),
		RuleMahendra:       mahendraPorutham(bs, gs),
		RuleSthreeDheerkha: sthreeDheerkhaPorutham(bs, gs),
		RuleYoni:           yoniPorutham(bs, gs),
		RuleRasi:           rasiPorutham(br, gr),
		RuleRasiAthipathi:  rasiAthipathiPorutham(br, gr),
		RuleVasya:          vasyaPorutham(),
		RuleRajju:          rajjuPorutham(bs, gs),
		RuleVedhai:         vedhaiPorutham(bs, gs),
		RuleNadi:           nadiPorutham(),
		RuleVruksha:        vrukshaPorutham(),
	}

	dosham := CompareDosham(
		CheckChevvaiDosham(bride.RasiChart, bride.RasiID),
		CheckChevvaiDosham(groom.RasiChart, groom.RasiID),
	)

	important := results.CountMatches(ImportantRules...)
	canMarry, recommendation := decide(results, dosham, important)
	total := results.Total()

	p := Porutham{
		Results:          results,
		Recommendation:   recommendation,
		CanMarry:         canMarry,
		Score:            total,
		ImportantMatches: important,
		Dosham:           dosham,
	}
	p.Summary = buildSummary(p, bs, gs)
	return p, true
}

// decide applies the verdict policy; the first matching rule wins.
func decide(results Results, dosham DoshamComparison, important int) (bool, string) {
	switch {
	case results[RuleRajju].Status == StatusNoMatch:
		return false, MsgRajjuVeto
	case dosham.Status == StatusNoMatch && (dosham.Bride.HasDosham || dosham.Groom.HasDosham):
		return false, MsgDoshamMismatch
	case important >= minImportantMatches:
		return true, MsgCompatible
	default:
		return false, MsgConsult
	}
}

// Percentage converts a total score to a whole percentage of MaxScore.
// Gana can push the raw total past 12; the percentage is capped at 100.
func Percentage(total float64) int {
	pct := int(math.Round(total / MaxScore * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

func passFail(name string, ok bool, description string) RuleResult {
	if ok {
		return RuleResult{Name: name, Status: StatusMatch, Score: 1, Description: description}
	}
	return RuleResult{Name: name, Status: StatusNoMatch, Score: 0, Description: description}
}

// starDistance is the wrapped bride->groom star distance modulo m.
func starDistance(bride, groom Star, m int) int {
	return (groom.ID - bride.ID + starCount) % m
}

func dinaPorutham(bride, groom Star) RuleResult {
	d := starDistance(bride, groom, 9)
	ok := d%2 == 0
	return passFail("Dina", ok, fmt.Sprintf("Star distance mod 9 is %d", d))
}

func ganaPorutham(bride, groom Star) RuleResult {
	var score float64
	switch {
	case bride.Gana == groom.Gana:
		score = 3
	case bride.Gana == Deva && groom.Gana == Manushya:
		score = 3
	case bride.Gana == Manushya && groom.Gana == Deva:
		score = 2
	case groom.Gana == Rakshasa:
		score = 0
	default:
		score = 1
	}
	status := StatusNoMatch
	if score >= 2 {
		status = StatusMatch
	}
	return RuleResult{
		Name:        "Gana",
		Status:      status,
		Score:       score,
		Description: fmt.Sprintf("Bride is %s gana, groom is %s gana", bride.Gana, groom.Gana),
	}
}

var mahendraCounts = map[int]bool{4: true, 7: true, 10: true, 13: true, 16: true, 19: true, 22: true, 25: true}

// mahendraPorutham checks both the unwrapped additive distance and its
// mod-27 form against the same set.
func mahendraPorutham(bride, groom Star) RuleResult {
	raw := groom.ID - bride.ID + starCount
	ok := mahendraCounts[raw%starCount] || mahendraCounts[raw]
	return passFail("Mahendra", ok, fmt.Sprintf("Star distance is %d", raw%starCount))
}

func sthreeDheerkhaPorutham(bride, groom Star) RuleResult {
	d := starDistance(bride, groom, starCount)
	return passFail("Sthree Dheerkha", d > 13, fmt.Sprintf("Groom's star is %d stars from the bride's", d))
}

func yoniPorutham(bride, groom Star) RuleResult {
	ok := !yoniEnemy(bride.Yoni, groom.Yoni)
	desc := fmt.Sprintf("%s and %s are not enemies", bride.Yoni, groom.Yoni)
	if !ok {
		desc = fmt.Sprintf("%s and %s are enemies", bride.Yoni, groom.Yoni)
	}
	return passFail("Yoni", ok, desc)
}

var rasiPositions = map[int]bool{0: true, 2: true, 3: true, 6: true, 9: true, 10: true}

func rasiPorutham(bride, groom Rasi) RuleResult {
	d := (groom.ID - bride.ID + rasiCount) % rasiCount
	return passFail("Rasi", rasiPositions[d], fmt.Sprintf("Groom's rasi is in position %d from the bride's", d+1))
}

func rasiAthipathiPorutham(bride, groom Rasi) RuleResult {
	ok := bride.Lord == groom.Lord || isFriend(bride.Lord, groom.Lord) || isFriend(groom.Lord, bride.Lord)
	return passFail("Rasi Athipathi", ok, fmt.Sprintf("Rasi lords are %s and %s", bride.Lord, groom.Lord))
}

func vasyaPorutham() RuleResult {
	return RuleResult{Name: "Vasya", Status: StatusNeutral, Score: 0.5, Description: "Vasya is not assessed"}
}

func rajjuPorutham(bride, groom Star) RuleResult {
	if bride.Rajju == groom.Rajju {
		return passFail("Rajju", false, fmt.Sprintf("Both stars share the %s rajju", bride.Rajju))
	}
	return passFail("Rajju", true, fmt.Sprintf("Rajju differs (%s and %s)", bride.Rajju, groom.Rajju))
}

func vedhaiPorutham(bride, groom Star) RuleResult {
	ok := bride.Vedhai != groom.Name && groom.Vedhai != bride.Name
	desc := fmt.Sprintf("%s and %s are not vedhai stars", bride.Name, groom.Name)
	if !ok {
		desc = fmt.Sprintf("%s and %s are vedhai stars", bride.Name, groom.Name)
	}
	return passFail("Vedhai", ok, desc)
}

// nadiPorutham and vrukshaPorutham are unconditional passes; they are not
// derived from the stars.
func nadiPorutham() RuleResult {
	return passFail("Nadi", true, "Nadi is treated as matching")
}

func vrukshaPorutham() RuleResult {
	return passFail("Vruksha", true, "Vruksha is treated as matching")
}
