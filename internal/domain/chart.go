package domain

// Chart maps a house number (1-12) to the planets occupying it. Empty houses
// are absent; Planets on a missing house returns nil.
type Chart map[int][]Planet

// Planets returns the occupants of a house.
func (c Chart) Planets(house int) []Planet {
	return c[house]
}

// HouseOf finds the house a planet occupies.
func (c Chart) HouseOf(p Planet) (int, bool) {
	for house := 1; house <= rasiCount; house++ {
		for _, q := range c[house] {
			if q == p {
				return house, true
			}
		}
	}
	return 0, false
}

// Clone returns a deep copy of the chart.
func (c Chart) Clone() Chart {
	if c == nil {
		return nil
	}
	out := make(Chart, len(c))
	for h, ps := range c {
		out[h] = append([]Planet(nil), ps...)
	}
	return out
}

// RasiHouse places a longitude in its sign: floor(lon/30)+1.
func RasiHouse(lon float64) int {
	h := int(Normalize(lon)/signSpan) + 1
	if h > rasiCount {
		h = rasiCount
	}
	return h
}

// navamsamStart is the first D9 sign for fire, earth, air and water signs:
// Mesham, Magaram, Thulam, Kadagam.
var navamsamStart = [4]int{0, 9, 6, 3}

// NavamsamHouse places a longitude in its D9 sign.
func NavamsamHouse(lon float64) int {
	lon = Normalize(lon)
	sign := int(lon / signSpan)
	if sign >= rasiCount {
		sign = rasiCount - 1
	}
	pada := int((lon - float64(sign)*signSpan) / navamsamSpan)
	if pada > 8 {
		pada = 8
	}
	return (navamsamStart[sign%4]+pada)%rasiCount + 1
}

// BuildRasiChart places the Vakiya longitudes and the Lagnam marker.
func BuildRasiChart(vakiya map[Planet]float64, lagnamLon float64) Chart {
	return buildChart(vakiya, lagnamLon, RasiHouse)
}

// BuildNavamsamChart places base (uncorrected) longitudes in D9 signs. The
// Lagnam marker uses its Vakiya longitude.
func BuildNavamsamChart(base map[Planet]float64, lagnamLon float64) Chart {
	return buildChart(base, lagnamLon, NavamsamHouse)
}

func buildChart(lons map[Planet]float64, lagnamLon float64, house func(float64) int) Chart {
	chart := make(Chart)
	for _, p := range Planets {
		lon, ok := lons[p]
		if !ok {
			continue
		}
		h := house(lon)
		chart[h] = append(chart[h], p)
	}
	h := house(lagnamLon)
	chart[h] = append(chart[h], Lagnam)
	return chart
}

// StarIDFromMoon returns the nakshatra (1-27) a Moon longitude falls in.
func StarIDFromMoon(moonLon float64) int {
	id := int(Normalize(moonLon)/starSpan) + 1
	if id > starCount {
		id = starCount
	}
	return id
}
