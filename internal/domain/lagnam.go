package domain

// SunriseHour is the fixed local sunrise (05:50) every Lagnam walk starts from.
const SunriseHour = 5 + 50.0/60

// Rasimanas are the rising durations in hours for each sign, Mesham first.
var Rasimanas = [rasiCount]float64{
	1.78, 1.93, 2.08, 2.13, 2.07, 2.01,
	2.01, 2.07, 2.13, 2.08, 1.93, 1.78,
}

// LagnamSign returns the 0-based index of the rising sign for a Sun longitude
// and a local birth time in decimal hours.
func LagnamSign(sunLon, birthHours float64) int {
	sunLon = Normalize(sunLon)
	sign := int(sunLon / signSpan)
	if sign >= rasiCount {
		sign = rasiCount - 1
	}

	remaining := (signSpan - (sunLon - float64(sign)*signSpan)) / signSpan * Rasimanas[sign]

	elapsed := birthHours - SunriseHour
	if elapsed < 0 {
		elapsed += 24
	}

	if elapsed < remaining {
		return sign
	}
	elapsed -= remaining
	sign = (sign + 1) % rasiCount
	for elapsed >= Rasimanas[sign] {
		elapsed -= Rasimanas[sign]
		sign = (sign + 1) % rasiCount
	}
	return sign
}

// CalculateLagnam returns the Lagnam rasi ID (1-12) and the longitude used to
// place the "La" marker, the midpoint of that sign.
func CalculateLagnam(sunLon, birthHours float64) (rasiID int, lon float64) {
	sign := LagnamSign(sunLon, birthHours)
	return sign + 1, float64(sign)*signSpan + signSpan/2
}
