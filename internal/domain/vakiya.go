package domain

import (
	"fmt"
	"math"
)

const (
	// Ayanamsa is the fixed precession offset removed from every longitude.
	Ayanamsa = 24.0

	// VakiyaOffset is the 1°20' gap between Vakiya and Lahiri reckoning.
	VakiyaOffset = 1.3333
)

// Normalize folds an angle into [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// FixMoonRadians repairs a Moon longitude that was stored as radians with the
// ayanamsa already taken off: add the ayanamsa back, convert to degrees,
// normalize, then take the ayanamsa off again.
func FixMoonRadians(raw float64) float64 {
	deg := Normalize((raw + Ayanamsa) * 180 / math.Pi)
	return Normalize(deg - Ayanamsa)
}

// VakiyaLongitude converts a base longitude into the Vakiya sidereal frame.
func VakiyaLongitude(base float64) float64 {
	return Normalize(base - Ayanamsa + VakiyaOffset)
}

// BaseLongitudes validates a source result and applies the Moon unit repair
// when the source flags it. The result feeds both the Vakiya correction and
// the Navamsam chart.
func BaseLongitudes(p Positions) (map[Planet]float64, error) {
	out := make(map[Planet]float64, len(Planets))
	for _, pl := range Planets {
		lon, ok := p.Longitudes[pl]
		if !ok {
			return nil, fmt.Errorf("%w: missing longitude for %s", ErrEphemeris, pl)
		}
		if math.IsNaN(lon) || math.IsInf(lon, 0) {
			return nil, fmt.Errorf("%w: invalid longitude for %s", ErrEphemeris, pl)
		}
		if pl == Moon && p.MoonRadians {
			lon = FixMoonRadians(lon)
		}
		out[pl] = Normalize(lon)
	}
	return out, nil
}

// VakiyaLongitudes applies VakiyaLongitude to every body.
func VakiyaLongitudes(base map[Planet]float64) map[Planet]float64 {
	out := make(map[Planet]float64, len(base))
	for pl, lon := range base {
		out[pl] = VakiyaLongitude(lon)
	}
	return out
}
