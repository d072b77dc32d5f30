package domain

import (
	"context"
	"time"
)

// Location is a WGS-84 latitude/longitude pair in degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Positions holds ecliptic longitudes in degrees for the nine bodies.
type Positions struct {
	Longitudes map[Planet]float64

	// MoonRadians marks sources that deliver the Moon in the legacy
	// "radians less ayanamsa" form; see FixMoonRadians.
	MoonRadians bool
}

// PlanetaryPositionSource computes raw longitudes for a civil timestamp and
// place. Implementations must return an error rather than partial data.
type PlanetaryPositionSource interface {
	Positions(ctx context.Context, t time.Time, loc Location) (Positions, error)
}
