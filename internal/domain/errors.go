package domain

import "errors"

var (
	ErrInvalidBirthDate  = errors.New("invalid birth date")
	ErrInvalidBirthTime  = errors.New("invalid birth time")
	ErrInvalidMeridian   = errors.New("invalid meridian")
	ErrMissingBirthPlace = errors.New("birth place is required")

	// ErrEphemeris wraps every failure coming out of a PlanetaryPositionSource.
	ErrEphemeris = errors.New("planetary position computation failed")

	ErrUnknownStar = errors.New("unknown star")
	ErrUnknownRasi = errors.New("unknown rasi")
	ErrInvalidSeek = errors.New("seeking must be \"groom\" or \"bride\"")
)
