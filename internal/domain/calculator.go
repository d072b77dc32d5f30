package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ChartSet is everything cast from one set of planetary positions.
type ChartSet struct {
	RasiID        int                `json:"rasi_id"`
	StarID        int                `json:"star_id"`
	Lagnam        int                `json:"lagnam"`
	RasiChart     Chart              `json:"rasi_chart"`
	NavamsamChart Chart              `json:"navamsam_chart"`
	Longitudes    map[Planet]float64 `json:"longitudes,omitempty"` // Vakiya
}

// BirthProfile is a person's identity for matching.
type BirthProfile struct {
	BirthDetails
	Place Place `json:"place"`
	ChartSet
	ComputedAt time.Time `json:"computed_at"`
}

// Party returns the scoring view of the profile.
func (p BirthProfile) Party() Party {
	return Party{
		StarID:        p.StarID,
		RasiID:        p.RasiID,
		RasiChart:     p.RasiChart,
		NavamsamChart: p.NavamsamChart,
	}
}

// CastCharts runs the pure part of the pipeline on raw positions: Vakiya
// correction, Lagnam, Rasi and Navamsam charts, and star/rasi IDs.
func CastCharts(pos Positions, birthHours float64) (ChartSet, error) {
	base, err := BaseLongitudes(pos)
	if err != nil {
		return ChartSet{}, err
	}
	vakiya := VakiyaLongitudes(base)

	lagnamID, lagnamLon := CalculateLagnam(vakiya[Sun], birthHours)

	return ChartSet{
		RasiID:        RasiHouse(vakiya[Moon]),
		StarID:        StarIDFromMoon(vakiya[Moon]),
		Lagnam:        lagnamID,
		RasiChart:     BuildRasiChart(vakiya, lagnamLon),
		NavamsamChart: BuildNavamsamChart(base, lagnamLon),
		Longitudes:    vakiya,
	}, nil
}

// ChartCalculator computes birth profiles from raw birth details.
type ChartCalculator struct {
	source PlanetaryPositionSource
	places *PlaceResolver
	logger *slog.Logger
}

// NewChartCalculator creates a ChartCalculator.
func NewChartCalculator(source PlanetaryPositionSource, places *PlaceResolver, logger *slog.Logger) *ChartCalculator {
	return &ChartCalculator{source: source, places: places, logger: logger}
}

// Compute validates the input, resolves the place, queries the ephemeris and
// casts the charts. Any failure yields no profile.
func (c *ChartCalculator) Compute(ctx context.Context, d BirthDetails) (BirthProfile, error) {
	moment, err := ParseBirthDetails(d)
	if err != nil {
		return BirthProfile{}, err
	}

	place := c.places.Resolve(ctx, d.BirthPlace)

	pos, err := c.source.Positions(ctx, moment.Time, place.Location)
	if err != nil {
		return BirthProfile{}, fmt.Errorf("%w: %w", ErrEphemeris, err)
	}

	set, err := CastCharts(pos, moment.LocalHours)
	if err != nil {
		return BirthProfile{}, err
	}

	c.logger.Debug("chart computed",
		"star_id", set.StarID,
		"rasi_id", set.RasiID,
		"lagnam", set.Lagnam,
		"place", place.Name,
	)

	return BirthProfile{
		BirthDetails: d,
		Place:        place,
		ChartSet:     set,
		ComputedAt:   clock.Now(),
	}, nil
}
