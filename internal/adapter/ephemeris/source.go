// Package ephemeris computes geocentric tropical longitudes for the nine
// chart bodies. The Sun, Moon and lunar node come from Meeus' algorithms;
// the five visible planets are placed on their Meeus mean orbits.
package ephemeris

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/couchcryptid/porutham-service/internal/domain"
)

// Supported year range. The mean orbital elements drift noticeably outside it.
const (
	MinYear = 1800
	MaxYear = 2200
)

var (
	ErrOutOfRange      = errors.New("timestamp outside supported ephemeris range")
	ErrInvalidLocation = errors.New("invalid location")
)

// Source is a domain.PlanetaryPositionSource backed by analytical theories.
// It is safe for concurrent use.
type Source struct {
	logger *slog.Logger
}

// NewSource creates a Source.
func NewSource(logger *slog.Logger) *Source {
	return &Source{logger: logger}
}

// Positions returns tropical geocentric longitudes in degrees. The location is
// validated but does not shift the longitudes; parallax is ignored.
func (s *Source) Positions(ctx context.Context, t time.Time, loc domain.Location) (domain.Positions, error) {
	if err := ctx.Err(); err != nil {
		return domain.Positions{}, err
	}
	if y := t.UTC().Year(); y < MinYear || y > MaxYear {
		return domain.Positions{}, fmt.Errorf("%w: year %d not in %d-%d", ErrOutOfRange, y, MinYear, MaxYear)
	}
	if loc.Lat < -90 || loc.Lat > 90 || loc.Lon < -180 || loc.Lon > 180 ||
		math.IsNaN(loc.Lat) || math.IsNaN(loc.Lon) {
		return domain.Positions{}, fmt.Errorf("%w: %.4f,%.4f", ErrInvalidLocation, loc.Lat, loc.Lon)
	}

	jd := julian.TimeToJD(t.UTC())
	T := base.J2000Century(jd)

	sunTrue, _ := solar.True(T)
	earth := sunVector{lon: sunTrue.Rad(), r: solar.Radius(T)}

	moonLon, _, _ := moonposition.Position(jd)
	node := moonposition.Node(jd).Deg()

	lons := map[domain.Planet]float64{
		domain.Sun:  domain.Normalize(solar.ApparentLongitude(T).Deg()),
		domain.Moon: domain.Normalize(moonLon.Deg()),
		domain.Rahu: domain.Normalize(node),
		domain.Ketu: domain.Normalize(node + 180),
	}
	for _, p := range keplerPlanets {
		lons[p] = geocentricLongitude(p, jd, earth)
	}

	for p, lon := range lons {
		if math.IsNaN(lon) || math.IsInf(lon, 0) {
			return domain.Positions{}, fmt.Errorf("non-finite longitude for %s", p)
		}
	}

	s.logger.Debug("planetary positions computed", "jd", jd, "lat", loc.Lat, "lon", loc.Lon)
	return domain.Positions{Longitudes: lons}, nil
}
