package ephemeris

import (
	"math"

	"github.com/soniakeys/meeus/v3/kepler"
	"github.com/soniakeys/meeus/v3/planetelements"
	"github.com/soniakeys/unit"

	"github.com/couchcryptid/porutham-service/internal/domain"
)

const deg = math.Pi / 180

// elementIndex maps chart planets to meeus planetelements identifiers.
var elementIndex = map[domain.Planet]int{
	domain.Mercury: planetelements.Mercury,
	domain.Venus:   planetelements.Venus,
	domain.Mars:    planetelements.Mars,
	domain.Jupiter: planetelements.Jupiter,
	domain.Saturn:  planetelements.Saturn,
}

var keplerPlanets = []domain.Planet{domain.Mars, domain.Mercury, domain.Jupiter, domain.Venus, domain.Saturn}

// sunVector is the Sun seen from the Earth: true longitude in radians and
// distance in AU.
type sunVector struct {
	lon, r float64
}

type helio struct {
	lon, lat, r float64 // radians, radians, AU
}

func meanElements(p domain.Planet, jde float64) planetelements.Elements {
	var el planetelements.Elements
	planetelements.Mean(elementIndex[p], jde, &el)
	return el
}

func meanAnomaly(el planetelements.Elements) unit.Angle {
	return (el.Lon - el.Peri).Mod1()
}

// heliocentric places a planet on its mean orbit, referred to the ecliptic
// and equinox of date.
func heliocentric(el planetelements.Elements) helio {
	E := kepler.Kepler3(el.Ecc, meanAnomaly(el))
	v := kepler.True(E, el.Ecc).Rad()
	r := kepler.Radius(E, el.Ecc, el.Axis)

	node := el.Node.Rad()
	inc := el.Inc.Rad()
	u := v + (el.Peri - el.Node).Rad()

	x := r * (math.Cos(node)*math.Cos(u) - math.Sin(node)*math.Sin(u)*math.Cos(inc))
	y := r * (math.Sin(node)*math.Cos(u) + math.Cos(node)*math.Sin(u)*math.Cos(inc))
	z := r * math.Sin(u) * math.Sin(inc)

	return helio{
		lon: math.Atan2(y, x),
		lat: math.Atan2(z, math.Hypot(x, y)),
		r:   r,
	}
}

// perturbation returns the largest periodic longitude terms for the gas
// giants, in degrees.
func perturbation(p domain.Planet, jde float64) float64 {
	if p != domain.Jupiter && p != domain.Saturn {
		return 0
	}
	mj := meanAnomaly(meanElements(domain.Jupiter, jde)).Rad()
	ms := meanAnomaly(meanElements(domain.Saturn, jde)).Rad()

	if p == domain.Jupiter {
		return -0.332*math.Sin(2*mj-5*ms-67.6*deg) -
			0.056*math.Sin(2*mj-2*ms+21*deg) +
			0.042*math.Sin(3*mj-5*ms+21*deg) -
			0.036*math.Sin(mj-2*ms) +
			0.022*math.Cos(mj-ms) +
			0.023*math.Sin(2*mj-3*ms+52*deg) -
			0.016*math.Sin(mj-5*ms-69*deg)
	}
	return 0.812*math.Sin(2*mj-5*ms-67.6*deg) -
		0.229*math.Cos(2*mj-4*ms-2*deg) +
		0.119*math.Sin(mj-2*ms-3*deg) +
		0.046*math.Sin(2*mj-6*ms-69*deg) +
		0.014*math.Sin(mj-3*ms+32*deg)
}

// geocentricLongitude moves a planet's heliocentric position to the Earth's
// frame and returns its ecliptic longitude in degrees.
func geocentricLongitude(p domain.Planet, jde float64, sun sunVector) float64 {
	h := heliocentric(meanElements(p, jde))
	h.lon += perturbation(p, jde) * deg

	x := h.r*math.Cos(h.lon)*math.Cos(h.lat) + sun.r*math.Cos(sun.lon)
	y := h.r*math.Sin(h.lon)*math.Cos(h.lat) + sun.r*math.Sin(sun.lon)
	return domain.Normalize(math.Atan2(y, x) / deg)
}
