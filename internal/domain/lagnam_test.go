package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRasimanas_CoverADay(t *testing.T) {
	var total float64
	for _, h := range Rasimanas {
		total += h
	}
	assert.InDelta(t, 24.0, total, 1e-9)
}

func TestCalculateLagnam(t *testing.T) {
	cases := []struct {
		name       string
		sunLon     float64
		birthHours float64
		wantID     int
	}{
		{"born at sunrise keeps the sun's sign", 0, SunriseHour, 1},
		{"born at sunrise mid-sign", 200, SunriseHour, 7},
		{"one hour after sunrise crosses into Rishabam", 15, SunriseHour + 1, 2},
		{"within the sun's remaining span", 15, SunriseHour + 0.5, 1},
		{"before sunrise counts as the next day", 0, 5, 12},
		{"noon", 0, 12, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, lon := CalculateLagnam(tc.sunLon, tc.birthHours)
			assert.Equal(t, tc.wantID, id)
			assert.InDelta(t, float64(tc.wantID-1)*30+15, lon, 1e-9)
		})
	}
}

func TestLagnamSign_AlwaysInRange(t *testing.T) {
	for sun := 0.0; sun < 360; sun += 7.3 {
		for h := 0.0; h < 24; h += 0.25 {
			s := LagnamSign(sun, h)
			assert.GreaterOrEqual(t, s, 0)
			assert.Less(t, s, 12)
		}
	}
}
