package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockGeocoder struct {
	result GeocodingResult
	err    error
	calls  int
	query  string
}

func (m *mockGeocoder) ForwardGeocode(_ context.Context, name, region string) (GeocodingResult, error) {
	m.calls++
	m.query = name + "|" + region
	return m.result, m.err
}

func TestLookupCity(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Madurai", "Madurai", true},
		{"madurai", "Madurai", true},
		{"  Salem ", "Salem", true},
		{"Madurai North", "Madurai", true},
		{"Coimbat", "Coimbatore", true},
		{"Che", "Chennai", true},
		{"a", "", false},
		{"ai", "", false},
		{"Nonexistent City", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			c, ok := LookupCity(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, c.Name)
		})
	}
}

func TestCities_Copy(t *testing.T) {
	cs := Cities()
	require.NotEmpty(t, cs)
	cs[0].Name = "changed"
	assert.Equal(t, "Chennai", Cities()[0].Name)
}

func TestPlaceResolver_TableFirst(t *testing.T) {
	geo := &mockGeocoder{}
	r := NewPlaceResolver(geo, "Tamil Nadu", discardLogger())

	p := r.Resolve(context.Background(), "Thanjavur")
	assert.Equal(t, "Thanjavur", p.Name)
	assert.Equal(t, PlaceSourceTable, p.Source)
	assert.Equal(t, 0, geo.calls)
}

func TestPlaceResolver_DefaultsToChennai(t *testing.T) {
	r := NewPlaceResolver(nil, "", discardLogger())

	p := r.Resolve(context.Background(), "Nonexistent City")
	assert.Equal(t, DefaultCity.Name, p.Name)
	assert.Equal(t, DefaultCity.Location, p.Location)
	assert.Equal(t, PlaceSourceDefault, p.Source)

	short := r.Resolve(context.Background(), "ai")
	assert.Equal(t, PlaceSourceDefault, short.Source)
}

func TestGeocodingResult_Found(t *testing.T) {
	assert.False(t, GeocodingResult{FormattedAddress: "Nowhere"}.Found())
	assert.True(t, GeocodingResult{Lat: 0, Lon: 79.8}.Found())
}

func TestPlaceResolver_Geocoder(t *testing.T) {
	t.Run("uses geocoder result", func(t *testing.T) {
		geo := &mockGeocoder{result: GeocodingResult{Lat: 12.97, Lon: 77.59, PlaceName: "Bengaluru"}}
		r := NewPlaceResolver(geo, "India", discardLogger())

		p := r.Resolve(context.Background(), "Bengaluru")
		assert.Equal(t, PlaceSourceGeocoder, p.Source)
		assert.Equal(t, "Bengaluru", p.Name)
		assert.InDelta(t, 12.97, p.Location.Lat, 1e-9)
		assert.Equal(t, "Bengaluru|India", geo.query)
	})

	t.Run("error falls back to default", func(t *testing.T) {
		geo := &mockGeocoder{err: errors.New("boom")}
		r := NewPlaceResolver(geo, "", discardLogger())

		p := r.Resolve(context.Background(), "Bengaluru")
		assert.Equal(t, PlaceSourceDefault, p.Source)
		assert.Equal(t, 1, geo.calls)
	})

	t.Run("empty result falls back to default", func(t *testing.T) {
		geo := &mockGeocoder{}
		r := NewPlaceResolver(geo, "", discardLogger())

		p := r.Resolve(context.Background(), "Atlantis")
		assert.Equal(t, PlaceSourceDefault, p.Source)
	})
}
