package mapbox

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/porutham-service/internal/domain"
	"github.com/couchcryptid/porutham-service/internal/observability"
)

type countingGeocoder struct {
	calls  int
	result domain.GeocodingResult
	err    error
}

func (m *countingGeocoder) ForwardGeocode(_ context.Context, _, _ string) (domain.GeocodingResult, error) {
	m.calls++
	return m.result, m.err
}

func TestCachedGeocoder_CacheHit(t *testing.T) {
	inner := &countingGeocoder{
		result: domain.GeocodingResult{Lat: 11.1, Lon: 79.6, PlaceName: "Mayiladuthurai", FormattedAddress: "Mayiladuthurai, India"},
	}
	metrics := observability.NewMetricsForTesting()
	cached := NewCachedGeocoder(inner, 10, metrics)

	r1, err := cached.ForwardGeocode(context.Background(), "Mayiladuthurai", "India")
	require.NoError(t, err)
	r2, err := cached.ForwardGeocode(context.Background(), "  mayiladuthurai ", "INDIA")
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.Equal(t, 1, inner.calls, "should only call inner once")
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.GeocodeCache.WithLabelValues("hit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.GeocodeCache.WithLabelValues("miss")), 0)
}

func TestCachedGeocoder_DifferentKeysMiss(t *testing.T) {
	inner := &countingGeocoder{
		result: domain.GeocodingResult{Lat: 11.4, Lon: 76.7, PlaceName: "Place", FormattedAddress: "Place, India"},
	}
	cached := NewCachedGeocoder(inner, 10, observability.NewMetricsForTesting())

	_, _ = cached.ForwardGeocode(context.Background(), "Ooty", "")
	_, _ = cached.ForwardGeocode(context.Background(), "Kodaikanal", "")

	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 2, cached.Len())
}

func TestCachedGeocoder_EmptyAndErrorNotCached(t *testing.T) {
	inner := &countingGeocoder{}
	cached := NewCachedGeocoder(inner, 10, observability.NewMetricsForTesting())

	_, _ = cached.ForwardGeocode(context.Background(), "Atlantis", "")
	_, _ = cached.ForwardGeocode(context.Background(), "Atlantis", "")
	assert.Equal(t, 2, inner.calls)

	inner.err = errors.New("timeout")
	_, err := cached.ForwardGeocode(context.Background(), "Ooty", "")
	require.Error(t, err)
	assert.Zero(t, cached.Len())
}

func TestCachedGeocoder_CachesByCoordinates(t *testing.T) {
	ctx := context.Background()

	// Coordinates without an address are a hit.
	inner := &countingGeocoder{result: domain.GeocodingResult{Lat: 10.9, Lon: 79.8}}
	cached := NewCachedGeocoder(inner, 10, observability.NewMetricsForTesting())
	_, _ = cached.ForwardGeocode(ctx, "Karaikal", "")
	_, _ = cached.ForwardGeocode(ctx, "Karaikal", "")
	assert.Equal(t, 1, inner.calls)

	// An address without coordinates is still a miss.
	inner = &countingGeocoder{result: domain.GeocodingResult{FormattedAddress: "Somewhere, India"}}
	cached = NewCachedGeocoder(inner, 10, observability.NewMetricsForTesting())
	_, _ = cached.ForwardGeocode(ctx, "Somewhere", "")
	_, _ = cached.ForwardGeocode(ctx, "Somewhere", "")
	assert.Equal(t, 2, inner.calls)
	assert.Zero(t, cached.Len())
}

func TestCachedGeocoder_Eviction(t *testing.T) {
	inner := &countingGeocoder{result: domain.GeocodingResult{Lat: 10.2, Lon: 77.5}}
	cached := NewCachedGeocoder(inner, 2, observability.NewMetricsForTesting())

	ctx := context.Background()
	_, _ = cached.ForwardGeocode(ctx, "a", "")
	_, _ = cached.ForwardGeocode(ctx, "b", "")
	_, _ = cached.ForwardGeocode(ctx, "a", "") // promotes "a"
	_, _ = cached.ForwardGeocode(ctx, "c", "") // evicts "b"
	require.Equal(t, 3, inner.calls)

	_, _ = cached.ForwardGeocode(ctx, "a", "")
	assert.Equal(t, 3, inner.calls, "a should still be cached")

	_, _ = cached.ForwardGeocode(ctx, "b", "")
	assert.Equal(t, 4, inner.calls, "b should have been evicted")
}
