package domain

import "context"

// GeocodingResult contains location data returned by a geocoding provider.
type GeocodingResult struct {
	Lat              float64
	Lon              float64
	FormattedAddress string
	PlaceName        string
	Confidence       float64 // 0.0–1.0 provider confidence score
}

// Found reports whether the provider returned coordinates. A zero result
// means no match.
func (r GeocodingResult) Found() bool {
	return r.Lat != 0 || r.Lon != 0
}

// Geocoder resolves place names the static city table does not know.
type Geocoder interface {
	// ForwardGeocode converts a place name and region to coordinates.
	ForwardGeocode(ctx context.Context, name, region string) (GeocodingResult, error)
}
