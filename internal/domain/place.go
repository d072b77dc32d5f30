package domain

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Place sources reported on a resolved place.
const (
	PlaceSourceTable    = "table"
	PlaceSourceGeocoder = "geocoder"
	PlaceSourceDefault  = "default"
)

// City is an entry in the static birth-place table.
type City struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

// Place is the outcome of resolving a birth place string.
type Place struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
	Source   string   `json:"source"`
}

// DefaultCity is used when a birth place cannot be resolved.
var DefaultCity = City{Name: "Chennai", Location: Location{Lat: 13.0827, Lon: 80.2707}}

// cities is searched in order; the first substring hit wins.
var cities = []City{
	DefaultCity,
	{"Coimbatore", Location{11.0168, 76.9558}},
	{"Madurai", Location{9.9252, 78.1198}},
	{"Tiruchirappalli", Location{10.7905, 78.7047}},
	{"Salem", Location{11.6643, 78.1460}},
	{"Tirunelveli", Location{8.7139, 77.7567}},
	{"Tiruppur", Location{11.1085, 77.3411}},
	{"Vellore", Location{12.9165, 79.1325}},
	{"Erode", Location{11.3410, 77.7172}},
	{"Thoothukudi", Location{8.7642, 78.1348}},
	{"Dindigul", Location{10.3624, 77.9695}},
	{"Thanjavur", Location{10.7870, 79.1378}},
	{"Ranipet", Location{12.9224, 79.3326}},
	{"Sivakasi", Location{9.4533, 77.8024}},
	{"Karur", Location{10.9601, 78.0766}},
	{"Ooty", Location{11.4102, 76.6950}},
	{"Hosur", Location{12.7409, 77.8253}},
	{"Nagercoil", Location{8.1833, 77.4119}},
	{"Kanchipuram", Location{12.8342, 79.7036}},
	{"Kumbakonam", Location{10.9617, 79.3881}},
	{"Cuddalore", Location{11.7480, 79.7714}},
	{"Tiruvannamalai", Location{12.2253, 79.0747}},
	{"Pollachi", Location{10.6609, 77.0048}},
	{"Rajapalayam", Location{9.4510, 77.5536}},
	{"Pudukkottai", Location{10.3833, 78.8001}},
	{"Nagapattinam", Location{10.7672, 79.8449}},
	{"Viluppuram", Location{11.9401, 79.4861}},
	{"Namakkal", Location{11.2189, 78.1677}},
	{"Krishnagiri", Location{12.5186, 78.2137}},
	{"Ramanathapuram", Location{9.3639, 78.8395}},
	{"Karaikudi", Location{10.0763, 78.7800}},
}

// Cities returns a copy of the static city table.
func Cities() []City {
	out := make([]City, len(cities))
	copy(out, cities)
	return out
}

// minPartialRunes is the shortest input matched as a fragment of a city name.
const minPartialRunes = 3

// LookupCity searches the static table: exact name, then case-insensitive
// name, then substring in either direction. An input shorter than
// minPartialRunes is never matched as a fragment of a city name.
func LookupCity(place string) (City, bool) {
	place = strings.TrimSpace(place)
	if place == "" {
		return City{}, false
	}
	for _, c := range cities {
		if c.Name == place {
			return c, true
		}
	}
	for _, c := range cities {
		if strings.EqualFold(c.Name, place) {
			return c, true
		}
	}
	lower := strings.ToLower(place)
	partial := utf8.RuneCountInString(lower) >= minPartialRunes
	for _, c := range cities {
		name := strings.ToLower(c.Name)
		if (partial && strings.Contains(name, lower)) || strings.Contains(lower, name) {
			return c, true
		}
	}
	return City{}, false
}

// PlaceResolver turns a birth place into coordinates. A nil geocoder keeps
// resolution to the static table and the default city.
type PlaceResolver struct {
	geocoder Geocoder
	region   string
	logger   *slog.Logger
}

// NewPlaceResolver creates a resolver. region is appended to geocoder queries.
func NewPlaceResolver(geocoder Geocoder, region string, logger *slog.Logger) *PlaceResolver {
	return &PlaceResolver{geocoder: geocoder, region: region, logger: logger}
}

// Resolve never fails: unknown places fall back to DefaultCity with a warning.
func (r *PlaceResolver) Resolve(ctx context.Context, place string) Place {
	if c, ok := LookupCity(place); ok {
		return Place{Name: c.Name, Location: c.Location, Source: PlaceSourceTable}
	}

	if r.geocoder != nil && strings.TrimSpace(place) != "" {
		result, err := r.geocoder.ForwardGeocode(ctx, strings.TrimSpace(place), r.region)
		switch {
		case err != nil:
			r.logger.Warn("forward geocoding failed", "place", place, "error", err)
		case result.Found():
			name := result.PlaceName
			if name == "" {
				name = place
			}
			return Place{Name: name, Location: Location{Lat: result.Lat, Lon: result.Lon}, Source: PlaceSourceGeocoder}
		}
	}

	r.logger.Warn("birth place not found, using default", "place", place, "default", DefaultCity.Name)
	return Place{Name: DefaultCity.Name, Location: DefaultCity.Location, Source: PlaceSourceDefault}
}
