// Command chart computes a birth profile (star, rasi, lagnam, Rasi and
// Navamsam charts) and prints it as JSON.
//
// Usage:
//
//	go run ./cmd/chart -date 1991-08-09 -time 04:15 -meridian PM -place Madurai
//
// Places outside the built-in city table fall back to Chennai unless
// MAPBOX_TOKEN is set, in which case they are geocoded.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/couchcryptid/porutham-service/internal/adapter/ephemeris"
	"github.com/couchcryptid/porutham-service/internal/adapter/mapbox"
	"github.com/couchcryptid/porutham-service/internal/config"
	"github.com/couchcryptid/porutham-service/internal/domain"
	"github.com/couchcryptid/porutham-service/internal/observability"
)

func main() {
	name := flag.String("name", "", "person's name (optional)")
	date := flag.String("date", "", "birth date, YYYY-MM-DD")
	clock := flag.String("time", "", "birth time, HH:MM")
	meridian := flag.String("meridian", "", "AM or PM; empty for 24-hour time")
	place := flag.String("place", "", "birth place")
	timeout := flag.Duration("timeout", 10*time.Second, "overall computation timeout")
	flag.Parse()

	if *date == "" || *clock == "" || *place == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(domain.BirthDetails{
		Name:       *name,
		BirthDate:  *date,
		BirthTime:  *clock,
		Meridian:   *meridian,
		BirthPlace: *place,
	}, *timeout); err != nil {
		fmt.Fprintln(os.Stderr, "chart:", err)
		os.Exit(1)
	}
}

func run(d domain.BirthDetails, timeout time.Duration) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		geocoder = mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, logger, observability.NewMetrics())
	}

	calc := domain.NewChartCalculator(
		ephemeris.NewSource(logger),
		domain.NewPlaceResolver(geocoder, cfg.MapboxRegion, logger),
		logger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	profile, err := calc.Compute(ctx, d)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(profile)
}
