package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/porutham-service/internal/adapter/ephemeris"
	"github.com/couchcryptid/porutham-service/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/porutham-service/internal/adapter/kafka"
	"github.com/couchcryptid/porutham-service/internal/adapter/mapbox"
	"github.com/couchcryptid/porutham-service/internal/adapter/store"
	"github.com/couchcryptid/porutham-service/internal/config"
	"github.com/couchcryptid/porutham-service/internal/domain"
	"github.com/couchcryptid/porutham-service/internal/observability"
	"github.com/couchcryptid/porutham-service/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	if err := run(cfg, logger); err != nil {
		logger.Error("service stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	metrics := observability.NewMetrics()

	// Geocoding fallback for places outside the city table (MAPBOX_ENABLED / MAPBOX_TOKEN).
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, logger, metrics)
		geocoder = mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
		metrics.GeocodeEnabled.Set(1)
		logger.Info("mapbox geocoding enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	} else {
		logger.Info("mapbox geocoding disabled")
	}

	places := domain.NewPlaceResolver(geocoder, cfg.MapboxRegion, logger)
	charts := domain.NewChartCalculator(ephemeris.NewSource(logger), places, logger)

	db, err := store.Open(cfg.DatabasePath, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("database close error", "error", err)
		}
	}()

	ready := httpadapter.Checks{db}

	var (
		p      *pipeline.Pipeline
		reader *kafkaadapter.Reader
		writer *kafkaadapter.Writer
	)
	if cfg.KafkaEnabled {
		reader = kafkaadapter.NewReader(cfg, logger)
		writer = kafkaadapter.NewWriter(cfg, logger)
		p = pipeline.New(reader, pipeline.NewTransformer(charts, logger, metrics), writer, logger, metrics, cfg.BatchSize)
		ready = append(ready, p)
	} else {
		logger.Info("chart pipeline disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, httpadapter.Options{
		Ready:        ready,
		Charts:       charts,
		Profiles:     db.Profiles,
		Matches:      db.Matches,
		Metrics:      metrics,
		MatchOptions: domain.MatchOptions{MinScore: cfg.MatchMinScore, Limit: cfg.MatchLimit},
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if p != nil {
		g.Go(func() error { return p.Run(gctx) })
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
		if reader != nil {
			if err := reader.Close(); err != nil {
				logger.Error("kafka reader close error", "error", err)
			}
		}
		if writer != nil {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}
		return nil
	})

	return g.Wait()
}
