package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/porutham-service/internal/domain"
	"github.com/couchcryptid/porutham-service/internal/observability"
)

// ChartComputer computes a birth profile. *domain.ChartCalculator satisfies it.
type ChartComputer interface {
	Compute(ctx context.Context, d domain.BirthDetails) (domain.BirthProfile, error)
}

// ChartTransformer implements Transformer by computing a chart for each
// birth-details message.
type ChartTransformer struct {
	charts  ChartComputer
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewTransformer creates a ChartTransformer.
func NewTransformer(charts ChartComputer, logger *slog.Logger, metrics *observability.Metrics) *ChartTransformer {
	return &ChartTransformer{
		charts:  charts,
		logger:  logger,
		metrics: metrics,
	}
}

func (t *ChartTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.ChartEvent, error) {
	req, err := domain.ParseChartRequest(raw)
	if err != nil {
		return domain.ChartEvent{}, err
	}

	profile, err := t.charts.Compute(ctx, req.BirthDetails)
	t.metrics.RecordChart(profile.Place.Source, err)
	if err != nil {
		return domain.ChartEvent{}, err
	}

	t.logger.Debug("chart request processed", "request_id", req.ID, "star_id", profile.StarID, "rasi_id", profile.RasiID)
	return domain.NewChartEvent(req.ID, profile), nil
}
