package observability

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/couchcryptid/porutham-service/internal/config"
)

func TestRecordChart(t *testing.T) {
	m := NewMetricsForTesting()

	m.RecordChart("table", nil)
	m.RecordChart("default", nil)
	m.RecordChart("table", nil)
	m.RecordChart("", errors.New("boom"))

	assert.InDelta(t, 3, testutil.ToFloat64(m.ChartsComputed), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ChartErrors), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.PlaceLookups.WithLabelValues("table")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PlaceLookups.WithLabelValues("default")), 0)
}

func TestRecordEvaluation(t *testing.T) {
	m := NewMetricsForTesting()
	m.RecordEvaluation("Good Match")
	m.RecordEvaluation("Good Match")

	assert.InDelta(t, 2, testutil.ToFloat64(m.Evaluations.WithLabelValues("Good Match")), 0)
}

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()
	a.ChartsComputed.Inc()

	assert.InDelta(t, 0, testutil.ToFloat64(b.ChartsComputed), 0)
}

func TestNewLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	tests := []struct {
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 1},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"bogus", slog.LevelInfo, slog.LevelDebug},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(&config.Config{LogLevel: tt.level, LogFormat: "json"})
			assert.True(t, logger.Enabled(context.Background(), tt.enabled))
			assert.False(t, logger.Enabled(context.Background(), tt.muted))
			assert.Same(t, logger, slog.Default())
		})
	}
}
