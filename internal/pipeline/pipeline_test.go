package pipeline_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/porutham-service/internal/domain"
	"github.com/couchcryptid/porutham-service/internal/observability"
	"github.com/couchcryptid/porutham-service/internal/pipeline"
)

// --- mocks ---

type mockExtractor struct {
	batches [][]domain.RawEvent
	index   atomic.Int64
	err     error
	calls   atomic.Int64
}

func (m *mockExtractor) ExtractBatch(ctx context.Context, _ int) ([]domain.RawEvent, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	i := int(m.index.Add(1) - 1)
	if i >= len(m.batches) {
		// block until context cancelled to simulate waiting for messages
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return m.batches[i], nil
}

type mockTransformer struct {
	err error
}

func (m *mockTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.ChartEvent, error) {
	if m.err != nil {
		return domain.ChartEvent{}, m.err
	}
	return domain.ChartEvent{RequestID: string(raw.Key)}, nil
}

type mockLoader struct {
	mu     sync.Mutex
	loaded []domain.ChartEvent
	err    error
}

func (m *mockLoader) LoadBatch(_ context.Context, events []domain.ChartEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.loaded = append(m.loaded, events...)
	return nil
}

func (m *mockLoader) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.loaded)
}

type mockComputer struct {
	profile domain.BirthProfile
	err     error
	got     []domain.BirthDetails
}

func (m *mockComputer) Compute(_ context.Context, d domain.BirthDetails) (domain.BirthProfile, error) {
	m.got = append(m.got, d)
	if m.err != nil {
		return domain.BirthProfile{}, m.err
	}
	p := m.profile
	p.BirthDetails = d
	return p, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runFor(t *testing.T, p *pipeline.Pipeline, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	require.NoError(t, p.Run(ctx))
}

// --- tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	batch := []domain.RawEvent{makeRawEvent(t, "req-1"), makeRawEvent(t, "req-2")}

	ext := &mockExtractor{batches: [][]domain.RawEvent{batch}}
	ldr := &mockLoader{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(ext, &mockTransformer{}, ldr, discardLogger(), metrics, 50)
	runFor(t, p, 300*time.Millisecond)

	require.Equal(t, 2, ldr.count())
	assert.Equal(t, "req-1", ldr.loaded[0].RequestID)
	assert.True(t, p.Ready())
	require.NoError(t, p.CheckReadiness(context.Background()))
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.MessagesConsumed), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.MessagesProduced), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.PipelineRunning), 0)
}

func TestPipeline_Run_ContextCancellation(t *testing.T) {
	ext := &mockExtractor{}
	ldr := &mockLoader{}

	p := pipeline.New(ext, &mockTransformer{}, ldr, discardLogger(), observability.NewMetricsForTesting(), 50)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.Run(ctx))
	assert.Zero(t, ldr.count())
	assert.Error(t, p.CheckReadiness(context.Background()))
}

func TestPipeline_Run_TransformErrorSkipsAndCommits(t *testing.T) {
	var commits atomic.Int64
	raw := makeRawEvent(t, "req-3")
	raw.Commit = func(context.Context) error {
		commits.Add(1)
		return nil
	}

	ext := &mockExtractor{batches: [][]domain.RawEvent{{raw}}}
	ldr := &mockLoader{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(ext, &mockTransformer{err: errors.New("bad data")}, ldr, discardLogger(), metrics, 50)
	runFor(t, p, 300*time.Millisecond)

	assert.Zero(t, ldr.count())
	assert.False(t, p.Ready())
	assert.Equal(t, int64(1), commits.Load())
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.TransformErrors), 0)
}

func TestPipeline_Run_CommitsAfterLoad(t *testing.T) {
	var commits atomic.Int64
	raw := makeRawEvent(t, "req-5")
	raw.Topic = "birth-details"
	raw.Commit = func(context.Context) error {
		commits.Add(1)
		return nil
	}

	ext := &mockExtractor{batches: [][]domain.RawEvent{{raw}}}
	ldr := &mockLoader{}

	p := pipeline.New(ext, &mockTransformer{}, ldr, discardLogger(), observability.NewMetricsForTesting(), 50)
	runFor(t, p, 300*time.Millisecond)

	assert.Equal(t, int64(1), commits.Load())
}

func TestPipeline_Run_DuplicateRequestsPublishedOnce(t *testing.T) {
	var commits atomic.Int64
	commit := func(context.Context) error {
		commits.Add(1)
		return nil
	}
	first, again, other := makeRawEvent(t, "req-9"), makeRawEvent(t, "req-9"), makeRawEvent(t, "req-10")
	first.Offset, again.Offset, other.Offset = 1, 2, 3
	first.Commit, again.Commit, other.Commit = commit, commit, commit

	ext := &mockExtractor{batches: [][]domain.RawEvent{{first, other, again}}}
	ldr := &mockLoader{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(ext, &mockTransformer{}, ldr, discardLogger(), metrics, 50)
	runFor(t, p, 300*time.Millisecond)

	require.Equal(t, 2, ldr.count())
	assert.Equal(t, "req-9", ldr.loaded[0].RequestID)
	assert.Equal(t, "req-10", ldr.loaded[1].RequestID)
	assert.Equal(t, int64(3), commits.Load())
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.DuplicateRequests), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.MessagesProduced), 0)
}

func TestPipeline_Run_LoadFailureDoesNotCommit(t *testing.T) {
	var commits atomic.Int64
	raw := makeRawEvent(t, "req-6")
	raw.Commit = func(context.Context) error {
		commits.Add(1)
		return nil
	}

	ext := &mockExtractor{batches: [][]domain.RawEvent{{raw}}}
	ldr := &mockLoader{err: errors.New("broker down")}

	p := pipeline.New(ext, &mockTransformer{}, ldr, discardLogger(), observability.NewMetricsForTesting(), 50)
	runFor(t, p, 300*time.Millisecond)

	assert.Zero(t, commits.Load())
	assert.False(t, p.Ready())
}

func TestPipeline_Run_ExtractErrorBacksOff(t *testing.T) {
	ext := &mockExtractor{err: errors.New("kafka unavailable")}

	p := pipeline.New(ext, &mockTransformer{}, &mockLoader{}, discardLogger(), observability.NewMetricsForTesting(), 50)
	runFor(t, p, 500*time.Millisecond)

	// 200ms then 400ms backoff: at most three attempts fit in the window.
	assert.LessOrEqual(t, ext.calls.Load(), int64(3))
	assert.GreaterOrEqual(t, ext.calls.Load(), int64(2))
}

func TestChartTransformer_Transform(t *testing.T) {
	fakeClock := clockwork.NewFakeClockAt(time.Date(2024, time.April, 26, 15, 10, 0, 0, time.UTC))
	domain.SetClock(fakeClock)
	t.Cleanup(func() { domain.SetClock(nil) })

	computer := &mockComputer{profile: domain.BirthProfile{
		Place:    domain.Place{Name: "Madurai", Source: domain.PlaceSourceTable},
		ChartSet: domain.ChartSet{StarID: 7, RasiID: 3},
	}}
	metrics := observability.NewMetricsForTesting()
	tfm := pipeline.NewTransformer(computer, discardLogger(), metrics)

	out, err := tfm.Transform(context.Background(), makeRawEvent(t, "req-7"))
	require.NoError(t, err)

	assert.Equal(t, "req-7", out.RequestID)
	assert.Equal(t, 7, out.Profile.StarID)
	assert.Equal(t, fakeClock.Now(), out.ProcessedAt)
	require.Len(t, computer.got, 1)
	assert.Equal(t, "Madurai", computer.got[0].BirthPlace)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ChartsComputed), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.PlaceLookups.WithLabelValues(domain.PlaceSourceTable)), 0)
}

func TestChartTransformer_Errors(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		computer := &mockComputer{}
		tfm := pipeline.NewTransformer(computer, discardLogger(), observability.NewMetricsForTesting())

		_, err := tfm.Transform(context.Background(), domain.RawEvent{Value: []byte("not json")})
		require.Error(t, err)
		assert.Empty(t, computer.got)
	})

	t.Run("computation failure", func(t *testing.T) {
		computer := &mockComputer{err: domain.ErrInvalidBirthDate}
		metrics := observability.NewMetricsForTesting()
		tfm := pipeline.NewTransformer(computer, discardLogger(), metrics)

		_, err := tfm.Transform(context.Background(), makeRawEvent(t, "req-8"))
		require.ErrorIs(t, err, domain.ErrInvalidBirthDate)
		assert.InDelta(t, 1, testutil.ToFloat64(metrics.ChartErrors), 0)
	})
}

// --- helpers ---

func makeRawEvent(t *testing.T, id string) domain.RawEvent {
	t.Helper()
	data, err := json.Marshal(domain.ChartRequest{
		ID: id,
		BirthDetails: domain.BirthDetails{
			BirthDate:  "1991-08-09",
			BirthTime:  "04:15",
			Meridian:   "PM",
			BirthPlace: "Madurai",
		},
	})
	require.NoError(t, err)
	return domain.RawEvent{
		Key:   []byte(id),
		Value: data,
	}
}
