package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChartRequest(t *testing.T) {
	value := []byte(`{"id":"req-1","name":"Arun","birth_date":"1988-06-21","birth_time":"10:05","meridian":"PM","birth_place":"Erode"}`)

	req, err := ParseChartRequest(RawEvent{Key: []byte("key-1"), Value: value})
	require.NoError(t, err)
	assert.Equal(t, "req-1", req.ID)
	assert.Equal(t, "Arun", req.Name)
	assert.Equal(t, "1988-06-21", req.BirthDate)
	assert.Equal(t, "PM", req.Meridian)
	assert.Equal(t, "Erode", req.BirthPlace)
}

func TestParseChartRequest_IDFallbacks(t *testing.T) {
	value := []byte(`{"birth_date":"1988-06-21","birth_time":"10:05","meridian":"PM","birth_place":"Erode"}`)

	req, err := ParseChartRequest(RawEvent{Key: []byte("key-1"), Value: value})
	require.NoError(t, err)
	assert.Equal(t, "key-1", req.ID)

	a, err := ParseChartRequest(RawEvent{Value: value})
	require.NoError(t, err)
	b, err := ParseChartRequest(RawEvent{Value: value})
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
	assert.Regexp(t, `^chart-[0-9a-f]{16}$`, a.ID)
}

func TestParseChartRequest_InvalidJSON(t *testing.T) {
	_, err := ParseChartRequest(RawEvent{Value: []byte("{not json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse chart request")
}

func TestSerializeChartEvent(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(ts))
	t.Cleanup(func() { SetClock(nil) })

	set, err := CastCharts(fixedPositions(), 10)
	require.NoError(t, err)
	profile := BirthProfile{
		BirthDetails: BirthDetails{BirthDate: "1990-01-01", BirthTime: "10:00", BirthPlace: "Chennai"},
		ChartSet:     set,
	}

	event := NewChartEvent("req-9", profile)
	assert.Equal(t, ts, event.ProcessedAt)

	out, err := SerializeChartEvent(event)
	require.NoError(t, err)
	assert.Equal(t, []byte("req-9"), out.Key)
	assert.Equal(t, "2024-05-06T07:08:09Z", out.Headers["processed_at"])
	assert.NotEmpty(t, out.Headers["star_id"])
	assert.NotEmpty(t, out.Headers["rasi_id"])

	var decoded ChartEvent
	require.NoError(t, json.Unmarshal(out.Value, &decoded))
	assert.Equal(t, "req-9", decoded.RequestID)
	assert.Equal(t, set.StarID, decoded.Profile.StarID)
	assert.Equal(t, set.RasiChart, decoded.Profile.RasiChart)
}
