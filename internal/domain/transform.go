package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseChartRequest deserializes a RawEvent's value into a ChartRequest.
// A missing ID falls back to the message key, then to a hash of the details.
func ParseChartRequest(raw RawEvent) (ChartRequest, error) {
	var req ChartRequest
	if err := json.Unmarshal(raw.Value, &req); err != nil {
		return ChartRequest{}, fmt.Errorf("parse chart request: %w", err)
	}
	if req.ID == "" {
		req.ID = string(raw.Key)
	}
	if req.ID == "" {
		req.ID = generateID(req.BirthDetails)
	}
	return req, nil
}

// generateID produces a deterministic ID from the birth details so replays
// of the same request map to the same chart.
func generateID(d BirthDetails) string {
	input := strings.Join([]string{
		strings.TrimSpace(d.Name),
		strings.TrimSpace(d.BirthDate),
		strings.TrimSpace(d.BirthTime),
		strings.ToUpper(strings.TrimSpace(d.Meridian)),
		strings.ToLower(strings.TrimSpace(d.BirthPlace)),
	}, "|")
	hash := sha256.Sum256([]byte(input))
	return "chart-" + hex.EncodeToString(hash[:8])
}

// NewChartEvent stamps a computed profile for publishing.
func NewChartEvent(requestID string, profile BirthProfile) ChartEvent {
	return ChartEvent{
		RequestID:   requestID,
		Profile:     profile,
		ProcessedAt: clock.Now(),
	}
}

// SerializeChartEvent marshals a ChartEvent with routing headers.
func SerializeChartEvent(event ChartEvent) (OutputEvent, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize chart event: %w", err)
	}
	return OutputEvent{
		Key:   []byte(event.RequestID),
		Value: data,
		Headers: map[string]string{
			"star_id":      strconv.Itoa(event.Profile.StarID),
			"rasi_id":      strconv.Itoa(event.Profile.RasiID),
			"processed_at": event.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}
