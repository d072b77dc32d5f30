package domain

import (
	"context"
	"time"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// ChartRequest is a birth-details message asking for a chart.
type ChartRequest struct {
	ID string `json:"id,omitempty"`
	BirthDetails
}

// ChartEvent is a computed profile destined for the sink topic.
type ChartEvent struct {
	RequestID   string       `json:"request_id"`
	Profile     BirthProfile `json:"profile"`
	ProcessedAt time.Time    `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
