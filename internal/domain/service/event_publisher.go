package service

import (
	"context"
)

// PriceChangeEvent announces that a differencing run wrote new rows.
type PriceChangeEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	InspectDay  string `json:"inspect_day"`
	PreviousDay string `json:"previous_day"`
	Inserted    int64  `json:"inserted"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishPriceChangeEvent(ctx context.Context, event *PriceChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
