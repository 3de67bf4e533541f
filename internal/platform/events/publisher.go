// Package events publishes domain events to a message broker.
package events

import (
	"context"
	"time"
)

// Event is the envelope written to the broker.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type Publisher interface {
	// Publish sends payload under routingKey, which also becomes the event type.
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

type noopPublisher struct{}

var _ Publisher = noopPublisher{}

// NewNoopPublisher returns a Publisher that discards every event.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, string, any) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
