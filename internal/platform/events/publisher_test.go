package events_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ferdiebergado/legacyprocs/internal/platform/events"
	"github.com/google/uuid"
)

func TestNewEvent(t *testing.T) {
	t.Parallel()

	evt, err := events.NewEvent("service_order.created", map[string]int64{"id": 3})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := uuid.Parse(evt.ID); err != nil {
		t.Errorf("evt.ID = %q is not a uuid: %v", evt.ID, err)
	}
	if evt.OccurredAt.IsZero() {
		t.Error("evt.OccurredAt is zero")
	}

	b, err := json.Marshal(evt)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["type"] != "service_order.created" {
		t.Errorf("decoded[type] = %v, want: %q", decoded["type"], "service_order.created")
	}
}

func TestNoopPublisher(t *testing.T) {
	t.Parallel()

	p := events.NewNoopPublisher()
	if err := p.Publish(context.Background(), "anything", nil); err != nil {
		t.Errorf("p.Publish() = %v, want: nil", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("p.Close() = %v, want: nil", err)
	}
}
