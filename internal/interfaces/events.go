package interfaces

import "context"

// Event types broadcast to rendered views so they refresh without a
// reload.
const (
	EventSettingsUpdated = "settings_updated"
	EventOrderCreated    = "order_created"
	EventStoreStatus     = "store_status"
)

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// EventBus fans events out to subscribers after successful writes.
// Publish never blocks the writer; slow subscribers lose events.
type EventBus interface {
	Publish(ctx context.Context, event Event)
	Subscribe() (<-chan Event, func())
}
