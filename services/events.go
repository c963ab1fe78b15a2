package services

import (
	"context"
	"time"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Event describes one committed change to a document.
type Event struct {
	Entity string    `json:"entity"`
	Action Action    `json:"action"`
	ID     string    `json:"id"`
	Data   any       `json:"data,omitempty"`
	At     time.Time `json:"at"`
}

// EventPublisher receives events after the write succeeded. Sinks are best
// effort and report their own failures.
type EventPublisher interface {
	Publish(ctx context.Context, e Event)
}

// Fanout forwards every event to each sink in order.
type Fanout []EventPublisher

func (f Fanout) Publish(ctx context.Context, e Event) {
	for _, p := range f {
		p.Publish(ctx, e)
	}
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}

func newEvent(entity string, action Action, id string, data any) Event {
	return Event{Entity: entity, Action: action, ID: id, Data: data, At: time.Now().UTC()}
}
