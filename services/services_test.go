package services_test

import (
	"context"
	"sync"

	"hospitality/services"
)

// recorder collects published events.
type recorder struct {
	mu     sync.Mutex
	events []services.Event
}

func (r *recorder) Publish(_ context.Context, e services.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recorder) all() []services.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]services.Event(nil), r.events...)
}
