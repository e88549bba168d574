package notifymock

import (
	"context"
	"sync"

	"goldloan-backend/internal/domain/notification"
)

// Ensure compile-time compliance
var _ notification.Notifier = (*Recorder)(nil)

// Recorder captures every event for later assertion.
type Recorder struct {
	mu     sync.Mutex
	Events []notification.Event
}

func New() *Recorder { return &Recorder{} }

func (r *Recorder) Notify(_ context.Context, ev notification.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
}

func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Events)
}

func (r *Recorder) Last() (notification.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Events) == 0 {
		return notification.Event{}, false
	}
	return r.Events[len(r.Events)-1], true
}
