// Package registry implements the in-memory activity registry.
package registry

import (
	"context"
	"slices"
	"sync"
	"time"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// InMemoryRegistry stores activities in memory behind a single lock. The
// activity set is fixed at construction; only rosters change at runtime.
type InMemoryRegistry struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryRegistry constructs a registry populated with the seed roster.
func NewInMemoryRegistry() *InMemoryRegistry {
	r := &InMemoryRegistry{activities: make(map[string]domain.Activity)}
	r.seed()
	return r
}

func (r *InMemoryRegistry) seed() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, activity := range seedActivities() {
		r.activities[name] = activity
		observability.SetParticipants(name, len(activity.Participants))
	}
}

// List returns a snapshot of every activity. Participant slices are cloned so
// callers never alias registry state.
func (r *InMemoryRegistry) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		activity.Participants = slices.Clone(activity.Participants)
		out[name] = activity
	}
	return out, nil
}

// Signup appends the email to the activity roster, preserving signup order.
// Declared capacity is not checked.
func (r *InMemoryRegistry) Signup(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if slices.Contains(activity.Participants, email) {
		return domain.ErrAlreadySignedUp
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity

	observability.RecordSignup(time.Now().UTC())
	observability.SetParticipants(name, len(activity.Participants))
	return nil
}

// Unregister removes the email from the activity roster.
func (r *InMemoryRegistry) Unregister(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return domain.ErrNotRegistered
	}

	activity.Participants = slices.Delete(slices.Clone(activity.Participants), idx, idx+1)
	r.activities[name] = activity

	observability.RecordUnregistration()
	observability.SetParticipants(name, len(activity.Participants))
	return nil
}
