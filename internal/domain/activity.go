// Package domain defines the activity registry contract for the signup service.
package domain

import (
	"context"
	"errors"
)

var (
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the student is already on the activity roster.
	ErrAlreadySignedUp = errors.New("student already signed up")
	// ErrNotRegistered indicates the student is not on the activity roster.
	ErrNotRegistered = errors.New("student not registered")
)

// Activity describes one school activity and its roster. Activities are keyed
// by name in the registry. MaxParticipants is declared capacity only; signup
// does not enforce it.
type Activity struct {
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Registry captures the roster operations. Each operation is atomic with
// respect to the others: membership checks and the mutation happen under the
// same lock.
type Registry interface {
	List(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
}
