package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyInProgress = "in_progress"
	IdempotencyCompleted  = "completed"
)

// IdempotencyData represents a stored request outcome keyed by (user, key)
type IdempotencyData struct {
	UserID       uuid.UUID
	Key          string
	Status       string
	Owner        string
	ResponseBody []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IdempotencyRepository defines the contract for idempotency record persistence.
//
// An in-progress row is held by the owner token that reserved or last took
// it over. Reserve inserts the row and reports false when one already
// exists. TakeOver hands an in-progress row last touched before staleBefore
// to a new owner. Renew, Complete and Release only act on a row the caller
// still owns; Renew and Complete report a lost lease as false and NotFound.
type IdempotencyRepository interface {
	Reserve(ctx context.Context, userID uuid.UUID, key, owner string) (bool, error)
	Find(ctx context.Context, userID uuid.UUID, key string) (*IdempotencyData, error)
	Renew(ctx context.Context, userID uuid.UUID, key, owner string) (bool, error)
	Complete(ctx context.Context, userID uuid.UUID, key, owner string, responseBody []byte) error
	Release(ctx context.Context, userID uuid.UUID, key, owner string) error
	TakeOver(ctx context.Context, userID uuid.UUID, key, owner string, staleBefore time.Time) (bool, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
