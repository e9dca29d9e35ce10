package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SubscriptionData represents subscriber data for persistence
type SubscriptionData struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Status       string
	SubscribedAt time.Time
}

// TokenData represents a subscription token for persistence
type TokenData struct {
	Token        string
	SubscriberID uuid.UUID
}

// SubscriptionRepository defines the contract for subscriber data persistence
type SubscriptionRepository interface {
	Save(ctx context.Context, sub *SubscriptionData) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*SubscriptionData, error)
	FindByEmail(ctx context.Context, email string) (*SubscriptionData, error)
	ConfirmPending(ctx context.Context, id uuid.UUID) (bool, error)
	ListConfirmed(ctx context.Context) ([]*SubscriptionData, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// TokenRepository defines the contract for subscription token persistence
type TokenRepository interface {
	Save(ctx context.Context, token *TokenData) error
	FindByToken(ctx context.Context, token string) (*TokenData, error)
	FindBySubscriberID(ctx context.Context, subscriberID uuid.UUID) (*TokenData, error)
}
