package database

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

// TokenModel represents the database model for subscription tokens
type TokenModel struct {
	SubscriptionToken string    `gorm:"primaryKey;size:25"`
	SubscriberID      uuid.UUID `gorm:"type:uuid;index;not null"`
}

func (TokenModel) TableName() string {
	return "subscription_tokens"
}

// TokenRepositoryAdapter implements the TokenRepository port using GORM
type TokenRepositoryAdapter struct {
	db *gorm.DB
}

// NewTokenRepositoryAdapter creates a new token repository adapter
func NewTokenRepositoryAdapter(db *gorm.DB) ports.TokenRepository {
	return &TokenRepositoryAdapter{db: db}
}

// Save inserts a token
func (r *TokenRepositoryAdapter) Save(ctx context.Context, token *ports.TokenData) error {
	if token == nil {
		return errors.NewValidationError("token cannot be nil")
	}
	if token.Token == "" || token.SubscriberID == uuid.Nil {
		return errors.NewValidationError("token and subscriber id are required")
	}

	model := &TokenModel{SubscriptionToken: token.Token, SubscriberID: token.SubscriberID}
	if result := conn(ctx, r.db).Create(model); result.Error != nil {
		if isDuplicateKey(result.Error) {
			return errors.NewAlreadyExistsError("token already exists")
		}
		return errors.NewDatabaseError("failed to save token", result.Error)
	}

	return nil
}

// FindByToken retrieves a token by its value
func (r *TokenRepositoryAdapter) FindByToken(ctx context.Context, token string) (*ports.TokenData, error) {
	if token == "" {
		return nil, errors.NewValidationError("token cannot be empty")
	}

	var model TokenModel
	result := conn(ctx, r.db).Where("subscription_token = ?", token).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("token not found")
		}
		return nil, errors.NewDatabaseError("failed to find token", result.Error)
	}

	return r.modelToData(&model), nil
}

// FindBySubscriberID retrieves the token issued to a subscriber
func (r *TokenRepositoryAdapter) FindBySubscriberID(ctx context.Context, subscriberID uuid.UUID) (*ports.TokenData, error) {
	var model TokenModel
	result := conn(ctx, r.db).Where("subscriber_id = ?", subscriberID).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("token not found")
		}
		return nil, errors.NewDatabaseError("failed to find token by subscriber", result.Error)
	}

	return r.modelToData(&model), nil
}

func (r *TokenRepositoryAdapter) modelToData(model *TokenModel) *ports.TokenData {
	return &ports.TokenData{
		Token:        model.SubscriptionToken,
		SubscriberID: model.SubscriberID,
	}
}
