package database

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

// IdempotencyModel represents a stored publish request. The composite
// primary key enforces one row per (user, key).
type IdempotencyModel struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdempotencyKey string    `gorm:"primaryKey;size:50"`
	ResponseStatus string    `gorm:"not null"`
	Owner          string    `gorm:"size:36;not null;default:''"`
	ResponseBody   []byte
	CreatedAt      time.Time `gorm:"not null;index"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (IdempotencyModel) TableName() string {
	return "idempotency"
}

// IdempotencyRepositoryAdapter implements the IdempotencyRepository port using GORM
type IdempotencyRepositoryAdapter struct {
	db *gorm.DB
}

// NewIdempotencyRepositoryAdapter creates a new idempotency repository adapter
func NewIdempotencyRepositoryAdapter(db *gorm.DB) ports.IdempotencyRepository {
	return &IdempotencyRepositoryAdapter{db: db}
}

// Reserve inserts an in-progress row; false means the pair is already taken
func (r *IdempotencyRepositoryAdapter) Reserve(ctx context.Context, userID uuid.UUID, key, owner string) (bool, error) {
	now := time.Now().UTC()
	model := &IdempotencyModel{
		UserID:         userID,
		IdempotencyKey: key,
		ResponseStatus: ports.IdempotencyInProgress,
		Owner:          owner,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result := conn(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(model)
	if result.Error != nil {
		return false, errors.NewDatabaseError("failed to reserve idempotency key", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// Find retrieves the row for (user, key)
func (r *IdempotencyRepositoryAdapter) Find(ctx context.Context, userID uuid.UUID, key string) (*ports.IdempotencyData, error) {
	var model IdempotencyModel
	result := conn(ctx, r.db).Where("user_id = ? AND idempotency_key = ?", userID, key).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("idempotency record not found")
		}
		return nil, errors.NewDatabaseError("failed to find idempotency record", result.Error)
	}

	return &ports.IdempotencyData{
		UserID:       model.UserID,
		Key:          model.IdempotencyKey,
		Status:       model.ResponseStatus,
		Owner:        model.Owner,
		ResponseBody: model.ResponseBody,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}

// owned scopes a query to the in-progress row held by owner
func owned(db *gorm.DB, userID uuid.UUID, key, owner string) *gorm.DB {
	return db.Where("user_id = ? AND idempotency_key = ? AND response_status = ? AND owner = ?",
		userID, key, ports.IdempotencyInProgress, owner)
}

// Renew pushes the lease of an owned in-progress row forward
func (r *IdempotencyRepositoryAdapter) Renew(ctx context.Context, userID uuid.UUID, key, owner string) (bool, error) {
	result := owned(conn(ctx, r.db).Model(&IdempotencyModel{}), userID, key, owner).
		Update("updated_at", time.Now().UTC())
	if result.Error != nil {
		return false, errors.NewDatabaseError("failed to renew idempotency lease", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// Complete stores the outcome of an owned in-progress request
func (r *IdempotencyRepositoryAdapter) Complete(ctx context.Context, userID uuid.UUID, key, owner string, responseBody []byte) error {
	result := owned(conn(ctx, r.db).Model(&IdempotencyModel{}), userID, key, owner).
		Updates(map[string]interface{}{
			"response_status": ports.IdempotencyCompleted,
			"response_body":   responseBody,
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to complete idempotency record", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("idempotency reservation not held")
	}

	return nil
}

// Release deletes an owned in-progress reservation
func (r *IdempotencyRepositoryAdapter) Release(ctx context.Context, userID uuid.UUID, key, owner string) error {
	result := owned(conn(ctx, r.db), userID, key, owner).Delete(&IdempotencyModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to release idempotency record", result.Error)
	}

	return nil
}

// TakeOver hands an in-progress row last touched before staleBefore to owner
func (r *IdempotencyRepositoryAdapter) TakeOver(ctx context.Context, userID uuid.UUID, key, owner string, staleBefore time.Time) (bool, error) {
	result := conn(ctx, r.db).Model(&IdempotencyModel{}).
		Where("user_id = ? AND idempotency_key = ? AND response_status = ? AND updated_at < ?",
			userID, key, ports.IdempotencyInProgress, staleBefore.UTC()).
		Updates(map[string]interface{}{
			"owner":      owner,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, errors.NewDatabaseError("failed to take over idempotency record", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// DeleteOlderThan removes rows created before cutoff
func (r *IdempotencyRepositoryAdapter) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := conn(ctx, r.db).Where("created_at < ?", cutoff.UTC()).Delete(&IdempotencyModel{})
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to delete expired idempotency records", result.Error)
	}

	return result.RowsAffected, nil
}
