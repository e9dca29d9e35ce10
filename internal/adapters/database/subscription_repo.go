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

const (
	statusPendingConfirmation = "pending_confirmation"
	statusConfirmed           = "confirmed"
)

// SubscriptionModel represents the database model for subscribers
type SubscriptionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	SubscribedAt time.Time `gorm:"not null"`
	Status       string    `gorm:"index;not null"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// SubscriptionRepositoryAdapter implements the SubscriptionRepository port using GORM
type SubscriptionRepositoryAdapter struct {
	db *gorm.DB
}

// NewSubscriptionRepositoryAdapter creates a new subscription repository adapter
func NewSubscriptionRepositoryAdapter(db *gorm.DB) ports.SubscriptionRepository {
	return &SubscriptionRepositoryAdapter{db: db}
}

// Save inserts a new subscriber
func (r *SubscriptionRepositoryAdapter) Save(ctx context.Context, sub *ports.SubscriptionData) error {
	if sub == nil {
		return errors.NewValidationError("subscription cannot be nil")
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}

	result := conn(ctx, r.db).Create(r.dataToModel(sub))
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return errors.NewAlreadyExistsError("email is already subscribed")
		}
		return errors.NewDatabaseError("failed to save subscription", result.Error)
	}

	return nil
}

// FindByIDForUpdate retrieves a subscriber by id and locks the row until the
// surrounding transaction ends
func (r *SubscriptionRepositoryAdapter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ports.SubscriptionData, error) {
	return r.findByID(conn(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *SubscriptionRepositoryAdapter) findByID(db *gorm.DB, id uuid.UUID) (*ports.SubscriptionData, error) {
	var model SubscriptionModel
	result := db.Where("id = ?", id).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("subscription not found")
		}
		return nil, errors.NewDatabaseError("failed to find subscription by ID", result.Error)
	}

	return r.modelToData(&model), nil
}

// FindByEmail retrieves a subscriber by email
func (r *SubscriptionRepositoryAdapter) FindByEmail(ctx context.Context, email string) (*ports.SubscriptionData, error) {
	if email == "" {
		return nil, errors.NewValidationError("email cannot be empty")
	}

	var model SubscriptionModel
	result := conn(ctx, r.db).Where("email = ?", email).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("subscription not found")
		}
		return nil, errors.NewDatabaseError("failed to find subscription", result.Error)
	}

	return r.modelToData(&model), nil
}

// ConfirmPending moves a pending subscriber to confirmed and reports whether
// a row changed
func (r *SubscriptionRepositoryAdapter) ConfirmPending(ctx context.Context, id uuid.UUID) (bool, error) {
	result := conn(ctx, r.db).Model(&SubscriptionModel{}).
		Where("id = ? AND status = ?", id, statusPendingConfirmation).
		Update("status", statusConfirmed)
	if result.Error != nil {
		return false, errors.NewDatabaseError("failed to confirm subscription", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// ListConfirmed retrieves all confirmed subscribers
func (r *SubscriptionRepositoryAdapter) ListConfirmed(ctx context.Context) ([]*ports.SubscriptionData, error) {
	var models []SubscriptionModel
	result := conn(ctx, r.db).Where("status = ?", statusConfirmed).Order("subscribed_at").Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to get confirmed subscriptions", result.Error)
	}

	subscriptions := make([]*ports.SubscriptionData, len(models))
	for i := range models {
		subscriptions[i] = r.modelToData(&models[i])
	}

	return subscriptions, nil
}

// CountByStatus counts subscribers with the given status
func (r *SubscriptionRepositoryAdapter) CountByStatus(ctx context.Context, status string) (int64, error) {
	if status == "" {
		return 0, errors.NewValidationError("status cannot be empty")
	}

	var count int64
	result := conn(ctx, r.db).Model(&SubscriptionModel{}).Where("status = ?", status).Count(&count)
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to count subscriptions by status", result.Error)
	}

	return count, nil
}

func (r *SubscriptionRepositoryAdapter) dataToModel(data *ports.SubscriptionData) *SubscriptionModel {
	return &SubscriptionModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		SubscribedAt: data.SubscribedAt,
		Status:       data.Status,
	}
}

func (r *SubscriptionRepositoryAdapter) modelToData(model *SubscriptionModel) *ports.SubscriptionData {
	return &ports.SubscriptionData{
		ID:           model.ID,
		Email:        model.Email,
		Name:         model.Name,
		Status:       model.Status,
		SubscribedAt: model.SubscribedAt,
	}
}
