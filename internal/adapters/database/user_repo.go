package database

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

// UserModel represents the database model for admin users
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// UserRepositoryAdapter implements the UserRepository port using GORM
type UserRepositoryAdapter struct {
	db *gorm.DB
}

// NewUserRepositoryAdapter creates a new user repository adapter
func NewUserRepositoryAdapter(db *gorm.DB) ports.UserRepository {
	return &UserRepositoryAdapter{db: db}
}

// Save inserts a new user
func (r *UserRepositoryAdapter) Save(ctx context.Context, user *ports.UserData) error {
	if user == nil {
		return errors.NewValidationError("user cannot be nil")
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	result := conn(ctx, r.db).Create(r.dataToModel(user))
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return errors.NewAlreadyExistsError("username is taken")
		}
		return errors.NewDatabaseError("failed to save user", result.Error)
	}

	return nil
}

// FindByID retrieves a user by id
func (r *UserRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*ports.UserData, error) {
	var model UserModel
	result := conn(ctx, r.db).Where("user_id = ?", id).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, errors.NewDatabaseError("failed to find user by ID", result.Error)
	}

	return r.modelToData(&model), nil
}

// FindByUsername retrieves a user by username
func (r *UserRepositoryAdapter) FindByUsername(ctx context.Context, username string) (*ports.UserData, error) {
	if username == "" {
		return nil, errors.NewNotFoundError("user not found")
	}

	var model UserModel
	result := conn(ctx, r.db).Where("username = ?", username).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, errors.NewDatabaseError("failed to find user by username", result.Error)
	}

	return r.modelToData(&model), nil
}

// UpdatePasswordHash overwrites the stored hash of a user
func (r *UserRepositoryAdapter) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := conn(ctx, r.db).Model(&UserModel{}).Where("user_id = ?", id).Update("password_hash", passwordHash)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to update password hash", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}

	return nil
}

func (r *UserRepositoryAdapter) dataToModel(data *ports.UserData) *UserModel {
	return &UserModel{
		UserID:       data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
	}
}

func (r *UserRepositoryAdapter) modelToData(model *UserModel) *ports.UserData {
	return &ports.UserData{
		ID:           model.UserID,
		Username:     model.Username,
		PasswordHash: model.PasswordHash,
	}
}
