package ports

import (
	"context"

	"github.com/google/uuid"
)

// UserData represents an admin user for persistence
type UserData struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
}

// UserRepository defines the contract for user data persistence
type UserRepository interface {
	Save(ctx context.Context, user *UserData) error
	FindByID(ctx context.Context, id uuid.UUID) (*UserData, error)
	FindByUsername(ctx context.Context, username string) (*UserData, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
