package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

type UseCase struct {
	userRepo   ports.UserRepository
	hasher     ports.PasswordHasher
	transactor ports.Transactor
	metrics    ports.MetricsCollector
	logger     ports.Logger
}

type UseCaseDependencies struct {
	UserRepo   ports.UserRepository
	Hasher     ports.PasswordHasher
	Transactor ports.Transactor
	Metrics    ports.MetricsCollector
	Logger     ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.UserRepo == nil {
		return nil, errors.NewValidationError("user repository is required")
	}
	if deps.Hasher == nil {
		return nil, errors.NewValidationError("password hasher is required")
	}
	if deps.Transactor == nil {
		return nil, errors.NewValidationError("transactor is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics collector is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		userRepo:   deps.UserRepo,
		hasher:     deps.Hasher,
		transactor: deps.Transactor,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}, nil
}

// ValidateCredentials returns the user id for a matching username and
// password. Unknown usernames and wrong passwords both yield an AuthError;
// storage or hash parsing failures yield other error types.
func (uc *UseCase) ValidateCredentials(ctx context.Context, creds Credentials) (uuid.UUID, error) {
	userID, err := uc.validateCredentials(ctx, creds)
	uc.metrics.RecordLoginAttempt(err == nil)
	return userID, err
}

func (uc *UseCase) validateCredentials(ctx context.Context, creds Credentials) (uuid.UUID, error) {
	var userID uuid.UUID
	expectedHash := dummyPasswordHash

	user, err := uc.userRepo.FindByUsername(ctx, creds.Username)
	switch {
	case err == nil:
		userID = user.ID
		expectedHash = user.PasswordHash
	case errors.IsNotFoundError(err):
	default:
		return uuid.Nil, errors.NewUnexpectedError("failed to load stored credentials", err)
	}

	if err := uc.hasher.Verify(ctx, expectedHash, creds.Password); err != nil {
		if errors.IsAuthError(err) {
			return uuid.Nil, errors.NewAuthError("invalid credentials", err)
		}
		return uuid.Nil, fmt.Errorf("verify password: %w", err)
	}

	if userID == uuid.Nil {
		return uuid.Nil, errors.NewAuthError("invalid credentials", errors.NewNotFoundError("unknown username"))
	}

	uc.logger.Debug("Credentials validated", ports.F("userID", userID))
	return userID, nil
}

// GetUsername resolves the username of a user id
func (uc *UseCase) GetUsername(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	return user.Username, nil
}

// ChangePassword checks the current password and stores a fresh hash of the
// new one. Validation and wrong-password failures carry user-facing messages.
func (uc *UseCase) ChangePassword(ctx context.Context, params ChangePasswordParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	username, err := uc.GetUsername(ctx, params.UserID)
	if err != nil {
		return err
	}

	if _, err := uc.validateCredentials(ctx, Credentials{Username: username, Password: params.CurrentPassword}); err != nil {
		if errors.IsAuthError(err) {
			return errors.NewAuthError(MsgCurrentPasswordMismatch, err)
		}
		return err
	}

	hash, err := uc.hasher.Hash(ctx, params.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		return uc.userRepo.UpdatePasswordHash(ctx, params.UserID, hash)
	})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	uc.logger.Info("Password changed", ports.F("userID", params.UserID))
	return nil
}

// EnsureUser creates the user unless one with the username already exists.
// It reports whether a user was created.
func (uc *UseCase) EnsureUser(ctx context.Context, creds Credentials) (bool, error) {
	_, err := uc.userRepo.FindByUsername(ctx, creds.Username)
	if err == nil {
		return false, nil
	}
	if !errors.IsNotFoundError(err) {
		return false, fmt.Errorf("find user: %w", err)
	}

	hash, err := uc.hasher.Hash(ctx, creds.Password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	user := &ports.UserData{ID: uuid.New(), Username: creds.Username, PasswordHash: hash}
	if err := uc.userRepo.Save(ctx, user); err != nil {
		return false, fmt.Errorf("save user: %w", err)
	}

	uc.logger.Info("User created", ports.F("username", creds.Username), ports.F("userID", user.ID))
	return true, nil
}
