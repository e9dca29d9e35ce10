package database

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to ":memory:" opens a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func newPendingSubscriber(email string) *ports.SubscriptionData {
	return &ports.SubscriptionData{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Subscriber",
		Status:       statusPendingConfirmation,
		SubscribedAt: time.Now().UTC(),
	}
}

func TestGormTransactor_Commit(t *testing.T) {
	db := setupTestDB(t)
	tx := NewGormTransactor(db)
	subs := NewSubscriptionRepositoryAdapter(db)
	tokens := NewTokenRepositoryAdapter(db)
	ctx := context.Background()

	sub := newPendingSubscriber("ursula@example.com")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := subs.Save(ctx, sub); err != nil {
			return err
		}
		return tokens.Save(ctx, &ports.TokenData{Token: "abcdefghijklmnopqrstuvwxy", SubscriberID: sub.ID})
	})
	require.NoError(t, err)

	found, err := subs.FindByEmail(ctx, "ursula@example.com")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, found.ID)

	token, err := tokens.FindBySubscriberID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "abcdefghijklmnopqrstuvwxy", token.Token)
}

func TestGormTransactor_RollbackLeavesNoPartialRows(t *testing.T) {
	db := setupTestDB(t)
	tx := NewGormTransactor(db)
	subs := NewSubscriptionRepositoryAdapter(db)
	tokens := NewTokenRepositoryAdapter(db)
	ctx := context.Background()

	sub := newPendingSubscriber("ursula@example.com")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := subs.Save(ctx, sub); err != nil {
			return err
		}
		return tokens.Save(ctx, &ports.TokenData{Token: "", SubscriberID: sub.ID})
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err), "domain errors pass through unchanged")

	_, err = subs.FindByEmail(ctx, "ursula@example.com")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGormTransactor_WrapsUntypedErrors(t *testing.T) {
	db := setupTestDB(t)
	tx := NewGormTransactor(db)

	err := tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return stderrors.New("boom")
	})

	require.Error(t, err)
	assert.True(t, errors.IsDatabaseError(err))
}

func TestGormTransactor_NestedJoinsOuter(t *testing.T) {
	db := setupTestDB(t)
	tx := NewGormTransactor(db)
	subs := NewSubscriptionRepositoryAdapter(db)
	ctx := context.Background()

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := subs.Save(ctx, newPendingSubscriber("outer@example.com")); err != nil {
			return err
		}
		inner := tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return subs.Save(ctx, newPendingSubscriber("inner@example.com"))
		})
		require.NoError(t, inner)
		return errors.NewValidationError("abort")
	})
	require.Error(t, err)

	count, err := subs.CountByStatus(ctx, statusPendingConfirmation)
	require.NoError(t, err)
	assert.Zero(t, count)
}
