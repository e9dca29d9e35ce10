package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

func TestSubscriptionRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepositoryAdapter(db)
	ctx := context.Background()

	sub := newPendingSubscriber("dione@email.com")
	sub.Name = "Dione"
	require.NoError(t, repo.Save(ctx, sub))

	byID, err := repo.FindByIDForUpdate(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "dione@email.com", byID.Email)
	assert.Equal(t, "Dione", byID.Name)
	assert.Equal(t, statusPendingConfirmation, byID.Status)

	byEmail, err := repo.FindByEmail(ctx, "dione@email.com")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, byEmail.ID)
}

func TestSubscriptionRepository_Save_AssignsID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepositoryAdapter(db)

	sub := newPendingSubscriber("dione@email.com")
	sub.ID = uuid.Nil

	require.NoError(t, repo.Save(context.Background(), sub))
	assert.NotEqual(t, uuid.Nil, sub.ID)
}

func TestSubscriptionRepository_Save_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepositoryAdapter(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newPendingSubscriber("dione@email.com")))

	err := repo.Save(ctx, newPendingSubscriber("dione@email.com"))

	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExistsError(err))
}

func TestSubscriptionRepository_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepositoryAdapter(db)
	ctx := context.Background()

	_, err := repo.FindByIDForUpdate(ctx, uuid.New())
	assert.True(t, errors.IsNotFoundError(err))

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSubscriptionRepository_ConfirmPending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepositoryAdapter(db)
	ctx := context.Background()

	sub := newPendingSubscriber("dione@email.com")
	require.NoError(t, repo.Save(ctx, sub))

	changed, err := repo.ConfirmPending(ctx, sub.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.ConfirmPending(ctx, sub.ID)
	require.NoError(t, err)
	assert.False(t, changed, "confirmed rows are never updated again")

	found, err := repo.FindByIDForUpdate(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, statusConfirmed, found.Status)
}

func TestSubscriptionRepository_ListConfirmedAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepositoryAdapter(db)
	ctx := context.Background()

	var confirmedIDs []uuid.UUID
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		sub := newPendingSubscriber(email)
		require.NoError(t, repo.Save(ctx, sub))
		if email != "c@example.com" {
			_, err := repo.ConfirmPending(ctx, sub.ID)
			require.NoError(t, err)
			confirmedIDs = append(confirmedIDs, sub.ID)
		}
	}

	confirmed, err := repo.ListConfirmed(ctx)
	require.NoError(t, err)
	require.Len(t, confirmed, 2)
	ids := []uuid.UUID{confirmed[0].ID, confirmed[1].ID}
	assert.ElementsMatch(t, confirmedIDs, ids)

	pending, err := repo.CountByStatus(ctx, statusPendingConfirmation)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)

	_, err = repo.CountByStatus(ctx, "")
	assert.True(t, errors.IsValidationError(err))
}

func TestSubscriptionRepository_ListConfirmed_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepositoryAdapter(db)

	require.NoError(t, repo.Save(context.Background(), newPendingSubscriber("pending@example.com")))

	confirmed, err := repo.ListConfirmed(context.Background())
	require.NoError(t, err)
	assert.Empty(t, confirmed)
	assert.IsType(t, []*ports.SubscriptionData{}, confirmed)
}
