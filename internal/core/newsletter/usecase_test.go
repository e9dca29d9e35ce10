package newsletter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"newsletter.app/internal/adapters/infrastructure"
	mocks "newsletter.app/internal/mocks"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

var testIssue = Issue{Title: "Newsletter title", HTML: "<p>Newsletter body as HTML</p>", Text: "Newsletter body as plain text"}

type testDeps struct {
	subRepo  *mocks.SubscriptionRepository
	idemRepo *mocks.IdempotencyRepository
	email    *mocks.EmailProvider
	config   *mocks.ConfigProvider
	metrics  *mocks.MetricsCollector
}

var testNewsletterConfig = ports.NewsletterConfig{
	MaxSendAttempts:  2,
	RetryDelay:       time.Millisecond,
	IdempotencyTTL:   48 * time.Hour,
	IdempotencyLease: 10 * time.Minute,
	DispatchTimeout:  time.Minute,
}

func newTestUseCase(t *testing.T) (*UseCase, testDeps) {
	return newTestUseCaseWithConfig(t, testNewsletterConfig)
}

func newTestUseCaseWithConfig(t *testing.T, cfg ports.NewsletterConfig) (*UseCase, testDeps) {
	deps := testDeps{
		subRepo:  mocks.NewSubscriptionRepository(t),
		idemRepo: mocks.NewIdempotencyRepository(t),
		email:    mocks.NewEmailProvider(t),
		config:   mocks.NewConfigProvider(t),
		metrics:  mocks.NewMetricsCollector(t),
	}

	uc, err := NewUseCase(UseCaseDependencies{
		SubscriptionRepo: deps.subRepo,
		IdempotencyRepo:  deps.idemRepo,
		EmailProvider:    deps.email,
		Config:           deps.config,
		Metrics:          deps.metrics,
		Logger:           infrastructure.NewDiscardLogger(),
	})
	require.NoError(t, err)
	uc.pollInterval = 5 * time.Millisecond
	uc.waitTimeout = 50 * time.Millisecond

	deps.config.EXPECT().GetNewsletterConfig().Return(cfg).Maybe()

	return uc, deps
}

func confirmed(emails ...string) []*ports.SubscriptionData {
	subs := make([]*ports.SubscriptionData, 0, len(emails))
	for _, email := range emails {
		subs = append(subs, &ports.SubscriptionData{ID: uuid.New(), Email: email, Name: "Subscriber", Status: "confirmed"})
	}
	return subs
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{SubscriptionRepo: mocks.NewSubscriptionRepository(t)})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "idempotency repository is required")
}

func TestUseCase_Publish_DeliversToConfirmedSubscribers(t *testing.T) {
	uc, deps := newTestUseCase(t)
	userID := uuid.New()

	deps.idemRepo.EXPECT().Reserve(mock.Anything, userID, "key-1", mock.Anything).Return(true, nil)
	deps.subRepo.EXPECT().ListConfirmed(mock.Anything).
		Return(confirmed("ursula@example.com", "definitely-not-an-email", "dione@example.com"), nil)
	deps.email.EXPECT().SendEmail(mock.Anything, mock.MatchedBy(func(p ports.EmailParams) bool {
		return p.Subject == testIssue.Title && p.HTMLBody == testIssue.HTML && p.TextBody == testIssue.Text
	})).Return(nil).Times(2)
	deps.idemRepo.EXPECT().Complete(mock.Anything, userID, "key-1", mock.Anything, mock.MatchedBy(func(body []byte) bool {
		return string(body) == `{"delivered":2,"skipped":1,"failed":0}`
	})).Return(nil)
	deps.metrics.EXPECT().RecordEmailSent("newsletter", true).Return().Times(2)
	deps.metrics.EXPECT().RecordIssuePublished(OutcomeDelivered).Return()

	outcome, err := uc.Publish(context.Background(), PublishParams{UserID: userID, IdempotencyKey: "key-1", Issue: testIssue})

	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Delivered)
	assert.Equal(t, 1, outcome.Skipped)
	assert.False(t, outcome.Replayed)
}

func TestUseCase_Publish_NoConfirmedSubscribers(t *testing.T) {
	uc, deps := newTestUseCase(t)
	userID := uuid.New()

	deps.idemRepo.EXPECT().Reserve(mock.Anything, userID, "key-1", mock.Anything).Return(true, nil)
	deps.subRepo.EXPECT().ListConfirmed(mock.Anything).Return([]*ports.SubscriptionData{}, nil)
	deps.idemRepo.EXPECT().Complete(mock.Anything, userID, "key-1", mock.Anything, mock.Anything).Return(nil)
	deps.metrics.EXPECT().RecordIssuePublished(OutcomeDelivered).Return()

	outcome, err := uc.Publish(context.Background(), PublishParams{UserID: userID, IdempotencyKey: "key-1", Issue: testIssue})

	require.NoError(t, err)
	assert.Equal(t, Outcome{}, *outcome)
}

func TestUseCase_Publish_ReplayReturnsStoredOutcome(t *testing.T) {
	uc, deps := newTestUseCase(t)
	userID := uuid.New()

	deps.idemRepo.EXPECT().Reserve(mock.Anything, userID, "key-1", mock.Anything).Return(false, nil)
	deps.idemRepo.EXPECT().Find(mock.Anything, userID, "key-1").Return(&ports.IdempotencyData{
		UserID:       userID,
		Key:          "key-1",
		Status:       ports.IdempotencyCompleted,
		ResponseBody: []byte(`{"delivered":4,"skipped":0,"failed":1}`),
		UpdatedAt:    time.Now(),
	}, nil)
	deps.metrics.EXPECT().RecordIdempotencyReplay().Return()
	deps.metrics.EXPECT().RecordIssuePublished(OutcomeReplayed).Return()

	outcome, err := uc.Publish(context.Background(), PublishParams{UserID: userID, IdempotencyKey: "key-1", Issue: testIssue})

	require.NoError(t, err)
	assert.True(t, outcome.Replayed)
	assert.Equal(t, 4, outcome.Delivered)
	assert.Equal(t, "The newsletter issue has been published! 1 deliveries failed.", outcome.Message())
}

func TestUseCase_Publish_InProgressTimesOut(t *testing.T) {
	uc, deps := newTestUseCase(t)
	userID := uuid.New()

	deps.idemRepo.EXPECT().Reserve(mock.Anything, userID, "key-1", mock.Anything).Return(false, nil)
	deps.idemRepo.EXPECT().Find(mock.Anything, userID, "key-1").Return(&ports.IdempotencyData{
		UserID:    userID,
		Key:       "key-1",
		Status:    ports.IdempotencyInProgress,
		UpdatedAt: time.Now(),
	}, nil)
	deps.metrics.EXPECT().RecordIssuePublished(OutcomeFailed).Return()

	_, err := uc.Publish(context.Background(), PublishParams{UserID: userID, IdempotencyKey: "key-1", Issue: testIssue})

	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExistsError(err))
}

func TestUseCase_Publish_TakesOverStaleReservation(t *testing.T) {
	uc, deps := newTestUseCase(t)
	userID := uuid.New()

	deps.idemRepo.EXPECT().Reserve(mock.Anything, userID, "key-1", mock.Anything).Return(false, nil)
	deps.idemRepo.EXPECT().Find(mock.Anything, userID, "key-1").Return(&ports.IdempotencyData{
		UserID:    userID,
		Key:       "key-1",
		Status:    ports.IdempotencyInProgress,
		UpdatedAt: time.Now().Add(-time.Hour),
	}, nil)
	deps.idemRepo.EXPECT().TakeOver(mock.Anything, userID, "key-1", mock.Anything, mock.Anything).Return(true, nil)
	deps.subRepo.EXPECT().ListConfirmed(mock.Anything).Return(confirmed("ursula@example.com"), nil)
	deps.email.EXPECT().SendEmail(mock.Anything, mock.Anything).Return(nil).Once()
	deps.idemRepo.EXPECT().Complete(mock.Anything, userID, "key-1", mock.Anything, mock.Anything).Return(nil)
	deps.metrics.EXPECT().RecordEmailSent("newsletter", true).Return()
	deps.metrics.EXPECT().RecordIssuePublished(OutcomeDelivered).Return()

	outcome, err := uc.Publish(context.Background(), PublishParams{UserID: userID, IdempotencyKey: "key-1", Issue: testIssue})

	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Delivered)
}

func TestUseCase_Publish_AllDeliveriesFailReleasesKey(t *testing.T) {
	uc, deps := newTestUseCase(t)
	userID := uuid.New()

	deps.idemRepo.EXPECT().Reserve(mock.Anything, userID, "key-1", mock.Anything).Return(true, nil)
	deps.subRepo.EXPECT().ListConfirmed(mock.Anything).Return(confirmed("ursula@example.com"), nil)
	deps.email.EXPECT().SendEmail(mock.Anything, mock.Anything).
		Return(errors.NewTransportError("email API returned 500", nil)).Times(2)
	deps.idemRepo.EXPECT().Release(mock.Anything, userID, "key-1", mock.Anything).Return(nil)
	deps.metrics.EXPECT().RecordEmailSent("newsletter", false).Return().Times(2)
	deps.metrics.EXPECT().RecordIssuePublished(OutcomeFailed).Return()

	_, err := uc.Publish(context.Background(), PublishParams{UserID: userID, IdempotencyKey: "key-1", Issue: testIssue})

	require.Error(t, err)
	assert.True(t, errors.IsTransportError(err))
}

func TestUseCase_Publish_PartialFailureIsRecorded(t *testing.T) {
	uc, deps := newTestUseCase(t)
	userID := uuid.New()

	deps.idemRepo.EXPECT().Reserve(mock.Anything, userID, "key-1", mock.Anything).Return(true, nil)
	deps.subRepo.EXPECT().ListConfirmed(mock.Anything).Return(confirmed("ok@example.com", "down@example.com"), nil)
	deps.email.EXPECT().SendEmail(mock.Anything, mock.MatchedBy(func(p ports.EmailParams) bool {
		return p.To == "ok@example.com"
	})).Return(nil).Once()
	deps.email.EXPECT().SendEmail(mock.Anything, mock.MatchedBy(func(p ports.EmailParams) bool {
		return p.To == "down@example.com"
	})).Return(errors.NewTransportError("mailbox unavailable", nil)).Times(2)
	deps.idemRepo.EXPECT().Complete(mock.Anything, userID, "key-1", mock.Anything, mock.MatchedBy(func(body []byte) bool {
		return string(body) == `{"delivered":1,"skipped":0,"failed":1}`
	})).Return(nil)
	deps.metrics.EXPECT().RecordEmailSent("newsletter", true).Return().Once()
	deps.metrics.EXPECT().RecordEmailSent("newsletter", false).Return().Times(2)
	deps.metrics.EXPECT().RecordIssuePublished(OutcomePartial).Return()

	outcome, err := uc.Publish(context.Background(), PublishParams{UserID: userID, IdempotencyKey: "key-1", Issue: testIssue})

	require.NoError(t, err)
	assert.Equal(t, "The newsletter issue has been published! 1 deliveries failed.", outcome.Message())
}

func TestUseCase_Publish_RetriesTransientFailure(t *testing.T) {
	uc, deps := newTestUseCase(t)
	userID := uuid.New()

	deps.idemRepo.EXPECT().Reserve(mock.Anything, userID, "key-1", mock.Anything).Return(true, nil)
	deps.subRepo.EXPECT().ListConfirmed(mock.Anything).Return(confirmed("ursula@example.com"), nil)
	deps.email.EXPECT().SendEmail(mock.Anything, mock.Anything).
		Return(errors.NewTransportError("timeout", nil)).Once()
	deps.email.EXPECT().SendEmail(mock.Anything, mock.Anything).Return(nil).Once()
	deps.idemRepo.EXPECT().Complete(mock.Anything, userID, "key-1", mock.Anything, mock.Anything).Return(nil)
	deps.metrics.EXPECT().RecordEmailSent("newsletter", false).Return().Once()
	deps.metrics.EXPECT().RecordEmailSent("newsletter", true).Return().Once()
	deps.metrics.EXPECT().RecordIssuePublished(OutcomeDelivered).Return()

	outcome, err := uc.Publish(context.Background(), PublishParams{UserID: userID, IdempotencyKey: "key-1", Issue: testIssue})

	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Delivered)
	assert.Equal(t, 0, outcome.Failed)
}

func TestUseCase_Publish_SurvivesClientDisconnect(t *testing.T) {
	uc, deps := newTestUseCase(t)
	userID := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps.idemRepo.EXPECT().Reserve(mock.Anything, userID, "key-1", mock.Anything).Return(true, nil)
	deps.subRepo.EXPECT().ListConfirmed(mock.Anything).
		Return(confirmed("ursula@example.com", "dione@example.com", "io@example.com"), nil)
	deps.email.EXPECT().SendEmail(mock.Anything, mock.Anything).
		RunAndReturn(func(sendCtx context.Context, p ports.EmailParams) error {
			cancel()
			return sendCtx.Err()
		}).Times(3)
	deps.idemRepo.EXPECT().Complete(mock.Anything, userID, "key-1", mock.Anything, mock.MatchedBy(func(body []byte) bool {
		return string(body) == `{"delivered":3,"skipped":0,"failed":0}`
	})).Return(nil)
	deps.metrics.EXPECT().RecordEmailSent("newsletter", true).Return().Times(3)
	deps.metrics.EXPECT().RecordIssuePublished(OutcomeDelivered).Return()

	outcome, err := uc.Publish(ctx, PublishParams{UserID: userID, IdempotencyKey: "key-1", Issue: testIssue})

	require.NoError(t, err)
	assert.Equal(t, 3, outcome.Delivered)
	assert.Equal(t, 0, outcome.Failed)
}

func TestUseCase_Publish_DispatchDeadlineReleasesKey(t *testing.T) {
	cfg := testNewsletterConfig
	cfg.DispatchTimeout = 20 * time.Millisecond
	uc, deps := newTestUseCaseWithConfig(t, cfg)
	userID := uuid.New()

	deps.idemRepo.EXPECT().Reserve(mock.Anything, userID, "key-1", mock.Anything).Return(true, nil)
	deps.subRepo.EXPECT().ListConfirmed(mock.Anything).
		Return(confirmed("ursula@example.com", "dione@example.com"), nil)
	deps.email.EXPECT().SendEmail(mock.Anything, mock.Anything).
		RunAndReturn(func(sendCtx context.Context, p ports.EmailParams) error {
			<-sendCtx.Done()
			return sendCtx.Err()
		}).Once()
	deps.idemRepo.EXPECT().Release(mock.Anything, userID, "key-1", mock.Anything).Return(nil)
	deps.metrics.EXPECT().RecordEmailSent("newsletter", false).Return().Once()
	deps.metrics.EXPECT().RecordIssuePublished(OutcomeFailed).Return()

	_, err := uc.Publish(context.Background(), PublishParams{UserID: userID, IdempotencyKey: "key-1", Issue: testIssue})

	require.Error(t, err)
	assert.True(t, errors.IsTransportError(err))
	deps.idemRepo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Publish_RenewsLeaseWhileDispatching(t *testing.T) {
	uc, deps := newTestUseCase(t)
	userID := uuid.New()

	clock := time.Now()
	uc.now = func() time.Time {
		clock = clock.Add(4 * time.Minute)
		return clock
	}

	var owner string
	deps.idemRepo.EXPECT().Reserve(mock.Anything, userID, "key-1", mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, _ string, o string) { owner = o }).
		Return(true, nil)
	deps.subRepo.EXPECT().ListConfirmed(mock.Anything).
		Return(confirmed("ursula@example.com", "dione@example.com", "io@example.com"), nil)
	deps.idemRepo.EXPECT().Renew(mock.Anything, userID, "key-1", mock.MatchedBy(func(o string) bool {
		return o == owner
	})).Return(true, nil).Times(3)
	deps.email.EXPECT().SendEmail(mock.Anything, mock.Anything).Return(nil).Times(3)
	deps.idemRepo.EXPECT().Complete(mock.Anything, userID, "key-1", mock.MatchedBy(func(o string) bool {
		return o == owner
	}), mock.Anything).Return(nil)
	deps.metrics.EXPECT().RecordEmailSent("newsletter", true).Return().Times(3)
	deps.metrics.EXPECT().RecordIssuePublished(OutcomeDelivered).Return()

	outcome, err := uc.Publish(context.Background(), PublishParams{UserID: userID, IdempotencyKey: "key-1", Issue: testIssue})

	require.NoError(t, err)
	assert.Equal(t, 3, outcome.Delivered)
}

func TestUseCase_Publish_StopsWhenLeaseIsTakenOver(t *testing.T) {
	uc, deps := newTestUseCase(t)
	userID := uuid.New()

	clock := time.Now()
	uc.now = func() time.Time {
		clock = clock.Add(4 * time.Minute)
		return clock
	}

	deps.idemRepo.EXPECT().Reserve(mock.Anything, userID, "key-1", mock.Anything).Return(true, nil)
	deps.subRepo.EXPECT().ListConfirmed(mock.Anything).
		Return(confirmed("ursula@example.com", "dione@example.com", "io@example.com"), nil)
	deps.idemRepo.EXPECT().Renew(mock.Anything, userID, "key-1", mock.Anything).Return(true, nil).Once()
	deps.idemRepo.EXPECT().Renew(mock.Anything, userID, "key-1", mock.Anything).Return(false, nil).Once()
	deps.email.EXPECT().SendEmail(mock.Anything, mock.Anything).Return(nil).Once()
	deps.idemRepo.EXPECT().Release(mock.Anything, userID, "key-1", mock.Anything).Return(nil)
	deps.metrics.EXPECT().RecordEmailSent("newsletter", true).Return().Once()
	deps.metrics.EXPECT().RecordIssuePublished(OutcomeFailed).Return()

	_, err := uc.Publish(context.Background(), PublishParams{UserID: userID, IdempotencyKey: "key-1", Issue: testIssue})

	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExistsError(err))
	deps.idemRepo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Publish_ConcurrentDuplicateCountsOneDelivery(t *testing.T) {
	uc, deps := newTestUseCase(t)
	userID := uuid.New()
	started := make(chan struct{})
	proceed := make(chan struct{})

	deps.idemRepo.EXPECT().Reserve(mock.Anything, userID, "key-1", mock.Anything).Return(true, nil).Once()
	deps.idemRepo.EXPECT().Reserve(mock.Anything, userID, "key-1", mock.Anything).Return(false, nil).Maybe()
	deps.idemRepo.EXPECT().Find(mock.Anything, userID, "key-1").Return(&ports.IdempotencyData{
		Status:       ports.IdempotencyCompleted,
		ResponseBody: []byte(`{"delivered":1,"skipped":0,"failed":0}`),
		UpdatedAt:    time.Now(),
	}, nil).Maybe()
	deps.subRepo.EXPECT().ListConfirmed(mock.Anything).Return(confirmed("ursula@example.com"), nil).Once()
	deps.email.EXPECT().SendEmail(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, ports.EmailParams) error {
			close(started)
			<-proceed
			return nil
		}).Once()
	deps.idemRepo.EXPECT().Complete(mock.Anything, userID, "key-1", mock.Anything, mock.Anything).Return(nil).Once()
	deps.metrics.EXPECT().RecordEmailSent("newsletter", true).Return().Once()
	deps.metrics.EXPECT().RecordIssuePublished(OutcomeDelivered).Return().Once()
	deps.metrics.EXPECT().RecordIssuePublished(OutcomeReplayed).Return().Once()
	deps.metrics.EXPECT().RecordIdempotencyReplay().Return().Once()

	params := PublishParams{UserID: userID, IdempotencyKey: "key-1", Issue: testIssue}
	var (
		wg       sync.WaitGroup
		first    *Outcome
		second   *Outcome
		firstErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		first, firstErr = uc.Publish(context.Background(), params)
	}()

	<-started
	secondDone := make(chan struct{})
	var secondErr error
	go func() {
		defer close(secondDone)
		second, secondErr = uc.Publish(context.Background(), params)
	}()
	time.Sleep(20 * time.Millisecond)
	close(proceed)

	wg.Wait()
	<-secondDone

	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.False(t, first.Replayed)
	assert.True(t, second.Replayed)
	assert.Equal(t, 1, second.Delivered)
}

func TestUseCase_Publish_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		params PublishParams
	}{
		{name: "missing_user", params: PublishParams{IdempotencyKey: "key-1", Issue: testIssue}},
		{name: "missing_title", params: PublishParams{UserID: uuid.New(), IdempotencyKey: "key-1", Issue: Issue{HTML: "x", Text: "x"}}},
		{name: "missing_key", params: PublishParams{UserID: uuid.New(), Issue: testIssue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(t)

			_, err := uc.Publish(context.Background(), tt.params)

			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestUseCase_CleanupExpired(t *testing.T) {
	uc, deps := newTestUseCase(t)

	before := time.Now().Add(-48 * time.Hour)
	deps.idemRepo.EXPECT().DeleteOlderThan(mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
		return !cutoff.Before(before) && cutoff.Before(time.Now().Add(-47*time.Hour))
	})).Return(int64(3), nil)

	deleted, err := uc.CleanupExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
