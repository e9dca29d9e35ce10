package newsletter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

const (
	defaultPollInterval    = 100 * time.Millisecond
	defaultWaitTimeout     = 10 * time.Second
	defaultDispatchTimeout = time.Hour
)

type UseCase struct {
	subscriptionRepo ports.SubscriptionRepository
	idempotencyRepo  ports.IdempotencyRepository
	emailProvider    ports.EmailProvider
	config           ports.ConfigProvider
	metrics          ports.MetricsCollector
	logger           ports.Logger

	inflight     singleflight.Group
	pollInterval time.Duration
	waitTimeout  time.Duration
	now          func() time.Time
}

type UseCaseDependencies struct {
	SubscriptionRepo ports.SubscriptionRepository
	IdempotencyRepo  ports.IdempotencyRepository
	EmailProvider    ports.EmailProvider
	Config           ports.ConfigProvider
	Metrics          ports.MetricsCollector
	Logger           ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.SubscriptionRepo == nil {
		return nil, errors.NewValidationError("subscription repository is required")
	}
	if deps.IdempotencyRepo == nil {
		return nil, errors.NewValidationError("idempotency repository is required")
	}
	if deps.EmailProvider == nil {
		return nil, errors.NewValidationError("email provider is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics collector is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		subscriptionRepo: deps.SubscriptionRepo,
		idempotencyRepo:  deps.IdempotencyRepo,
		emailProvider:    deps.EmailProvider,
		config:           deps.Config,
		metrics:          deps.Metrics,
		logger:           deps.Logger,
		pollInterval:     defaultPollInterval,
		waitTimeout:      defaultWaitTimeout,
		now:              time.Now,
	}, nil
}

// flight is the result shared by every caller joined on one publish
type flight struct {
	outcome *Outcome
	owner   string
}

// Publish sends the issue to every confirmed subscriber at most once per
// (user, idempotency key). Repeated requests return the stored outcome.
//
// The key is reserved under a per-request owner token before dispatch. A
// failure before any delivery releases the reservation so a retry
// dispatches again. The owner renews its lease while dispatching; a
// reservation left untouched longer than the lease is taken over by the
// next request for the key.
func (uc *UseCase) Publish(ctx context.Context, params PublishParams) (*Outcome, error) {
	if params.UserID == uuid.Nil {
		return nil, errors.NewValidationError("user id is required")
	}
	if err := params.Issue.Validate(); err != nil {
		return nil, err
	}
	key, err := ParseIdempotencyKey(params.IdempotencyKey.String())
	if err != nil {
		return nil, err
	}

	owner := uuid.NewString()
	flightKey := params.UserID.String() + "/" + key.String()
	v, err, _ := uc.inflight.Do(flightKey, func() (interface{}, error) {
		outcome, err := uc.publish(ctx, params.UserID, key, owner, params.Issue)
		if err != nil {
			return nil, err
		}
		return &flight{outcome: outcome, owner: owner}, nil
	})
	if err != nil {
		uc.metrics.RecordIssuePublished(OutcomeFailed)
		return nil, err
	}

	result := v.(*flight)
	outcome := *result.outcome
	if result.owner != owner {
		// joined a flight led by another request
		outcome.Replayed = true
	}
	if outcome.Replayed {
		uc.metrics.RecordIdempotencyReplay()
	}
	uc.metrics.RecordIssuePublished(outcome.Label())
	return &outcome, nil
}

func (uc *UseCase) publish(ctx context.Context, userID uuid.UUID, key IdempotencyKey, owner string, issue Issue) (*Outcome, error) {
	stored, err := uc.acquire(ctx, userID, key, owner)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		uc.logger.Debug("Returning stored publish outcome",
			ports.F("userID", userID),
			ports.F("idempotencyKey", key))
		stored.Replayed = true
		return stored, nil
	}

	cfg := uc.config.GetNewsletterConfig()
	timeout := cfg.DispatchTimeout
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}

	// Delivery outlives the request; a dropped client must not cut the run short.
	detached := context.WithoutCancel(ctx)
	dispatchCtx, cancel := context.WithTimeout(detached, timeout)
	defer cancel()

	lease := &reservation{
		repo:    uc.idempotencyRepo,
		userID:  userID,
		key:     key.String(),
		owner:   owner,
		every:   cfg.IdempotencyLease / 3,
		now:     uc.now,
		renewed: uc.now(),
	}

	outcome, err := uc.dispatch(dispatchCtx, issue, lease)
	if err != nil {
		if relErr := uc.idempotencyRepo.Release(detached, userID, key.String(), owner); relErr != nil {
			uc.logger.Error("Failed to release idempotency reservation",
				ports.F("error", relErr),
				ports.F("idempotencyKey", key))
		}
		return nil, err
	}

	body, err := encodeOutcome(outcome)
	if err != nil {
		return nil, errors.NewUnexpectedError("failed to encode publish outcome", err)
	}
	if err := uc.idempotencyRepo.Complete(detached, userID, key.String(), owner, body); err != nil {
		// Emails are already out; report success either way.
		if errors.IsNotFoundError(err) {
			uc.logger.Warn("Publish reservation was taken over before completion",
				ports.F("idempotencyKey", key))
		} else {
			uc.logger.Error("Failed to store publish outcome",
				ports.F("error", err),
				ports.F("idempotencyKey", key))
		}
	}

	uc.logger.Info("Newsletter issue published",
		ports.F("userID", userID),
		ports.F("delivered", outcome.Delivered),
		ports.F("skipped", outcome.Skipped),
		ports.F("failed", outcome.Failed))
	return outcome, nil
}

// acquire returns (nil, nil) when the caller owns the key and must dispatch,
// or the stored outcome of an earlier request.
func (uc *UseCase) acquire(ctx context.Context, userID uuid.UUID, key IdempotencyKey, owner string) (*Outcome, error) {
	lease := uc.config.GetNewsletterConfig().IdempotencyLease
	deadline := time.Now().Add(uc.waitTimeout)

	for {
		reserved, err := uc.idempotencyRepo.Reserve(ctx, userID, key.String(), owner)
		if err != nil {
			return nil, fmt.Errorf("reserve idempotency key: %w", err)
		}
		if reserved {
			return nil, nil
		}

		record, err := uc.idempotencyRepo.Find(ctx, userID, key.String())
		switch {
		case errors.IsNotFoundError(err):
			// Released between Reserve and Find; try to reserve again.
			continue
		case err != nil:
			return nil, fmt.Errorf("find idempotency record: %w", err)
		}

		if record.Status == ports.IdempotencyCompleted {
			return decodeOutcome(record.ResponseBody)
		}

		staleBefore := uc.now().Add(-lease)
		if record.UpdatedAt.Before(staleBefore) {
			took, err := uc.idempotencyRepo.TakeOver(ctx, userID, key.String(), owner, staleBefore)
			if err != nil {
				return nil, fmt.Errorf("take over idempotency record: %w", err)
			}
			if took {
				uc.logger.Warn("Taking over stale publish reservation",
					ports.F("userID", userID),
					ports.F("idempotencyKey", key))
				return nil, nil
			}
		}

		if time.Now().After(deadline) {
			return nil, errors.NewAlreadyExistsError("request in progress")
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(uc.pollInterval):
		}
	}
}

// CleanupExpired removes idempotency records older than the configured TTL
func (uc *UseCase) CleanupExpired(ctx context.Context) (int64, error) {
	ttl := uc.config.GetNewsletterConfig().IdempotencyTTL
	deleted, err := uc.idempotencyRepo.DeleteOlderThan(ctx, time.Now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("delete expired idempotency records: %w", err)
	}
	if deleted > 0 {
		uc.logger.Info("Expired idempotency records removed", ports.F("count", deleted))
	}
	return deleted, nil
}
