package newsletter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"newsletter.app/internal/core/subscription"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

// reservation is the idempotency lease held while an issue is dispatched
type reservation struct {
	repo    ports.IdempotencyRepository
	userID  uuid.UUID
	key     string
	owner   string
	every   time.Duration
	now     func() time.Time
	renewed time.Time
}

// keepAlive renews the lease once a third of it has elapsed. It reports
// false when another request has taken the reservation over.
func (r *reservation) keepAlive(ctx context.Context) (bool, error) {
	if r.now().Sub(r.renewed) < r.every {
		return true, nil
	}

	held, err := r.repo.Renew(ctx, r.userID, r.key, r.owner)
	if err != nil {
		return true, err
	}
	if held {
		r.renewed = r.now()
	}
	return held, nil
}

// dispatch sends the issue to every confirmed subscriber. Invalid stored
// addresses are skipped and gateway failures are counted; only a run in
// which nothing was delivered and something failed is an error. A run cut
// short by its deadline or by losing the lease is an error however many
// deliveries went out.
func (uc *UseCase) dispatch(ctx context.Context, issue Issue, lease *reservation) (*Outcome, error) {
	subscribers, err := uc.subscriptionRepo.ListConfirmed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list confirmed subscribers: %w", err)
	}

	uc.logger.Info("Dispatching newsletter issue",
		ports.F("title", issue.Title),
		ports.F("recipients", len(subscribers)))

	outcome := &Outcome{}
	var lastErr error

	for _, sub := range subscribers {
		if err := ctx.Err(); err != nil {
			return nil, uc.interrupted(outcome, err)
		}

		held, err := lease.keepAlive(ctx)
		if err != nil {
			uc.logger.Warn("Failed to renew publish reservation",
				ports.F("idempotencyKey", lease.key),
				ports.F("error", err))
		}
		if !held {
			uc.logger.Error("Publish reservation was taken over mid-dispatch",
				ports.F("idempotencyKey", lease.key),
				ports.F("delivered", outcome.Delivered))
			return nil, errors.NewAlreadyExistsError("publish reservation was taken over")
		}

		email, err := subscription.ParseSubscriberEmail(sub.Email)
		if err != nil {
			uc.logger.Warn("Skipping a confirmed subscriber as stored details are invalid",
				ports.F("subscriberID", sub.ID),
				ports.F("error", err))
			outcome.Skipped++
			continue
		}

		if err := uc.sendWithRetry(ctx, email, issue); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, uc.interrupted(outcome, ctxErr)
			}
			uc.logger.Error("Failed to deliver newsletter issue",
				ports.F("email", email),
				ports.F("error", err))
			outcome.Failed++
			lastErr = err
			continue
		}
		outcome.Delivered++
	}

	if outcome.Delivered == 0 && outcome.Failed > 0 {
		return nil, errors.NewTransportError(fmt.Sprintf("all %d deliveries failed", outcome.Failed), lastErr)
	}

	return outcome, nil
}

func (uc *UseCase) interrupted(outcome *Outcome, cause error) error {
	uc.logger.Error("Newsletter dispatch interrupted",
		ports.F("delivered", outcome.Delivered),
		ports.F("skipped", outcome.Skipped),
		ports.F("failed", outcome.Failed),
		ports.F("error", cause))
	return errors.NewTransportError("newsletter dispatch interrupted", cause)
}

func (uc *UseCase) sendWithRetry(ctx context.Context, email subscription.SubscriberEmail, issue Issue) error {
	cfg := uc.config.GetNewsletterConfig()
	attempts := max(cfg.MaxSendAttempts, 1)

	params := ports.EmailParams{
		To:       email.String(),
		Subject:  issue.Title,
		HTMLBody: issue.HTML,
		TextBody: issue.Text,
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = uc.emailProvider.SendEmail(ctx, params)
		uc.metrics.RecordEmailSent("newsletter", err == nil)
		if err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		uc.logger.Debug("Retrying newsletter delivery",
			ports.F("email", email),
			ports.F("attempt", attempt),
			ports.F("error", err))

		select {
		case <-ctx.Done():
			return fmt.Errorf("send aborted after %d attempts: %w", attempt, ctx.Err())
		case <-time.After(cfg.RetryDelay * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("send failed after %d attempts: %w", attempts, err)
}
