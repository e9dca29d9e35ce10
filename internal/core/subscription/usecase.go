package subscription

import (
	"context"
	"fmt"
	"net/url"

	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

const confirmationSubject = "Welcome!"

type UseCase struct {
	subscriptionRepo ports.SubscriptionRepository
	tokenRepo        ports.TokenRepository
	transactor       ports.Transactor
	emailProvider    ports.EmailProvider
	config           ports.ConfigProvider
	metrics          ports.MetricsCollector
	logger           ports.Logger
}

type UseCaseDependencies struct {
	SubscriptionRepo ports.SubscriptionRepository
	TokenRepo        ports.TokenRepository
	Transactor       ports.Transactor
	EmailProvider    ports.EmailProvider
	Config           ports.ConfigProvider
	Metrics          ports.MetricsCollector
	Logger           ports.Logger
}

type SubscribeParams struct {
	Name  string
	Email string
}

type ConfirmParams struct {
	Token string
}

// Stats summarises the subscriber base
type Stats struct {
	Pending   int64
	Confirmed int64
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.SubscriptionRepo == nil {
		return nil, errors.NewValidationError("subscription repository is required")
	}
	if deps.TokenRepo == nil {
		return nil, errors.NewValidationError("token repository is required")
	}
	if deps.Transactor == nil {
		return nil, errors.NewValidationError("transactor is required")
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
		tokenRepo:        deps.TokenRepo,
		transactor:       deps.Transactor,
		emailProvider:    deps.EmailProvider,
		config:           deps.Config,
		metrics:          deps.Metrics,
		logger:           deps.Logger,
	}, nil
}

// Subscribe registers a pending subscriber and emails the confirmation link.
// Repeating the request for a pending email re-sends the existing link; a
// confirmed email is accepted without sending anything.
func (uc *UseCase) Subscribe(ctx context.Context, params SubscribeParams) error {
	name, err := ParseSubscriberName(params.Name)
	if err != nil {
		return err
	}
	email, err := ParseSubscriberEmail(params.Email)
	if err != nil {
		return err
	}

	uc.logger.Debug("Processing subscription", ports.F("email", email))

	token, err := uc.register(ctx, email, name)
	if errors.IsAlreadyExistsError(err) {
		// A concurrent request inserted the same email first and has
		// committed; its row is now visible.
		uc.logger.Debug("Subscription raced with a concurrent request", ports.F("email", email))
		token, err = uc.register(ctx, email, name)
	}
	if err != nil {
		return err
	}

	if token == "" {
		return nil
	}

	if err := uc.sendConfirmationEmail(ctx, email, token); err != nil {
		uc.logger.Error("Failed to send confirmation email",
			ports.F("error", err),
			ports.F("email", email))
		return fmt.Errorf("send confirmation email: %w", err)
	}

	uc.logger.Info("Confirmation email sent", ports.F("email", email))
	return nil
}

// register stores a pending subscriber with a fresh token, or looks up the
// token of an existing pending one. It returns no token for a confirmed
// subscriber.
func (uc *UseCase) register(ctx context.Context, email SubscriberEmail, name SubscriberName) (SubscriptionToken, error) {
	var token SubscriptionToken
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := uc.subscriptionRepo.FindByEmail(ctx, email.String())
		if err != nil && !errors.IsNotFoundError(err) {
			return fmt.Errorf("check existing subscription: %w", err)
		}

		if existing != nil {
			if StatusFromString(existing.Status) == StatusConfirmed {
				uc.logger.Debug("Subscriber already confirmed", ports.F("subscriberID", existing.ID))
				return nil
			}
			token, err = uc.pendingToken(ctx, existing)
			return err
		}

		subscriber := NewSubscriber(email, name)
		if err := uc.subscriptionRepo.Save(ctx, toSubscriptionData(subscriber)); err != nil {
			return fmt.Errorf("save subscriber: %w", err)
		}

		token = GenerateSubscriptionToken()
		if err := uc.tokenRepo.Save(ctx, &ports.TokenData{Token: token.String(), SubscriberID: subscriber.ID}); err != nil {
			return fmt.Errorf("save subscription token: %w", err)
		}

		uc.logger.Debug("Subscriber created", ports.F("subscriberID", subscriber.ID))
		return nil
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// pendingToken returns the token of a pending subscriber, issuing one if the
// row somehow has none.
func (uc *UseCase) pendingToken(ctx context.Context, existing *ports.SubscriptionData) (SubscriptionToken, error) {
	tokenData, err := uc.tokenRepo.FindBySubscriberID(ctx, existing.ID)
	if err == nil {
		uc.logger.Debug("Re-sending confirmation for pending subscriber", ports.F("subscriberID", existing.ID))
		return SubscriptionToken(tokenData.Token), nil
	}
	if !errors.IsNotFoundError(err) {
		return "", fmt.Errorf("find subscription token: %w", err)
	}

	uc.logger.Warn("Pending subscriber without token, issuing a new one", ports.F("subscriberID", existing.ID))
	token := GenerateSubscriptionToken()
	if err := uc.tokenRepo.Save(ctx, &ports.TokenData{Token: token.String(), SubscriberID: existing.ID}); err != nil {
		return "", fmt.Errorf("save subscription token: %w", err)
	}
	return token, nil
}

// Confirm flips the subscriber owning the token to confirmed. Confirming an
// already confirmed subscriber is a no-op.
func (uc *UseCase) Confirm(ctx context.Context, params ConfirmParams) error {
	if params.Token == "" {
		return errors.NewValidationError("token is required")
	}

	token, err := ParseSubscriptionToken(params.Token)
	if err != nil {
		return err
	}

	uc.logger.Debug("Confirming subscription", ports.F("token", token))

	return uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		tokenData, err := uc.tokenRepo.FindByToken(ctx, token.String())
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewTokenError("unknown subscription token")
			}
			return fmt.Errorf("find token: %w", err)
		}

		subscriberData, err := uc.subscriptionRepo.FindByIDForUpdate(ctx, tokenData.SubscriberID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewUnexpectedError("token refers to a missing subscriber", err)
			}
			return fmt.Errorf("find subscriber: %w", err)
		}

		subscriber := fromSubscriptionData(subscriberData)
		if !subscriber.Confirm() {
			uc.logger.Debug("Subscriber already confirmed", ports.F("subscriberID", subscriber.ID))
			return nil
		}

		confirmed, err := uc.subscriptionRepo.ConfirmPending(ctx, subscriber.ID)
		if err != nil {
			return fmt.Errorf("confirm subscriber: %w", err)
		}
		if confirmed {
			uc.logger.Info("Subscriber confirmed", ports.F("subscriberID", subscriber.ID))
		}
		return nil
	})
}

// GetStats counts subscribers per status
func (uc *UseCase) GetStats(ctx context.Context) (Stats, error) {
	pending, err := uc.subscriptionRepo.CountByStatus(ctx, StatusPendingConfirmation.String())
	if err != nil {
		return Stats{}, fmt.Errorf("count pending subscribers: %w", err)
	}
	confirmed, err := uc.subscriptionRepo.CountByStatus(ctx, StatusConfirmed.String())
	if err != nil {
		return Stats{}, fmt.Errorf("count confirmed subscribers: %w", err)
	}
	return Stats{Pending: pending, Confirmed: confirmed}, nil
}

func (uc *UseCase) sendConfirmationEmail(ctx context.Context, email SubscriberEmail, token SubscriptionToken) error {
	link := uc.buildConfirmationLink(token)

	err := uc.emailProvider.SendEmail(ctx, ports.EmailParams{
		To:       email.String(),
		Subject:  confirmationSubject,
		HTMLBody: fmt.Sprintf("Welcome to our newsletter!<br />Click <a href=\"%s\">here</a> to confirm your subscription.", link),
		TextBody: fmt.Sprintf("Welcome to our newsletter!\nVisit %s to confirm your subscription.", link),
	})
	uc.metrics.RecordEmailSent("confirmation", err == nil)
	return err
}

func (uc *UseCase) buildConfirmationLink(token SubscriptionToken) string {
	baseURL := uc.config.GetAppConfig().BaseURL
	return fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s", baseURL, url.QueryEscape(token.String()))
}

func toSubscriptionData(s *Subscriber) *ports.SubscriptionData {
	return &ports.SubscriptionData{
		ID:           s.ID,
		Email:        s.Email.String(),
		Name:         s.Name.String(),
		Status:       s.Status.String(),
		SubscribedAt: s.SubscribedAt,
	}
}

func fromSubscriptionData(data *ports.SubscriptionData) *Subscriber {
	return &Subscriber{
		ID:           data.ID,
		Email:        SubscriberEmail(data.Email),
		Name:         SubscriberName(data.Name),
		Status:       StatusFromString(data.Status),
		SubscribedAt: data.SubscribedAt,
	}
}
