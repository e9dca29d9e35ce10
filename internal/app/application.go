package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"newsletter.app/internal/adapters/api"
	"newsletter.app/internal/adapters/external"
	"newsletter.app/internal/adapters/infrastructure"
	"newsletter.app/internal/config"
	"newsletter.app/internal/core/auth"
	"newsletter.app/internal/core/newsletter"
	"newsletter.app/internal/core/subscription"
	"newsletter.app/internal/ports"
)

const (
	cleanupJobName    = "idempotency-cleanup"
	cleanupJobTimeout = 5 * time.Minute

	sessionSweepJobName  = "session-sweep"
	sessionSweepSchedule = "@every 5m"
)

// expiringBackend is a session backend that only evicts entries it reads
type expiringBackend interface {
	DeleteExpired() int
}

type Application struct {
	config    *config.Config
	container *DependencyContainer

	// Use Cases
	subscriptionUseCase *subscription.UseCase
	authUseCase         *auth.UseCase
	newsletterUseCase   *newsletter.UseCase

	// Adapters
	httpServer *http.Server
	handler    http.Handler
	scheduler  *infrastructure.CronScheduler

	// Infrastructure
	ports  *ports.ApplicationPorts
	logger ports.Logger
}

// NewApplication connects to the configured database and wires every
// component
func NewApplication(cfg *config.Config, logger ports.Logger) (*Application, error) {
	container, err := NewDependencyContainer(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, container)
	if err != nil {
		_ = container.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, container *DependencyContainer) (*Application, error) {
	app := &Application{
		config:    cfg,
		container: container,
		ports:     container.ApplicationPorts(),
		logger:    container.ApplicationPorts().Logger,
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	if err := app.initializeScheduler(); err != nil {
		return nil, fmt.Errorf("initialize scheduler: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	a.logger.Info("Initializing use cases...")

	subscriptionUseCase, err := subscription.NewUseCase(subscription.UseCaseDependencies{
		SubscriptionRepo: a.ports.SubscriptionRepository,
		TokenRepo:        a.ports.TokenRepository,
		Transactor:       a.ports.Transactor,
		EmailProvider:    a.ports.EmailProvider,
		Config:           a.ports.ConfigProvider,
		Metrics:          a.ports.Metrics,
		Logger:           a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create subscription use case: %w", err)
	}
	a.subscriptionUseCase = subscriptionUseCase

	authUseCase, err := auth.NewUseCase(auth.UseCaseDependencies{
		UserRepo:   a.ports.UserRepository,
		Hasher:     a.ports.PasswordHasher,
		Transactor: a.ports.Transactor,
		Metrics:    a.ports.Metrics,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create auth use case: %w", err)
	}
	a.authUseCase = authUseCase

	newsletterUseCase, err := newsletter.NewUseCase(newsletter.UseCaseDependencies{
		SubscriptionRepo: a.ports.SubscriptionRepository,
		IdempotencyRepo:  a.ports.IdempotencyRepository,
		EmailProvider:    a.ports.EmailProvider,
		Config:           a.ports.ConfigProvider,
		Metrics:          a.ports.Metrics,
		Logger:           a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create newsletter use case: %w", err)
	}
	a.newsletterUseCase = newsletterUseCase

	a.logger.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	a.logger.Info("Initializing adapters...")

	sessionBackend := a.container.sessionBackend
	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker: infrastructure.NewDatabaseHealthChecker(a.container.Database()),
		SessionChecker:  infrastructure.NewSessionStoreHealthChecker(sessionBackend, a.config.Session.Store.String(), sessionBackend),
		EmailChecker:    infrastructure.NewEmailHealthChecker(a.ports.ConfigProvider.GetEmailConfig()),
	})

	secret := []byte(a.config.Session.Secret)
	sessionStore := external.NewCacheSessionStore(sessionBackend, a.config.Session.MaxAge(), a.config.Session.SecureCookie, secret)

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		SubscriptionUseCase: a.subscriptionUseCase,
		AuthUseCase:         a.authUseCase,
		NewsletterUseCase:   a.newsletterUseCase,
		HealthChecker:       systemHealthChecker,
		Metrics:             a.ports.Metrics,
		MetricsHandler:      a.container.metrics.Handler(),
		Sessions:            api.NewSessionManager(sessionStore),
		LoginErrors:         api.NewSignedMessageCodec(secret),
		Logger:              a.logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.handler = httpAdapter.Handler()
	a.httpServer = &http.Server{
		Addr:         a.config.Server.Address(),
		Handler:      a.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) initializeScheduler() error {
	a.scheduler = infrastructure.NewCronScheduler(a.logger, cleanupJobTimeout)
	if err := a.scheduler.AddJob(cleanupJobName, a.config.Newsletter.CleanupSchedule, a.cleanupIdempotencyRecords); err != nil {
		return err
	}
	if _, ok := a.container.sessionBackend.(expiringBackend); ok {
		return a.scheduler.AddJob(sessionSweepJobName, sessionSweepSchedule, a.sweepExpiredSessions)
	}
	return nil
}

func (a *Application) sweepExpiredSessions(ctx context.Context) error {
	backend, ok := a.container.sessionBackend.(expiringBackend)
	if !ok {
		return nil
	}
	if removed := backend.DeleteExpired(); removed > 0 {
		a.logger.Debug("Expired sessions removed", ports.F("count", removed))
	}
	return ctx.Err()
}

func (a *Application) cleanupIdempotencyRecords(ctx context.Context) error {
	_, err := a.newsletterUseCase.CleanupExpired(ctx)
	return err
}

// SeedAdmin creates the configured admin account when it does not exist yet
func (a *Application) SeedAdmin(ctx context.Context) error {
	if !a.config.Admin.Enabled() {
		return nil
	}
	created, err := a.authUseCase.EnsureUser(ctx, auth.Credentials{
		Username: a.config.Admin.Username,
		Password: a.config.Admin.Password,
	})
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	if created {
		a.logger.Info("Admin user seeded", ports.F("username", a.config.Admin.Username))
	}
	return nil
}

// Start seeds the admin account, starts background jobs and serves HTTP
// until Shutdown is called
func (a *Application) Start(ctx context.Context) error {
	a.logger.Info("Starting application...")

	if err := a.SeedAdmin(ctx); err != nil {
		return err
	}

	a.scheduler.Start()

	a.logger.Info("Starting HTTP server", ports.F("address", a.httpServer.Addr))
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if err := a.scheduler.Stop(ctx); err != nil {
		a.logger.Warn("Error stopping scheduler", ports.F("error", err))
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Error shutting down HTTP server", ports.F("error", err))
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.container.Cleanup(); err != nil {
		a.logger.Warn("Error releasing resources", ports.F("error", err))
	}

	a.logger.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// Handler returns the HTTP handler for testing
func (a *Application) Handler() http.Handler {
	return a.handler
}

// GetNewsletterUseCase returns the newsletter use case for testing
func (a *Application) GetNewsletterUseCase() *newsletter.UseCase {
	return a.newsletterUseCase
}
