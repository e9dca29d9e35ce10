// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"newsletter.app/internal/core/auth"
	"newsletter.app/internal/core/newsletter"
	"newsletter.app/internal/core/subscription"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router              *gin.Engine
	subscriptionUseCase SubscriptionUseCase
	authUseCase         AuthUseCase
	newsletterUseCase   NewsletterUseCase
	healthChecker       ports.SystemHealthChecker
	metrics             ports.MetricsCollector
	metricsHandler      http.Handler
	sessions            *SessionManager
	loginErrors         *SignedMessageCodec
	logger              ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type SubscriptionUseCase interface {
	Subscribe(ctx context.Context, params subscription.SubscribeParams) error
	Confirm(ctx context.Context, params subscription.ConfirmParams) error
	GetStats(ctx context.Context) (subscription.Stats, error)
}

type AuthUseCase interface {
	ValidateCredentials(ctx context.Context, creds auth.Credentials) (uuid.UUID, error)
	GetUsername(ctx context.Context, userID uuid.UUID) (string, error)
	ChangePassword(ctx context.Context, params auth.ChangePasswordParams) error
}

type NewsletterUseCase interface {
	Publish(ctx context.Context, params newsletter.PublishParams) (*newsletter.Outcome, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	SubscriptionUseCase SubscriptionUseCase
	AuthUseCase         AuthUseCase
	NewsletterUseCase   NewsletterUseCase
	HealthChecker       ports.SystemHealthChecker
	Metrics             ports.MetricsCollector
	MetricsHandler      http.Handler
	Sessions            *SessionManager
	LoginErrors         *SignedMessageCodec
	Logger              ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := registerValidators(); err != nil {
		return nil, errors.NewConfigurationError("failed to register request validators", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &HTTPServerAdapter{
		router:              router,
		subscriptionUseCase: opts.SubscriptionUseCase,
		authUseCase:         opts.AuthUseCase,
		newsletterUseCase:   opts.NewsletterUseCase,
		healthChecker:       opts.HealthChecker,
		metrics:             opts.Metrics,
		metricsHandler:      opts.MetricsHandler,
		sessions:            opts.Sessions,
		loginErrors:         opts.LoginErrors,
		logger:              opts.Logger,
	}

	router.Use(server.observe())
	router.SetHTMLTemplate(pageTemplates)
	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.SubscriptionUseCase == nil {
		return errors.NewValidationError("subscription use case is required")
	}
	if opts.AuthUseCase == nil {
		return errors.NewValidationError("auth use case is required")
	}
	if opts.NewsletterUseCase == nil {
		return errors.NewValidationError("newsletter use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Metrics == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.Sessions == nil {
		return errors.NewValidationError("session manager is required")
	}
	if opts.LoginErrors == nil {
		return errors.NewValidationError("login error codec is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/", s.home)
	s.router.GET("/health", s.health)
	s.router.GET("/health/details", s.healthDetails)
	if s.metricsHandler != nil {
		s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	}

	s.router.POST("/subscriptions", s.subscribe)
	s.router.GET("/subscriptions/confirm", s.confirmSubscription)

	s.router.GET("/login", s.loginForm)
	s.router.POST("/login", s.login)

	s.router.POST("/newsletters", s.publishNewsletterAPI)

	admin := s.router.Group("/admin", s.requireLogin)
	{
		admin.GET("/dashboard", s.adminDashboard)
		admin.GET("/password", s.changePasswordForm)
		admin.POST("/password", s.changePassword)
		admin.GET("/newsletter", s.publishNewsletterForm)
		admin.POST("/newsletter", s.publishNewsletter)
		admin.POST("/logout", s.logout)
	}
}

// Handler returns the root HTTP handler
func (s *HTTPServerAdapter) Handler() http.Handler {
	return s.router
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
