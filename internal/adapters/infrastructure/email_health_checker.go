package infrastructure

import (
	"context"

	"newsletter.app/internal/ports"
	"newsletter.app/pkg/validation"
)

// EmailHealthChecker reports the configured email integration without
// contacting the provider.
type EmailHealthChecker struct {
	config ports.EmailConfig
}

// NewEmailHealthChecker creates a new email health checker
func NewEmailHealthChecker(config ports.EmailConfig) *EmailHealthChecker {
	return &EmailHealthChecker{config: config}
}

// Check verifies email service configuration
func (e *EmailHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "email",
		Status:    ports.HealthStatusHealthy,
		Details: map[string]interface{}{
			"provider": e.config.Provider,
		},
	}

	switch e.config.Provider {
	case "http":
		status.Details["base_url"] = e.config.BaseURL
	case "smtp":
		status.Details["host"] = e.config.SMTPHost
		status.Details["port"] = e.config.SMTPPort
	}

	if !validation.IsValidEmail(e.config.SenderEmail) {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "sender address is invalid"
	}

	return status
}
