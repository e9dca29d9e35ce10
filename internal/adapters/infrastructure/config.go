package infrastructure

import (
	"time"

	"newsletter.app/internal/config"
	"newsletter.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetAppConfig returns application configuration
func (c *ConfigProviderAdapter) GetAppConfig() ports.AppConfig {
	return ports.AppConfig{
		BaseURL: c.config.AppBaseURL,
	}
}

// GetEmailConfig returns email configuration without credentials
func (c *ConfigProviderAdapter) GetEmailConfig() ports.EmailConfig {
	return ports.EmailConfig{
		Provider:    c.config.Email.Provider.String(),
		SenderEmail: c.config.Email.SenderEmail,
		BaseURL:     c.config.Email.BaseURL,
		SMTPHost:    c.config.Email.SMTPHost,
		SMTPPort:    c.config.Email.SMTPPort,
		Timeout:     c.config.Email.Timeout(),
	}
}

// GetNewsletterConfig returns newsletter delivery configuration
func (c *ConfigProviderAdapter) GetNewsletterConfig() ports.NewsletterConfig {
	n := c.config.Newsletter
	return ports.NewsletterConfig{
		MaxSendAttempts:  n.MaxSendAttempts,
		RetryDelay:       time.Duration(n.RetryDelayMillis) * time.Millisecond,
		IdempotencyTTL:   time.Duration(n.IdempotencyTTLHours) * time.Hour,
		IdempotencyLease: time.Duration(n.IdempotencyLeaseSeconds) * time.Second,
		DispatchTimeout:  time.Duration(n.DispatchTimeoutSeconds) * time.Second,
	}
}
