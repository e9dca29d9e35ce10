package external

import (
	"fmt"

	"newsletter.app/internal/config"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

type EmailProviderFactory struct{}

func NewEmailProviderFactory() *EmailProviderFactory {
	return &EmailProviderFactory{}
}

func (f *EmailProviderFactory) CreateEmailProvider(cfg *config.EmailConfig) (ports.EmailProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("email config cannot be nil", nil)
	}

	switch cfg.Provider {
	case config.EmailProviderHTTP:
		provider, err := NewHTTPEmailProviderAdapter(HTTPEmailProviderConfig{
			BaseURL:            cfg.BaseURL,
			Sender:             cfg.SenderEmail,
			AuthorizationToken: cfg.AuthorizationToken,
			Timeout:            cfg.Timeout(),
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	case config.EmailProviderSMTP:
		provider := NewSMTPEmailProviderAdapter(EmailProviderConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			FromName: cfg.SenderName,
			FromAddr: cfg.SenderEmail,
			Timeout:  cfg.Timeout(),
		})
		if err := provider.ValidateConfiguration(); err != nil {
			return nil, err
		}
		return provider, nil
	case config.EmailProviderMailjet:
		provider, err := NewMailjetEmailProviderAdapter(MailjetEmailProviderConfig{
			PublicKey:  cfg.MailjetPublicKey,
			PrivateKey: cfg.MailjetPrivateKey,
			FromName:   cfg.SenderName,
			FromAddr:   cfg.SenderEmail,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported email provider: %s", cfg.Provider.String()), nil)
	}
}
