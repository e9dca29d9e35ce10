package external

import (
	"context"

	mailjet "github.com/mailjet/mailjet-apiv3-go"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

// MailjetEmailProviderConfig holds Mailjet API credentials and sender identity
type MailjetEmailProviderConfig struct {
	PublicKey  string
	PrivateKey string
	FromName   string
	FromAddr   string
}

// MailjetEmailProviderAdapter implements EmailProvider port using the Mailjet v3.1 send API
type MailjetEmailProviderAdapter struct {
	send     func(*mailjet.MessagesV31) error
	fromName string
	fromAddr string
}

// NewMailjetEmailProviderAdapter creates a new Mailjet email provider adapter
func NewMailjetEmailProviderAdapter(config MailjetEmailProviderConfig) (*MailjetEmailProviderAdapter, error) {
	if config.PublicKey == "" || config.PrivateKey == "" {
		return nil, errors.NewConfigurationError("mailjet API keys cannot be empty", nil)
	}
	if config.FromAddr == "" {
		return nil, errors.NewConfigurationError("from address cannot be empty", nil)
	}

	client := mailjet.NewMailjetClient(config.PublicKey, config.PrivateKey)
	return &MailjetEmailProviderAdapter{
		send: func(msgs *mailjet.MessagesV31) error {
			_, err := client.SendMailV31(msgs)
			return err
		},
		fromName: config.FromName,
		fromAddr: config.FromAddr,
	}, nil
}

// SendEmail sends one message with text and HTML parts
func (p *MailjetEmailProviderAdapter) SendEmail(ctx context.Context, params ports.EmailParams) error {
	if err := validateEmailParams(params); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msgs := &mailjet.MessagesV31{Info: []mailjet.InfoMessagesV31{{
		From:     &mailjet.RecipientV31{Email: p.fromAddr, Name: p.fromName},
		To:       &mailjet.RecipientsV31{mailjet.RecipientV31{Email: params.To}},
		Subject:  params.Subject,
		TextPart: params.TextBody,
		HTMLPart: params.HTMLBody,
	}}}

	if err := p.send(msgs); err != nil {
		return errors.NewTransportError("failed to send mail via mailjet", err)
	}
	return nil
}
