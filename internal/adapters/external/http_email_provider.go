package external

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

const serverTokenHeader = "X-Postmark-Server-Token"

// HTTPEmailProviderConfig configures the Postmark-style email API client
type HTTPEmailProviderConfig struct {
	BaseURL            string
	Sender             string
	AuthorizationToken string
	Timeout            time.Duration
}

// HTTPEmailProviderAdapter implements EmailProvider port against a JSON email API
type HTTPEmailProviderAdapter struct {
	client *resty.Client
	sender string
}

type sendEmailRequest struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HTMLBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

// NewHTTPEmailProviderAdapter creates a new HTTP email provider adapter
func NewHTTPEmailProviderAdapter(config HTTPEmailProviderConfig) (*HTTPEmailProviderAdapter, error) {
	if config.BaseURL == "" {
		return nil, errors.NewConfigurationError("email API base URL cannot be empty", nil)
	}
	if config.Sender == "" {
		return nil, errors.NewConfigurationError("sender address cannot be empty", nil)
	}
	if config.Timeout <= 0 {
		return nil, errors.NewConfigurationError("email API timeout must be positive", nil)
	}

	client := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader(serverTokenHeader, config.AuthorizationToken)

	return &HTTPEmailProviderAdapter{
		client: client,
		sender: config.Sender,
	}, nil
}

// SendEmail posts the message to {base}/email; any non-2xx response is a transport failure
func (p *HTTPEmailProviderAdapter) SendEmail(ctx context.Context, params ports.EmailParams) error {
	if err := validateEmailParams(params); err != nil {
		return err
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sendEmailRequest{
			From:     p.sender,
			To:       params.To,
			Subject:  params.Subject,
			HTMLBody: params.HTMLBody,
			TextBody: params.TextBody,
		}).
		Post("/email")
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.NewTransportError("failed to call email API", err)
	}

	if resp.IsError() {
		return errors.NewTransportError(
			fmt.Sprintf("email API responded with status %d", resp.StatusCode()), nil)
	}

	return nil
}
