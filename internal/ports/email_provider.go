package ports

import "context"

// EmailParams represents parameters for sending emails.
// The sender address is owned by the provider configuration.
type EmailParams struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// EmailProvider defines the contract for email sending
type EmailProvider interface {
	SendEmail(ctx context.Context, params EmailParams) error
}
