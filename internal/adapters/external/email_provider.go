package external

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

const defaultSMTPTimeout = 10 * time.Second

// SMTPEmailProviderAdapter implements EmailProvider port using SMTP
type SMTPEmailProviderAdapter struct {
	host     string
	port     int
	username string
	password string
	fromName string
	fromAddr string
	timeout  time.Duration
}

// EmailProviderConfig represents SMTP configuration
type EmailProviderConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
	FromAddr string
	// Timeout bounds the whole SMTP session, dial included
	Timeout time.Duration
}

// NewSMTPEmailProviderAdapter creates a new SMTP email provider adapter
func NewSMTPEmailProviderAdapter(config EmailProviderConfig) *SMTPEmailProviderAdapter {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}
	return &SMTPEmailProviderAdapter{
		host:     config.Host,
		port:     config.Port,
		username: config.Username,
		password: config.Password,
		fromName: config.FromName,
		fromAddr: config.FromAddr,
		timeout:  timeout,
	}
}

// SendEmail delivers a multipart/alternative message over SMTP, upgrading to TLS when offered
func (p *SMTPEmailProviderAdapter) SendEmail(ctx context.Context, params ports.EmailParams) error {
	if err := validateEmailParams(params); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := p.buildMessage(params)
	if err != nil {
		return errors.NewUnexpectedError("failed to build message", err)
	}
	addr := net.JoinHostPort(p.host, fmt.Sprint(p.port))

	dialer := net.Dialer{Timeout: p.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return errors.NewTransportError("failed to connect to SMTP server", err)
	}

	deadline := time.Now().Add(p.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		_ = conn.Close()
		return errors.NewTransportError("failed to set SMTP deadline", err)
	}
	// cancellation unblocks any pending read or write
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	client, err := smtp.NewClient(conn, p.host)
	if err != nil {
		_ = conn.Close()
		return errors.NewTransportError("failed to start SMTP session", err)
	}
	defer func() {
		_ = client.Close()
	}()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{
			ServerName: p.host,
		}
		if err := client.StartTLS(tlsConfig); err != nil {
			return errors.NewTransportError("failed to establish secure TLS connection", err)
		}
	}

	if p.username != "" && p.password != "" {
		auth := smtp.PlainAuth("", p.username, p.password, p.host)
		if err := client.Auth(auth); err != nil {
			return errors.NewTransportError("failed to authenticate", err)
		}
	}

	if err := client.Mail(p.fromAddr); err != nil {
		return errors.NewTransportError("failed to set sender", err)
	}
	if err := client.Rcpt(params.To); err != nil {
		return errors.NewTransportError("failed to set recipient", err)
	}

	writer, err := client.Data()
	if err != nil {
		return errors.NewTransportError("failed to get data writer", err)
	}
	if _, err := writer.Write(msg); err != nil {
		_ = writer.Close()
		return errors.NewTransportError("failed to write message", err)
	}
	if err := writer.Close(); err != nil {
		return errors.NewTransportError("failed to finish message", err)
	}

	if err := client.Quit(); err != nil {
		return errors.NewTransportError("failed to close SMTP session", err)
	}
	return nil
}

// ValidateConfiguration validates the email provider configuration
func (p *SMTPEmailProviderAdapter) ValidateConfiguration() error {
	if p.host == "" {
		return errors.NewConfigurationError("SMTP host cannot be empty", nil)
	}
	if p.port < 1 || p.port > 65535 {
		return errors.NewConfigurationError("SMTP port must be between 1 and 65535", nil)
	}
	if p.fromAddr == "" {
		return errors.NewConfigurationError("from address cannot be empty", nil)
	}
	return nil
}

// buildMessage renders headers plus text and HTML alternatives
func (p *SMTPEmailProviderAdapter) buildMessage(params ports.EmailParams) ([]byte, error) {
	var body strings.Builder
	mw := multipart.NewWriter(&body)

	parts := []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=UTF-8", params.TextBody},
		{"text/html; charset=UTF-8", params.HTMLBody},
	}
	for _, part := range parts {
		header := textproto.MIMEHeader{}
		header.Set("Content-Type", part.contentType)
		w, err := mw.CreatePart(header)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	from := mail.Address{Name: p.fromName, Address: p.fromAddr}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from.String())
	fmt.Fprintf(&msg, "To: %s\r\n", params.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", params.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%s\r\n", mw.Boundary())
	msg.WriteString("\r\n")
	msg.WriteString(body.String())

	return []byte(msg.String()), nil
}

func validateEmailParams(params ports.EmailParams) error {
	if params.To == "" {
		return errors.NewValidationError("recipient email cannot be empty")
	}
	if params.Subject == "" {
		return errors.NewValidationError("email subject cannot be empty")
	}
	if strings.ContainsAny(params.To, "\r\n") || strings.ContainsAny(params.Subject, "\r\n") {
		return errors.NewValidationError("email headers cannot contain line breaks")
	}
	if params.HTMLBody == "" && params.TextBody == "" {
		return errors.NewValidationError("email body cannot be empty")
	}
	return nil
}
