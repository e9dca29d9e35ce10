package ports

import "time"

// AppConfig represents application configuration
type AppConfig struct {
	BaseURL string
}

// EmailConfig represents email configuration
type EmailConfig struct {
	Provider    string
	SenderEmail string
	BaseURL     string
	SMTPHost    string
	SMTPPort    int
	Timeout     time.Duration
}

// NewsletterConfig represents newsletter delivery configuration
type NewsletterConfig struct {
	MaxSendAttempts  int
	RetryDelay       time.Duration
	IdempotencyTTL   time.Duration
	IdempotencyLease time.Duration
	DispatchTimeout  time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetAppConfig() AppConfig
	GetEmailConfig() EmailConfig
	GetNewsletterConfig() NewsletterConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordEmailSent(kind string, success bool)
	RecordIssuePublished(outcome string)
	RecordIdempotencyReplay()
	RecordLoginAttempt(success bool)
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}
