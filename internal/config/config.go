package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"newsletter.app/pkg/errors"
	"newsletter.app/pkg/validation"
)

const (
	maxRedisDB          = 15
	maxPortNumber       = 65535
	minSessionSecretLen = 32
	maxSendAttempts     = 10
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig     `split_words:"true"`
	Database   DatabaseConfig   `split_words:"true"`
	Email      EmailConfig      `split_words:"true"`
	Session    SessionConfig    `split_words:"true"`
	Newsletter NewsletterConfig `split_words:"true"`
	Admin      AdminConfig      `split_words:"true"`
	Log        LogConfig        `split_words:"true"`
	AppBaseURL string           `envconfig:"APP_URL" default:"http://localhost:8080"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port int    `envconfig:"SERVER_PORT" default:"8080"`
}

// Address returns host:port for net.Listen
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host           string `envconfig:"DB_HOST" default:"localhost"`
	Port           int    `envconfig:"DB_PORT" default:"5432"`
	User           string `envconfig:"DB_USER" default:"postgres"`
	Password       string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name           string `envconfig:"DB_NAME" default:"newsletter"`
	SSLMode        string `envconfig:"DB_SSL_MODE" default:"disable"`
	ConnectTimeout int    `envconfig:"DB_CONNECT_TIMEOUT" default:"2"`
	MaxOpenConns   int    `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.ConnectTimeout)
}

// EmailProviderType selects the outbound email integration
type EmailProviderType int

const (
	EmailProviderUnknown EmailProviderType = iota
	EmailProviderHTTP
	EmailProviderSMTP
	EmailProviderMailjet
)

// String returns the string representation of the provider type
func (e EmailProviderType) String() string {
	switch e {
	case EmailProviderHTTP:
		return "http"
	case EmailProviderSMTP:
		return "smtp"
	case EmailProviderMailjet:
		return "mailjet"
	default:
		return "unknown"
	}
}

// IsValid checks if the provider type is valid
func (e EmailProviderType) IsValid() bool {
	return e == EmailProviderHTTP || e == EmailProviderSMTP || e == EmailProviderMailjet
}

// EmailProviderTypeFromString converts string to EmailProviderType enum
func EmailProviderTypeFromString(s string) EmailProviderType {
	switch s {
	case "http":
		return EmailProviderHTTP
	case "smtp":
		return EmailProviderSMTP
	case "mailjet":
		return EmailProviderMailjet
	default:
		return EmailProviderUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (e *EmailProviderType) UnmarshalText(text []byte) error {
	*e = EmailProviderTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (e EmailProviderType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

type EmailConfig struct {
	Provider           EmailProviderType `envconfig:"EMAIL_PROVIDER" default:"http"`
	SenderEmail        string            `envconfig:"EMAIL_SENDER" default:"newsletter@example.com"`
	SenderName         string            `envconfig:"EMAIL_SENDER_NAME" default:"Newsletter"`
	BaseURL            string            `envconfig:"EMAIL_BASE_URL" default:"http://localhost:8025"`
	AuthorizationToken string            `envconfig:"EMAIL_AUTHORIZATION_TOKEN"`
	TimeoutMillis      int               `envconfig:"EMAIL_TIMEOUT_MS" default:"10000"`
	SMTPHost           string            `envconfig:"EMAIL_SMTP_HOST" default:"localhost"`
	SMTPPort           int               `envconfig:"EMAIL_SMTP_PORT" default:"1025"`
	SMTPUsername       string            `envconfig:"EMAIL_SMTP_USERNAME"`
	SMTPPassword       string            `envconfig:"EMAIL_SMTP_PASSWORD"`
	MailjetPublicKey   string            `envconfig:"EMAIL_MAILJET_PUBLIC_KEY"`
	MailjetPrivateKey  string            `envconfig:"EMAIL_MAILJET_PRIVATE_KEY"`
}

// Timeout returns the outbound request timeout
func (e EmailConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutMillis) * time.Millisecond
}

// CacheType represents the type of key-value backend to use for sessions
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type SessionConfig struct {
	Store         CacheType   `envconfig:"SESSION_STORE" default:"memory"`
	Secret        string      `envconfig:"SESSION_SECRET"`
	MaxAgeMinutes int         `envconfig:"SESSION_MAX_AGE_MINUTES" default:"60"`
	SecureCookie  bool        `envconfig:"SESSION_SECURE_COOKIE" default:"false"`
	Redis         RedisConfig `split_words:"true"`
}

// MaxAge returns the session lifetime
func (s SessionConfig) MaxAge() time.Duration {
	return time.Duration(s.MaxAgeMinutes) * time.Minute
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type NewsletterConfig struct {
	MaxSendAttempts         int    `envconfig:"NEWSLETTER_MAX_SEND_ATTEMPTS" default:"3"`
	RetryDelayMillis        int    `envconfig:"NEWSLETTER_RETRY_DELAY_MS" default:"500"`
	IdempotencyTTLHours     int    `envconfig:"IDEMPOTENCY_TTL_HOURS" default:"48"`
	IdempotencyLeaseSeconds int    `envconfig:"IDEMPOTENCY_LEASE_SECONDS" default:"600"`
	DispatchTimeoutSeconds  int    `envconfig:"NEWSLETTER_DISPATCH_TIMEOUT_SECONDS" default:"3600"`
	CleanupSchedule         string `envconfig:"IDEMPOTENCY_CLEANUP_SCHEDULE" default:"@hourly"`
}

type AdminConfig struct {
	Username string `envconfig:"ADMIN_USERNAME"`
	Password string `envconfig:"ADMIN_PASSWORD"`
}

// Enabled reports whether an admin account should be seeded
func (a AdminConfig) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

type LogConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Email.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	if err := c.Newsletter.Validate(); err != nil {
		return err
	}
	if err := c.Admin.Validate(); err != nil {
		return err
	}
	if err := c.validateAppBaseURL(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAppBaseURL() error {
	if c.AppBaseURL == "" {
		return errors.NewConfigurationError("APP_URL cannot be empty", nil)
	}
	if !hasHTTPScheme(c.AppBaseURL) {
		return errors.NewConfigurationError("APP_URL must start with http:// or https://", nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Host == "" {
		return errors.NewConfigurationError("SERVER_HOST cannot be empty", nil)
	}
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	if d.ConnectTimeout < 1 {
		return errors.NewConfigurationError("DB_CONNECT_TIMEOUT must be at least 1 second", nil)
	}
	if d.MaxOpenConns < 1 {
		return errors.NewConfigurationError("DB_MAX_OPEN_CONNS must be at least 1", nil)
	}
	if err := d.ValidateSSLMode(); err != nil {
		return err
	}
	return nil
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (e *EmailConfig) Validate() error {
	if !e.Provider.IsValid() {
		return errors.NewConfigurationError("EMAIL_PROVIDER must be one of: http, smtp, mailjet", nil)
	}
	if !validation.IsValidEmail(e.SenderEmail) {
		return errors.NewConfigurationError("EMAIL_SENDER must be a valid email address", nil)
	}
	if e.TimeoutMillis < 1 {
		return errors.NewConfigurationError("EMAIL_TIMEOUT_MS must be positive", nil)
	}

	switch e.Provider {
	case EmailProviderHTTP:
		if !hasHTTPScheme(e.BaseURL) {
			return errors.NewConfigurationError("EMAIL_BASE_URL must start with http:// or https://", nil)
		}
	case EmailProviderSMTP:
		if e.SMTPHost == "" {
			return errors.NewConfigurationError("EMAIL_SMTP_HOST cannot be empty", nil)
		}
		if e.SMTPPort < 1 || e.SMTPPort > maxPortNumber {
			return errors.NewConfigurationError("EMAIL_SMTP_PORT must be between 1 and 65535", nil)
		}
		if (e.SMTPUsername == "") != (e.SMTPPassword == "") {
			return errors.NewConfigurationError("EMAIL_SMTP_USERNAME and EMAIL_SMTP_PASSWORD must both be provided or both be empty", nil)
		}
	case EmailProviderMailjet:
		if e.MailjetPublicKey == "" || e.MailjetPrivateKey == "" {
			return errors.NewConfigurationError("EMAIL_MAILJET_PUBLIC_KEY and EMAIL_MAILJET_PRIVATE_KEY are required for mailjet", nil)
		}
	}
	return nil
}

func (s *SessionConfig) Validate() error {
	if len(s.Secret) < minSessionSecretLen {
		return errors.NewConfigurationError(
			fmt.Sprintf("SESSION_SECRET must be at least %d bytes", minSessionSecretLen), nil)
	}
	if s.MaxAgeMinutes < 1 {
		return errors.NewConfigurationError("SESSION_MAX_AGE_MINUTES must be at least 1 minute", nil)
	}
	if !s.Store.IsValid() {
		return errors.NewConfigurationError("SESSION_STORE must be one of: memory, redis", nil)
	}
	if s.Store == CacheTypeRedis {
		return s.Redis.Validate()
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis sessions", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (n *NewsletterConfig) Validate() error {
	if n.MaxSendAttempts < 1 || n.MaxSendAttempts > maxSendAttempts {
		return errors.NewConfigurationError("NEWSLETTER_MAX_SEND_ATTEMPTS must be between 1 and 10", nil)
	}
	if n.RetryDelayMillis < 0 {
		return errors.NewConfigurationError("NEWSLETTER_RETRY_DELAY_MS cannot be negative", nil)
	}
	if n.IdempotencyTTLHours < 1 {
		return errors.NewConfigurationError("IDEMPOTENCY_TTL_HOURS must be at least 1 hour", nil)
	}
	if n.IdempotencyLeaseSeconds < 1 {
		return errors.NewConfigurationError("IDEMPOTENCY_LEASE_SECONDS must be at least 1 second", nil)
	}
	if n.DispatchTimeoutSeconds < 1 {
		return errors.NewConfigurationError("NEWSLETTER_DISPATCH_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if _, err := cron.ParseStandard(n.CleanupSchedule); err != nil {
		return errors.NewConfigurationError("IDEMPOTENCY_CLEANUP_SCHEDULE is not a valid cron expression", err)
	}
	return nil
}

func (a *AdminConfig) Validate() error {
	if (a.Username == "") != (a.Password == "") {
		return errors.NewConfigurationError("ADMIN_USERNAME and ADMIN_PASSWORD must both be provided or both be empty", nil)
	}
	return nil
}

func hasHTTPScheme(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
