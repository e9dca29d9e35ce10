package subscription

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"newsletter.app/pkg/errors"
	"newsletter.app/pkg/validation"
)

const (
	maxNameLength = 256
	tokenLength   = 25
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var forbiddenNameRunes = []rune{'/', '(', ')', '"', '<', '>', '\\', '{', '}'}

// SubscriberName is a validated subscriber display name
type SubscriberName string

// ParseSubscriberName trims and validates a display name
func ParseSubscriberName(s string) (SubscriberName, error) {
	trimmed, ok := validation.TrimAndValidate(s)
	if !ok {
		return "", errors.NewValidationError("name is required")
	}
	if !validation.MaxLength(trimmed, maxNameLength) {
		return "", errors.NewValidationError("name is too long")
	}
	if validation.ContainsAnyRune(trimmed, forbiddenNameRunes) {
		return "", errors.NewValidationError("name contains forbidden characters")
	}
	return SubscriberName(trimmed), nil
}

// String returns the name as a plain string
func (n SubscriberName) String() string {
	return string(n)
}

// SubscriberEmail is a validated subscriber email address
type SubscriberEmail string

// ParseSubscriberEmail trims and validates an email address
func ParseSubscriberEmail(s string) (SubscriberEmail, error) {
	trimmed := strings.TrimSpace(s)
	if !validation.IsNotEmpty(trimmed) {
		return "", errors.NewValidationError("email is required")
	}
	if !validation.IsValidEmail(trimmed) {
		return "", errors.NewValidationError("invalid email format")
	}
	return SubscriberEmail(trimmed), nil
}

// String returns the address as a plain string
func (e SubscriberEmail) String() string {
	return string(e)
}

// Status represents the confirmation state of a subscriber
type Status int

const (
	StatusUnknown Status = iota
	StatusPendingConfirmation
	StatusConfirmed
)

// String returns the persisted representation of the status
func (s Status) String() string {
	switch s {
	case StatusPendingConfirmation:
		return "pending_confirmation"
	case StatusConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// IsValid checks if the status value is valid
func (s Status) IsValid() bool {
	return s == StatusPendingConfirmation || s == StatusConfirmed
}

// StatusFromString converts string to Status enum
func StatusFromString(s string) Status {
	switch s {
	case "pending_confirmation":
		return StatusPendingConfirmation
	case "confirmed":
		return StatusConfirmed
	default:
		return StatusUnknown
	}
}

// Subscriber represents a newsletter subscriber
type Subscriber struct {
	ID           uuid.UUID
	Email        SubscriberEmail
	Name         SubscriberName
	Status       Status
	SubscribedAt time.Time
}

// NewSubscriber creates a pending subscriber with a fresh identifier
func NewSubscriber(email SubscriberEmail, name SubscriberName) *Subscriber {
	return &Subscriber{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Status:       StatusPendingConfirmation,
		SubscribedAt: time.Now().UTC(),
	}
}

// Confirm moves a pending subscriber to confirmed. Confirmed is terminal.
func (s *Subscriber) Confirm() bool {
	if s.Status != StatusPendingConfirmation {
		return false
	}
	s.Status = StatusConfirmed
	return true
}

// SubscriptionToken is a one-time capability string mapping to one subscriber
type SubscriptionToken string

// GenerateSubscriptionToken returns a random 25-character alphanumeric token
func GenerateSubscriptionToken() SubscriptionToken {
	b := make([]byte, tokenLength)
	for i := range b {
		b[i] = tokenAlphabet[rand.IntN(len(tokenAlphabet))]
	}
	return SubscriptionToken(b)
}

// ParseSubscriptionToken checks the token shape without touching storage
func ParseSubscriptionToken(s string) (SubscriptionToken, error) {
	if len(s) != tokenLength || !validation.IsAlphanumeric(s) {
		return "", errors.NewTokenError("invalid subscription token")
	}
	return SubscriptionToken(s), nil
}

// String returns the token as a plain string
func (t SubscriptionToken) String() string {
	return string(t)
}
