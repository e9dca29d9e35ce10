package newsletter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"newsletter.app/pkg/errors"
	"newsletter.app/pkg/validation"
)

const (
	maxIdempotencyKeyLength = 50

	publishedMessage = "The newsletter issue has been published!"
)

// Outcome labels reported to metrics
const (
	OutcomeDelivered = "delivered"
	OutcomePartial   = "partial"
	OutcomeReplayed  = "replayed"
	OutcomeFailed    = "failed"
)

// Issue is a newsletter issue ready to be sent
type Issue struct {
	Title string
	HTML  string
	Text  string
}

// Validate checks all parts of the issue are present
func (i Issue) Validate() error {
	if !validation.IsNotEmpty(i.Title) {
		return errors.NewValidationError("title is required")
	}
	if strings.ContainsAny(i.Title, "\r\n") {
		return errors.NewValidationError("title must be a single line")
	}
	if !validation.IsNotEmpty(i.HTML) {
		return errors.NewValidationError("html content is required")
	}
	if !validation.IsNotEmpty(i.Text) {
		return errors.NewValidationError("text content is required")
	}
	return nil
}

// IdempotencyKey is a client-supplied deduplication key
type IdempotencyKey string

// ParseIdempotencyKey validates a client-supplied key
func ParseIdempotencyKey(s string) (IdempotencyKey, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", errors.NewValidationError("idempotency key is required")
	}
	if !validation.MaxLength(trimmed, maxIdempotencyKeyLength) {
		return "", errors.NewValidationError(fmt.Sprintf("idempotency key must be at most %d characters", maxIdempotencyKeyLength))
	}
	return IdempotencyKey(trimmed), nil
}

// NewIdempotencyKey generates a key for callers that did not supply one
func NewIdempotencyKey() IdempotencyKey {
	return IdempotencyKey(uuid.NewString())
}

// String returns the key as a plain string
func (k IdempotencyKey) String() string {
	return string(k)
}

// PublishParams carries a publish request
type PublishParams struct {
	UserID         uuid.UUID
	IdempotencyKey IdempotencyKey
	Issue          Issue
}

// Outcome summarises one dispatch of an issue
type Outcome struct {
	Delivered int `json:"delivered"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`

	// Replayed is set when the outcome was read back instead of dispatched.
	Replayed bool `json:"-"`
}

// Label classifies the outcome for metrics
func (o Outcome) Label() string {
	switch {
	case o.Replayed:
		return OutcomeReplayed
	case o.Failed > 0:
		return OutcomePartial
	default:
		return OutcomeDelivered
	}
}

// Message is the user-facing summary shown after publishing
func (o Outcome) Message() string {
	if o.Failed > 0 {
		return fmt.Sprintf("%s %d deliveries failed.", publishedMessage, o.Failed)
	}
	return publishedMessage
}

func encodeOutcome(o *Outcome) ([]byte, error) {
	return json.Marshal(o)
}

func decodeOutcome(data []byte) (*Outcome, error) {
	var o Outcome
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, errors.NewUnexpectedError("stored outcome is corrupt", err)
	}
	return &o, nil
}
