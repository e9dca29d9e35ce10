package auth

import (
	"github.com/google/uuid"
	"newsletter.app/pkg/errors"
	"newsletter.app/pkg/validation"
)

const (
	MinPasswordLength = 12
	MaxPasswordLength = 128

	// dummyPasswordHash is verified against when the username is unknown so
	// both failure paths cost one argon2 computation.
	dummyPasswordHash = "$argon2id$v=19$m=15000,t=2,p=1$gZiV/M1gPc22ElAH/Jh1Hw$CWOrkoo7oJBQ/iyh7uJ0LO2aLEfrHwTWllSAxT0zRno"
)

// User-facing messages of the password change flow
const (
	MsgPasswordMismatch        = "You entered two different new passwords - the field values must match."
	MsgPasswordLength          = "The new password must be between 12 and 128 characters long."
	MsgCurrentPasswordMismatch = "The current password is incorrect."
)

// Credentials is a username and password candidate
type Credentials struct {
	Username string
	Password string
}

// User represents an admin account
type User struct {
	ID       uuid.UUID
	Username string
}

// ChangePasswordParams carries the password change form
type ChangePasswordParams struct {
	UserID           uuid.UUID
	CurrentPassword  string
	NewPassword      string
	NewPasswordCheck string
}

// Validate checks the new password pair before any credential lookup
func (p ChangePasswordParams) Validate() error {
	if p.NewPassword != p.NewPasswordCheck {
		return errors.NewValidationError(MsgPasswordMismatch)
	}
	if !validation.LengthBetween(p.NewPassword, MinPasswordLength, MaxPasswordLength) {
		return errors.NewValidationError(MsgPasswordLength)
	}
	return nil
}
