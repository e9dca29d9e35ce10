package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("original error")
				return Wrap(DatabaseError, "database operation failed", cause)
			},
			expected: "DATABASE_ERROR: database operation failed (caused by: original error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewTransportError("email API call failed", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, NewNotFoundError("missing").Unwrap())
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "VALIDATION_ERROR"},
		{ErrorTypeNotFound, "NOT_FOUND_ERROR"},
		{ErrorTypeAlreadyExists, "ALREADY_EXISTS_ERROR"},
		{ErrorTypeToken, "TOKEN_ERROR"},
		{ErrorTypeAuth, "AUTH_ERROR"},
		{ErrorTypeDatabase, "DATABASE_ERROR"},
		{ErrorTypeTransport, "TRANSPORT_ERROR"},
		{ErrorTypeConfiguration, "CONFIGURATION_ERROR"},
		{ErrorTypeUnexpected, "UNEXPECTED_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestTypePredicates_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("confirm subscription: %w", NewTokenError("unknown token"))

	assert.True(t, IsTokenError(wrapped))
	assert.False(t, IsAuthError(wrapped))
	assert.Equal(t, TokenError, TypeOf(wrapped))
}

func TestTypeOf_PlainError(t *testing.T) {
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(nil))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("bad")))
	assert.True(t, IsNotFoundError(NewNotFoundError("gone")))
	assert.True(t, IsAlreadyExistsError(NewAlreadyExistsError("dup")))
	assert.True(t, IsAuthError(NewAuthError("denied", nil)))
	assert.True(t, IsDatabaseError(NewDatabaseError("db", nil)))
	assert.True(t, IsTransportError(NewTransportError("net", nil)))
	assert.True(t, IsConfigurationError(NewConfigurationError("cfg", nil)))
	assert.False(t, IsDatabaseError(NewTransportError("net", nil)))
}
