package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to business rules and validation
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeAlreadyExists
	ErrorTypeToken
	ErrorTypeAuth

	// Infrastructure Errors - errors related to external systems and services
	ErrorTypeDatabase
	ErrorTypeTransport

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
	ErrorTypeUnexpected
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeAlreadyExists:
		return "ALREADY_EXISTS_ERROR"
	case ErrorTypeToken:
		return "TOKEN_ERROR"
	case ErrorTypeAuth:
		return "AUTH_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeTransport:
		return "TRANSPORT_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	case ErrorTypeUnexpected:
		return "UNEXPECTED_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across adapters and tests
const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	AlreadyExistsError = ErrorTypeAlreadyExists
	TokenError         = ErrorTypeToken
	AuthError          = ErrorTypeAuth
	DatabaseError      = ErrorTypeDatabase
	TransportError     = ErrorTypeTransport
	ConfigurationError = ErrorTypeConfiguration
	UnexpectedError    = ErrorTypeUnexpected
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewAlreadyExistsError(message string) *AppError {
	return New(AlreadyExistsError, message)
}

func NewTokenError(message string) *AppError {
	return New(TokenError, message)
}

func NewAuthError(message string, cause error) *AppError {
	return Wrap(AuthError, message, cause)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewTransportError(message string, cause error) *AppError {
	return Wrap(TransportError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

func NewUnexpectedError(message string, cause error) *AppError {
	return Wrap(UnexpectedError, message, cause)
}

// TypeOf returns the type of the first AppError in the chain, or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsTokenError(err error) bool {
	return TypeOf(err) == TokenError
}

func IsAuthError(err error) bool {
	return TypeOf(err) == AuthError
}

func IsAlreadyExistsError(err error) bool {
	return TypeOf(err) == AlreadyExistsError
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsDatabaseError(err error) bool {
	return TypeOf(err) == DatabaseError
}

func IsTransportError(err error) bool {
	return TypeOf(err) == TransportError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
