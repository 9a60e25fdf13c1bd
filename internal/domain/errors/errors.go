// Package errors defines application-level error types shared across layers.
package errors

import (
	"net/http"

	"wakeup/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Alarm-related errors
	ErrAlarmNotFound = NewBaseError(
		http.StatusNotFound,
		"ALARM_NOT_FOUND",
		"Alarm not found",
		"",
	)

	ErrAlarmCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ALARM_CREATION_FAILED",
		"Failed to create alarm",
		"",
	)

	ErrAlarmUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ALARM_UPDATE_FAILED",
		"Failed to update alarm",
		"",
	)

	ErrInvalidAlarmTime = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ALARM_TIME",
		"Alarm time is out of range",
		"",
	)

	// Challenge-related errors
	ErrChallengeNotFound = NewBaseError(
		http.StatusNotFound,
		"CHALLENGE_NOT_FOUND",
		"Challenge not found",
		"",
	)

	ErrChallengeAlreadyResolved = NewBaseError(
		http.StatusConflict,
		"CHALLENGE_ALREADY_RESOLVED",
		"Challenge has already reached a terminal status",
		"",
	)

	ErrChallengeWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"CHALLENGE_WRITE_FAILED",
		"Failed to persist challenge record",
		"",
	)

	ErrNoActiveSession = NewBaseError(
		http.StatusNotFound,
		"NO_ACTIVE_SESSION",
		"No active challenge session",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrDeviceRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"DEVICE_REGISTRATION_FAILED",
		"Failed to register device",
		"",
	)

	// Generic database error
	ErrDatabaseExecute = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_ERROR",
		"Database operation failed",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error with context while
// keeping the generic database AppError in the chain.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(ErrDatabaseExecute.WithDetails(err.Error()), message)
}
