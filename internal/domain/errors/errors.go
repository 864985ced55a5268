package errors

import (
	"net/http"
	"strings"

	"medreminder/internal/errors"
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
	// Customer-related errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Username or password incorrect",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"No user logged in",
		"",
	)

	// Prescription-related errors
	ErrPrescriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"PRESCRIPTION_NOT_FOUND",
		"Prescription not found",
		"",
	)

	ErrPrescriptionOwnership = NewBaseError(
		http.StatusForbidden,
		"PRESCRIPTION_OWNERSHIP_VIOLATION",
		"You do not have access to this prescription",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Reminder not found or already answered",
		"",
	)

	ErrUnknownForm = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_FORM",
		"Unknown form",
		"",
	)

	// General errors
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Request body could not be parsed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// ValidationError carries every message accumulated by a failed validation attempt.
type ValidationError struct {
	messages []string
}

// NewValidationError creates a validation error from the accumulated messages.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{messages: append([]string(nil), messages...)}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.messages, "; ")
}

// Messages returns the human-readable failure messages in the order they were raised.
func (e *ValidationError) Messages() []string {
	return append([]string(nil), e.messages...)
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Input validation failed"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return strings.Join(e.messages, "\n")
}

// PersistenceError represents a failure to write a collection to durable storage.
type PersistenceError struct {
	err        error
	collection string
}

// NewPersistenceError wraps a storage failure for the named collection.
func NewPersistenceError(err error, collection string) AppError {
	return &PersistenceError{
		err:        err,
		collection: collection,
	}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return errors.Wrapf(e.err, "persist %s failed", e.collection).Error()
}

// Unwrap exposes the storage cause.
func (e *PersistenceError) Unwrap() error {
	return e.err
}

// Collection names the collection that could not be written.
func (e *PersistenceError) Collection() string {
	return e.collection
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return "PERSISTENCE_FAILED"
}

// Message returns the user-friendly error message
func (e *PersistenceError) Message() string {
	return "Saving data failed"
}

// Details returns detailed error information
func (e *PersistenceError) Details() string {
	return e.collection
}
