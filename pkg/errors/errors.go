package errors

import (
	"fmt"
	"net/http"
)

// HTTPStatuser is implemented by errors that map to an HTTP status.
type HTTPStatuser interface {
	HTTPStatus() int
}

// ValidationError represents a malformed or invalid request payload.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// HTTPStatus returns the HTTP status for this error.
func (e *ValidationError) HTTPStatus() int { return http.StatusBadRequest }

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{Resource: resource, Message: message}
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status for this error.
func (e *NotFoundError) HTTPStatus() int { return http.StatusNotFound }

// ConflictError represents a uniqueness violation. It maps to 400
// rather than 409 to keep the service's public contract: a duplicate
// email is reported as a plain bad request.
type ConflictError struct {
	Resource string
	Message  string
}

// NewConflictError creates a new conflict error.
func NewConflictError(resource, message string) *ConflictError {
	return &ConflictError{Resource: resource, Message: message}
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// HTTPStatus returns the HTTP status for this error.
func (e *ConflictError) HTTPStatus() int { return http.StatusBadRequest }

// InternalError represents an unexpected storage or server failure.
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{Message: message, Err: err}
}

// Error implements the error interface.
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *InternalError) Unwrap() error { return e.Err }

// HTTPStatus returns the HTTP status for this error.
func (e *InternalError) HTTPStatus() int { return http.StatusInternalServerError }
