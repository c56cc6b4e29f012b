// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrNotFound indicates a requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrAmbiguous indicates a lookup matched more than one entity and
	// needs clarification from the user.
	ErrAmbiguous = errors.New("ambiguous reference")

	// ErrInvalidInput indicates user provided invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTimeout indicates an operation timed out.
	ErrTimeout = errors.New("operation timed out")

	// ErrContextCanceled indicates context was canceled.
	ErrContextCanceled = errors.New("context canceled")

	// ErrDelegateUnavailable indicates no generative backend could be
	// reached after all retries and fallbacks.
	ErrDelegateUnavailable = errors.New("delegate unavailable")

	// ErrEmptyCompletion indicates the backend answered but produced no
	// usable text.
	ErrEmptyCompletion = errors.New("empty completion")

	// ErrOutOfScope indicates the question was classified as unrelated
	// to the school.
	ErrOutOfScope = errors.New("question out of scope")
)

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsAmbiguous reports whether err is or wraps ErrAmbiguous.
func IsAmbiguous(err error) bool { return errors.Is(err, ErrAmbiguous) }

// IsInvalidInput reports whether err is or wraps ErrInvalidInput.
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsDelegateUnavailable reports whether err is or wraps ErrDelegateUnavailable.
func IsDelegateUnavailable(err error) bool { return errors.Is(err, ErrDelegateUnavailable) }

// IsOutOfScope reports whether err is or wraps ErrOutOfScope.
func IsOutOfScope(err error) bool { return errors.Is(err, ErrOutOfScope) }

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// DelegateError represents a failed call to a generative backend with
// context about the provider and endpoint involved.
type DelegateError struct {
	Provider   string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *DelegateError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("delegate error (provider=%s, endpoint=%s, status=%d): %v", e.Provider, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("delegate error (provider=%s, endpoint=%s): %v", e.Provider, e.Endpoint, e.Err)
}

func (e *DelegateError) Unwrap() error {
	return e.Err
}

// NewDelegateError creates a new delegate error.
func NewDelegateError(provider, endpoint string, statusCode int, err error) *DelegateError {
	return &DelegateError{
		Provider:   provider,
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Err:        err,
	}
}
