package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the flight offer service.
var (
	// ErrInvalidRequest indicates the request failed validation
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSearchFailed indicates the flight search provider could not return offers
	ErrSearchFailed = errors.New("flight offer search failed")

	// ErrProviderTimeout indicates the provider did not respond in time
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderUnavailable indicates the provider is not reachable or not configured
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrProviderNotFound indicates no provider is registered under the requested name
	ErrProviderNotFound = errors.New("provider not found")
)

// ProviderError wraps an error returned by a flight search provider.
type ProviderError struct {
	// Provider is the name of the provider that failed
	Provider string

	// Err is the underlying error
	Err error

	// Retryable reports whether the call may succeed if repeated
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable provider error.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a provider error that may be retried.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// NewProviderTimeoutError creates a retryable timeout error for the provider.
func NewProviderTimeoutError(provider string) *ProviderError {
	return NewRetryableProviderError(provider, ErrProviderTimeout)
}

// NewProviderUnavailableError creates a retryable unavailability error for the provider.
func NewProviderUnavailableError(provider string) *ProviderError {
	return NewRetryableProviderError(provider, ErrProviderUnavailable)
}

// IsRetryable reports whether err is a ProviderError marked as retryable.
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap makes every ValidationError match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest formats a message and wraps it with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsSearchFailed reports whether err wraps ErrSearchFailed.
func IsSearchFailed(err error) bool {
	return errors.Is(err, ErrSearchFailed)
}

// IsProviderTimeout reports whether err wraps ErrProviderTimeout.
func IsProviderTimeout(err error) bool {
	return errors.Is(err, ErrProviderTimeout)
}

// IsProviderUnavailable reports whether err wraps ErrProviderUnavailable.
func IsProviderUnavailable(err error) bool {
	return errors.Is(err, ErrProviderUnavailable)
}
