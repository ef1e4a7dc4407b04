package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface enables extensible error handling (OCP compliance).
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string   { return e.Message }
func (e *ValidationError) Error() string { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int   { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Sentinel errors for backwards compatibility - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrNoConverters = errors.New("no converters available")
)

// ConverterNotFoundError is returned when a caller requests a converter
// identifier that was never registered or failed to load. The message
// enumerates the identifiers that are currently usable.
type ConverterNotFoundError struct {
	ID        string
	Available []string
}

// Error implements the error interface
func (e *ConverterNotFoundError) Error() string {
	return fmt.Sprintf("converter '%s' not available. Available converters: %s",
		e.ID, strings.Join(e.Available, ", "))
}

// StatusCode implements the HTTPError interface
func (e *ConverterNotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// Is allows errors.Is() to match against ErrNotFound
func (e *ConverterNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NoConvertersAvailableError is returned only when the entire available set
// is empty after a full file-based search.
type NoConvertersAvailableError struct{}

// Error implements the error interface
func (e *NoConvertersAvailableError) Error() string {
	return "no converters available"
}

// StatusCode implements the HTTPError interface
func (e *NoConvertersAvailableError) StatusCode() int {
	return http.StatusServiceUnavailable
}

// Is allows errors.Is() to match against ErrNoConverters
func (e *NoConvertersAvailableError) Is(target error) bool {
	return target == ErrNoConverters
}
