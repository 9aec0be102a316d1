package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes used in the response envelope
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeUpstream    = "API_ERROR"
	CodeDatabase    = "DATABASE_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeRateLimited = "RATE_LIMIT_EXCEEDED"
	CodeInternal    = "INTERNAL_ERROR"
)

// Error is the single error kind used across services and handlers.
// Code and Details end up in the JSON envelope; Status picks the HTTP
// status; Err keeps the underlying cause for logs only.
type Error struct {
	Code    string
	Message string
	Status  int
	Details map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a 400 error with a field -> message details map.
func Validation(message string, details map[string]any) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: message,
		Status:  http.StatusBadRequest,
		Details: details,
	}
}

// Upstream returns a 502 error for failed remote API calls.
func Upstream(message string, details map[string]any, cause error) *Error {
	return &Error{
		Code:    CodeUpstream,
		Message: message,
		Status:  http.StatusBadGateway,
		Details: details,
		Err:     cause,
	}
}

// Database wraps a store failure. The cause stays out of the envelope.
func Database(message string, cause error) *Error {
	return &Error{
		Code:    CodeDatabase,
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     cause,
	}
}

// NotFound marks an expected miss, never an internal failure.
func NotFound(message string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// RateLimited returns a 429 error with a retryAfter hint in details.
func RateLimited(retryAfter string, details map[string]any) *Error {
	if details == nil {
		details = map[string]any{}
	}
	details["retryAfter"] = retryAfter
	return &Error{
		Code:    CodeRateLimited,
		Message: "Too many requests. Please try again later.",
		Status:  http.StatusTooManyRequests,
		Details: details,
	}
}

// From extracts an *Error from err, or wraps unknown failures as a
// generic internal error so nothing leaks to clients.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{
		Code:    CodeInternal,
		Message: "An unexpected error occurred",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// IsNotFound reports whether err is a not-found outcome.
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == CodeNotFound
}
