package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		code   string
		status int
	}{
		{"validation", Validation("bad input", nil), CodeValidation, http.StatusBadRequest},
		{"upstream", Upstream("remote failed", nil, nil), CodeUpstream, http.StatusBadGateway},
		{"database", Database("insert failed", errors.New("boom")), CodeDatabase, http.StatusInternalServerError},
		{"not found", NotFound("Review not found"), CodeNotFound, http.StatusNotFound},
		{"rate limited", RateLimited("15 minutes", nil), CodeRateLimited, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.Status)
		})
	}
}

func TestFromUnknownError(t *testing.T) {
	err := From(errors.New("something odd"))

	assert.Equal(t, CodeInternal, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	// message must not leak the cause
	assert.Equal(t, "An unexpected error occurred", err.Message)
}

func TestFromKeepsAppError(t *testing.T) {
	orig := NotFound("Review not found")
	wrapped := fmt.Errorf("get review: %w", orig)

	assert.Same(t, orig, From(wrapped))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Database("Failed to create review", cause)

	assert.ErrorIs(t, err, cause)
}

func TestRateLimitedDetails(t *testing.T) {
	err := RateLimited("15 minutes", map[string]any{"limit": "10 requests per 15 minutes"})

	assert.Equal(t, "15 minutes", err.Details["retryAfter"])
	assert.Equal(t, "10 requests per 15 minutes", err.Details["limit"])
}
