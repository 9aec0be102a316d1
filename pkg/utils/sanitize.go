package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict policy: no tags, no attributes, text content kept
var sanitizePolicy = bluemonday.StrictPolicy()

// SanitizeInput strips all markup from untrusted text, keeping the text
// content and line breaks. Returns nil for nil or empty input so empty
// comments are stored as NULL. Never fails on malformed markup.
func SanitizeInput(input *string) *string {
	if input == nil || *input == "" {
		return nil
	}

	// The policy escapes entities in its output; unescape to store
	// plain text rather than HTML-encoded text.
	clean := html.UnescapeString(sanitizePolicy.Sanitize(*input))
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return nil
	}

	return &clean
}
