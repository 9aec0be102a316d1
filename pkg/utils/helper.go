package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseLimit parses a page-size parameter, clamped to [1,100]
func ParseLimit(value string, defaultValue int) int {
	result := ParseInt(value, defaultValue)
	if result > 100 {
		return 100
	}
	return result
}
