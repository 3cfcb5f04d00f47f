package utils

import (
	"errors"
	"fmt"
)

var (
	ErrPlanNotFound      = errors.New("plan not found")
	ErrActivityNotFound  = errors.New("activity not found")
	ErrSessionNotFound   = errors.New("chat session not found")
	ErrSuggestionIndex   = errors.New("suggestion index out of range")
	ErrInvalidDateKey    = errors.New("invalid date (expected YYYY-MM-DD)")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrDateOutsideRange  = errors.New("date outside plan range")
	ErrEmptyActivityName = errors.New("activity name is required")
	ErrNotConfigured     = errors.New("missing api credential")
	ErrNoImagesFound     = errors.New("no images found")
)

// NotConfigured wraps ErrNotConfigured with the name of the missing
// environment variable so responses can name it the way the original
// endpoints did.
func NotConfigured(envVar string) error {
	return fmt.Errorf("missing %s: %w", envVar, ErrNotConfigured)
}

// UpstreamError carries the status and body of a failed third-party call for
// diagnostics. It surfaces as a generic "<service> failed" response with the
// upstream body attached as details.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed with status %d", e.Service, e.StatusCode)
}
