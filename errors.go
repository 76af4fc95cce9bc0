package songlink

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrNoConnections indicates a configuration that leaves the client
	// without any egress path.
	ErrNoConnections = errors.New("no connections specified")

	// ErrTooManyRequests is returned when every connection is cooling down
	// or the API explicitly signaled rate limiting.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrEntityNotFound is returned when the API could not resolve the
	// requested entity.
	ErrEntityNotFound = errors.New("entity not found")
)

// APIError represents an unrecognized song.link API failure
type APIError struct {
	StatusCode int
	Code       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("songlink API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("songlink API error: status %d: %s", e.StatusCode, e.Code)
}

// IsRateLimited checks if the error indicates upstream rate limiting
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}
