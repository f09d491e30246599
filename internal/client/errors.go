package client

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotTaken is the backend's authoritative rejection of a
	// reservation whose slot was taken concurrently.
	ErrSlotTaken = errors.New("slot already taken")
	// ErrUnauthorized covers missing or rejected bearer tokens.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	// ErrBackendUnavailable covers transport failures, 5xx responses and
	// an open circuit breaker. Always retryable, never retried silently.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrNoToken means administrator-scoped calls were attempted without a
	// configured token; a hard precondition failure, not a network error.
	ErrNoToken = errors.New("admin token not configured")
)

// APIError carries a non-2xx backend response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.Status == 409:
		return ErrSlotTaken
	case e.Status == 401 || e.Status == 403:
		return ErrUnauthorized
	case e.Status == 404:
		return ErrNotFound
	case e.Status >= 500:
		return ErrBackendUnavailable
	}
	return nil
}

// IsRetryable reports whether the failed operation may be retried by the
// user. There is no automatic retry policy: callers surface a retry
// affordance instead.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 500
	}
	return errors.Is(err, ErrBackendUnavailable)
}
