package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"google.golang.org/api/googleapi"
)

// Fixed error taxonomy every provider call maps into. Callers never see
// raw googleapi errors.
var (
	// ErrUnauthorized means the provider rejected the access token.
	// Callers should refresh the token once and retry.
	ErrUnauthorized = errors.New("provider rejected access token")

	// ErrRateLimited means the provider throttled the call. Use
	// errors.As with *RateLimitedError to read the retry-after hint.
	ErrRateLimited = errors.New("provider rate limited")

	// ErrNotFound means the calendar or event does not exist.
	ErrNotFound = errors.New("calendar or event not found")

	// ErrProviderUnavailable covers 5xx responses and timeouts.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// RateLimitedError carries the provider's Retry-After hint.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("provider rate limited, retry after %s", e.RetryAfter)
}

func (e *RateLimitedError) Unwrap() error { return ErrRateLimited }

// mapError translates a googleapi / transport error into the taxonomy.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 401:
			return ErrUnauthorized
		case apiErr.Code == 404:
			return ErrNotFound
		case apiErr.Code == 429 || isQuotaDenied(apiErr):
			return &RateLimitedError{RetryAfter: retryAfter(apiErr)}
		case apiErr.Code >= 500:
			return ErrProviderUnavailable
		default:
			// 400-class input errors the client did not shape correctly.
			return fmt.Errorf("provider error %d: %w", apiErr.Code, ErrProviderUnavailable)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrProviderUnavailable
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrProviderUnavailable
	}

	return fmt.Errorf("%w: %v", ErrProviderUnavailable, errClass(err))
}

// errClass strips provider response bodies so they cannot leak upward.
func errClass(err error) string {
	const max = 120
	msg := err.Error()
	if len(msg) > max {
		msg = msg[:max]
	}
	return msg
}

// isQuotaDenied detects rate-limit errors Google reports as 403.
func isQuotaDenied(apiErr *googleapi.Error) bool {
	if apiErr.Code != 403 {
		return false
	}
	for _, item := range apiErr.Errors {
		switch item.Reason {
		case "rateLimitExceeded", "userRateLimitExceeded", "quotaExceeded":
			return true
		}
	}
	return false
}

func retryAfter(apiErr *googleapi.Error) time.Duration {
	if apiErr.Header == nil {
		return 0
	}
	if v := apiErr.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 0
}
