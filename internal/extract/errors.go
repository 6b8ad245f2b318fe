package extract

import (
	"fmt"
	"strconv"
	"time"
)

// defaultRetryAfter is used when a 429 response carries no usable
// Retry-After header.
const defaultRetryAfter = 60 * time.Second

// RateLimitError signals an inference provider returned HTTP 429. The
// fallback chain treats it as a circuit-open condition for the provider
// rather than a plain failure.
type RateLimitError struct {
	Err        error
	RetryAfter time.Duration
	Provider   string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError wraps err with the provider's requested backoff.
// A non-positive retryAfterSecs falls back to defaultRetryAfter.
func NewRateLimitError(provider string, err error, retryAfterSecs int) *RateLimitError {
	retryAfter := defaultRetryAfter
	if retryAfterSecs > 0 {
		retryAfter = time.Duration(retryAfterSecs) * time.Second
	}
	return &RateLimitError{
		Err:        err,
		RetryAfter: retryAfter,
		Provider:   provider,
	}
}

// ParseRetryAfterHeader reads a Retry-After header value as seconds.
// Empty or non-integer values (the HTTP-date form included) yield 0.
func ParseRetryAfterHeader(val string) int {
	if val == "" {
		return 0
	}
	secs, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return secs
}
