package rmguide

import (
	"context"
	"errors"
	"fmt"
)

// Fetcher retrieves raw HTML for a single URL. Implementations perform one
// request attempt; retry and rate limiting are layered on top by the crawl
// package.
type Fetcher interface {
	// Fetch issues a GET for the URL and returns the response body.
	// Failures are reported as *FetchError so callers can distinguish
	// transient from permanent conditions.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// RateLimiter gates request issuance. A single limiter is shared by every
// fetch call site so the configured minimum delay holds between any two
// requests process-wide, not per worker.
type RateLimiter interface {
	// Wait blocks until the limiter allows the next request.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context) error
}

// FetchError is the typed failure returned by fetch operations. It records
// the URL, the last observed HTTP status (0 for transport errors), and how
// many attempts were made before giving up.
type FetchError struct {
	URL        string
	StatusCode int
	Attempts   int
	Exhausted  bool // true when the retry budget ran out
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("fetch %s: HTTP %d after %d attempt(s)", e.URL, e.StatusCode, e.Attempts)
	case e.Err != nil:
		return fmt.Sprintf("fetch %s: %v after %d attempt(s)", e.URL, e.Err, e.Attempts)
	default:
		return fmt.Sprintf("fetch %s failed after %d attempt(s)", e.URL, e.Attempts)
	}
}

// Unwrap returns the underlying transport error, if any.
func (e *FetchError) Unwrap() error { return e.Err }

// Transient reports whether the failure is worth retrying: HTTP 5xx,
// HTTP 429, or a transport-level error. Any other HTTP status is permanent.
func (e *FetchError) Transient() bool {
	if e.StatusCode == 0 {
		return true
	}
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// IsTransientFetchError reports whether err is a retryable fetch failure.
func IsTransientFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Transient()
}
