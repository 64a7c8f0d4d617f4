package crawl

import (
	"context"
	"errors"
	"time"

	"rmguide"
)

// BackoffFloor is the minimum wait before a retry. The wait doubles after
// each failed attempt.
const BackoffFloor = 1 * time.Second

// DefaultMaxAttempts is the total attempt budget for a fetch.
const DefaultMaxAttempts = 3

// FetchFunc is the signature of a single fetch attempt.
type FetchFunc func(ctx context.Context, url string) (string, error)

// BackoffDelays returns the wait schedule preceding each retry for the given
// total attempt budget: 1s, 2s, 4s, ... (doubling, floored at BackoffFloor).
func BackoffDelays(maxAttempts int) []time.Duration {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	delays := make([]time.Duration, 0, maxAttempts-1)
	d := BackoffFloor
	for i := 1; i < maxAttempts; i++ {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}

// retryState tracks the progress of a retrying fetch: how many attempts have
// been made, the last error observed, and the wait preceding the next
// attempt. Keeping it explicit makes the attempt/delay policy testable apart
// from the fetch loop.
type retryState struct {
	attempts int
	delays   []time.Duration
	lastErr  error
}

// record notes the outcome of one attempt.
func (s *retryState) record(err error) {
	s.attempts++
	s.lastErr = err
}

// next reports whether another attempt is allowed and, if so, how long to
// wait first. Permanent failures never retry.
func (s *retryState) next() (time.Duration, bool) {
	if s.lastErr == nil {
		return 0, false
	}
	if !rmguide.IsTransientFetchError(s.lastErr) {
		return 0, false
	}
	if s.attempts > len(s.delays) {
		return 0, false
	}
	return s.delays[s.attempts-1], true
}

// FetchWithRetry fetches a URL with exponential backoff on transient
// failures (HTTP 5xx, 429, transport errors). Permanent failures (other
// 4xx, malformed responses) return after a single attempt. The limiter, if
// non-nil, gates every attempt so retries count against the process-wide
// issuance rate. The returned error, when non-nil, is always a
// *rmguide.FetchError carrying the true attempt count.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, limiter rmguide.RateLimiter, delays []time.Duration) (string, error) {
	if delays == nil {
		delays = BackoffDelays(DefaultMaxAttempts)
	}
	state := &retryState{delays: delays}

	for {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return "", &rmguide.FetchError{URL: url, Attempts: state.attempts, Err: err}
			}
		}

		html, err := fetch(ctx, url)
		state.record(asFetchError(url, err))
		if err == nil {
			return html, nil
		}

		delay, retry := state.next()
		if !retry {
			break
		}

		select {
		case <-ctx.Done():
			return "", &rmguide.FetchError{URL: url, Attempts: state.attempts, Err: ctx.Err()}
		case <-time.After(delay):
		}
	}

	fe := finalError(url, state)
	return "", fe
}

// asFetchError normalizes any attempt error into a *rmguide.FetchError.
// Plain transport errors classify as transient.
func asFetchError(url string, err error) error {
	if err == nil {
		return nil
	}
	var fe *rmguide.FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return &rmguide.FetchError{URL: url, Attempts: 1, Err: err}
}

// finalError builds the typed failure returned after the loop gives up.
func finalError(url string, state *retryState) *rmguide.FetchError {
	var fe *rmguide.FetchError
	if !errors.As(state.lastErr, &fe) {
		fe = &rmguide.FetchError{URL: url, Err: state.lastErr}
	}
	out := *fe
	out.URL = url
	out.Attempts = state.attempts
	out.Exhausted = out.Transient() && state.attempts > len(state.delays)
	return &out
}
