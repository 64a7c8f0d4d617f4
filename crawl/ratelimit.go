package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"rmguide"
)

var _ rmguide.RateLimiter = (*Limiter)(nil)

// Limiter enforces a minimum delay between request issuances using a token
// bucket with a burst of 1. A single Limiter is shared by every fetch call
// site in a run, so the delay holds process-wide regardless of how many
// workers are in flight. rate.Limiter is safe for concurrent use.
type Limiter struct {
	lim *rate.Limiter
}

// NewLimiter creates a Limiter with the given minimum inter-request delay.
// A non-positive delay disables limiting.
func NewLimiter(minDelay time.Duration) *Limiter {
	if minDelay <= 0 {
		return &Limiter{lim: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Limiter{lim: rate.NewLimiter(rate.Every(minDelay), 1)}
}

// Wait blocks until the limiter allows the next request issuance.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.lim.Wait(ctx)
}
