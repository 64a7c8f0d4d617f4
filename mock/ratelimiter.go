package mock

import (
	"context"

	"rmguide"
)

var _ rmguide.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of rmguide.RateLimiter.
// A zero RateLimiter never waits.
type RateLimiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *RateLimiter) Wait(ctx context.Context) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx)
}
