package fetch

import (
	"context"
	"math/rand/v2"
	"time"
)

// Default pacing bounds between requests to the same fetcher.
const (
	DefaultMinDelay = 500 * time.Millisecond
	DefaultMaxDelay = 2 * time.Second
)

// RateLimiter spaces requests by a random delay drawn from
// [min, max). Randomised pacing looks less mechanical to origin
// servers than a fixed interval.
type RateLimiter struct {
	min time.Duration
	max time.Duration
}

// NewRateLimiter creates a limiter with the given delay bounds.
// Non-positive bounds fall back to the defaults.
func NewRateLimiter(min, max time.Duration) *RateLimiter {
	if min <= 0 {
		min = DefaultMinDelay
	}
	if max <= min {
		max = min + time.Millisecond
	}
	return &RateLimiter{min: min, max: max}
}

// Wait blocks for the drawn delay or until the context is cancelled.
func (l *RateLimiter) Wait(ctx context.Context) error {
	delay := l.min + rand.N(l.max-l.min)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
