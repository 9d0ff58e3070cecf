// Package ratelimit throttles repeated attempts at an operation, keyed
// by an arbitrary string. Counts live in a pluggable AttemptStore so
// callers can choose in-process or persisted tracking.
package ratelimit

import (
	"time"

	"timeclock/internal/errors"
)

const (
	// DefaultWindow is how long attempts are counted before the key resets.
	DefaultWindow = 15 * time.Minute

	// DefaultMaxAttempts is the number of attempts allowed per window.
	DefaultMaxAttempts = 5
)

// AttemptStore records attempts per key. Increment adds one attempt
// and returns the total within the current window. The window runs
// from the first attempt; later attempts must not extend it.
type AttemptStore interface {
	Increment(key string, window time.Duration) (int, error)
}

// Limiter enforces a max-attempts-per-window policy over an AttemptStore.
type Limiter struct {
	store       AttemptStore
	window      time.Duration
	maxAttempts int
}

// New creates a Limiter with the default window and attempt budget.
func New(store AttemptStore) *Limiter {
	return NewWithPolicy(store, DefaultWindow, DefaultMaxAttempts)
}

// NewWithPolicy creates a Limiter with an explicit window and attempt budget.
func NewWithPolicy(store AttemptStore, window time.Duration, maxAttempts int) *Limiter {
	return &Limiter{
		store:       store,
		window:      window,
		maxAttempts: maxAttempts,
	}
}

// Check records an attempt for the key and returns a rate-limited error
// once the attempt budget for the window is exhausted.
func (l *Limiter) Check(key string) error {
	count, err := l.store.Increment(key, l.window)
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeDatabase, "record rate limit attempt")
	}
	if count > l.maxAttempts {
		return errors.NewRateLimitedError(key)
	}
	return nil
}
