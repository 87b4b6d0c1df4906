package retry

import (
	"context"
	"time"
)

// Policy retries an operation with exponential backoff. It is a plain value
// applied at the call site of each external collaborator invocation; the
// caller supplies the transient-error predicate.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

// DefaultPolicy suits the external geocoding/routing calls: a handful of
// attempts with second-scale backoff.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: 3, BaseDelay: time.Second, Multiplier: 2}
}

// Do runs op until it succeeds, returns a non-retryable error, exhausts the
// attempt budget, or the context is cancelled. A timed-out call counts as
// one failed attempt. The last error is returned unwrapped so callers can
// classify it.
func (p Policy) Do(ctx context.Context, retryable func(error) bool, op func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	delay := p.BaseDelay
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		if retryable == nil || !retryable(lastErr) || attempt == attempts {
			return lastErr
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * p.Multiplier)
	}

	return lastErr
}
