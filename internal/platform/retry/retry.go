// Package retry bounds transient-failure retries with exponential
// backoff and full jitter.
package retry

import (
	"context"
	"math/rand/v2"
	"time"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 200 * time.Millisecond
)

// Policy describes how often and how patiently an operation is retried.
// The zero value retries nothing; use Default for the standard policy.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration

	// OnRetry is called after a failed attempt that will be retried,
	// before the backoff sleep. attempt starts at 0.
	OnRetry func(attempt int, err error)
}

func Default() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, BaseDelay: DefaultBaseDelay}
}

// Do runs op until it succeeds or MaxAttempts attempts are exhausted,
// respecting context cancellation. Before retry k it sleeps a random
// duration drawn uniformly from [0, BaseDelay * 2^k). After the final
// attempt the last error is returned; there is no further retry.
func (p Policy) Do(ctx context.Context, op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = op()
		if lastErr == nil {
			return nil
		}

		if attempt == attempts-1 {
			break
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, lastErr)
		}

		if err := p.sleep(ctx, attempt); err != nil {
			return err
		}
	}

	return lastErr
}

func (p Policy) sleep(ctx context.Context, attempt int) error {
	ceil := p.BaseDelay << uint(attempt)
	if ceil <= 0 {
		return nil
	}

	timer := time.NewTimer(time.Duration(rand.Int64N(int64(ceil))))
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
	}

	return nil
}
