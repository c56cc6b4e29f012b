package delegate

import (
	"context"
	"crypto/rand"
	"math"
	"math/big"
	"time"
)

// backoff returns the delay before retry number attempt using the AWS
// Full Jitter scheme: random(0, min(max, initial * 2^(attempt-1))).
func backoff(attempt int, initial, max time.Duration) time.Duration {
	if attempt <= 0 {
		return 0
	}

	exp := math.Pow(2, float64(attempt-1))
	delay := time.Duration(float64(initial) * exp)
	if delay > max {
		delay = max
	}
	if delay <= 0 {
		return 0
	}

	// crypto/rand keeps the jitter distribution uniform and unbiased.
	jitter, err := rand.Int(rand.Reader, big.NewInt(int64(delay)))
	if err != nil {
		return delay / 2
	}
	return time.Duration(jitter.Int64())
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// withRetry runs fn up to maxAttempts times with jittered exponential
// backoff. Permanent errors and context cancellation stop the loop early.
func withRetry(ctx context.Context, maxAttempts int, initial time.Duration, fn func() error) error {
	const maxDelay = 3 * time.Second

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if isPermanent(err) {
			return err
		}
		if attempt == maxAttempts-1 {
			break
		}
		if err := sleep(ctx, backoff(attempt+1, initial, maxDelay)); err != nil {
			return err
		}
	}
	return lastErr
}
