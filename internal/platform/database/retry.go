package database

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// retryPolicy mirrors config.RetryConfig with unexported fields.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// pinger is the subset of *sql.DB used to verify connectivity.
type pinger interface {
	PingContext(ctx context.Context) error
}

// pingWithRetry pings until success, a non-retryable error, or the attempt
// budget runs out. The last ping error is returned.
func pingWithRetry(ctx context.Context, p pinger, policy retryPolicy, logger *slog.Logger) error {
	if policy.maxAttempts <= 0 {
		return fmt.Errorf("maxAttempts must be >= 1, got %d", policy.maxAttempts)
	}

	var lastErr error

	for attempt := range policy.maxAttempts {
		if attempt > 0 {
			delay := backoff(attempt, policy)

			logger.WarnContext(ctx, "retrying database ping",
				slog.String("operation", "database.Open"),
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", policy.maxAttempts),
				slog.Duration("backoff", delay),
				slog.Any("error", lastErr),
			)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		lastErr = p.PingContext(ctx)
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func backoff(attempt int, policy retryPolicy) time.Duration {
	delay := float64(policy.initialInterval) * math.Pow(policy.multiplier, float64(attempt-1))

	if delay > float64(policy.maxInterval) {
		delay = float64(policy.maxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a ping error is worth another attempt.
// Cancellation and deadline errors end the loop.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
