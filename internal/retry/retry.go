// Package retry provides exponential backoff with jitter for outbound
// Slides API calls that fail with transient HTTP errors.
package retry

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"
)

// ErrExhausted is returned when every attempt has failed.
var ErrExhausted = errors.New("retry attempts exhausted")

// Policy holds retry configuration.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration
	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration
	// Jitter is the randomization factor in [0, 1] applied to each delay.
	Jitter float64
	Logger *slog.Logger
}

// DefaultPolicy returns the default retry policy.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 4,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    8 * time.Second,
		Jitter:      0.2,
		Logger:      slog.Default(),
	}
}

// Retryable reports whether an HTTP status code is worth retrying.
func Retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Delay returns the backoff delay for a retry. The first retry is attempt 1.
func (p Policy) Delay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	d := float64(p.BaseDelay)
	for i := 1; i < attempt; i++ {
		d *= 2
	}
	if d > float64(p.MaxDelay) {
		d = float64(p.MaxDelay)
	}
	if p.Jitter > 0 {
		span := d * p.Jitter
		d += rand.Float64()*2*span - span
	}
	if d < float64(time.Millisecond) {
		d = float64(time.Millisecond)
	}
	return time.Duration(d)
}

// Op is one attempt of an HTTP operation. It reports the response status
// code (0 when no response was received) and an error.
type Op func(ctx context.Context) (status int, err error)

// Do runs op until it succeeds, fails with a non-retryable status, or the
// policy is exhausted.
func (p Policy) Do(ctx context.Context, op Op) error {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		status, err := op(ctx)
		if err == nil {
			if attempt > 1 {
				logger.Info("request succeeded after retry", slog.Int("attempts", attempt))
			}
			return nil
		}
		lastErr = err

		if !Retryable(status) {
			return err
		}
		if attempt == p.MaxAttempts {
			break
		}

		delay := p.Delay(attempt)
		logger.Warn("retrying request",
			slog.Int("attempt", attempt),
			slog.Int("status", status),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return errors.Join(ErrExhausted, lastErr)
}
