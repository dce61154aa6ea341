// Package ratelimit provides a token bucket throttle for outbound calls to
// the Slides API, keeping the client under the per-user quota.
package ratelimit

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"
)

// Config holds throttle configuration.
type Config struct {
	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64
	// Burst is the bucket capacity.
	Burst  int
	Logger *slog.Logger
}

// DefaultConfig returns the default throttle configuration. The Slides API
// per-user write quota is 60 requests per minute.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 1.0,
		Burst:             10,
		Logger:            slog.Default(),
	}
}

// Throttle is a thread-safe token bucket.
type Throttle struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64
	lastRefill time.Time
	logger     *slog.Logger
}

// New creates a throttle with the given configuration.
func New(config Config) *Throttle {
	if config.RequestsPerSecond <= 0 {
		config.RequestsPerSecond = 1.0
	}
	if config.Burst <= 0 {
		config.Burst = 10
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &Throttle{
		tokens:     float64(config.Burst),
		maxTokens:  float64(config.Burst),
		refillRate: config.RequestsPerSecond,
		lastRefill: time.Now(),
		logger:     config.Logger,
	}
}

// take consumes a token if one is available, otherwise reports how long
// until one will be.
func (t *Throttle) take() (ok bool, wait time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(t.lastRefill)
	t.tokens = math.Min(t.maxTokens, t.tokens+t.refillRate*elapsed.Seconds())
	t.lastRefill = now

	if t.tokens >= 1 {
		t.tokens--
		return true, 0
	}
	needed := 1 - t.tokens
	return false, time.Duration(needed / t.refillRate * float64(time.Second))
}

// Wait blocks until a token is available or ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	for {
		ok, wait := t.take()
		if ok {
			return nil
		}

		t.logger.Debug("throttling request", slog.Duration("wait", wait))
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Remaining returns the currently available tokens.
func (t *Throttle) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(t.lastRefill)
	t.tokens = math.Min(t.maxTokens, t.tokens+t.refillRate*elapsed.Seconds())
	t.lastRefill = now
	return int(t.tokens)
}
