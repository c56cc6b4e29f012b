// Package config provides centralized timeout constants for the application.
//
// These values are tuned for a locally hosted LM Studio backend:
//   - Local inference on CPU can take tens of seconds per completion
//   - The HTTP chat endpoint must stay responsive while inference runs
//   - SQLite in WAL mode needs a generous busy timeout under write load
package config

import "time"

// Chat handling timeouts
const (
	// ChatProcessing is the timeout for answering a single chat message.
	// Covers classification, lookups and, in the worst case, a full
	// delegate round trip with retries.
	ChatProcessing = 90 * time.Second

	// ChatHTTPRead is the HTTP server read timeout for chat requests.
	// Payloads are small JSON bodies.
	ChatHTTPRead = 10 * time.Second

	// ChatHTTPWrite is the HTTP server write timeout.
	// Should accommodate ChatProcessing + response serialization.
	ChatHTTPWrite = 95 * time.Second

	// ChatHTTPIdle is the HTTP server idle timeout for keep-alive connections.
	ChatHTTPIdle = 120 * time.Second
)

// Delegate timeouts
const (
	// DelegateRequest is the timeout for a single completion request to
	// the local backend. Local models can be slow on long prompts.
	DelegateRequest = 60 * time.Second

	// DelegateRetryInitial is the initial delay before retrying a failed
	// completion. Uses full-jitter exponential backoff.
	DelegateRetryInitial = 1 * time.Second

	// DelegateRetryMax caps the backoff between retries.
	DelegateRetryMax = 8 * time.Second
)

// Background job intervals
const (
	// WarmupReadyTimeout is how long the readiness probe waits for the
	// startup cache warmup before reporting ready anyway.
	WarmupReadyTimeout = 2 * time.Minute


	// MetricsUpdateInterval is how often the cache size gauge is updated.
	MetricsUpdateInterval = 5 * time.Minute

	// RateLimiterCleanupInterval is how often inactive client rate
	// limiters are cleaned.
	RateLimiterCleanupInterval = 5 * time.Minute
)

// Delegate quota defaults
const (
	// DelegateQuotaPerHour caps generative calls per client per hour.
	DelegateQuotaPerHour = 30

	// DelegateQuotaPerDay caps generative calls per client per rolling day.
	DelegateQuotaPerDay = 200
)
