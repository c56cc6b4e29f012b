package ratelimit

import (
	"time"

	"github.com/cadubot/cadu-go/internal/metrics"
)

// ChatLimiter guards the chat endpoint with a global bucket plus a
// per-client-IP bucket. The global bucket protects the process, the
// per-client bucket keeps one chatty client from starving the rest.
type ChatLimiter struct {
	global    *Limiter
	perClient *PerKeyLimiter
	metrics   *metrics.Metrics
}

// ChatLimiterConfig configures a ChatLimiter.
type ChatLimiterConfig struct {
	GlobalRPS float64 // Requests per second across all clients

	ClientBurst  float64 // Per-client burst capacity
	ClientRefill float64 // Per-client tokens per second

	CleanupPeriod time.Duration // Inactive client cleanup interval

	Metrics *metrics.Metrics
}

// NewChatLimiter creates the endpoint limiter. Call Stop when done.
func NewChatLimiter(cfg ChatLimiterConfig) *ChatLimiter {
	cl := &ChatLimiter{
		global: New(cfg.GlobalRPS, cfg.GlobalRPS),
		perClient: NewPerKeyLimiter(PerKeyLimiterConfig{
			MaxTokens:     cfg.ClientBurst,
			RefillRate:    cfg.ClientRefill,
			CleanupPeriod: cfg.CleanupPeriod,
		}),
		metrics: cfg.Metrics,
	}

	if cfg.Metrics != nil {
		cl.perClient.OnDrop(func() {
			cfg.Metrics.RecordRateLimiterDrop("per_ip")
		})
		cl.perClient.OnUpdate(func(count int) {
			cfg.Metrics.SetRateLimiterClients("per_ip", count)
		})
	}

	return cl
}

// Allow reports whether a request from the given client IP may proceed.
// The global bucket is checked first so a flood trips it before the
// per-client buckets accumulate state.
func (cl *ChatLimiter) Allow(clientIP string) bool {
	if !cl.global.Allow() {
		if cl.metrics != nil {
			cl.metrics.RecordRateLimiterDrop("global")
		}
		return false
	}
	return cl.perClient.Allow(clientIP)
}

// ActiveClients returns the number of clients with live limiter state.
func (cl *ChatLimiter) ActiveClients() int {
	return cl.perClient.GetActiveCount()
}

// Stop releases the cleanup goroutine. Safe to call multiple times.
func (cl *ChatLimiter) Stop() {
	cl.perClient.Stop()
}
