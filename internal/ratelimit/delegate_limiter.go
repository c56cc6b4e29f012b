package ratelimit

import (
	"time"

	"github.com/cadubot/cadu-go/internal/metrics"
)

// DelegateLimiter caps generative backend usage per client. Completions
// are orders of magnitude more expensive than rule-based answers, so
// they get their own quota: an hourly token bucket plus a rolling daily
// cap, independent of the endpoint limiter.
type DelegateLimiter struct {
	kl         *KeyedLimiter
	maxPerHour float64
}

// NewDelegateLimiter creates a delegate quota limiter.
// maxPerHour bounds sustained usage; maxPerDay of 0 disables the daily
// cap. Call Stop when done.
func NewDelegateLimiter(maxPerHour float64, maxPerDay int, cleanup time.Duration, m *metrics.Metrics) *DelegateLimiter {
	return &DelegateLimiter{
		maxPerHour: maxPerHour,
		kl: NewKeyedLimiter(KeyedConfig{
			Name:          "delegate",
			Burst:         maxPerHour,
			RefillRate:    maxPerHour / 3600.0,
			DailyLimit:    maxPerDay,
			CleanupPeriod: cleanup,
			Metrics:       m,
		}),
	}
}

// Allow reports whether a generative call for the client is within
// quota, consuming from it when it is. An empty client key is allowed.
func (dl *DelegateLimiter) Allow(clientIP string) bool {
	return dl.kl.Allow(clientIP)
}

// GetAvailable returns the remaining hourly tokens for a client.
func (dl *DelegateLimiter) GetAvailable(clientIP string) float64 {
	if clientIP == "" {
		return dl.maxPerHour
	}
	return dl.kl.GetAvailable(clientIP)
}

// GetDailyRemaining returns the remaining daily quota for a client, or
// -1 when the daily cap is disabled.
func (dl *DelegateLimiter) GetDailyRemaining(clientIP string) int {
	return dl.kl.GetDailyRemaining(clientIP)
}

// ActiveClients returns the number of clients with live quota state.
func (dl *DelegateLimiter) ActiveClients() int {
	return dl.kl.GetActiveCount()
}

// Stop releases the cleanup goroutine. Safe to call multiple times.
func (dl *DelegateLimiter) Stop() {
	dl.kl.Stop()
}
