package ratelimit

import (
	"sync"
	"time"

	"github.com/cadubot/cadu-go/internal/metrics"
)

// KeyedConfig configures a KeyedLimiter instance.
type KeyedConfig struct {
	// Name identifies this limiter in metrics (e.g., "delegate").
	Name string

	// Token bucket settings.
	Burst      float64 // Maximum tokens (burst capacity)
	RefillRate float64 // Tokens refilled per second

	// Optional rolling 24h limit (0 = disabled).
	DailyLimit int

	// CleanupPeriod is how often inactive limiters are removed.
	CleanupPeriod time.Duration

	// Optional metrics reporter.
	Metrics *metrics.Metrics
}

// KeyedLimiter tracks rate limits per key with an optional daily cap on
// top of the token bucket. Each key gets independent state; inactive
// keys are cleaned up in the background.
type KeyedLimiter struct {
	mu       sync.RWMutex
	entries  map[string]*keyedEntry
	config   KeyedConfig
	onDrop   func()
	onUpdate func(count int)
	stopCh   chan struct{}
}

// keyedEntry holds per-key state. The mutex makes the bucket-plus-daily
// check-then-consume atomic.
type keyedEntry struct {
	mu      sync.Mutex
	limiter *Limiter
	daily   *SlidingWindowCounter
}

// NewKeyedLimiter creates a per-key limiter with an optional daily cap.
// Call Stop when done to release the cleanup goroutine.
func NewKeyedLimiter(cfg KeyedConfig) *KeyedLimiter {
	kl := &KeyedLimiter{
		entries: make(map[string]*keyedEntry),
		config:  cfg,
		stopCh:  make(chan struct{}),
	}

	if cfg.Metrics != nil {
		kl.onDrop = func() {
			cfg.Metrics.RecordRateLimiterDrop(cfg.Name)
		}
		kl.onUpdate = func(count int) {
			cfg.Metrics.SetRateLimiterClients(cfg.Name, count)
		}
	}

	go kl.cleanupLoop()

	return kl
}

// Allow reports whether a request for the given key is allowed,
// consuming from both the bucket and the daily window when it is.
// An empty key is always allowed.
func (kl *KeyedLimiter) Allow(key string) bool {
	if key == "" {
		return true
	}

	entry := kl.getOrCreateEntry(key)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.daily != nil && !entry.daily.Check() {
		if kl.onDrop != nil {
			kl.onDrop()
		}
		return false
	}

	if !entry.limiter.Check() {
		if kl.onDrop != nil {
			kl.onDrop()
		}
		return false
	}

	if entry.daily != nil {
		entry.daily.Consume()
	}
	entry.limiter.Consume()

	return true
}

func (kl *KeyedLimiter) getOrCreateEntry(key string) *keyedEntry {
	kl.mu.RLock()
	entry, exists := kl.entries[key]
	kl.mu.RUnlock()

	if exists {
		return entry
	}

	kl.mu.Lock()
	defer kl.mu.Unlock()

	entry, exists = kl.entries[key]
	if exists {
		return entry
	}

	entry = &keyedEntry{
		limiter: New(kl.config.Burst, kl.config.RefillRate),
		daily:   NewSlidingWindowCounter(kl.config.DailyLimit, 24*time.Hour),
	}
	kl.entries[key] = entry
	return entry
}

// GetAvailable returns the available bucket tokens for a key. Keys
// without state yet report full capacity.
func (kl *KeyedLimiter) GetAvailable(key string) float64 {
	if key == "" {
		return kl.config.Burst
	}

	kl.mu.RLock()
	entry, exists := kl.entries[key]
	kl.mu.RUnlock()

	if !exists {
		return kl.config.Burst
	}

	return entry.limiter.Available()
}

// GetDailyRemaining returns the remaining daily quota for a key.
// Returns -1 when the daily limit is disabled.
func (kl *KeyedLimiter) GetDailyRemaining(key string) int {
	if kl.config.DailyLimit <= 0 {
		return -1
	}

	kl.mu.RLock()
	entry, exists := kl.entries[key]
	kl.mu.RUnlock()

	if !exists {
		return kl.config.DailyLimit
	}

	return entry.daily.GetRemaining()
}

// GetActiveCount returns the number of active limiters.
func (kl *KeyedLimiter) GetActiveCount() int {
	kl.mu.RLock()
	defer kl.mu.RUnlock()
	return len(kl.entries)
}

func (kl *KeyedLimiter) cleanupLoop() {
	ticker := time.NewTicker(kl.config.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-kl.stopCh:
			return
		case <-ticker.C:
			kl.mu.Lock()
			for key, entry := range kl.entries {
				if entry.limiter.IsFull() {
					delete(kl.entries, key)
				}
			}
			activeCount := len(kl.entries)
			kl.mu.Unlock()

			if kl.onUpdate != nil {
				kl.onUpdate(activeCount)
			}
		}
	}
}

// Stop stops the cleanup goroutine. Safe to call multiple times.
func (kl *KeyedLimiter) Stop() {
	select {
	case <-kl.stopCh:
	default:
		close(kl.stopCh)
	}
}
