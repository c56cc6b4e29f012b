package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func newTestPerKey(maxTokens, refill float64) *PerKeyLimiter {
	return NewPerKeyLimiter(PerKeyLimiterConfig{
		MaxTokens:     maxTokens,
		RefillRate:    refill,
		CleanupPeriod: time.Hour, // Keep cleanup out of the way
	})
}

func TestPerKeyLimiter_Allow(t *testing.T) {
	t.Parallel()
	pkl := newTestPerKey(2, 0)
	defer pkl.Stop()

	if !pkl.Allow("10.0.0.1") || !pkl.Allow("10.0.0.1") {
		t.Error("first two requests should be allowed")
	}
	if pkl.Allow("10.0.0.1") {
		t.Error("third request should be rejected")
	}

	// Other clients are unaffected
	if !pkl.Allow("10.0.0.2") {
		t.Error("different client should be allowed")
	}
}

func TestPerKeyLimiter_EmptyKey(t *testing.T) {
	t.Parallel()
	pkl := newTestPerKey(1, 0)
	defer pkl.Stop()

	for i := 0; i < 5; i++ {
		if !pkl.Allow("") {
			t.Error("empty key must always be allowed")
		}
	}
}

func TestPerKeyLimiter_OnDrop(t *testing.T) {
	t.Parallel()
	pkl := newTestPerKey(1, 0)
	defer pkl.Stop()

	var mu sync.Mutex
	drops := 0
	pkl.OnDrop(func() {
		mu.Lock()
		drops++
		mu.Unlock()
	})

	pkl.Allow("10.0.0.1")
	pkl.Allow("10.0.0.1")
	pkl.Allow("10.0.0.1")

	mu.Lock()
	defer mu.Unlock()
	if drops != 2 {
		t.Errorf("drops = %d, want 2", drops)
	}
}

func TestPerKeyLimiter_GetAvailable(t *testing.T) {
	t.Parallel()
	pkl := newTestPerKey(5, 0)
	defer pkl.Stop()

	if got := pkl.GetAvailable("10.0.0.1"); got != 5 {
		t.Errorf("GetAvailable for unseen key = %v, want 5", got)
	}
	pkl.Allow("10.0.0.1")
	if got := pkl.GetAvailable("10.0.0.1"); got != 4 {
		t.Errorf("GetAvailable = %v, want 4", got)
	}
}

func TestPerKeyLimiter_GetActiveCount(t *testing.T) {
	t.Parallel()
	pkl := newTestPerKey(5, 0)
	defer pkl.Stop()

	pkl.Allow("10.0.0.1")
	pkl.Allow("10.0.0.2")
	pkl.Allow("10.0.0.2")

	if got := pkl.GetActiveCount(); got != 2 {
		t.Errorf("GetActiveCount = %d, want 2", got)
	}
}

func TestPerKeyLimiter_Cleanup(t *testing.T) {
	t.Parallel()
	pkl := NewPerKeyLimiter(PerKeyLimiterConfig{
		MaxTokens:     1,
		RefillRate:    100, // Refills instantly, so buckets look inactive
		CleanupPeriod: 20 * time.Millisecond,
	})
	defer pkl.Stop()

	pkl.Allow("10.0.0.1")
	time.Sleep(80 * time.Millisecond)

	if got := pkl.GetActiveCount(); got != 0 {
		t.Errorf("GetActiveCount after cleanup = %d, want 0", got)
	}
}

func TestPerKeyLimiter_StopIsIdempotent(t *testing.T) {
	t.Parallel()
	pkl := newTestPerKey(1, 1)
	pkl.Stop()
	pkl.Stop() // Must not panic
}

func TestPerKeyLimiter_Concurrent(t *testing.T) {
	t.Parallel()
	pkl := newTestPerKey(1000, 0)
	defer pkl.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("10.0.0.%d", n%5)
			for j := 0; j < 20; j++ {
				pkl.Allow(key)
			}
		}(i)
	}
	wg.Wait()

	if got := pkl.GetActiveCount(); got != 5 {
		t.Errorf("GetActiveCount = %d, want 5", got)
	}
}
