package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cadubot/cadu-go/internal/metrics"
)

func testMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func TestKeyedLimiter_Basic(t *testing.T) {
	t.Parallel()
	kl := NewKeyedLimiter(KeyedConfig{
		Name:          "delegate",
		Burst:         2,
		RefillRate:    0,
		CleanupPeriod: time.Hour,
	})
	defer kl.Stop()

	if !kl.Allow("10.0.0.1") || !kl.Allow("10.0.0.1") {
		t.Error("burst requests should be allowed")
	}
	if kl.Allow("10.0.0.1") {
		t.Error("request over burst should be rejected")
	}
	if !kl.Allow("10.0.0.2") {
		t.Error("different client should be allowed")
	}
	if !kl.Allow("") {
		t.Error("empty key must always be allowed")
	}
}

func TestKeyedLimiter_DailyCap(t *testing.T) {
	t.Parallel()
	kl := NewKeyedLimiter(KeyedConfig{
		Name:          "delegate",
		Burst:         100, // Bucket never the bottleneck
		RefillRate:    100,
		DailyLimit:    3,
		CleanupPeriod: time.Hour,
	})
	defer kl.Stop()

	for i := 0; i < 3; i++ {
		if !kl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be within the daily cap", i+1)
		}
	}
	if kl.Allow("10.0.0.1") {
		t.Error("request over the daily cap should be rejected")
	}
	if got := kl.GetDailyRemaining("10.0.0.1"); got != 0 {
		t.Errorf("GetDailyRemaining = %d, want 0", got)
	}
}

func TestKeyedLimiter_DailyDisabled(t *testing.T) {
	t.Parallel()
	kl := NewKeyedLimiter(KeyedConfig{
		Name:          "delegate",
		Burst:         5,
		RefillRate:    1,
		CleanupPeriod: time.Hour,
	})
	defer kl.Stop()

	if got := kl.GetDailyRemaining("10.0.0.1"); got != -1 {
		t.Errorf("GetDailyRemaining with cap disabled = %d, want -1", got)
	}
}

func TestKeyedLimiter_GetAvailable(t *testing.T) {
	t.Parallel()
	kl := NewKeyedLimiter(KeyedConfig{
		Name:          "delegate",
		Burst:         4,
		RefillRate:    0,
		CleanupPeriod: time.Hour,
	})
	defer kl.Stop()

	if got := kl.GetAvailable("10.0.0.1"); got != 4 {
		t.Errorf("GetAvailable for unseen key = %v, want 4", got)
	}
	kl.Allow("10.0.0.1")
	if got := kl.GetAvailable("10.0.0.1"); got != 3 {
		t.Errorf("GetAvailable = %v, want 3", got)
	}
}

func TestKeyedLimiter_MetricsDrop(t *testing.T) {
	t.Parallel()
	kl := NewKeyedLimiter(KeyedConfig{
		Name:          "delegate",
		Burst:         1,
		RefillRate:    0,
		CleanupPeriod: time.Hour,
		Metrics:       testMetrics(),
	})
	defer kl.Stop()

	// Must not panic with metrics wired
	kl.Allow("10.0.0.1")
	kl.Allow("10.0.0.1")
}

func TestKeyedLimiter_Cleanup(t *testing.T) {
	t.Parallel()
	kl := NewKeyedLimiter(KeyedConfig{
		Name:          "delegate",
		Burst:         1,
		RefillRate:    100, // Refills instantly, entries look inactive
		CleanupPeriod: 20 * time.Millisecond,
	})
	defer kl.Stop()

	kl.Allow("10.0.0.1")
	time.Sleep(80 * time.Millisecond)

	if got := kl.GetActiveCount(); got != 0 {
		t.Errorf("GetActiveCount after cleanup = %d, want 0", got)
	}
}

func TestKeyedLimiter_ThreadSafety(t *testing.T) {
	t.Parallel()
	kl := NewKeyedLimiter(KeyedConfig{
		Name:          "delegate",
		Burst:         1000,
		RefillRate:    0,
		DailyLimit:    10000,
		CleanupPeriod: time.Hour,
	})
	defer kl.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				kl.Allow("10.0.0.1")
			}
		}()
	}
	wg.Wait()

	if got := kl.GetActiveCount(); got != 1 {
		t.Errorf("GetActiveCount = %d, want 1", got)
	}
}
