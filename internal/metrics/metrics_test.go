package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNew(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	if m == nil {
		t.Fatal("New() returned nil")
	}

	// Verify all metric fields are initialized
	if m.ChatRequestsTotal == nil {
		t.Error("ChatRequestsTotal is nil")
	}
	if m.ChatDurationSeconds == nil {
		t.Error("ChatDurationSeconds is nil")
	}
	if m.CacheHitsTotal == nil {
		t.Error("CacheHitsTotal is nil")
	}
	if m.CacheMissesTotal == nil {
		t.Error("CacheMissesTotal is nil")
	}
	if m.DelegateRequestsTotal == nil {
		t.Error("DelegateRequestsTotal is nil")
	}
	if m.DelegateDurationSeconds == nil {
		t.Error("DelegateDurationSeconds is nil")
	}
	if m.HTTPErrorsTotal == nil {
		t.Error("HTTPErrorsTotal is nil")
	}
	if m.RateLimiterDropped == nil {
		t.Error("RateLimiterDropped is nil")
	}
	if m.RateLimiterClients == nil {
		t.Error("RateLimiterClients is nil")
	}
	if m.CacheEntries == nil {
		t.Error("CacheEntries is nil")
	}
}

func TestRecordChat(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Should not panic
	m.RecordChat("cache", "success", 0.002)
	m.RecordChat("schedule", "success", 0.01)
	m.RecordChat("delegate", "error", 12.5)
}

func TestRecordCacheHitAndMiss(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Should not panic
	m.RecordCacheHit("seed")
	m.RecordCacheHit("memory")
	m.RecordCacheMiss()
}

func TestRecordDelegate(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Should not panic
	m.RecordDelegate("chat", "success", 3.1)
	m.RecordDelegate("legacy", "success", 5.0)
	m.RecordDelegate("gemini", "error", 1.0)
}

func TestRecordHTTPError(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Should not panic
	m.RecordHTTPError("bad_request")
	m.RecordHTTPError("rate_limit")
	m.RecordHTTPError("internal")
}

func TestRecordRateLimiterDrop(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Should not panic
	m.RecordRateLimiterDrop("per_ip")
	m.RecordRateLimiterDrop("global")
	m.SetRateLimiterClients("per_ip", 3)
	m.SetCacheEntries(42)
}

func TestMetrics_WithDefaultRegistry(t *testing.T) {
	// Test that metrics can be created with a new registry
	// without conflicting with default registry
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Record some metrics
	m.RecordChat("location", "success", 0.004)
	m.RecordCacheHit("seed")
	m.RecordDelegate("chat", "success", 2.0)

	// Gather metrics to verify they were recorded
	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	// Should have metrics registered
	if len(metricFamilies) == 0 {
		t.Error("No metrics were gathered")
	}

	// Check for specific metric names
	expectedMetrics := map[string]bool{
		"cadu_chat_requests_total":       false,
		"cadu_chat_duration_seconds":     false,
		"cadu_cache_hits_total":          false,
		"cadu_delegate_requests_total":   false,
		"cadu_delegate_duration_seconds": false,
	}

	for _, mf := range metricFamilies {
		if _, ok := expectedMetrics[mf.GetName()]; ok {
			expectedMetrics[mf.GetName()] = true
		}
	}

	for name, found := range expectedMetrics {
		if !found {
			t.Errorf("Expected metric %q not found", name)
		}
	}
}
