// Package metrics defines the Prometheus instrumentation of the chat
// engine: routing decisions, cache effectiveness, delegate behavior and
// HTTP-level failures.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Chat pipeline metrics
	ChatRequestsTotal   *prometheus.CounterVec
	ChatDurationSeconds *prometheus.HistogramVec

	// Response cache metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal prometheus.Counter

	// Delegate metrics
	DelegateRequestsTotal   *prometheus.CounterVec
	DelegateDurationSeconds *prometheus.HistogramVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Rate limiter metrics
	RateLimiterDropped *prometheus.CounterVec
	RateLimiterClients *prometheus.GaugeVec

	// Cache size gauge, updated by a background job
	CacheEntries prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		ChatRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "cadu_chat_requests_total",
				Help: "Total chat requests by resolved route and status",
			},
			[]string{"route", "status"}, // route: cache, smalltalk, schedule, contact, location, knowledge, delegate, fallback, gibberish, out_of_scope
		),

		ChatDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cadu_chat_duration_seconds",
				Help:    "End-to-end message processing duration by route",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30},
			},
			[]string{"route"},
		),

		CacheHitsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "cadu_cache_hits_total",
				Help: "Total response cache hits by source",
			},
			[]string{"source"}, // source: seed, memory
		),

		CacheMissesTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "cadu_cache_misses_total",
				Help: "Total response cache misses",
			},
		),

		DelegateRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "cadu_delegate_requests_total",
				Help: "Total delegate calls by backend and status",
			},
			[]string{"backend", "status"}, // backend: chat, legacy, gemini; status: success, error
		),

		DelegateDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cadu_delegate_duration_seconds",
				Help:    "Delegate call duration by backend",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
			},
			[]string{"backend"},
		),

		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "cadu_http_errors_total",
				Help: "Total HTTP errors by type",
			},
			[]string{"error_type"}, // error_type: bad_request, too_long, rate_limit, internal
		),

		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "cadu_rate_limiter_dropped_total",
				Help: "Total requests rejected by the rate limiter",
			},
			[]string{"limiter"}, // limiter: global, per_ip, delegate
		),

		RateLimiterClients: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "cadu_rate_limiter_clients",
				Help: "Clients with live rate limiter state",
			},
			[]string{"limiter"},
		),

		CacheEntries: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "cadu_cache_entries",
				Help: "Entries in the response cache",
			},
		),
	}

	return m
}

// RecordChat records a processed message with its resolved route
func (m *Metrics) RecordChat(route, status string, duration float64) {
	m.ChatRequestsTotal.WithLabelValues(route, status).Inc()
	m.ChatDurationSeconds.WithLabelValues(route).Observe(duration)
}

// RecordCacheHit records a cache hit by source (seed or memory)
func (m *Metrics) RecordCacheHit(source string) {
	m.CacheHitsTotal.WithLabelValues(source).Inc()
}

// RecordCacheMiss records a cache miss
func (m *Metrics) RecordCacheMiss() {
	m.CacheMissesTotal.Inc()
}

// RecordDelegate records a delegate call
func (m *Metrics) RecordDelegate(backend, status string, duration float64) {
	m.DelegateRequestsTotal.WithLabelValues(backend, status).Inc()
	m.DelegateDurationSeconds.WithLabelValues(backend).Observe(duration)
}

// RecordHTTPError records an HTTP error
func (m *Metrics) RecordHTTPError(errorType string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType).Inc()
}

// RecordRateLimiterDrop records a request dropped by rate limiter
func (m *Metrics) RecordRateLimiterDrop(limiter string) {
	m.RateLimiterDropped.WithLabelValues(limiter).Inc()
}

// SetRateLimiterClients updates the live client count for a limiter
func (m *Metrics) SetRateLimiterClients(limiter string, count int) {
	m.RateLimiterClients.WithLabelValues(limiter).Set(float64(count))
}

// SetCacheEntries updates the response cache size gauge
func (m *Metrics) SetCacheEntries(count int) {
	m.CacheEntries.Set(float64(count))
}
