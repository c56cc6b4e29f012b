// Package main provides the chat server entry point.
package main

import (
	"context"
	"time"

	"github.com/cadubot/cadu-go/internal/cache"
	"github.com/cadubot/cadu-go/internal/config"
	"github.com/cadubot/cadu-go/internal/logger"
	"github.com/cadubot/cadu-go/internal/metrics"
)

// updateCacheMetrics keeps the cache size gauge current. Runs until the
// context is canceled.
func updateCacheMetrics(ctx context.Context, c *cache.Cache, m *metrics.Metrics, log *logger.Logger) {
	m.SetCacheEntries(c.Len())

	ticker := time.NewTicker(config.MetricsUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugf("cache metrics updater stopped")
			return
		case <-ticker.C:
			m.SetCacheEntries(c.Len())
		}
	}
}
