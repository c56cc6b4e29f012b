// Command warmup pre-fills the response cache from the command line.
// Useful before a deploy: a warmed cache.db shipped with the image
// answers the common questions instantly from the first request.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cadubot/cadu-go/internal/cache"
	"github.com/cadubot/cadu-go/internal/chat"
	"github.com/cadubot/cadu-go/internal/config"
	"github.com/cadubot/cadu-go/internal/fuzzy"
	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/logger"
	"github.com/cadubot/cadu-go/internal/metrics"
	"github.com/cadubot/cadu-go/internal/schedule"
	"github.com/cadubot/cadu-go/internal/warmup"

	"github.com/prometheus/client_golang/prometheus"
)

// CLI flags
var (
	resetFlag   = flag.Bool("reset", false, "Clear the response cache before warmup")
	workersFlag = flag.Int("workers", 4, "Concurrent warmup workers")
	timeoutFlag = flag.Duration("timeout", 10*time.Minute, "Overall warmup timeout")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	log.Infof("Starting warmup tool")

	store := knowledge.NewStore()
	scorer := fuzzy.NewScorer()
	sched := schedule.NewResolver(schedule.NewStore(), scorer, cfg.Thresholds)

	c, err := cache.Open(cfg.SQLitePath(), chat.NoStore(sched), log)
	if err != nil {
		log.WithError(err).Errorf("Failed to open response cache")
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()
	log.WithField("path", cfg.SQLitePath()).
		WithField("entries", c.Len()).
		Infof("Response cache opened")

	if *resetFlag {
		log.Warnf("Clearing response cache...")
		if err := c.Clear(); err != nil {
			log.WithError(err).Errorf("Failed to clear response cache")
			os.Exit(1)
		}
		log.Infof("Response cache cleared")
	}

	// Rule-based engine only. The delegate never runs during warmup:
	// generated answers are per-conversation and must not be seeded.
	engine := chat.New(chat.Params{
		Cache:         c,
		Store:         store,
		Schedule:      sched,
		Scorer:        scorer,
		Thresholds:    cfg.Thresholds,
		Metrics:       metrics.New(prometheus.NewRegistry()),
		Log:           log,
		HistoryWindow: cfg.HistoryWindow,
		HistoryMaxLen: cfg.HistoryMaxLen,
	})

	questions := warmup.Questions(store)

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	start := time.Now()
	stats, err := warmup.Run(ctx, engine, questions, log, warmup.Options{Workers: *workersFlag})
	duration := time.Since(start).Round(time.Second)

	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "\n❌ Warmup interrupted: %d answered, %d skipped (%v)\n",
			stats.Answered.Load(), stats.Skipped.Load(), duration)
		os.Exit(1)
	}

	fmt.Printf("\n✅ Warmup complete: %d questions answered, %d cache entries (%v)\n",
		stats.Answered.Load(), c.Len(), duration)
}
