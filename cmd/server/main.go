// Package main provides the chat server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/cadubot/cadu-go/internal/buildinfo"
	"github.com/cadubot/cadu-go/internal/cache"
	"github.com/cadubot/cadu-go/internal/chat"
	"github.com/cadubot/cadu-go/internal/config"
	"github.com/cadubot/cadu-go/internal/delegate"
	"github.com/cadubot/cadu-go/internal/fuzzy"
	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/logger"
	"github.com/cadubot/cadu-go/internal/metrics"
	"github.com/cadubot/cadu-go/internal/ratelimit"
	"github.com/cadubot/cadu-go/internal/schedule"
	"github.com/cadubot/cadu-go/internal/sentry"
	"github.com/cadubot/cadu-go/internal/warmup"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger, optionally shipping to Better Stack
	log, logShutdown := logger.NewWithBetterstack(cfg.LogLevel, cfg.BetterstackToken)
	log.Infof("Starting Cadu chat server")

	// Initialize error tracking
	release := cfg.SentryRelease
	if release == "" {
		release = buildinfo.Version
	}
	if err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     release,
		SampleRate:  cfg.SentrySampleRate,
	}); err != nil {
		log.WithError(err).Warnf("Sentry initialization failed, error tracking disabled")
	} else if sentry.IsEnabled() {
		log.Infof("Sentry error tracking enabled")
	}

	// Knowledge base and timetable
	store := knowledge.NewStore()
	scorer := fuzzy.NewScorer()
	sched := schedule.NewResolver(schedule.NewStore(), scorer, cfg.Thresholds)

	// Response cache backed by SQLite
	c, err := cache.Open(cfg.SQLitePath(), chat.NoStore(sched), log)
	if err != nil {
		log.WithError(err).Errorf("Failed to open response cache")
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()
	log.WithField("path", cfg.SQLitePath()).WithField("entries", c.Len()).Infof("Response cache ready")

	// Prometheus registry with runtime collectors
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())

	m := metrics.New(registry)
	log.Infof("Metrics initialized")

	// Generative delegate. A failure here is not fatal: rule-based
	// answers keep the bot useful without it.
	var generator chat.Generator
	if d, err := delegate.New(context.Background(), cfg.Delegate, store, log); err != nil {
		log.WithError(err).Warnf("Delegate unavailable, running rule-based only")
	} else {
		generator = d
		log.WithField("base_url", cfg.Delegate.BaseURL).
			WithField("fallback", cfg.HasFallbackProvider()).
			Infof("Delegate ready")
	}

	// Rate limiters
	chatLimiter := ratelimit.NewChatLimiter(ratelimit.ChatLimiterConfig{
		GlobalRPS:     cfg.GlobalRateRPS,
		ClientBurst:   5,
		ClientRefill:  0.5, // 1 message per 2s sustained
		CleanupPeriod: config.RateLimiterCleanupInterval,
		Metrics:       m,
	})
	defer chatLimiter.Stop()

	delegateLimiter := ratelimit.NewDelegateLimiter(
		config.DelegateQuotaPerHour,
		config.DelegateQuotaPerDay,
		config.RateLimiterCleanupInterval,
		m,
	)
	defer delegateLimiter.Stop()

	// Answer engine
	engine := chat.New(chat.Params{
		Cache:           c,
		Store:           store,
		Schedule:        sched,
		Generator:       generator,
		DelegateLimiter: delegateLimiter,
		Scorer:          scorer,
		Thresholds:      cfg.Thresholds,
		Metrics:         m,
		Log:             log,
		HistoryWindow:   cfg.HistoryWindow,
		HistoryMaxLen:   cfg.HistoryMaxLen,
	})
	log.Infof("Chat engine ready")

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(log))
	if sentry.IsEnabled() {
		router.Use(sentryMiddleware())
	}

	ready := warmup.NewReadinessState(config.WarmupReadyTimeout)

	setupRoutes(router, engine, c, cfg, m, registry, chatLimiter, ready)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  config.ChatHTTPRead,
		WriteTimeout: config.ChatHTTPWrite,
		IdleTimeout:  config.ChatHTTPIdle,
	}

	// Background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Errorf("Panic in cache metrics goroutine")
			}
		}()
		updateCacheMetrics(ctx, c, m, log)
	}()

	// Pre-fill the response cache with the common questions; readiness
	// flips when it finishes (or the timeout elapses)
	warmup.RunInBackground(ctx, engine, warmup.Questions(store), log, warmup.Options{}, ready)

	// Start server
	go func() {
		log.WithField("port", cfg.Port).Infof("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Errorf("Failed to start server")
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infof("Shutting down server...")

	cancel()

	goDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(goDone)
	}()

	select {
	case <-goDone:
		log.Infof("Background goroutines stopped")
	case <-time.After(5 * time.Second):
		log.Warnf("Timeout waiting for goroutines to stop")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Errorf("Server forced to shutdown")
	}

	if err := c.Close(); err != nil {
		log.WithError(err).Errorf("Failed to close response cache")
	}

	sentry.Flush(2 * time.Second)
	_ = logShutdown(context.Background())

	log.Infof("Server stopped")
}
