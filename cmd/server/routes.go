// Package main provides the chat server entry point.
package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cadubot/cadu-go/internal/buildinfo"
	"github.com/cadubot/cadu-go/internal/cache"
	"github.com/cadubot/cadu-go/internal/chat"
	"github.com/cadubot/cadu-go/internal/config"
	"github.com/cadubot/cadu-go/internal/ctxutil"
	"github.com/cadubot/cadu-go/internal/history"
	"github.com/cadubot/cadu-go/internal/metrics"
	"github.com/cadubot/cadu-go/internal/ratelimit"
	"github.com/cadubot/cadu-go/internal/warmup"
)

type chatTurn struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	UserName string `json:"user_name,omitempty"`
}

type chatRequest struct {
	Message string     `json:"message"`
	History []chatTurn `json:"history"`
}

// setupRoutes configures all HTTP routes
func setupRoutes(router *gin.Engine, engine *chat.Engine, c *cache.Cache, cfg *config.Config, m *metrics.Metrics, registry *prometheus.Registry, limiter *ratelimit.ChatLimiter, ready *warmup.ReadinessState) {
	// Root endpoint - service identification
	rootHandler := func(gc *gin.Context) {
		gc.JSON(http.StatusOK, gin.H{
			"service":     "cadu",
			"description": "Assistente virtual do SENAI São Carlos",
			"version":     buildinfo.Version,
		})
	}
	router.GET("/", rootHandler)
	router.HEAD("/", rootHandler)

	// Liveness probe - process is up, no dependency checks
	healthHandler := func(gc *gin.Context) {
		gc.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness probe - not ready until the cache warmup finishes or
	// its timeout elapses
	readyHandler := func(gc *gin.Context) {
		status := ready.Status()
		code := http.StatusOK
		state := "ready"
		if !status.Ready {
			code = http.StatusServiceUnavailable
			state = "warming_up"
		}
		gc.JSON(code, gin.H{
			"status": state,
			"warmup": status,
			"cache":  gin.H{"entries": c.Len()},
			"delegate": gin.H{
				"configured": cfg.Delegate.BaseURL != "",
				"fallback":   cfg.HasFallbackProvider(),
			},
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// Chat endpoint
	router.POST("/api/chat", rateLimitMiddleware(limiter, m), chatHandler(engine, cfg, m))

	// Prometheus metrics endpoint, Basic Auth when a password is set
	metricsHandler := gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if cfg.MetricsPassword != "" {
		auth := gin.BasicAuth(gin.Accounts{cfg.MetricsUsername: cfg.MetricsPassword})
		router.GET("/metrics", auth, metricsHandler)
	} else {
		router.GET("/metrics", metricsHandler)
	}
}

// chatHandler answers one message. The engine never fails: transport
// errors aside, the client always gets a usable reply.
func chatHandler(engine *chat.Engine, cfg *config.Config, m *metrics.Metrics) gin.HandlerFunc {
	return func(gc *gin.Context) {
		var req chatRequest
		if err := gc.ShouldBindJSON(&req); err != nil {
			m.RecordHTTPError("bad_request")
			gc.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido."})
			return
		}

		message := strings.TrimSpace(req.Message)
		if message == "" {
			m.RecordHTTPError("bad_request")
			gc.JSON(http.StatusBadRequest, gin.H{"error": "Envie uma mensagem para o Cadu responder."})
			return
		}
		if len([]rune(message)) > cfg.MessageMaxLen {
			m.RecordHTTPError("too_long")
			gc.JSON(http.StatusBadRequest, gin.H{
				"error": "Mensagem muito longa. Tente resumir sua pergunta.",
			})
			return
		}

		turns := make([]history.Turn, 0, len(req.History))
		for _, t := range req.History {
			turns = append(turns, history.Turn{
				Role:     t.Role,
				Content:  t.Content,
				UserName: t.UserName,
			})
		}

		ctx, cancel := context.WithTimeout(gc.Request.Context(), config.ChatProcessing)
		defer cancel()
		ctx = ctxutil.WithRequestID(ctx, gc.GetString(requestIDKey))
		ctx = ctxutil.WithClientIP(ctx, gc.ClientIP())

		answer := engine.Answer(ctx, message, turns)

		gc.JSON(http.StatusOK, gin.H{
			"response":   answer,
			"request_id": gc.GetString(requestIDKey),
		})
	}
}
