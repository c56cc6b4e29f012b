package logger

import (
	"context"
	"log/slog"

	"github.com/cadubot/cadu-go/internal/ctxutil"
)

// ContextHandler is a slog.Handler that extracts tracing values
// (request ID, client IP) from the context and adds them as attributes
// to log records. It wraps another handler, so call sites using the
// Context variants (InfoContext etc.) get correlation fields without
// passing them explicitly.
type ContextHandler struct {
	handler slog.Handler
}

// NewContextHandler creates a ContextHandler wrapping the provided handler.
func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{handler: handler}
}

// Enabled delegates to the wrapped handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle adds context values as attributes before delegating to the
// wrapped handler.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if requestID := ctxutil.RequestID(ctx); requestID != "" {
		r.AddAttrs(slog.String("request_id", requestID))
	}
	if clientIP := ctxutil.ClientIP(ctx); clientIP != "" {
		r.AddAttrs(slog.String("client_ip", clientIP))
	}
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a new ContextHandler whose attributes consist of
// both the receiver's attributes and the arguments.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

// WithGroup returns a new ContextHandler with the given group name.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}
