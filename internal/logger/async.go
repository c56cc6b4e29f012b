package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const (
	defaultQueueSize    = 1024
	defaultDrainTimeout = 5 * time.Second
)

// AsyncOptions tunes the shipping queue. Zero values pick the defaults.
type AsyncOptions struct {
	// QueueSize is how many records may wait for delivery before new
	// ones are dropped. Defaults to 1024.
	QueueSize int
	// DrainTimeout bounds Shutdown when the caller's context carries no
	// deadline. Defaults to 5s.
	DrainTimeout time.Duration
}

// AsyncHandler decouples a slow sink (remote log shipping) from the
// request path: Handle enqueues and returns immediately, a single
// goroutine delivers. A full queue drops the record instead of
// blocking the caller.
type AsyncHandler struct {
	core *asyncCore
	sink slog.Handler
}

// asyncCore is the queue shared by a handler and everything derived
// from it via WithAttrs or WithGroup. Derived handlers carry their own
// sink but deliver through the same goroutine.
type asyncCore struct {
	queue        chan delivery
	drainTimeout time.Duration
	closing      atomic.Bool
	dropped      atomic.Uint64
	done         chan struct{}
}

// delivery pairs a record with the sink it was enqueued for, so
// derived handlers keep their attrs and groups.
type delivery struct {
	ctx  context.Context
	rec  slog.Record
	sink slog.Handler
}

// NewAsyncHandler wraps sink with a buffered delivery queue.
func NewAsyncHandler(sink slog.Handler, opts AsyncOptions) *AsyncHandler {
	size := opts.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}
	timeout := opts.DrainTimeout
	if timeout <= 0 {
		timeout = defaultDrainTimeout
	}

	core := &asyncCore{
		queue:        make(chan delivery, size),
		drainTimeout: timeout,
		done:         make(chan struct{}),
	}
	go core.deliver()

	return &AsyncHandler{core: core, sink: sink}
}

func (c *asyncCore) deliver() {
	defer close(c.done)
	for d := range c.queue {
		_ = d.sink.Handle(d.ctx, d.rec)
	}
}

func (c *asyncCore) enqueue(ctx context.Context, rec slog.Record, sink slog.Handler) {
	if c.closing.Load() {
		return
	}
	select {
	case c.queue <- delivery{ctx: ctx, rec: rec, sink: sink}:
	default:
		c.dropped.Add(1)
	}
}

// Enabled delegates to the sink.
func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.sink.Enabled(ctx, level)
}

// Handle enqueues the record for delivery and never blocks.
func (h *AsyncHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.sink.Enabled(ctx, r.Level) {
		return nil
	}
	h.core.enqueue(ctx, r.Clone(), h.sink)
	return nil
}

// WithAttrs derives a handler sharing the same queue.
func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AsyncHandler{core: h.core, sink: h.sink.WithAttrs(attrs)}
}

// WithGroup derives a handler sharing the same queue.
func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &AsyncHandler{core: h.core, sink: h.sink.WithGroup(name)}
}

// Dropped reports how many records were discarded on a full queue.
func (h *AsyncHandler) Dropped() uint64 {
	return h.core.dropped.Load()
}

// Shutdown stops accepting records and waits for queued ones to be
// delivered. Without a context deadline it waits at most DrainTimeout.
// Safe to call more than once.
func (h *AsyncHandler) Shutdown(ctx context.Context) error {
	if h == nil || h.core == nil {
		return nil
	}
	c := h.core
	if c.closing.Swap(true) {
		return nil
	}
	close(c.queue)

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.drainTimeout)
		defer cancel()
	}

	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
