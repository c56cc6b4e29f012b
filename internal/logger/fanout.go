package logger

import (
	"context"
	"errors"
	"log/slog"
)

// fanout forwards each record to several handlers, typically the stdout
// JSON handler plus the Better Stack shipper. Records are cloned per
// target because a handler may retain what it receives.
type fanout struct {
	targets []slog.Handler
}

// NewFanout builds a handler that forwards to every non-nil target.
func NewFanout(targets ...slog.Handler) slog.Handler {
	kept := make([]slog.Handler, 0, len(targets))
	for _, t := range targets {
		if t != nil {
			kept = append(kept, t)
		}
	}
	return &fanout{targets: kept}
}

// Enabled reports whether at least one target accepts the level.
func (f *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, t := range f.targets {
		if t.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers the record to every target that accepts its level.
// One failing target does not stop delivery to the others.
func (f *fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, t := range f.targets {
		if !t.Enabled(ctx, r.Level) {
			continue
		}
		if err := t.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(f.targets))
	for i, t := range f.targets {
		next[i] = t.WithAttrs(attrs)
	}
	return &fanout{targets: next}
}

func (f *fanout) WithGroup(name string) slog.Handler {
	if name == "" {
		return f
	}
	next := make([]slog.Handler, len(f.targets))
	for i, t := range f.targets {
		next[i] = t.WithGroup(name)
	}
	return &fanout{targets: next}
}
