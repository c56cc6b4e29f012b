package logger

import (
	"context"
	"log/slog"

	slogbetterstack "github.com/samber/slog-betterstack"
)

// NewWithBetterstack creates a logger that writes JSON to stdout and ships
// records to Better Stack. Shipping goes through the async handler so a
// slow ingest endpoint never blocks request handling. If token is empty
// the Better Stack sink is skipped entirely.
//
// The returned shutdown func flushes buffered records; call it before the
// process exits.
func NewWithBetterstack(level, token string) (*Logger, func(ctx context.Context) error) {
	base := New(level)
	if token == "" {
		return base, func(context.Context) error { return nil }
	}

	remote := slogbetterstack.Option{
		Token: token,
		Level: slog.LevelInfo,
	}.NewBetterstackHandler()

	async := NewAsyncHandler(remote, AsyncOptions{})
	combined := slog.New(NewFanout(base.Handler(), async))

	return &Logger{Logger: combined}, async.Shutdown
}
