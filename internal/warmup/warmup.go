// Package warmup pre-fills the response cache by running the most
// common questions through the answer engine at startup. Every answer
// the engine produces is cached on the way out, so a warmed cache
// serves frequent questions without touching the resolvers again.
package warmup

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cadubot/cadu-go/internal/history"
	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/logger"
	"github.com/cadubot/cadu-go/internal/sliceutil"
)

// Answerer is the part of the chat engine warmup needs.
type Answerer interface {
	Answer(ctx context.Context, message string, turns []history.Turn) string
}

// Stats tracks warmup progress. Fields use atomics so workers can
// update them concurrently.
type Stats struct {
	Answered atomic.Int64
	Skipped  atomic.Int64
}

// Options configures a warmup run.
type Options struct {
	Workers int // Concurrent workers (default 4)
}

// Questions builds the warmup question list from the knowledge base:
// one location question per room, one person question per staff member,
// one detail question per course, plus the recurring fixed questions.
func Questions(store *knowledge.Store) []string {
	var out []string

	for _, room := range store.Rooms() {
		if len(room.Keywords) == 0 {
			continue
		}
		out = append(out, fmt.Sprintf("onde fica %s?", room.Keywords[0]))
	}

	for _, member := range store.Staff() {
		if len(member.NameVariants) == 0 {
			continue
		}
		out = append(out, fmt.Sprintf("quem é %s?", member.NameVariants[0]))
	}

	for _, course := range store.Courses() {
		out = append(out, fmt.Sprintf("qual o curso de %s?", strings.ToLower(course.Name)))
	}

	out = append(out,
		"quais cursos vocês oferecem?",
		"qual o telefone?",
		"qual o email?",
		"qual o endereço do senai?",
		"quais são os laboratórios?",
		"quais empresas são parceiras?",
		"como funciona a inscrição?",
		"qual o horário da biblioteca?",
		"quais os diferenciais da escola?",
	)

	// Rooms can share a primary keyword
	return sliceutil.Deduplicate(out, func(q string) string { return q })
}

// Run answers every question through the engine, which persists the
// answers into the response cache. Questions the engine cannot answer
// from rules fall back to generic replies; those still get cached and
// still help. Returns the stats even on context cancellation.
func Run(ctx context.Context, eng Answerer, questions []string, log *logger.Logger, opts Options) (*Stats, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}

	stats := &Stats{}
	start := time.Now()

	log.WithField("questions", len(questions)).
		WithField("workers", workers).
		Infof("cache warmup started")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, q := range questions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				stats.Skipped.Add(1)
				return err
			}
			eng.Answer(gctx, q, nil)
			stats.Answered.Add(1)
			return nil
		})
	}

	err := g.Wait()

	log.WithField("answered", stats.Answered.Load()).
		WithField("skipped", stats.Skipped.Load()).
		WithField("duration", time.Since(start).Round(time.Millisecond).String()).
		Infof("cache warmup finished")

	return stats, err
}

// RunInBackground starts a warmup run in a goroutine and marks the
// readiness state when it completes. Panics are contained so a warmup
// bug never takes the server down.
func RunInBackground(ctx context.Context, eng Answerer, questions []string, log *logger.Logger, opts Options, ready *ReadinessState) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Errorf("panic during cache warmup")
			}
			if ready != nil {
				ready.MarkReady()
			}
		}()

		if _, err := Run(ctx, eng, questions, log, opts); err != nil {
			log.WithError(err).Warnf("cache warmup interrupted")
		}
	}()
}
