package warmup

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cadubot/cadu-go/internal/history"
	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/logger"
)

type recordingAnswerer struct {
	mu    sync.Mutex
	seen  []string
	reply string
}

func (r *recordingAnswerer) Answer(_ context.Context, message string, _ []history.Turn) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, message)
	return r.reply
}

func (r *recordingAnswerer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}

func TestQuestions(t *testing.T) {
	store := knowledge.NewStore()
	qs := Questions(store)

	assert.GreaterOrEqual(t, len(qs), len(store.Rooms()))

	var hasLocation, hasStaff, hasCourse bool
	for _, q := range qs {
		if strings.HasPrefix(q, "onde fica") {
			hasLocation = true
		}
		if strings.HasPrefix(q, "quem é") {
			hasStaff = true
		}
		if strings.HasPrefix(q, "qual o curso de") {
			hasCourse = true
		}
	}
	assert.True(t, hasLocation, "expected room location questions")
	assert.True(t, hasStaff, "expected staff questions")
	assert.True(t, hasCourse, "expected course questions")
}

func TestRunAnswersEverything(t *testing.T) {
	ans := &recordingAnswerer{reply: "ok"}
	questions := []string{"onde fica a biblioteca?", "qual o telefone?", "quem é fernanda?"}

	stats, err := Run(context.Background(), ans, questions, logger.New("error"), Options{Workers: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(len(questions)), stats.Answered.Load())
	assert.Equal(t, len(questions), ans.count())
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ans := &recordingAnswerer{reply: "ok"}
	stats, err := Run(ctx, ans, []string{"a", "b", "c"}, logger.New("error"), Options{Workers: 1})
	assert.Error(t, err)
	assert.Equal(t, int64(0), stats.Answered.Load())
}

func TestRunInBackgroundMarksReady(t *testing.T) {
	ans := &recordingAnswerer{reply: "ok"}
	ready := NewReadinessState(time.Minute)

	RunInBackground(context.Background(), ans, []string{"oi"}, logger.New("error"), Options{}, ready)

	deadline := time.After(2 * time.Second)
	for !ready.WarmupCompleted() {
		select {
		case <-deadline:
			t.Fatal("warmup never marked ready")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
