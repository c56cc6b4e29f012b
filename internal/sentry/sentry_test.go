package sentry

import (
	"testing"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
)

// resetClient detaches any client bound by a previous test. Sentry keeps
// global state, so these tests must not run in parallel.
func resetClient() {
	sentrygo.CurrentHub().BindClient(nil)
}

func TestInitializeEmptyDSN(t *testing.T) {
	resetClient()

	// An empty DSN disables error tracking without failing.
	if err := Initialize(Config{DSN: ""}); err != nil {
		t.Errorf("Expected nil error for empty DSN, got %v", err)
	}

	if IsEnabled() {
		t.Error("Expected IsEnabled() to return false when the DSN is empty")
	}
}

func TestInitializeValidConfig(t *testing.T) {
	resetClient()

	err := Initialize(Config{
		DSN:         "https://key@o0.ingest.sentry.io/0",
		Environment: "test",
		SampleRate:  1.0,
	})
	if err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}

	if !IsEnabled() {
		t.Error("Expected IsEnabled() to return true after initialization")
	}

	Flush(time.Second)
	resetClient()
}

func TestInitializeDefaultSampleRate(t *testing.T) {
	resetClient()

	// Zero sample rate should default to 1.0
	err := Initialize(Config{
		DSN:        "https://key@o0.ingest.sentry.io/1",
		SampleRate: 0,
	})
	if err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}

	Flush(time.Second)
	resetClient()
}

func TestFlush(t *testing.T) {
	resetClient()

	// Flush should complete quickly when there are no events
	if !Flush(100 * time.Millisecond) {
		t.Error("Expected Flush to return true when no events pending")
	}
}
