package ctxutil

import (
	"context"
	"testing"
	"time"
)

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		if got := RequestID(context.Background()); got != "" {
			t.Errorf("RequestID = %q, want empty", got)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		ctx := WithRequestID(context.Background(), "req-123")
		if got := RequestID(ctx); got != "req-123" {
			t.Errorf("RequestID = %q, want req-123", got)
		}
	})
}

func TestClientIPContext(t *testing.T) {
	t.Parallel()

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		if got := ClientIP(context.Background()); got != "" {
			t.Errorf("ClientIP = %q, want empty", got)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		ctx := WithClientIP(context.Background(), "10.0.0.1")
		if got := ClientIP(ctx); got != "10.0.0.1" {
			t.Errorf("ClientIP = %q, want 10.0.0.1", got)
		}
	})
}

func TestContextChaining(t *testing.T) {
	t.Parallel()

	ctx := WithClientIP(WithRequestID(context.Background(), "req-1"), "10.0.0.2")
	if got := RequestID(ctx); got != "req-1" {
		t.Errorf("RequestID = %q, want req-1", got)
	}
	if got := ClientIP(ctx); got != "10.0.0.2" {
		t.Errorf("ClientIP = %q, want 10.0.0.2", got)
	}
}

func TestDetach(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithCancel(context.Background())
	parent = WithRequestID(WithClientIP(parent, "10.0.0.3"), "req-9")

	detached := Detach(parent)
	cancel()

	select {
	case <-detached.Done():
		t.Fatal("detached context should survive parent cancellation")
	case <-time.After(10 * time.Millisecond):
	}

	if got := RequestID(detached); got != "req-9" {
		t.Errorf("RequestID = %q, want req-9", got)
	}
	if got := ClientIP(detached); got != "10.0.0.3" {
		t.Errorf("ClientIP = %q, want 10.0.0.3", got)
	}
}
