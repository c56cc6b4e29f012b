package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Parallel()
	l := New(10, 5)
	if l.maxTokens != 10 {
		t.Errorf("maxTokens = %v, want 10", l.maxTokens)
	}
	if l.refillRate != 5 {
		t.Errorf("refillRate = %v, want 5", l.refillRate)
	}
	if l.tokens != 10 {
		t.Errorf("initial tokens = %v, want 10", l.tokens)
	}
}

func TestAllow(t *testing.T) {
	t.Parallel()
	t.Run("allows when tokens available", func(t *testing.T) {
		t.Parallel()
		l := New(5, 1)
		for i := 0; i < 5; i++ {
			if !l.Allow() {
				t.Errorf("Allow() = false on attempt %d, want true", i+1)
			}
		}
	})

	t.Run("denies when no tokens", func(t *testing.T) {
		t.Parallel()
		l := New(2, 0) // No refill
		l.Allow()
		l.Allow()
		if l.Allow() {
			t.Error("Allow() = true when no tokens, want false")
		}
	})

	t.Run("refills over time", func(t *testing.T) {
		t.Parallel()
		l := New(1, 100) // Fast refill for testing
		l.Allow()
		time.Sleep(50 * time.Millisecond)
		if !l.Allow() {
			t.Error("Allow() = false after refill, want true")
		}
	})
}

func TestCheckConsume(t *testing.T) {
	t.Parallel()
	l := New(1, 0)
	if !l.Check() {
		t.Error("Check() = false with a full bucket")
	}
	l.Consume()
	if l.Check() {
		t.Error("Check() = true after Consume drained the bucket")
	}
}

func TestWait(t *testing.T) {
	t.Parallel()
	t.Run("returns immediately with tokens", func(t *testing.T) {
		t.Parallel()
		l := New(1, 1)
		if err := l.Wait(context.Background()); err != nil {
			t.Errorf("Wait() = %v, want nil", err)
		}
	})

	t.Run("blocks until refill", func(t *testing.T) {
		t.Parallel()
		l := New(1, 20) // 1 token per 50ms
		l.Allow()

		start := time.Now()
		if err := l.Wait(context.Background()); err != nil {
			t.Fatalf("Wait() = %v, want nil", err)
		}
		if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
			t.Errorf("Wait() returned after %v, expected to block", elapsed)
		}
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()
		l := New(1, 0.001) // Effectively never refills
		l.Allow()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		if err := l.Wait(ctx); err != context.DeadlineExceeded {
			t.Errorf("Wait() = %v, want context.DeadlineExceeded", err)
		}
	})
}

func TestAvailable(t *testing.T) {
	t.Parallel()
	l := New(5, 0)
	if got := l.Available(); got != 5 {
		t.Errorf("Available() = %v, want 5", got)
	}
	l.Allow()
	if got := l.Available(); got != 4 {
		t.Errorf("Available() = %v, want 4", got)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()
	l := New(3, 0)
	l.Allow()
	l.Allow()
	l.Reset()
	if got := l.Available(); got != 3 {
		t.Errorf("Available() after Reset = %v, want 3", got)
	}
}

func TestIsFull(t *testing.T) {
	t.Parallel()
	l := New(2, 0)
	if !l.IsFull() {
		t.Error("IsFull() = false on a fresh bucket")
	}
	l.Allow()
	if l.IsFull() {
		t.Error("IsFull() = true after consuming a token")
	}
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()
	l := New(100, 0)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow() {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 100 {
		t.Errorf("allowed = %d, want exactly 100", allowed)
	}
}
