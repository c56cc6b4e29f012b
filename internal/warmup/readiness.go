package warmup

import (
	"sync/atomic"
	"time"
)

// ReadinessState tracks whether the initial cache warmup has completed.
// Thread-safe for concurrent reads after initialization. The ready
// field uses atomic operations; startTime and timeout are immutable
// after construction.
type ReadinessState struct {
	ready     atomic.Bool
	startTime time.Time
	timeout   time.Duration
}

// ReadinessStatus contains the current readiness state for API responses.
type ReadinessStatus struct {
	Ready          bool   `json:"ready"`
	Reason         string `json:"reason,omitempty"`
	ElapsedSeconds int    `json:"elapsed_seconds,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// NewReadinessState creates a ReadinessState with the given timeout.
// The state starts as not ready and becomes ready when MarkReady is
// called or the timeout elapses, whichever comes first.
func NewReadinessState(timeout time.Duration) *ReadinessState {
	return &ReadinessState{
		startTime: time.Now(),
		timeout:   timeout,
	}
}

// IsReady reports whether the service should accept traffic.
func (s *ReadinessState) IsReady() bool {
	if s.ready.Load() {
		return true
	}
	return time.Since(s.startTime) >= s.timeout
}

// MarkReady marks the warmup as complete.
func (s *ReadinessState) MarkReady() {
	s.ready.Store(true)
}

// Status returns the current readiness status for API responses.
func (s *ReadinessState) Status() ReadinessStatus {
	elapsed := time.Since(s.startTime)
	isReady := s.IsReady()

	status := ReadinessStatus{
		Ready:          isReady,
		ElapsedSeconds: int(elapsed.Seconds()),
		TimeoutSeconds: int(s.timeout.Seconds()),
	}

	if !isReady {
		status.Reason = "cache warmup in progress"
	} else if !s.ready.Load() {
		// Ready due to timeout, not warmup completion
		status.Reason = "timeout reached (warmup may still be running)"
	}

	return status
}

// WarmupCompleted reports whether MarkReady was called, ignoring the
// timeout fallback IsReady also considers.
func (s *ReadinessState) WarmupCompleted() bool {
	return s.ready.Load()
}
