package ratelimit

import (
	"sync"
	"time"
)

// SlidingWindowCounter implements a sliding window rate limiter using
// two fixed windows and weighted averaging:
//
//	effectiveCount = currCount + prevCount × (remaining share of the window)
//
// This smooths limits across window boundaries with O(1) space, which
// matters here because a counter is kept per client for the daily
// delegate quota.
type SlidingWindowCounter struct {
	mu              sync.Mutex
	currCount       int
	prevCount       int
	currWindowStart time.Time
	windowDuration  time.Duration
	maxRequests     int
}

// NewSlidingWindowCounter creates a sliding window counter.
// Returns nil if maxRequests <= 0; a nil counter allows everything.
func NewSlidingWindowCounter(maxRequests int, windowDuration time.Duration) *SlidingWindowCounter {
	if maxRequests <= 0 {
		return nil
	}
	return &SlidingWindowCounter{
		currWindowStart: time.Now(),
		windowDuration:  windowDuration,
		maxRequests:     maxRequests,
	}
}

// Allow reports whether a request is allowed, consuming from the window
// when it is.
func (swc *SlidingWindowCounter) Allow() bool {
	if swc == nil {
		return true
	}

	swc.mu.Lock()
	defer swc.mu.Unlock()

	swc.maybeRotateWindow()

	if swc.calculateWeightedCount() >= float64(swc.maxRequests) {
		return false
	}

	swc.currCount++
	return true
}

// Check reports whether a request would be allowed without consuming.
// Use with Consume for atomic multi-layer checks under an outer lock.
func (swc *SlidingWindowCounter) Check() bool {
	if swc == nil {
		return true
	}

	swc.mu.Lock()
	defer swc.mu.Unlock()

	swc.maybeRotateWindow()
	return swc.calculateWeightedCount() < float64(swc.maxRequests)
}

// Consume increments the counter after Check passed.
func (swc *SlidingWindowCounter) Consume() {
	if swc == nil {
		return
	}

	swc.mu.Lock()
	defer swc.mu.Unlock()

	swc.maybeRotateWindow()

	if swc.calculateWeightedCount() < float64(swc.maxRequests) {
		swc.currCount++
	}
}

// maybeRotateWindow rotates to a new window if the current one expired.
// Must be called with mu held.
func (swc *SlidingWindowCounter) maybeRotateWindow() {
	elapsed := time.Since(swc.currWindowStart)

	if elapsed >= swc.windowDuration {
		windowsPassed := int(elapsed / swc.windowDuration)

		if windowsPassed == 1 {
			swc.prevCount = swc.currCount
		} else {
			// More than one window passed: previous data is stale
			swc.prevCount = 0
		}

		swc.currCount = 0
		swc.currWindowStart = swc.currWindowStart.Add(time.Duration(windowsPassed) * swc.windowDuration)
	}
}

// calculateWeightedCount returns the weighted count for the sliding
// window. Must be called with mu held.
func (swc *SlidingWindowCounter) calculateWeightedCount() float64 {
	elapsed := time.Since(swc.currWindowStart)

	overlapRatio := float64(swc.windowDuration-elapsed) / float64(swc.windowDuration)
	if overlapRatio < 0 {
		overlapRatio = 0
	}
	if overlapRatio > 1 {
		overlapRatio = 1
	}

	return float64(swc.currCount) + float64(swc.prevCount)*overlapRatio
}

// GetEffectiveCount returns the current weighted count.
func (swc *SlidingWindowCounter) GetEffectiveCount() float64 {
	if swc == nil {
		return 0
	}

	swc.mu.Lock()
	defer swc.mu.Unlock()

	swc.maybeRotateWindow()
	return swc.calculateWeightedCount()
}

// GetRemaining returns the approximate remaining quota, or -1 when the
// counter is disabled.
func (swc *SlidingWindowCounter) GetRemaining() int {
	if swc == nil {
		return -1
	}

	swc.mu.Lock()
	defer swc.mu.Unlock()

	swc.maybeRotateWindow()
	remaining := float64(swc.maxRequests) - swc.calculateWeightedCount()
	if remaining < 0 {
		return 0
	}
	return int(remaining)
}

// IsFull reports whether the limit is currently exceeded.
func (swc *SlidingWindowCounter) IsFull() bool {
	if swc == nil {
		return false
	}

	swc.mu.Lock()
	defer swc.mu.Unlock()

	swc.maybeRotateWindow()
	return swc.calculateWeightedCount() >= float64(swc.maxRequests)
}
