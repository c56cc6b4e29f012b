package ratelimit

import (
	"testing"
	"time"
)

func TestChatLimiter_PerClient(t *testing.T) {
	t.Parallel()
	cl := NewChatLimiter(ChatLimiterConfig{
		GlobalRPS:     1000,
		ClientBurst:   2,
		ClientRefill:  0,
		CleanupPeriod: time.Hour,
	})
	defer cl.Stop()

	if !cl.Allow("10.0.0.1") || !cl.Allow("10.0.0.1") {
		t.Error("requests within the client burst should pass")
	}
	if cl.Allow("10.0.0.1") {
		t.Error("request over the client burst should be rejected")
	}
	if !cl.Allow("10.0.0.2") {
		t.Error("other clients should be unaffected")
	}
	if got := cl.ActiveClients(); got != 2 {
		t.Errorf("ActiveClients = %d, want 2", got)
	}
}

func TestChatLimiter_Global(t *testing.T) {
	t.Parallel()
	cl := NewChatLimiter(ChatLimiterConfig{
		GlobalRPS:     2,
		ClientBurst:   100,
		ClientRefill:  100,
		CleanupPeriod: time.Hour,
		Metrics:       testMetrics(),
	})
	defer cl.Stop()

	cl.Allow("10.0.0.1")
	cl.Allow("10.0.0.2")
	if cl.Allow("10.0.0.3") {
		t.Error("global bucket should reject the third request")
	}
}

func TestDelegateLimiter_Quota(t *testing.T) {
	t.Parallel()
	dl := NewDelegateLimiter(2, 10, time.Hour, testMetrics())
	defer dl.Stop()

	if !dl.Allow("10.0.0.1") || !dl.Allow("10.0.0.1") {
		t.Error("requests within the hourly quota should pass")
	}
	if dl.Allow("10.0.0.1") {
		t.Error("request over the hourly quota should be rejected")
	}
	if !dl.Allow("") {
		t.Error("empty client key must always be allowed")
	}
	if got := dl.GetDailyRemaining("10.0.0.1"); got != 8 {
		t.Errorf("GetDailyRemaining = %d, want 8", got)
	}
}

func TestDelegateLimiter_DailyCapDisabled(t *testing.T) {
	t.Parallel()
	dl := NewDelegateLimiter(5, 0, time.Hour, nil)
	defer dl.Stop()

	if got := dl.GetDailyRemaining("10.0.0.1"); got != -1 {
		t.Errorf("GetDailyRemaining with cap disabled = %d, want -1", got)
	}
	if got := dl.GetAvailable("10.0.0.1"); got != 5 {
		t.Errorf("GetAvailable for unseen client = %v, want 5", got)
	}
}
