package ratelimit

import (
	"testing"
	"time"
)

func newTestLimiter(limit int, window time.Duration) (*Limiter, *time.Time) {
	l := New(limit, window)
	current := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestAllowWithinWindow(t *testing.T) {
	l, _ := newTestLimiter(10, time.Minute)

	for i := 1; i <= 10; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("11th request within the window should be rejected")
	}
	if !l.Allow("5.6.7.8") {
		t.Error("a different client must not be affected")
	}
}

func TestWindowReset(t *testing.T) {
	l, now := newTestLimiter(10, time.Minute)

	for i := 0; i < 10; i++ {
		l.Allow("1.2.3.4")
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("over-limit request should be rejected")
	}

	*now = now.Add(61 * time.Second)
	if !l.Allow("1.2.3.4") {
		t.Error("request after window reset should be accepted")
	}
}

func TestSweep(t *testing.T) {
	l, now := newTestLimiter(10, time.Minute)

	l.Allow("stale")
	*now = now.Add(2 * time.Minute)
	l.Allow("fresh")

	if removed := l.Sweep(); removed != 1 {
		t.Errorf("Sweep removed %d entries, want 1", removed)
	}
	if l.Len() != 1 {
		t.Errorf("Len = %d after sweep, want 1", l.Len())
	}
	if !l.Allow("fresh") {
		t.Error("live entry should survive the sweep")
	}
}
