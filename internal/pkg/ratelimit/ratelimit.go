// Package ratelimit implements the per-client submission limiter for the
// feedback endpoint. It is the only mutable state shared across requests,
// so every operation takes the mutex.
package ratelimit

import (
	"sync"
	"time"
)

const (
	// DefaultLimit is the number of accepted submissions per window.
	DefaultLimit = 10
	// DefaultWindow is the rolling window length.
	DefaultWindow = 60 * time.Second
	// SweepInterval is how often expired bookkeeping entries are purged.
	SweepInterval = 5 * time.Minute
)

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter counts accepted requests per key within a rolling window.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string]*entry
	now     func() time.Time
}

// New creates a Limiter allowing limit requests per window for each key.
func New(limit int, window time.Duration) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Allow reports whether a request for key may proceed, counting it if so.
// The window starts at the first counted request and resets once it ends.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || !now.Before(e.resetAt) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(l.window)}
		return true
	}
	if e.count >= l.limit {
		return false
	}
	e.count++
	return true
}

// Sweep removes entries whose window has passed, bounding memory between
// timer runs. Returns the number of entries removed.
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, e := range l.entries {
		if !now.Before(e.resetAt) {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
