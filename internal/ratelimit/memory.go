package ratelimit

import (
	"context"
	"sync"
	"time"
)

// evictEvery bounds how often the store scans for dead windows.
const evictEvery = 512

type window struct {
	count   int
	expires time.Time
}

// MemoryLimiter is a process-local fixed-window limiter backed by a
// mutex-guarded map. Each entry carries its own expiry so keys under
// differently sized policies coexist in one store; an expired window is fully
// replaced on the next request for its key, and stale keys are evicted lazily
// every evictEvery calls.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]window
	calls   int

	// now is swappable in tests.
	now func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		windows: make(map[string]window),
		now:     time.Now,
	}
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(_ context.Context, key string, policy Policy) (Result, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls++
	if l.calls%evictEvery == 0 {
		l.evictLocked(now)
	}

	w, ok := l.windows[key]
	if !ok || !now.Before(w.expires) {
		w = window{expires: now.Add(policy.Window)}
	}
	w.count++
	l.windows[key] = w

	if w.count > policy.MaxRequests {
		return Result{Allowed: false, Limit: policy.MaxRequests, Remaining: 0, ResetAt: w.expires}, nil
	}
	return Result{
		Allowed:   true,
		Limit:     policy.MaxRequests,
		Remaining: policy.MaxRequests - w.count,
		ResetAt:   w.expires,
	}, nil
}

// evictLocked drops windows whose own expiry has passed. A live window is
// never removed, no matter how long its policy's duration is.
func (l *MemoryLimiter) evictLocked(now time.Time) {
	for k, w := range l.windows {
		if !now.Before(w.expires) {
			delete(l.windows, k)
		}
	}
}
