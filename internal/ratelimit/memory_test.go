package ratelimit

import (
	"context"
	"strconv"
	"testing"
	"time"
)

func TestMemoryLimiter_WindowExhaustion(t *testing.T) {
	limiter := NewMemoryLimiter()
	policy := Policy{MaxRequests: 5, Window: 15 * time.Minute}

	for i := 0; i < 5; i++ {
		res, err := limiter.Allow(context.Background(), "login:1.2.3.4", policy)
		if err != nil {
			t.Fatalf("allow: %v", err)
		}
		if !res.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if res.Remaining != 5-(i+1) {
			t.Fatalf("request %d: expected remaining %d, got %d", i+1, 5-(i+1), res.Remaining)
		}
	}

	res, err := limiter.Allow(context.Background(), "login:1.2.3.4", policy)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if res.Allowed {
		t.Fatalf("6th request in window should be rejected")
	}
	if res.Remaining != 0 {
		t.Fatalf("expected remaining 0, got %d", res.Remaining)
	}
}

func TestMemoryLimiter_WindowReset(t *testing.T) {
	limiter := NewMemoryLimiter()
	policy := Policy{MaxRequests: 2, Window: time.Minute}

	base := time.Now()
	limiter.now = func() time.Time { return base }

	for i := 0; i < 3; i++ {
		_, _ = limiter.Allow(context.Background(), "k", policy)
	}

	limiter.now = func() time.Time { return base.Add(time.Minute + time.Second) }
	res, err := limiter.Allow(context.Background(), "k", policy)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if !res.Allowed {
		t.Fatalf("request after window elapsed should be allowed")
	}
	if res.Remaining != 1 {
		t.Fatalf("fresh window should have remaining 1, got %d", res.Remaining)
	}
}

func TestMemoryLimiter_IndependentKeys(t *testing.T) {
	limiter := NewMemoryLimiter()
	policy := Policy{MaxRequests: 1, Window: time.Minute}

	if res, _ := limiter.Allow(context.Background(), "a", policy); !res.Allowed {
		t.Fatalf("first request for key a should be allowed")
	}
	if res, _ := limiter.Allow(context.Background(), "a", policy); res.Allowed {
		t.Fatalf("second request for key a should be rejected")
	}
	if res, _ := limiter.Allow(context.Background(), "b", policy); !res.Allowed {
		t.Fatalf("key b must not share key a's window")
	}
}

func TestMemoryLimiter_LongWindowSurvivesEviction(t *testing.T) {
	limiter := NewMemoryLimiter()
	policy := Policy{MaxRequests: 1, Window: 2 * time.Hour}

	base := time.Now()
	limiter.now = func() time.Time { return base }

	if res, _ := limiter.Allow(context.Background(), "register:1.2.3.4", policy); !res.Allowed {
		t.Fatalf("first request should be allowed")
	}
	if res, _ := limiter.Allow(context.Background(), "register:1.2.3.4", policy); res.Allowed {
		t.Fatalf("second request should exhaust the window")
	}

	// Partway through the window, traffic on other keys forces eviction sweeps.
	limiter.now = func() time.Time { return base.Add(61 * time.Minute) }
	for i := 0; i < 2*evictEvery; i++ {
		_, _ = limiter.Allow(context.Background(), "general:"+strconv.Itoa(i), policy)
	}

	res, err := limiter.Allow(context.Background(), "register:1.2.3.4", policy)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if res.Allowed {
		t.Fatalf("exhausted window must keep rejecting until it actually ends")
	}
	if !res.ResetAt.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("window end moved: got %v, want %v", res.ResetAt, base.Add(2*time.Hour))
	}

	// Once the window genuinely ends, the key admits again.
	limiter.now = func() time.Time { return base.Add(2*time.Hour + time.Second) }
	if res, _ := limiter.Allow(context.Background(), "register:1.2.3.4", policy); !res.Allowed {
		t.Fatalf("request after window end should be allowed")
	}
}

func TestMemoryLimiter_ResetAt(t *testing.T) {
	limiter := NewMemoryLimiter()
	policy := Policy{MaxRequests: 1, Window: time.Minute}

	base := time.Now()
	limiter.now = func() time.Time { return base }

	res, err := limiter.Allow(context.Background(), "k", policy)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if !res.ResetAt.Equal(base.Add(time.Minute)) {
		t.Fatalf("expected reset at window end, got %v", res.ResetAt)
	}
	if got := res.RetryAfter(base.Add(10 * time.Second)); got != 50*time.Second {
		t.Fatalf("expected retry-after 50s, got %v", got)
	}
}
