// Package ratelimit provides fixed-window request limiting keyed by client
// address. Limiters are injected wherever they are needed rather than living
// in package-level state, so tests and deployments can swap the backing store
// (in-process map or Redis) without touching call sites.
package ratelimit

import (
	"context"
	"time"
)

// Policy is the per-route-class limit configuration.
type Policy struct {
	// MaxRequests allowed per window.
	MaxRequests int
	// Window is the fixed-window duration.
	Window time.Duration
}

// Result reports the limiter's decision for one request.
type Result struct {
	Allowed bool
	// Limit echoes the policy maximum.
	Limit int
	// Remaining is the quota left in the current window, never negative.
	Remaining int
	// ResetAt is when the current window ends and the quota refills.
	ResetAt time.Time
}

// RetryAfter returns the remaining window time, floored to zero.
func (r Result) RetryAfter(now time.Time) time.Duration {
	d := r.ResetAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Limiter decides whether a request identified by key may proceed under the
// given policy. Implementations must be safe for concurrent use.
type Limiter interface {
	Allow(ctx context.Context, key string, policy Policy) (Result, error)
}
