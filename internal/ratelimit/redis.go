package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window limiter shared across instances. The counter
// key is created with INCR; the first hit of a window attaches the expiry, so
// the key and its window die together.
type RedisLimiter struct {
	client *redis.Client

	// now is swappable in tests.
	now func() time.Time
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client, now: time.Now}
}

// Allow implements Limiter.
func (l *RedisLimiter) Allow(ctx context.Context, key string, policy Policy) (Result, error) {
	redisKey := "ratelimit:" + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, policy.Window).Err(); err != nil {
			return Result{}, fmt.Errorf("ratelimit expire: %w", err)
		}
	}

	ttl, err := l.client.TTL(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit ttl: %w", err)
	}
	if ttl < 0 {
		// INCR succeeded but the expiry never stuck (e.g. a crash between the
		// two commands). Reattach it rather than leaving an immortal counter.
		ttl = policy.Window
		_ = l.client.Expire(ctx, redisKey, ttl).Err()
	}
	resetAt := l.now().Add(ttl)

	if int(count) > policy.MaxRequests {
		return Result{Allowed: false, Limit: policy.MaxRequests, Remaining: 0, ResetAt: resetAt}, nil
	}
	return Result{
		Allowed:   true,
		Limit:     policy.MaxRequests,
		Remaining: policy.MaxRequests - int(count),
		ResetAt:   resetAt,
	}, nil
}
