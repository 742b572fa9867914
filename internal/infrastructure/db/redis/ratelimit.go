package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter implements a fixed-window request counter backed by Redis.
// Key format: ratelimit:<client_ip>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per key per window.
func NewRateLimiter(client *redis.Client, limit int64, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 100
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RateLimiter{client: client, limit: limit, window: window}
}

// Allow counts a request for key and reports whether it is still within the
// window's budget. The counter key expires with the window, so idle clients
// cost nothing.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowStart := time.Now().Unix() / int64(l.window.Seconds()) * int64(l.window.Seconds())
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, windowStart)

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}

	return count.Val() <= l.limit, nil
}
