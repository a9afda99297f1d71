// Package ratelimit implements per-key cooldowns, such as the resend window
// for verification emails.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mock_ratelimit.go -package=ratelimit auction-house/internal/ratelimit Limiter

// Limiter allows one event per key per window.
type Limiter interface {
	// Allow reports whether the event may happen now and, if not, how long
	// until it may. An allowed call starts a new window for key.
	Allow(ctx context.Context, key string, window time.Duration) (bool, time.Duration, error)
}

// RedisLimiter stores cooldown markers as expiring keys, shared across instances.
type RedisLimiter struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisLimiter(client redis.UniversalClient, prefix string) *RedisLimiter {
	return &RedisLimiter{client: client, prefix: prefix}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, window time.Duration) (bool, time.Duration, error) {
	k := l.prefix + ":" + key
	ok, err := l.client.SetNX(ctx, k, "1", window).Result()
	if err != nil {
		return false, 0, fmt.Errorf("ratelimit: setnx %s: %w", k, err)
	}
	if ok {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, k).Result()
	if err != nil {
		return false, 0, fmt.Errorf("ratelimit: ttl %s: %w", k, err)
	}
	if ttl < 0 {
		ttl = window
	}
	return false, ttl, nil
}

// MemoryLimiter is a process-local Limiter.
type MemoryLimiter struct {
	mu    sync.Mutex
	until map[string]time.Time
	now   func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		until: make(map[string]time.Time),
		now:   time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (l *MemoryLimiter) WithClock(now func() time.Time) *MemoryLimiter {
	l.now = now
	return l
}

func (l *MemoryLimiter) Allow(_ context.Context, key string, window time.Duration) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if until, ok := l.until[key]; ok && now.Before(until) {
		return false, until.Sub(now), nil
	}
	l.until[key] = now.Add(window)
	return true, 0, nil
}
