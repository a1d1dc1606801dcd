// Package lock provides the scheduler's cross-replica mutual exclusion.
package lock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storeradar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL = 25 * time.Hour
	defaultLockKey = "storeradar:sync:lock"
)

// releaseScript deletes the key only while it still holds our owner token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// redisStore is the subset of *redis.Client the lock needs.
type redisStore interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	redis.Scripter
}

// RedisLock implements service.SyncLock using SET NX with a TTL.
type RedisLock struct {
	client redisStore
	key    string
	ttl    time.Duration
	logger *slog.Logger

	mu    sync.Mutex
	owner string
}

// NewRedisLock constructs a Redis-backed lock.
func NewRedisLock(client redisStore, key string, ttl time.Duration, logger *slog.Logger) (*RedisLock, error) {
	if client == nil {
		return nil, errors.New("redis client required for lock")
	}
	if key == "" {
		return nil, errors.New("lock key is required")
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}

	return &RedisLock{client: client, key: key, ttl: ttl, logger: logger}, nil
}

var _ service.SyncLock = (*RedisLock)(nil)

// Acquire tries to own the lock for the configured TTL.
func (l *RedisLock) Acquire(ctx context.Context) (bool, error) {
	owner := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.key, owner, l.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "setnx")
	}
	if ok {
		l.mu.Lock()
		l.owner = owner
		l.mu.Unlock()
	}

	return ok, nil
}

// Release frees the lock only if the owner value still matches.
func (l *RedisLock) Release(ctx context.Context) error {
	l.mu.Lock()
	owner := l.owner
	l.owner = ""
	l.mu.Unlock()

	if owner == "" {
		return nil
	}

	deleted, err := releaseScript.Run(ctx, l.client, []string{l.key}, owner).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return errors.Wrap(err, "release lock")
	}
	if deleted == 0 && l.logger != nil {
		l.logger.WarnContext(ctx, "sync lock expired before release", slog.String("key", l.key))
	}

	return nil
}

// noopLock always grants the lock; used when no Redis is configured.
type noopLock struct{}

func (noopLock) Acquire(context.Context) (bool, error) { return true, nil }
func (noopLock) Release(context.Context) error         { return nil }
