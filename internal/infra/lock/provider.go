package lock

import (
	"context"
	"log/slog"
	"time"

	"storeradar/config"
	"storeradar/internal/domain/lifecycle"
	"storeradar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the sync lock, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis lock when Redis is configured, otherwise a lock that always succeeds.
func New(params Params) (service.SyncLock, error) {
	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		params.Logger.Info("Redis not configured, sync lock is process local")

		return noopLock{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	key, ttl := defaultLockKey, time.Duration(0)
	if syncCfg := params.Config.Sync; syncCfg != nil {
		if syncCfg.LockKey != "" {
			key = syncCfg.LockKey
		}
		ttl = syncCfg.LockTTL
	}

	lock, err := NewRedisLock(client, key, ttl, params.Logger)
	if err != nil {
		_ = client.Close()

		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return lock, nil
}
