package lock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisLockTTL       = 30 * time.Second
	redisRetryInterval = 50 * time.Millisecond
)

// RedisRegistry implements Registry with SET NX, for multi-instance
// deployments where an in-process mutex is not enough.
type RedisRegistry struct {
	client *redis.Client
}

func NewRedisRegistry(url string) (*RedisRegistry, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisRegistry{client: redis.NewClient(opts)}, nil
}

func (r *RedisRegistry) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	lockKey := "lock:" + key

	ticker := time.NewTicker(redisRetryInterval)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, lockKey, token, redisLockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			release := func() {
				// Only delete our own lock; a TTL expiry may have handed the
				// key to another holder.
				releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				val, err := r.client.Get(releaseCtx, lockKey).Result()
				if err == nil && val == token {
					r.client.Del(releaseCtx, lockKey)
				}
			}
			return release, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (r *RedisRegistry) Close() error {
	return r.client.Close()
}
