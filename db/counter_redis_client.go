package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"crawl-server/logger"
)

// CounterRedisClient keeps expiring counters in Redis.
type CounterRedisClient struct {
	client *redis.Client
}

// NewCounterRedisClient wraps a go-redis client. Connectivity is checked
// with Ping; a failed check is returned rather than fatal so the caller can
// decide to run without Redis.
func NewCounterRedisClient(ctx context.Context, client *redis.Client) (*CounterRedisClient, error) {
	c := &CounterRedisClient{client: client}
	if err := c.Ping(ctx); err != nil {
		return nil, err
	}
	logger.Info("connected to redis", zap.String("addr", client.Options().Addr))
	return c, nil
}

// NewRedisClientFromOptions dials Redis with the given address, password and db.
func NewRedisClientFromOptions(ctx context.Context, addr, password string, dbIndex int) (*CounterRedisClient, error) {
	return NewCounterRedisClient(ctx, redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbIndex,
	}))
}

// IncrWithExpiry increments key and refreshes its expiry. Both commands run
// in one MULTI/EXEC, so a counter never outlives ttl after its last write.
func (r *CounterRedisClient) IncrWithExpiry(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, errors.Wrapf(err, "failed to increment %s", key)
	}
	return incr.Val(), nil
}

// TTL returns the remaining lifetime of key, or a non-positive duration
// when the key is missing or has no expiry.
func (r *CounterRedisClient) TTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read ttl of %s", key)
	}
	return ttl, nil
}

func (r *CounterRedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "could not connect to redis")
	}
	return nil
}

func (r *CounterRedisClient) Close() error {
	return r.client.Close()
}
