package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"todolist/internal/core/port"
)

// RedisStore shares rate-limit counters across instances.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, url string) (port.CounterStore, error) {
	opts, err := redis.ParseURL(url)

	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

func (rs *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	count, err := rs.client.Incr(ctx, key).Result()

	if err != nil {
		return 0, time.Time{}, err
	}

	// First hit in the window owns the expiry.
	if count == 1 {
		if err := rs.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
	}

	ttl, err := rs.client.TTL(ctx, key).Result()

	if err != nil {
		return 0, time.Time{}, err
	}

	return int(count), time.Now().Add(ttl), nil
}

func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
