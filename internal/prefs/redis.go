package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "twiddle:prefs:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore connects to addr and checks the connection with PING.
func NewRedisStore(ctx context.Context, addr string) (Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &redisStore{client: client}, nil
}

func (s *redisStore) Get(ctx context.Context, key, def string) (string, error) {
	v, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("failed to get preference %q: %w", key, err)
	}
	return v, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set preference %q: %w", key, err)
	}
	return nil
}

func (s *redisStore) Close() error { return s.client.Close() }
