package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const priorityKey = "homefeed:tile_priority"

var _ PriorityStore = (*RedisStore)(nil)

// RedisStore keeps the priority hint in Redis so it survives restarts
// and is shared across instances.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisStore(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     "", // no password
		DB:           0,  // default DB
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("Connected to Redis", "addr", addr)

	return &RedisStore{
		client: client,
		ctx:    ctx,
	}, nil
}

func (s *RedisStore) Get() (string, error) {
	val, err := s.client.Get(s.ctx, priorityKey).Result()
	if err == redis.Nil {
		return "", nil // Key doesn't exist
	}
	if err != nil {
		return "", fmt.Errorf("failed to get priority hint: %w", err)
	}
	return val, nil
}

func (s *RedisStore) Set(value string) error {
	if err := s.client.Set(s.ctx, priorityKey, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set priority hint: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear() error {
	if err := s.client.Del(s.ctx, priorityKey).Err(); err != nil {
		return fmt.Errorf("failed to clear priority hint: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
