package mem

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisResults struct {
	rdb    redis.UniversalClient
	prefix string
}

// NewRedisResults connects to addr and verifies the connection with a ping.
func NewRedisResults(ctx context.Context, addr, prefix string) (*RedisResults, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisResultsFromClient(rdb, prefix), nil
}

func NewRedisResultsFromClient(rdb redis.UniversalClient, prefix string) *RedisResults {
	return &RedisResults{rdb: rdb, prefix: prefix}
}

func (s *RedisResults) key(k string) string {
	return s.prefix + k
}

func (s *RedisResults) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.rdb.Set(ctx, s.key(key), value, ttl).Err()
}

func (s *RedisResults) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (s *RedisResults) Close() error {
	return s.rdb.Close()
}
