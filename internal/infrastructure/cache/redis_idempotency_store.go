package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const idempotencyNamespace = "owneriq:idempotency:"

var _ shared.IdempotencyStore = (*RedisIdempotencyStore)(nil)

// RedisIdempotencyStore shares claims between API replicas. A claim is a
// string key holding "" while the request runs and the result afterwards;
// the key's TTL is the claim's lifetime.
type RedisIdempotencyStore struct {
	rdb redis.UniversalClient
}

// DialRedis connects and pings within five seconds.
func DialRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr(), err)
	}
	return rdb, nil
}

// NewRedisIdempotencyStore takes ownership of rdb; Close closes it.
func NewRedisIdempotencyStore(rdb redis.UniversalClient) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{rdb: rdb}
}

func redisKey(key string) string { return idempotencyNamespace + key }

// MarkProcessed relies on SET NX: only one caller can create the key.
func (s *RedisIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	claimed, err := s.rdb.SetNX(ctx, redisKey(key), "", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim idempotency key: %w", err)
	}
	return claimed, nil
}

func (s *RedisIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, redisKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("check idempotency key: %w", err)
	}
	return n == 1, nil
}

// Complete overwrites the claim with result and keeps its TTL. A claim that
// expired in the meantime is not recreated.
func (s *RedisIdempotencyStore) Complete(ctx context.Context, key, result string) error {
	updated, err := s.rdb.SetXX(ctx, redisKey(key), result, redis.KeepTTL).Result()
	switch {
	case err != nil:
		return fmt.Errorf("store idempotent result: %w", err)
	case !updated:
		return fmt.Errorf("idempotency key %q expired before completion", key)
	}
	return nil
}

func (s *RedisIdempotencyStore) Result(ctx context.Context, key string) (string, bool, error) {
	result, err := s.rdb.Get(ctx, redisKey(key)).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("read idempotent result: %w", err)
	}
	return result, result != "", nil
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}

func (s *RedisIdempotencyStore) Close() error {
	return s.rdb.Close()
}
