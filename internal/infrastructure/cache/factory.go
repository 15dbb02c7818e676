package cache

import (
	"context"
	"fmt"

	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewIdempotencyStore picks the store for upload Idempotency-Keys. Redis is
// used when enabled; otherwise, or when Redis is unreachable and
// allowMemoryFallback is set, keys live in process memory and retries that
// reach another instance are not de-duplicated.
func NewIdempotencyStore(cfg config.RedisConfig, allowMemoryFallback bool, log *zap.Logger) (shared.IdempotencyStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("idempotency")

	if !cfg.Enabled {
		log.Info("Redis disabled, using in-memory idempotency store")
		return NewMemoryIdempotencyStore(), nil
	}

	rdb, err := DialRedis(context.Background(), cfg)
	if err == nil {
		log.Info("Using Redis idempotency store", zap.String("addr", cfg.Addr()))
		return NewRedisIdempotencyStore(rdb), nil
	}
	if !allowMemoryFallback {
		return nil, fmt.Errorf("redis required for idempotency but unavailable: %w", err)
	}

	log.Warn("Redis unavailable, falling back to in-memory idempotency store", zap.Error(err))
	return NewMemoryIdempotencyStore(), nil
}
