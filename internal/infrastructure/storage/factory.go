package storage

import (
	"context"
	"fmt"

	onboardingapp "github.com/owneriq/backend/internal/application/onboarding"
	"github.com/owneriq/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewObjectStorage returns the store named by cfg.Provider ("s3" or
// "local", the default). The S3 bucket is created when missing.
func NewObjectStorage(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (onboardingapp.ObjectStorage, error) {
	switch cfg.Provider {
	case "s3":
		store, err := NewS3ObjectStorage(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		logger.Info("Using S3 document storage", zap.String("bucket", store.Bucket()))
		return store, nil
	case "local", "":
		store, err := NewLocalObjectStorage(cfg.LocalDir, cfg.PublicURL, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using local document storage", zap.String("dir", cfg.LocalDir))
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}
