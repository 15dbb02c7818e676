package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	onboardingapp "github.com/owneriq/backend/internal/application/onboarding"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var _ onboardingapp.ObjectStorage = (*LocalObjectStorage)(nil)

// LocalObjectStorage keeps documents on a filesystem. It is the
// development provider; URLs point at BaseURL and are not signed.
type LocalObjectStorage struct {
	fs      afero.Fs
	BaseURL string
	logger  *zap.Logger
}

// NewLocalObjectStorage stores documents under dir on the OS filesystem
func NewLocalObjectStorage(dir, baseURL string, logger *zap.Logger) (*LocalObjectStorage, error) {
	if dir == "" {
		return nil, errors.New("storage directory is required")
	}
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return NewLocalObjectStorageFs(afero.NewBasePathFs(osFs, dir), baseURL, logger), nil
}

// NewLocalObjectStorageFs stores documents on fs
func NewLocalObjectStorageFs(fs afero.Fs, baseURL string, logger *zap.Logger) *LocalObjectStorage {
	if baseURL == "" {
		baseURL = "http://localhost:8080/files"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalObjectStorage{
		fs:      fs,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

// cleanKey rejects keys that would escape the storage root
func cleanKey(storageKey string) (string, error) {
	if storageKey == "" {
		return "", errors.New("storage key is required")
	}
	if strings.Contains(storageKey, "..") {
		return "", fmt.Errorf("invalid storage key %q", storageKey)
	}
	return path.Clean("/" + storageKey), nil
}

// Upload writes the document to the filesystem
func (s *LocalObjectStorage) Upload(_ context.Context, storageKey string, data []byte, _ string) error {
	key, err := cleanKey(storageKey)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(path.Dir(key), 0o755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, key, data, 0o644); err != nil {
		return fmt.Errorf("failed to write object: %w", err)
	}
	s.logger.Debug("Object stored locally", zap.String("key", storageKey), zap.Int("size", len(data)))
	return nil
}

// GenerateDownloadURL returns BaseURL/key with an informational expiry
func (s *LocalObjectStorage) GenerateDownloadURL(
	_ context.Context,
	storageKey string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	key, err := cleanKey(storageKey)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(expiresIn)
	u := s.BaseURL + (&url.URL{Path: key}).EscapedPath() + "?expires=" + expiresAt.UTC().Format(time.RFC3339)
	return u, expiresAt, nil
}

// DeleteObject removes the document. Deleting a missing object succeeds.
func (s *LocalObjectStorage) DeleteObject(_ context.Context, storageKey string) error {
	key, err := cleanKey(storageKey)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// ObjectExists checks if the document is on the filesystem
func (s *LocalObjectStorage) ObjectExists(_ context.Context, storageKey string) (bool, error) {
	key, err := cleanKey(storageKey)
	if err != nil {
		return false, err
	}
	return afero.Exists(s.fs, key)
}
