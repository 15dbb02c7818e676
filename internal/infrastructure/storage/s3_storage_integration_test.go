//go:build integration

package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// newMinioStorage starts MinIO and returns a store for a fresh bucket.
func newMinioStorage(t *testing.T) *S3ObjectStorage {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:latest",
			ExposedPorts: []string{"9000/tcp"},
			Cmd:          []string{"server", "/data"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     "minioadmin",
				"MINIO_ROOT_PASSWORD": "minioadmin",
			},
			WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start MinIO container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: Failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9000/tcp")
	require.NoError(t, err)

	cfg := testS3Config()
	cfg.Endpoint = fmt.Sprintf("%s:%s", host, port.Port())
	cfg.Bucket = "owneriq-integration"
	cfg.AccessKeyID = "minioadmin"
	cfg.SecretAccessKey = "minioadmin"

	store, err := NewS3ObjectStorage(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.EnsureBucket(ctx))
	return store
}

func TestS3Integration_Lifecycle(t *testing.T) {
	store := newMinioStorage(t)
	ctx := context.Background()
	key := "imports/integration/batch/1_closing.pdf"

	require.NoError(t, store.Upload(ctx, key, []byte("%PDF-1.4"), "application/pdf"))

	exists, err := store.ObjectExists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	link, _, err := store.GenerateDownloadURL(ctx, key, time.Minute)
	require.NoError(t, err)
	resp, err := http.Get(link)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "%PDF-1.4", string(body))

	require.NoError(t, store.DeleteObject(ctx, key))
	exists, err = store.ObjectExists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.EnsureBucket(ctx), "second EnsureBucket is a no-op")
}
