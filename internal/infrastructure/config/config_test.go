package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		cfg, err := fromViper(viper.New())
		require.NoError(t, err)

		assert.Equal(t, "owneriq-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "owneriq", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "dummy-token", cfg.Demo.Token)
		assert.Equal(t, "dummy-id", cfg.Demo.UserID)
		assert.Equal(t, "local", cfg.Storage.Provider)
		assert.Equal(t, int64(25<<20), cfg.Upload.MaxFileSize)
		assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Equal(t, "USD", cfg.Report.Currency)
		assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
	})

	t.Run("loads values from environment variables with OWNERIQ prefix", func(t *testing.T) {
		t.Setenv("OWNERIQ_APP_NAME", "test-app")
		t.Setenv("OWNERIQ_APP_PORT", "9000")
		t.Setenv("OWNERIQ_DATABASE_HOST", "testdb.local")
		t.Setenv("OWNERIQ_DATABASE_PORT", "5433")
		t.Setenv("OWNERIQ_DATABASE_PASSWORD", "testpass")
		t.Setenv("OWNERIQ_AUTH_JWT_SECRET", "secret")
		t.Setenv("OWNERIQ_DEMO_ENABLED", "true")
		t.Setenv("OWNERIQ_STORAGE_PROVIDER", "s3")
		t.Setenv("OWNERIQ_UPLOAD_MAX_FILE_SIZE", "1024")

		cfg, err := fromViper(viper.New())
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "secret", cfg.Auth.JWTSecret)
		assert.True(t, cfg.Demo.Enabled)
		assert.Equal(t, "s3", cfg.Storage.Provider)
		assert.Equal(t, int64(1024), cfg.Upload.MaxFileSize)
	})

	t.Run("rejects unknown storage provider", func(t *testing.T) {
		t.Setenv("OWNERIQ_STORAGE_PROVIDER", "ftp")
		_, err := fromViper(viper.New())
		assert.Error(t, err)
	})
}

func TestValidate_Production(t *testing.T) {
	base := func() *Config {
		cfg := defaultConfig(t)
		cfg.App.Env = "production"
		cfg.Auth.JWTSecret = "0123456789abcdef0123456789abcdef"
		cfg.Database.Password = "pw"
		cfg.Database.SSLMode = "require"
		cfg.HTTP.CORSAllowOrigins = []string{"https://app.owneriq.com"}
		return cfg
	}

	t.Run("valid production config", func(t *testing.T) {
		assert.NoError(t, base().validate())
	})

	t.Run("short secret", func(t *testing.T) {
		cfg := base()
		cfg.Auth.JWTSecret = "short"
		assert.ErrorContains(t, cfg.validate(), "32 characters")
	})

	t.Run("jwks replaces the shared secret", func(t *testing.T) {
		cfg := base()
		cfg.Auth.JWTSecret = ""
		cfg.Auth.JWKSURL = "https://auth.example.com/.well-known/jwks.json"
		assert.NoError(t, cfg.validate())
	})

	t.Run("demo mode is not allowed", func(t *testing.T) {
		cfg := base()
		cfg.Demo.Enabled = true
		assert.ErrorContains(t, cfg.validate(), "demo.enabled")
	})

	t.Run("wildcard CORS", func(t *testing.T) {
		cfg := base()
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
		assert.Error(t, cfg.validate())
	})

	t.Run("sslmode disable", func(t *testing.T) {
		cfg := base()
		cfg.Database.SSLMode = "disable"
		assert.Error(t, cfg.validate())
	})
}

func TestValidate_Development(t *testing.T) {
	t.Run("pool sizes", func(t *testing.T) {
		cfg := defaultConfig(t)
		cfg.Database.MaxIdleConns = 100
		assert.ErrorContains(t, cfg.validate(), "cannot exceed")
	})

	t.Run("reports every problem", func(t *testing.T) {
		cfg := defaultConfig(t)
		cfg.Telemetry.SamplingRatio = 1.5
		cfg.Storage.Provider = "gcs"
		cfg.Upload.MaxFileSize = 0

		err := cfg.validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "sampling_ratio")
		assert.ErrorContains(t, err, "storage.provider")
		assert.ErrorContains(t, err, "upload.max_file_size")
	})

	t.Run("production rules do not apply", func(t *testing.T) {
		cfg := defaultConfig(t)
		cfg.Demo.Enabled = true
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
		assert.NoError(t, cfg.validate())
	})
}

func TestFromViper_ProfilingNameFollowsService(t *testing.T) {
	t.Setenv("OWNERIQ_TELEMETRY_SERVICE_NAME", "owneriq-staging")
	cfg := defaultConfig(t)
	assert.Equal(t, "owneriq-staging", cfg.Telemetry.Profiling.ApplicationName)
}

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)
	return cfg
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss word", DBName: "owneriq", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/owneriq?sslmode=disable", d.DSN())
}
