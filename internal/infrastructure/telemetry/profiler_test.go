package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewProfiler(t *testing.T) {
	t.Run("disabled is a no-op", func(t *testing.T) {
		p, err := NewProfiler(ProfilerConfig{Enabled: false}, zap.NewNop())
		require.NoError(t, err)
		assert.False(t, p.IsEnabled())
		assert.NoError(t, p.Stop())
		assert.NoError(t, p.Stop())
	})

	t.Run("requires a server address", func(t *testing.T) {
		_, err := NewProfiler(ProfilerConfig{Enabled: true, ApplicationName: "owneriq"}, zap.NewNop())
		assert.ErrorContains(t, err, "server address")
	})

	t.Run("requires an application name", func(t *testing.T) {
		_, err := NewProfiler(ProfilerConfig{Enabled: true, ServerAddress: "http://localhost:4040"}, zap.NewNop())
		assert.ErrorContains(t, err, "application name")
	})
}

func TestEnableSpanProfiles_DisabledTracerIsNoop(t *testing.T) {
	tp := &TracerProvider{logger: zap.NewNop()}
	assert.NotPanics(t, tp.EnableSpanProfiles)
}

func TestNewProfiler_ReportsAllMissingFields(t *testing.T) {
	_, err := NewProfiler(ProfilerConfig{Enabled: true}, zap.NewNop())
	require.Error(t, err)
	assert.ErrorContains(t, err, "server address")
	assert.ErrorContains(t, err, "application name")
}
