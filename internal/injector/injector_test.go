package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/posesync/internal/config"
	"github.com/zeusync/posesync/internal/core/observability/log"
)

func TestInitializeSyncers(t *testing.T) {
	cfg := config.Default()
	cfg.PhysicsScale = 8

	s3, err := InitializeSyncer3(&cfg)
	require.NoError(t, err)
	assert.Equal(t, "3d", s3.Dimension())
	assert.Equal(t, float32(8), s3.PhysicsScale())

	cfg.Dimension = config.Dim2
	s2, err := InitializeSyncer2(&cfg)
	require.NoError(t, err)
	assert.Equal(t, "2d", s2.Dimension())
}

func TestInitializeRejectsBadLogLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "chatty"

	_, err := InitializeSyncer3(&cfg)
	assert.ErrorIs(t, err, log.ErrUnknownLevel)
}
