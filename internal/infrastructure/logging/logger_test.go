package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		logger, err := New(Config{ServiceName: "paypal-checkout", Env: "local"})
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("docker json debug", func(t *testing.T) {
		logger, err := New(Config{ServiceName: "paypal-checkout", Env: "docker", Level: "DEBUG"})
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New(Config{Level: "verbose"})
		assert.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := New(Config{Format: "xml"})
		assert.Error(t, err)
	})
}
