package utils

import (
	"testing"

	"pcare/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func initLoggerWith(t *testing.T, env, logLevel string) {
	t.Helper()
	prev := config.AppConfig
	t.Cleanup(func() {
		config.AppConfig = prev
		Logger = nil
	})

	config.AppConfig.Env = env
	config.AppConfig.LogLevel = logLevel
	Logger = nil
	InitializeLogger()
}

func TestInitializeLoggerHonorsLogLevel(t *testing.T) {
	initLoggerWith(t, "development", "warn")

	assert.True(t, Logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, Logger.Core().Enabled(zapcore.InfoLevel))
}

func TestInitializeLoggerEnvironmentDefaults(t *testing.T) {
	t.Run("development defaults to debug", func(t *testing.T) {
		initLoggerWith(t, "development", "")
		assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("production defaults to info", func(t *testing.T) {
		initLoggerWith(t, "production", "")
		assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("unknown level keeps the default", func(t *testing.T) {
		initLoggerWith(t, "production", "loud")
		assert.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))
	})
}
