package logger

import (
	"clinic-bridge-service/internal/app/config"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBuildZapConfig(t *testing.T) {
	t.Run("development writes to standard streams", func(t *testing.T) {
		cfg := buildZapConfig(
			&config.DriverConfig{Logger: config.Logger{Level: "warn"}},
			&config.InternalConfig{App: config.App{Env: "development"}},
		)
		assert.Equal(t, []string{"stdout"}, cfg.OutputPaths)
		assert.Equal(t, zap.WarnLevel, cfg.Level.Level())
		assert.True(t, cfg.Development)
	})

	t.Run("production also writes to files", func(t *testing.T) {
		cfg := buildZapConfig(
			&config.DriverConfig{Logger: config.Logger{Level: "bogus", OutputFileName: "app.log", OutputErrorFileName: "app_error.log"}},
			&config.InternalConfig{App: config.App{Env: "production"}},
		)
		assert.Equal(t, []string{"stdout", "app.log"}, cfg.OutputPaths)
		assert.Equal(t, []string{"stderr", "app_error.log"}, cfg.ErrorOutputPaths)
		assert.Equal(t, zap.InfoLevel, cfg.Level.Level())
	})
}

func TestNewLogrusLogger(t *testing.T) {
	logger := NewLogrusLogger(&config.InternalConfig{App: config.App{Env: "production"}})
	_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}
