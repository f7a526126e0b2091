package logger_test

import (
	"testing"

	"github.com/deppfellow/go-crudkit/internal/config"
	"github.com/deppfellow/go-crudkit/internal/logger"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithService(t *testing.T) {
	t.Run("Should honour the configured level", func(t *testing.T) {
		cfg := config.DefaultObservabilityConfig()
		cfg.Logging.Level = "warn"

		l := logger.NewLoggerWithService(cfg, nil)
		assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
	})

	t.Run("Should leave New Relic disabled without a license key", func(t *testing.T) {
		cfg := config.DefaultObservabilityConfig()

		svc, err := logger.NewLoggerService(cfg)
		require.NoError(t, err)
		assert.Nil(t, svc.GetApplication())
	})
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelDebug, logger.GetPgxTraceLogLevel(zerolog.DebugLevel))
	assert.Equal(t, tracelog.LogLevelInfo, logger.GetPgxTraceLogLevel(zerolog.InfoLevel))
	assert.Equal(t, tracelog.LogLevelError, logger.GetPgxTraceLogLevel(zerolog.ErrorLevel))
	assert.Equal(t, tracelog.LogLevelNone, logger.GetPgxTraceLogLevel(zerolog.Disabled))
}
