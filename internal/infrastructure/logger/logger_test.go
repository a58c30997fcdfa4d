package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestNew(t *testing.T) {
	t.Run("creates logger with debug level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Level = "debug"

		logger, err := New(cfg)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Level = "whatever"

		logger, err := New(cfg)
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("production environment uses json", func(t *testing.T) {
		logger, err := NewForEnvironment("production")
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})
}

func TestContextHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	ctx, enriched := WithTenantID(context.Background(), base, "t-1")
	_, enriched = WithRequestID(ctx, enriched, "r-1")
	enriched.Info("hello")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "t-1", fields["tenant_id"])
	assert.Equal(t, "r-1", fields["request_id"])
	assert.Equal(t, "t-1", GetTenantID(ctx))
}

func TestFromContext(t *testing.T) {
	t.Run("returns attached logger", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		ctx := WithContext(context.Background(), zap.New(core))

		FromContext(ctx).Info("from context")
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("returns noop without logger", func(t *testing.T) {
		assert.NotPanics(t, func() {
			FromContext(context.Background()).Info("dropped")
		})
	})
}

func TestGormLogger(t *testing.T) {
	newObserved := func(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
		core, logs := observer.New(zapcore.DebugLevel)
		return NewGormLogger(zap.New(core), level), logs
	}

	t.Run("logs sql errors", func(t *testing.T) {
		gl, logs := newObserved(gormlogger.Error)

		gl.Trace(context.Background(), time.Now(), func() (string, int64) {
			return "SELECT 1", 0
		}, errors.New("boom"))

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.ErrorLevel, entry.Level)
		assert.Equal(t, "SELECT 1", entry.ContextMap()["sql"])
	})

	t.Run("ignores record not found", func(t *testing.T) {
		gl, logs := newObserved(gormlogger.Error)

		gl.Trace(context.Background(), time.Now(), func() (string, int64) {
			return "SELECT 1", 0
		}, gormlogger.ErrRecordNotFound)

		assert.Equal(t, 0, logs.Len())
	})

	t.Run("warns on slow queries", func(t *testing.T) {
		gl, logs := newObserved(gormlogger.Warn)

		gl.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
			return "SELECT pg_sleep(1)", 1
		}, nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		gl, logs := newObserved(gormlogger.Silent)

		gl.Trace(context.Background(), time.Now(), func() (string, int64) {
			return "SELECT 1", 1
		}, errors.New("boom"))

		assert.Equal(t, 0, logs.Len())
	})
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("unknown"))
}
