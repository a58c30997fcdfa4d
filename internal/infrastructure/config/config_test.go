package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"ERP_APP_NAME":                os.Getenv("ERP_APP_NAME"),
		"ERP_APP_ENV":                 os.Getenv("ERP_APP_ENV"),
		"ERP_APP_PORT":                os.Getenv("ERP_APP_PORT"),
		"ERP_DATABASE_HOST":           os.Getenv("ERP_DATABASE_HOST"),
		"ERP_DATABASE_PORT":           os.Getenv("ERP_DATABASE_PORT"),
		"ERP_DATABASE_USER":           os.Getenv("ERP_DATABASE_USER"),
		"ERP_DATABASE_PASSWORD":       os.Getenv("ERP_DATABASE_PASSWORD"),
		"ERP_DATABASE_DBNAME":         os.Getenv("ERP_DATABASE_DBNAME"),
		"ERP_DATABASE_SSLMODE":        os.Getenv("ERP_DATABASE_SSLMODE"),
		"ERP_DATABASE_MAX_OPEN_CONNS": os.Getenv("ERP_DATABASE_MAX_OPEN_CONNS"),
		"ERP_DATABASE_MAX_IDLE_CONNS": os.Getenv("ERP_DATABASE_MAX_IDLE_CONNS"),
		"ERP_REFRESH_CONCURRENCY":     os.Getenv("ERP_REFRESH_CONCURRENCY"),
		"ERP_PROVIDER_ROOT":           os.Getenv("ERP_PROVIDER_ROOT"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "myerpv2", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "erp", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, int64(10), cfg.Refresh.Concurrency)
		assert.Equal(t, "./reports", cfg.Provider.Root)
	})

	t.Run("loads values from environment variables with ERP prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("ERP_APP_NAME", "test-app")
		os.Setenv("ERP_DATABASE_HOST", "testdb.local")
		os.Setenv("ERP_DATABASE_PORT", "5433")
		os.Setenv("ERP_DATABASE_PASSWORD", "testpass")
		os.Setenv("ERP_REFRESH_CONCURRENCY", "4")
		os.Setenv("ERP_PROVIDER_ROOT", "/var/reports")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, int64(4), cfg.Refresh.Concurrency)
		assert.Equal(t, "/var/reports", cfg.Provider.Root)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("ERP_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("ERP_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("rejects negative refresh concurrency", func(t *testing.T) {
		clearEnv()
		os.Setenv("ERP_REFRESH_CONCURRENCY", "-3")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "refresh.concurrency")
	})

	t.Run("production requires password and ssl", func(t *testing.T) {
		clearEnv()
		os.Setenv("ERP_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password")

		os.Setenv("ERP_DATABASE_PASSWORD", "secret")
		_, err = Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")

		os.Setenv("ERP_DATABASE_SSLMODE", "require")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5433,
		User:     "erp",
		Password: "p@ss/word",
		DBName:   "ledger",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.local:5433")
	assert.Contains(t, dsn, "sslmode=require")
	// special characters must be escaped, not passed through
	assert.NotContains(t, dsn, "p@ss/word")
}
