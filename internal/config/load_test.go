package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads from environment", func(t *testing.T) {
		t.Setenv("FROTA_DATABASE_URL", "postgres://localhost:5432/frota")
		t.Setenv("FROTA_AUTH_JWT_SECRET", "test-secret-that-is-long-enough-for-tests")
		t.Setenv("FROTA_SERVER_PORT", "9090")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Server.LogLevel)
		assert.Equal(t, "postgres://localhost:5432/frota", cfg.Database.URL)
		assert.Equal(t, "test-secret-that-is-long-enough-for-tests", cfg.Auth.JWTSecret)
		assert.Equal(t, 1440, cfg.Auth.TokenLifetimeMinutes)
	})

	t.Run("applies timeout and pool defaults", func(t *testing.T) {
		t.Setenv("FROTA_DATABASE_URL", "postgres://localhost:5432/frota")
		t.Setenv("FROTA_AUTH_JWT_SECRET", "test-secret-that-is-long-enough-for-tests")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 15, cfg.Server.ReadTimeoutSeconds)
		assert.Equal(t, 15, cfg.Server.WriteTimeoutSeconds)
		assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 5, cfg.Database.ConnMaxLifetimeMinutes)
	})

	t.Run("environment overrides timeouts", func(t *testing.T) {
		t.Setenv("FROTA_DATABASE_URL", "postgres://localhost:5432/frota")
		t.Setenv("FROTA_AUTH_JWT_SECRET", "test-secret-that-is-long-enough-for-tests")
		t.Setenv("FROTA_SERVER_SHUTDOWN_TIMEOUT_SECONDS", "30")
		t.Setenv("FROTA_DATABASE_MAX_OPEN_CONNS", "25")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 30, cfg.Server.ShutdownTimeoutSeconds)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("fails without jwt secret", func(t *testing.T) {
		t.Setenv("FROTA_DATABASE_URL", "postgres://localhost:5432/frota")
		t.Setenv("FROTA_AUTH_JWT_SECRET", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("fails on short jwt secret", func(t *testing.T) {
		t.Setenv("FROTA_DATABASE_URL", "postgres://localhost:5432/frota")
		t.Setenv("FROTA_AUTH_JWT_SECRET", "too-short")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("fails without database url", func(t *testing.T) {
		t.Setenv("FROTA_DATABASE_URL", "")
		t.Setenv("FROTA_AUTH_JWT_SECRET", "test-secret-that-is-long-enough-for-tests")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects invalid log level", func(t *testing.T) {
		t.Setenv("FROTA_DATABASE_URL", "postgres://localhost:5432/frota")
		t.Setenv("FROTA_AUTH_JWT_SECRET", "test-secret-that-is-long-enough-for-tests")
		t.Setenv("FROTA_SERVER_LOG_LEVEL", "verbose")

		_, err := Load()
		assert.Error(t, err)
	})
}
