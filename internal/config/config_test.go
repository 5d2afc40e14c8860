package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDatabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("COMMENTS_DATABASE__HOST", "localhost")
	t.Setenv("COMMENTS_DATABASE__USER", "comments")
	t.Setenv("COMMENTS_DATABASE__PASSWORD", "secret")
	t.Setenv("COMMENTS_DATABASE__NAME", "comments")
}

func TestLoadConfigDefaults(t *testing.T) {
	setDatabaseEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "http://localhost:3000", cfg.Server.ClientURL)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "John", cfg.Auth.CurrentUserName)
	assert.Zero(t, cfg.Server.RateLimit)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, cfg.Primary.Env, cfg.Observability.Environment)
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
}

func TestLoadConfigOverrides(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv("COMMENTS_PRIMARY__ENV", "production")
	t.Setenv("COMMENTS_SERVER__PORT", "8080")
	t.Setenv("COMMENTS_SERVER__RATE_LIMIT", "20")
	t.Setenv("COMMENTS_AUTH__CURRENT_USER_NAME", "Sally")
	t.Setenv("COMMENTS_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, float64(20), cfg.Server.RateLimit)
	assert.Equal(t, "Sally", cfg.Auth.CurrentUserName)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.True(t, cfg.Observability.IsProduction())
	// Untouched observability fields keep their defaults.
	assert.True(t, cfg.Observability.HealthChecks.Enabled)
}

func TestLoadConfigMemoryDriverSkipsDatabase(t *testing.T) {
	t.Setenv("COMMENTS_STORAGE__DRIVER", StorageDriverMemory)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("postgres without database settings", func(t *testing.T) {
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "database config validation failed")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("COMMENTS_STORAGE__DRIVER", "sqlite")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "config validation failed")
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("COMMENTS_STORAGE__DRIVER", StorageDriverMemory)
		t.Setenv("COMMENTS_OBSERVABILITY__LOGGING__LEVEL", "loud")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "invalid logging level")
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.read_timeout", envKey("COMMENTS_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "observability.new_relic.license_key", envKey("COMMENTS_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}

func TestHealthCheckEnabled(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.True(t, cfg.HealthCheckEnabled("database"))
	assert.False(t, cfg.HealthCheckEnabled("queue"))

	cfg.HealthChecks.Enabled = false
	assert.False(t, cfg.HealthCheckEnabled("database"))
}
