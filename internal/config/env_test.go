package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":      "1.2.3",
		"APP_ADMIN_MARKER": "staff",
		"APP_DEMO_SEED":    "true",

		"STORAGE_DB_DATABASE_URI": "/var/lib/study2skills/local.db",

		"AI_ADDRESS":         "https://gen.example.com",
		"AI_API_KEY":         "secret-key",
		"AI_REQUEST_TIMEOUT": "30s",

		"NOTIFY_SENDGRID_KEY": "SG.key",
		"NOTIFY_FROM_EMAIL":   "hello@study2skills.com",

		"WORKERS_JOB_TICK_INTERVAL": "2s",
		"WORKERS_STATS_CACHE_TTL":   "1m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "staff", cfg.App.AdminMarker)
	assert.True(t, cfg.App.DemoSeed)

	assert.Equal(t, "/var/lib/study2skills/local.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "https://gen.example.com", cfg.AI.Address)
	assert.Equal(t, "secret-key", cfg.AI.APIKey)
	assert.Equal(t, 30*time.Second, cfg.AI.RequestTimeout)

	assert.Equal(t, "SG.key", cfg.Notify.SendGridKey)
	assert.Equal(t, "hello@study2skills.com", cfg.Notify.FromEmail)

	assert.Equal(t, 2*time.Second, cfg.Workers.JobTickInterval)
	assert.Equal(t, time.Minute, cfg.Workers.StatsCacheTTL)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"AI_ADDRESS":              "gen.example.com",
		"STORAGE_DB_DATABASE_URI": ":memory:",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "gen.example.com", cfg.AI.Address)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)

	assert.Empty(t, cfg.App.Version)
	assert.Empty(t, cfg.AI.APIKey)
	assert.Zero(t, cfg.AI.RequestTimeout)
	assert.Empty(t, cfg.Notify.SendGridKey)
	assert.Zero(t, cfg.Workers.JobTickInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_Defaults(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// envDefault tags apply even without any variables set.
	assert.Equal(t, "admin", cfg.App.AdminMarker)
	assert.Equal(t, "no-reply@study2skills.com", cfg.Notify.FromEmail)
	assert.False(t, cfg.App.DemoSeed)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"AI_REQUEST_TIMEOUT": "not-a-duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	assert.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",
		"APP_ADMIN_MARKER",
		"APP_DEMO_SEED",

		"STORAGE_DB_DATABASE_URI",

		"AI_ADDRESS",
		"AI_API_KEY",
		"AI_REQUEST_TIMEOUT",

		"NOTIFY_SENDGRID_KEY",
		"NOTIFY_FROM_EMAIL",

		"WORKERS_JOB_TICK_INTERVAL",
		"WORKERS_STATS_CACHE_TTL",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}
