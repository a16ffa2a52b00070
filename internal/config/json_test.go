package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON are strings like "30s" or "1m".
	jsonBody := `{
		"app": {
			"version": "1.2.3",
			"admin_marker": "staff",
			"demo_seed": true
		},
		"storage": {
			"db": { "dsn": "/var/lib/study2skills/local.db" }
		},
		"ai": {
			"address": "https://gen.example.com",
			"api_key": "secret-key",
			"request_timeout": "30s"
		},
		"notify": {
			"sendgrid_key": "SG.key",
			"from_email": "hello@study2skills.com"
		},
		"workers": {
			"job_tick_interval": "2s",
			"stats_cache_ttl": "1m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

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

	// parseJSON never forwards the file path itself.
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_PartialFile(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	jsonBody := `{"ai": {"address": "gen.example.com"}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "gen.example.com", cfg.AI.Address)
	assert.Empty(t, cfg.AI.APIKey)
	assert.Zero(t, cfg.Workers.JobTickInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_MalformedBody(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	cfg, err := parseJSON(p)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "string seconds", input: `"30s"`, expected: 30 * time.Second},
		{name: "string minutes", input: `"1m"`, expected: time.Minute},
		{name: "numeric nanoseconds", input: `1000000000`, expected: time.Second},
		{name: "garbage string", input: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(out))
}
