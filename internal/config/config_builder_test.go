package config

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("source failed")

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "source failed")
}

// TestBuild_MergePriority verifies that earlier sources win for non-zero
// fields and later sources only fill gaps.
func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			AI: AI{Address: "first.example.com"},
		},
		&StructuredConfig{
			AI: AI{
				Address:        "second.example.com",
				APIKey:         "filled-from-second",
				RequestTimeout: 10 * time.Second,
			},
			App: App{AdminMarker: "staff"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "first.example.com", cfg.AI.Address)
	assert.Equal(t, "filled-from-second", cfg.AI.APIKey)
	assert.Equal(t, 10*time.Second, cfg.AI.RequestTimeout)
	assert.Equal(t, "staff", cfg.App.AdminMarker)
}

// TestBuild_RejectsNegativeDurations covers validation of merged values.
func TestBuild_RejectsNegativeDurations(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		AI: AI{RequestTimeout: -time.Second},
	})

	cfg, err := b.build()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// TestWithEnv_AppendsParsedConfig verifies that withEnv reads current
// environment variables into a new config entry.
func TestWithEnv_AppendsParsedConfig(t *testing.T) {
	setEnvVars(t, map[string]string{
		"AI_ADDRESS": "gen.example.com",
	})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "gen.example.com", b.configs[0].AI.Address)
}

// TestWithJSON_NoPathIsNoop verifies that withJSON does nothing when no
// source specified a file path.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b = b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_MissingFileSetsError verifies that an unreadable configured
// path surfaces as a builder error.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/definitely/not/there.json",
	})

	b = b.withJSON()
	assert.Error(t, b.err)
}

// TestWithJSON_LastPathWins verifies path resolution across sources.
func TestWithJSON_LastPathWins(t *testing.T) {
	p := writeTempJSONConfig(t, map[string]any{
		"ai": map[string]any{"address": "from-json.example.com"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/ignored/earlier.json"},
		&StructuredConfig{JSONFilePath: p},
	)

	b = b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "from-json.example.com", b.configs[2].AI.Address)
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}
