package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// study2skills client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string, the
	// admin marker used for role derivation and the demo-seed switch.
	App App `envPrefix:"APP_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// AI holds the remote generation API settings.
	AI AI `envPrefix:"AI_"`

	// Notify holds the outbound notification settings.
	Notify Notify `envPrefix:"NOTIFY_"`

	// Workers holds background automation settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged on top of the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// AdminMarker is the substring that, when present in a registration
	// email (case-insensitive), assigns the admin role.
	// Env: APP_ADMIN_MARKER
	AdminMarker string `env:"ADMIN_MARKER" envDefault:"admin"`

	// DemoSeed enables the leaderboard demo fallback: with fewer than five
	// real users, deterministic seed profiles are blended in so the UI is
	// never empty. Production paths keep this off.
	// Env: APP_DEMO_SEED
	DemoSeed bool `env:"DEMO_SEED"`
}

// Storage groups local persistence backends.
type Storage struct {
	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite store.
type DB struct {
	// DSN is the SQLite file path, or ":memory:" for an ephemeral store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// AI holds the remote generation API settings.
type AI struct {
	// Address is the base URL of the generation API.
	// Env: AI_ADDRESS
	Address string `env:"ADDRESS"`

	// APIKey authenticates requests to the generation API. It may be left
	// empty; each generation call is then rejected with a configuration
	// error when attempted.
	// Env: AI_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds a single generation request (e.g. "30s").
	// Env: AI_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Notify holds the outbound notification settings. When SendGridKey is
// empty the client falls back to a log-only notifier.
type Notify struct {
	// SendGridKey is the SendGrid API key.
	// Env: NOTIFY_SENDGRID_KEY
	SendGridKey string `env:"SENDGRID_KEY"`

	// FromEmail is the sender address of outbound notifications.
	// Env: NOTIFY_FROM_EMAIL
	FromEmail string `env:"FROM_EMAIL" envDefault:"no-reply@study2skills.com"`
}

// Workers holds background automation settings.
type Workers struct {
	// JobTickInterval is the delay between automation ticks; one queued
	// application advances one state per tick.
	// Env: WORKERS_JOB_TICK_INTERVAL
	JobTickInterval time.Duration `env:"JOB_TICK_INTERVAL"`

	// StatsCacheTTL bounds how long admin stats and leaderboard projections
	// are served from cache before being recomputed.
	// Env: WORKERS_STATS_CACHE_TTL
	StatsCacheTTL time.Duration `env:"STATS_CACHE_TTL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// validate checks cross-source invariants on the merged configuration.
// Defaults for unset values are applied by the client view in
// [GetClientConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.AI.RequestTimeout < 0 {
		return fmt.Errorf("ai request timeout must not be negative")
	}
	if cfg.Workers.JobTickInterval < 0 {
		return fmt.Errorf("job tick interval must not be negative")
	}
	if cfg.Workers.StatsCacheTTL < 0 {
		return fmt.Errorf("stats cache ttl must not be negative")
	}

	return nil
}
