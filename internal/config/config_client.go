package config

import (
	"fmt"
	"time"
)

// Defaults applied by validate when no source provided a value.
const (
	defaultDSN             = "study2skills.db"
	defaultJobTickInterval = 1 * time.Second
	defaultStatsCacheTTL   = 30 * time.Second
	defaultAITimeout       = 30 * time.Second
)

// ClientApp holds application-level client settings.
type ClientApp struct {
	// Version is the client version string.
	Version string
	// AdminMarker is the substring used for role derivation from emails.
	AdminMarker string
	// DemoSeed enables the leaderboard demo fallback.
	DemoSeed bool
}

// ClientAI holds generation API settings used by the adapter layer.
type ClientAI struct {
	// Address is the base URL of the generation API.
	Address string
	// APIKey authenticates generation requests.
	APIKey string
	// RequestTimeout is the per-request timeout.
	RequestTimeout time.Duration
}

// ClientNotify holds outbound notification settings.
type ClientNotify struct {
	// SendGridKey selects the SendGrid notifier when non-empty.
	SendGridKey string
	// FromEmail is the sender address.
	FromEmail string
}

// ClientDB contains local store settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains background automation settings.
type ClientWorkers struct {
	// JobTickInterval is the automation tick period.
	JobTickInterval time.Duration
	// StatsCacheTTL bounds projection cache freshness.
	StatsCacheTTL time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	AI      ClientAI
	Notify  ClientNotify
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:     cfg.App.Version,
			AdminMarker: cfg.App.AdminMarker,
			DemoSeed:    cfg.App.DemoSeed,
		},
		AI: ClientAI{
			Address:        cfg.AI.Address,
			APIKey:         cfg.AI.APIKey,
			RequestTimeout: cfg.AI.RequestTimeout,
		},
		Notify: ClientNotify{
			SendGridKey: cfg.Notify.SendGridKey,
			FromEmail:   cfg.Notify.FromEmail,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			JobTickInterval: cfg.Workers.JobTickInterval,
			StatsCacheTTL:   cfg.Workers.StatsCacheTTL,
		},
	}

	return clientCfg, clientCfg.validate()
}

// validate fills defaults for unset fields and checks invariants. The AI key
// may legitimately be empty: the adapter reports a configuration error only
// when a generation call is actually attempted without one.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.Workers.JobTickInterval <= 0 {
		cfg.Workers.JobTickInterval = defaultJobTickInterval
	}
	if cfg.Workers.StatsCacheTTL <= 0 {
		cfg.Workers.StatsCacheTTL = defaultStatsCacheTTL
	}
	if cfg.AI.RequestTimeout <= 0 {
		cfg.AI.RequestTimeout = defaultAITimeout
	}
	if cfg.App.AdminMarker == "" {
		cfg.App.AdminMarker = "admin"
	}

	return nil
}
