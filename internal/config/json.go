package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are accepted as strings like "30s" or "1m".
type StructuredJSONConfig struct {
	App struct {
		Version     string `json:"version"`
		AdminMarker string `json:"admin_marker"`
		DemoSeed    bool   `json:"demo_seed"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	AI struct {
		Address        string   `json:"address"`
		APIKey         string   `json:"api_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"ai,omitempty"`

	Notify struct {
		SendGridKey string `json:"sendgrid_key"`
		FromEmail   string `json:"from_email"`
	} `json:"notify,omitempty"`

	Workers struct {
		JobTickInterval Duration `json:"job_tick_interval"`
		StatsCacheTTL   Duration `json:"stats_cache_ttl"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:     jsonCfg.App.Version,
			AdminMarker: jsonCfg.App.AdminMarker,
			DemoSeed:    jsonCfg.App.DemoSeed,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		AI: AI{
			Address:        jsonCfg.AI.Address,
			APIKey:         jsonCfg.AI.APIKey,
			RequestTimeout: time.Duration(jsonCfg.AI.RequestTimeout),
		},
		Notify: Notify{
			SendGridKey: jsonCfg.Notify.SendGridKey,
			FromEmail:   jsonCfg.Notify.FromEmail,
		},
		Workers: Workers{
			JobTickInterval: time.Duration(jsonCfg.Workers.JobTickInterval),
			StatsCacheTTL:   time.Duration(jsonCfg.Workers.StatsCacheTTL),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
