package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database path for the local store
//	-c/-config json file path with configs
//	-ai-address base URL of the generation API
//	-ai-key API key of the generation API
//	-ai-timeout generation request timeout (e.g., "30s")
//	-tick automation tick interval (e.g., "1s")
//	-demo-seed enable leaderboard demo fallback
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var aiAddress string
	var aiKey string
	var aiTimeout time.Duration
	var tickInterval time.Duration
	var demoSeed bool

	flag.StringVar(&databaseDSN, "d", "", "Local store database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&aiAddress, "ai-address", "", "Generation API base URL")
	flag.StringVar(&aiKey, "ai-key", "", "Generation API key")
	flag.DurationVar(&aiTimeout, "ai-timeout", 0, "Generation request timeout (e.g., 30s)")
	flag.DurationVar(&tickInterval, "tick", 0, "Automation tick interval (e.g., 1s)")
	flag.BoolVar(&demoSeed, "demo-seed", false, "Blend deterministic seed users into a near-empty leaderboard")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DemoSeed: demoSeed,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		AI: AI{
			Address:        aiAddress,
			APIKey:         aiKey,
			RequestTimeout: aiTimeout,
		},
		Workers: Workers{
			JobTickInterval: tickInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
