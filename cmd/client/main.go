package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/study2skills/study2skills/internal/adapter"
	"github.com/study2skills/study2skills/internal/client"
	"github.com/study2skills/study2skills/internal/config"
	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/internal/service"
	"github.com/study2skills/study2skills/internal/store"
	"github.com/study2skills/study2skills/internal/tui"
	"github.com/study2skills/study2skills/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	log := logger.NewClientLogger("study2skills-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ai, err := adapter.NewAIAdapter(cfg.AI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create ai adapter")
	}
	notifier := adapter.NewNotifier(cfg.Notify, log)

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, ai, notifier, cfg, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
