package service

import (
	"github.com/study2skills/study2skills/internal/adapter"
	"github.com/study2skills/study2skills/internal/config"
	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/internal/store"
)

// ClientServices groups every domain service behind one value passed to the
// UI layer.
type ClientServices struct {
	Auth         AuthService
	Gamification GamificationService
	Admin        AdminService
	Leaderboard  LeaderboardService
	UserData     UserDataService
	Jobs         JobEngine
}

// NewClientServices wires the service layer from storages, adapters and
// config.
func NewClientServices(
	storages *store.ClientStorages,
	ai adapter.AIAdapter,
	notifier adapter.Notifier,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	authSvc := NewAuthService(storages, cfg.App.AdminMarker, log)

	return &ClientServices{
		Auth:         authSvc,
		Gamification: NewGamificationService(authSvc, log),
		Admin:        NewAdminService(storages.Users, cfg.Workers.StatsCacheTTL, log),
		Leaderboard:  NewLeaderboardService(storages.Users, cfg.App.DemoSeed, log),
		UserData:     NewUserDataService(storages.UserData, log),
		Jobs:         NewJobEngine(ai, notifier, authSvc, cfg.Workers.JobTickInterval, log),
	}
}
