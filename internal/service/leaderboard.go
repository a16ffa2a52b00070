package service

import (
	"context"
	"sort"

	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/internal/store"
	"github.com/study2skills/study2skills/models"
)

// demoSeedThreshold is the real-user count below which the demo fallback
// kicks in when enabled.
const demoSeedThreshold = 5

type leaderboardService struct {
	users store.UserCollectionStore

	// demoSeed isolates the seed blending behind an explicit switch so
	// production paths never implicitly fabricate data.
	demoSeed bool

	logger *logger.Logger
}

// NewLeaderboardService constructs the [LeaderboardService]. demoSeed
// enables the deterministic fallback records for a near-empty store.
func NewLeaderboardService(users store.UserCollectionStore, demoSeed bool, logger *logger.Logger) LeaderboardService {
	return &leaderboardService{users: users, demoSeed: demoSeed, logger: logger}
}

// Leaderboard implements [LeaderboardService]. The sort is stable: ties by
// XP keep their original collection order.
func (s *leaderboardService) Leaderboard(ctx context.Context) []models.UserProfile {
	users := s.users.Load(ctx)

	if s.demoSeed && len(users) < demoSeedThreshold {
		users = append(users, demoSeedUsers()...)
	}

	ranked := make([]models.UserProfile, len(users))
	copy(ranked, users)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Gamification.XP > ranked[j].Gamification.XP
	})

	return ranked
}

// demoSeedUsers returns the fixed seed set blended into a near-empty
// leaderboard. Values are deterministic so demo runs look identical.
func demoSeedUsers() []models.UserProfile {
	return []models.UserProfile{
		{
			ID: "m1", Name: "Jordan Lee", University: "MIT", Year: "4th",
			Domain: "AI/ML", Email: "j@test.com", Skills: []string{},
			Status: models.StatusActive,
			Gamification: models.Gamification{
				XP: 4500, Level: models.LevelForXP(4500), Badges: []models.Badge{}, StreakDays: 45, StudyHoursTotal: 120,
			},
		},
		{
			ID: "m2", Name: "Priya Patel", University: "IIT Bombay", Year: "3rd",
			Domain: "Full Stack", Email: "p@test.com", Skills: []string{},
			Status: models.StatusActive,
			Gamification: models.Gamification{
				XP: 3800, Level: models.LevelForXP(3800), Badges: []models.Badge{}, StreakDays: 30, StudyHoursTotal: 95,
			},
		},
		{
			ID: "m3", Name: "Carlos Gomez", University: "Stanford", Year: "2nd",
			Domain: "Blockchain", Email: "c@test.com", Skills: []string{},
			Status: models.StatusActive,
			Gamification: models.Gamification{
				XP: 3200, Level: models.LevelForXP(3200), Badges: []models.Badge{}, StreakDays: 12, StudyHoursTotal: 80,
			},
		},
		{
			ID: "m4", Name: "Sarah Kim", University: "NYU", Year: "1st",
			Domain: "Data Science", Email: "s@test.com", Skills: []string{},
			Status: models.StatusActive,
			Gamification: models.Gamification{
				XP: 2100, Level: models.LevelForXP(2100), Badges: []models.Badge{}, StreakDays: 5, StudyHoursTotal: 40,
			},
		},
	}
}
