package service

import (
	"context"
	"fmt"
	"time"

	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/models"
)

type gamificationService struct {
	auth AuthService

	logger *logger.Logger
}

// NewGamificationService constructs the [GamificationService]. All
// mutations persist through the auth service's UpdateProfile so the
// repository and the session snapshot stay in step.
func NewGamificationService(auth AuthService, logger *logger.Logger) GamificationService {
	return &gamificationService{auth: auth, logger: logger}
}

// AwardXP implements [GamificationService]. The level invariant
// level == floor(sqrt(xp/50)) + 1 holds immediately after return.
func (g *gamificationService) AwardXP(ctx context.Context, user models.UserProfile, amount int) (models.UserProfile, error) {
	if amount < 0 {
		return models.UserProfile{}, ErrNegativeXP
	}

	user.Gamification.XP += amount
	user.Gamification.Level = models.LevelForXP(user.Gamification.XP)

	updated, err := g.auth.UpdateProfile(ctx, user)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("award xp: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "gamificationService.AwardXP").
		Str("user_id", updated.ID).
		Int("amount", amount).
		Int("xp", updated.Gamification.XP).
		Int("level", updated.Gamification.Level).
		Msg("xp awarded")
	return updated, nil
}

// AwardBadge implements [GamificationService]. Badges are unique by name;
// granting an already-earned badge returns the profile unchanged.
func (g *gamificationService) AwardBadge(ctx context.Context, user models.UserProfile, name, description, icon string) (models.UserProfile, error) {
	if user.Gamification.HasBadge(name) {
		return user, nil
	}

	user.Gamification.Badges = append(user.Gamification.Badges, models.Badge{
		ID:          NewID(),
		Name:        name,
		Description: description,
		Icon:        icon,
		DateEarned:  time.Now().Format(time.RFC3339),
	})

	updated, err := g.auth.UpdateProfile(ctx, user)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("award badge: %w", err)
	}

	return updated, nil
}

// RecordStudyHours implements [GamificationService].
func (g *gamificationService) RecordStudyHours(ctx context.Context, user models.UserProfile, hours float64) (models.UserProfile, error) {
	if hours < 0 {
		return models.UserProfile{}, fmt.Errorf("record study hours: negative duration")
	}

	user.Gamification.StudyHoursTotal += hours

	updated, err := g.auth.UpdateProfile(ctx, user)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("record study hours: %w", err)
	}

	return updated, nil
}

// TouchStreak implements [GamificationService]. A second touch on the same
// calendar day is a no-op, the day after the last touch increments, and any
// longer gap resets the streak to 1.
func (g *gamificationService) TouchStreak(ctx context.Context, user models.UserProfile, now time.Time) (models.UserProfile, error) {
	today := now.Format("2006-01-02")
	last := user.Gamification.LastActiveDate

	switch {
	case last == today:
		return user, nil
	case last == now.AddDate(0, 0, -1).Format("2006-01-02"):
		user.Gamification.StreakDays++
	default:
		user.Gamification.StreakDays = 1
	}
	user.Gamification.LastActiveDate = today

	updated, err := g.auth.UpdateProfile(ctx, user)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("touch streak: %w", err)
	}

	return updated, nil
}
