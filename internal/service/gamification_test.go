package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/models"
)

func newTestGamification(t *testing.T) (GamificationService, testStores, models.UserProfile) {
	t.Helper()

	ts := newTestStores()
	auth := newTestAuth(ts)
	gam := NewGamificationService(auth, logger.Nop())

	user, err := auth.Register(context.Background(), models.UserProfile{Email: "stud@x.com", Name: "A"}, "pw")
	require.NoError(t, err)
	return gam, ts, user
}

func TestAwardXP_RecomputesLevel(t *testing.T) {
	gam, ts, user := newTestGamification(t)
	ctx := context.Background()

	// 500 XP: floor(sqrt(500/50)) + 1 = 4.
	updated, err := gam.AwardXP(ctx, user, 500)
	require.NoError(t, err)
	assert.Equal(t, 500, updated.Gamification.XP)
	assert.Equal(t, 4, updated.Gamification.Level)

	// Persisted, not just returned.
	assert.Equal(t, 500, ts.users.Load(ctx)[0].Gamification.XP)
	assert.Equal(t, 4, ts.users.Load(ctx)[0].Gamification.Level)
}

func TestAwardXP_Compounds(t *testing.T) {
	gam, _, user := newTestGamification(t)
	ctx := context.Background()

	updated, err := gam.AwardXP(ctx, user, 30)
	require.NoError(t, err)
	updated, err = gam.AwardXP(ctx, updated, 30)
	require.NoError(t, err)

	assert.Equal(t, 60, updated.Gamification.XP)
	assert.Equal(t, models.LevelForXP(60), updated.Gamification.Level)
}

func TestAwardXP_NegativeRejected(t *testing.T) {
	gam, ts, user := newTestGamification(t)
	ctx := context.Background()

	_, err := gam.AwardXP(ctx, user, -10)
	assert.ErrorIs(t, err, ErrNegativeXP)
	assert.Equal(t, 0, ts.users.Load(ctx)[0].Gamification.XP)
}

func TestAwardXP_ZeroIsAllowed(t *testing.T) {
	gam, _, user := newTestGamification(t)

	updated, err := gam.AwardXP(context.Background(), user, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Gamification.XP)
	assert.Equal(t, 1, updated.Gamification.Level)
}

func TestAwardBadge_UniqueByName(t *testing.T) {
	gam, _, user := newTestGamification(t)
	ctx := context.Background()

	updated, err := gam.AwardBadge(ctx, user, "Streak Week", "7 days in a row", "🔥")
	require.NoError(t, err)
	require.Len(t, updated.Gamification.Badges, 2) // Newbie + Streak Week

	again, err := gam.AwardBadge(ctx, updated, "Streak Week", "7 days in a row", "🔥")
	require.NoError(t, err)
	assert.Len(t, again.Gamification.Badges, 2)
}

func TestRecordStudyHours_Accumulates(t *testing.T) {
	gam, ts, user := newTestGamification(t)
	ctx := context.Background()

	updated, err := gam.RecordStudyHours(ctx, user, 1.5)
	require.NoError(t, err)
	updated, err = gam.RecordStudyHours(ctx, updated, 2)
	require.NoError(t, err)

	assert.InDelta(t, 3.5, updated.Gamification.StudyHoursTotal, 1e-9)
	assert.InDelta(t, 3.5, ts.users.Load(ctx)[0].Gamification.StudyHoursTotal, 1e-9)
}

func TestRecordStudyHours_NegativeRejected(t *testing.T) {
	gam, _, user := newTestGamification(t)

	_, err := gam.RecordStudyHours(context.Background(), user, -1)
	assert.Error(t, err)
}

func TestTouchStreak_SameDayNoOp(t *testing.T) {
	gam, _, user := newTestGamification(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	user.Gamification.StreakDays = 3
	user.Gamification.LastActiveDate = "2026-03-10"

	updated, err := gam.TouchStreak(ctx, user, now)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Gamification.StreakDays)
}

func TestTouchStreak_NextDayIncrements(t *testing.T) {
	gam, _, user := newTestGamification(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	user.Gamification.StreakDays = 3
	user.Gamification.LastActiveDate = "2026-03-10"

	updated, err := gam.TouchStreak(ctx, user, now)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Gamification.StreakDays)
	assert.Equal(t, "2026-03-11", updated.Gamification.LastActiveDate)
}

func TestTouchStreak_GapResets(t *testing.T) {
	gam, _, user := newTestGamification(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC)
	user.Gamification.StreakDays = 14
	user.Gamification.LastActiveDate = "2026-03-10"

	updated, err := gam.TouchStreak(ctx, user, now)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Gamification.StreakDays)
	assert.Equal(t, "2026-03-20", updated.Gamification.LastActiveDate)
}
