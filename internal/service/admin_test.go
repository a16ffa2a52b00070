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

func seedAdminTestUsers(t *testing.T, ts testStores) {
	t.Helper()
	require.NoError(t, ts.users.Save(context.Background(), []models.UserProfile{
		{ID: "u1", Email: "a@x.com", Domain: "AI/ML", Status: models.StatusActive, Role: models.RoleStudent},
		{ID: "u2", Email: "b@x.com", Domain: "AI/ML", Status: models.StatusActive, Role: models.RoleStudent},
		{ID: "u3", Email: "c@x.com", Domain: "Full Stack", Status: models.StatusDisabled, Role: models.RoleStudent},
		{ID: "u4", Email: "ops-admin@x.com", Domain: "Administration", Status: models.StatusActive, Role: models.RoleAdmin},
	}))
}

func TestToggleStatus_Flips(t *testing.T) {
	ts := newTestStores()
	seedAdminTestUsers(t, ts)
	admin := NewAdminService(ts.users, time.Minute, logger.Nop())
	ctx := context.Background()

	require.NoError(t, admin.ToggleStatus(ctx, "a@x.com"))
	assert.Equal(t, models.StatusDisabled, ts.users.Load(ctx)[0].Status)

	require.NoError(t, admin.ToggleStatus(ctx, "a@x.com"))
	assert.Equal(t, models.StatusActive, ts.users.Load(ctx)[0].Status)
}

func TestToggleStatus_UnknownEmailIsNoOp(t *testing.T) {
	ts := newTestStores()
	seedAdminTestUsers(t, ts)
	admin := NewAdminService(ts.users, time.Minute, logger.Nop())
	ctx := context.Background()

	before := ts.users.Load(ctx)
	require.NoError(t, admin.ToggleStatus(ctx, "nobody@x.com"))
	assert.Equal(t, before, ts.users.Load(ctx))
}

func TestToggleStatus_AdminRefused(t *testing.T) {
	ts := newTestStores()
	seedAdminTestUsers(t, ts)
	admin := NewAdminService(ts.users, time.Minute, logger.Nop())
	ctx := context.Background()

	err := admin.ToggleStatus(ctx, "ops-admin@x.com")
	assert.ErrorIs(t, err, ErrAdminImmutable)
	assert.Equal(t, models.StatusActive, ts.users.Load(ctx)[3].Status)
}

func TestStats_Projection(t *testing.T) {
	ts := newTestStores()
	seedAdminTestUsers(t, ts)
	admin := NewAdminService(ts.users, time.Minute, logger.Nop())

	stats := admin.Stats(context.Background())
	assert.Equal(t, 4, stats.TotalUsers)
	assert.Equal(t, 3, stats.ActiveUsers)
	assert.Equal(t, demoGrowth, stats.Growth)
	assert.Equal(t, []models.DomainCount{
		{Name: "AI/ML", Value: 2},
		{Name: "Administration", Value: 1},
		{Name: "Full Stack", Value: 1},
	}, stats.DomainDistribution)
}

func TestStats_CachedUntilToggle(t *testing.T) {
	ts := newTestStores()
	seedAdminTestUsers(t, ts)
	admin := NewAdminService(ts.users, time.Minute, logger.Nop())
	ctx := context.Background()

	first := admin.Stats(ctx)

	// Out-of-band mutation is not visible while the cache holds.
	require.NoError(t, ts.users.Save(ctx, ts.users.Load(ctx)[:2]))
	assert.Equal(t, first, admin.Stats(ctx))

	// ToggleStatus invalidates, so the next read recomputes.
	require.NoError(t, admin.ToggleStatus(ctx, "a@x.com"))
	recomputed := admin.Stats(ctx)
	assert.Equal(t, 2, recomputed.TotalUsers)
	assert.Equal(t, 1, recomputed.ActiveUsers)
}

func TestStats_EmptyCollection(t *testing.T) {
	ts := newTestStores()
	admin := NewAdminService(ts.users, time.Minute, logger.Nop())

	stats := admin.Stats(context.Background())
	assert.Equal(t, 0, stats.TotalUsers)
	assert.Equal(t, 0, stats.ActiveUsers)
	assert.Empty(t, stats.DomainDistribution)
}
