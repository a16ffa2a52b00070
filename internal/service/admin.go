package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/study2skills/study2skills/internal/logger"
	"github.com/study2skills/study2skills/internal/store"
	"github.com/study2skills/study2skills/models"
)

const statsCacheKey = "admin_stats"

// demoGrowth stands in for a growth percentage; there is no historical data
// in the local store to derive a real one from.
const demoGrowth = 12.5

type adminService struct {
	users store.UserCollectionStore

	cache *gocache.Cache

	logger *logger.Logger
}

// NewAdminService constructs the [AdminService]. cacheTTL bounds how stale
// the stats projection may be served.
func NewAdminService(users store.UserCollectionStore, cacheTTL time.Duration, logger *logger.Logger) AdminService {
	return &adminService{
		users:  users,
		cache:  gocache.New(cacheTTL, 2*cacheTTL),
		logger: logger,
	}
}

// ToggleStatus implements [AdminService]. Flips active and disabled for the
// record matching email. Unknown emails are a silent no-op; admin-role
// records are refused here regardless of what the UI permits.
func (s *adminService) ToggleStatus(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	users := s.users.Load(ctx)
	for i, u := range users {
		if u.Email != email {
			continue
		}

		if u.Role == models.RoleAdmin {
			return ErrAdminImmutable
		}

		if u.Status == models.StatusActive {
			users[i].Status = models.StatusDisabled
		} else {
			users[i].Status = models.StatusActive
		}

		if err := s.users.Save(ctx, users); err != nil {
			return fmt.Errorf("toggle status: %w", err)
		}

		s.cache.Delete(statsCacheKey)
		log.Info().
			Str("func", "adminService.ToggleStatus").
			Str("user_id", users[i].ID).
			Str("status", string(users[i].Status)).
			Msg("user status toggled")
		return nil
	}

	return nil
}

// Stats implements [AdminService]. A pure projection over the collection:
// totals, active count and the domain histogram, cached for the configured
// TTL.
func (s *adminService) Stats(ctx context.Context) models.AdminStats {
	if cached, ok := s.cache.Get(statsCacheKey); ok {
		return cached.(models.AdminStats)
	}

	users := s.users.Load(ctx)

	active := 0
	domains := make(map[string]int)
	for _, u := range users {
		if u.Status != models.StatusDisabled {
			active++
		}
		domains[u.Domain]++
	}

	distribution := make([]models.DomainCount, 0, len(domains))
	for name, count := range domains {
		distribution = append(distribution, models.DomainCount{Name: name, Value: count})
	}
	// Map iteration order is random; keep the histogram deterministic.
	sort.Slice(distribution, func(i, j int) bool {
		return distribution[i].Name < distribution[j].Name
	})

	stats := models.AdminStats{
		TotalUsers:         len(users),
		ActiveUsers:        active,
		Growth:             demoGrowth,
		DomainDistribution: distribution,
	}

	s.cache.SetDefault(statsCacheKey, stats)
	return stats
}
