package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/scholaris/scholaris-backend/internal/config"
	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/repository"
)

// dashboardCacheTTL keeps dashboard counts warm without letting them
// drift far from the database.
const dashboardCacheTTL = 30 * time.Second

// DashboardService serves the per-role dashboard summaries, cached
// briefly in Redis.
type DashboardService struct {
	dashboards *repository.DashboardRepository
	rdb        *redis.Client
	log        zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(dashboards *repository.DashboardRepository, rdb *redis.Client, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		dashboards: dashboards,
		rdb:        rdb,
		log:        log.With().Str("component", "dashboard_service").Logger(),
	}
}

// Stats returns the dashboard payload for the caller's role. Admin and
// management share the school-wide summary; the other roles get a
// summary anchored to their profile.
func (s *DashboardService) Stats(ctx context.Context, role model.Role, profileID int) (any, error) {
	key := config.CacheKey.DashboardStatsKey(string(role), profileID)
	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var out json.RawMessage
		if json.Unmarshal([]byte(cached), &out) == nil {
			return out, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("dashboard cache read failed")
	}

	var stats any
	var err error
	switch role {
	case model.RoleAdmin, model.RoleManagement:
		stats, err = s.dashboards.ManagementStats(ctx)
	case model.RoleStaff:
		stats, err = s.dashboards.StaffStats(ctx, profileID)
	case model.RoleStudent:
		stats, err = s.dashboards.StudentStats(ctx, profileID)
	case model.RoleParent:
		stats, err = s.dashboards.ParentStats(ctx, profileID)
	default:
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.rdb.Set(ctx, key, payload, dashboardCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("dashboard cache write failed")
		}
	}
	return stats, nil
}
