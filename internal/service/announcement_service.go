package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/scholaris/scholaris-backend/internal/config"
	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/repository"
)

// AnnouncementService manages announcements and fans new ones out to
// the live feed through Redis Pub/Sub.
type AnnouncementService struct {
	announcements *repository.AnnouncementRepository
	rdb           *redis.Client
	log           zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(announcements *repository.AnnouncementRepository, rdb *redis.Client, log zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{
		announcements: announcements,
		rdb:           rdb,
		log:           log.With().Str("component", "announcement_service").Logger(),
	}
}

// Publish stores an announcement and pushes it onto the feed channel.
// Audience flags default to true when omitted; priority defaults to
// medium. A publish failure on the channel does not fail the request.
func (s *AnnouncementService) Publish(ctx context.Context, req model.CreateAnnouncementRequest, createdBy int) (*model.Announcement, error) {
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			return nil, err
		}
		expiresAt = &t
	}

	a := &model.Announcement{
		Title:         req.Title,
		Content:       req.Content,
		Priority:      priority,
		CreatedBy:     createdBy,
		ExpiresAt:     expiresAt,
		IsActive:      true,
		ForStudents:   flagOrDefault(req.ForStudents),
		ForParents:    flagOrDefault(req.ForParents),
		ForStaff:      flagOrDefault(req.ForStaff),
		ForManagement: flagOrDefault(req.ForManagement),
	}
	if err := s.announcements.Create(ctx, a); err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(a); err == nil {
		if err := s.rdb.Publish(ctx, config.CacheKey.AnnouncementChannel(), payload).Err(); err != nil {
			s.log.Warn().Err(err).Int("announcement_id", a.ID).Msg("feed publish failed")
		}
	}

	s.log.Info().Int("announcement_id", a.ID).Str("priority", string(a.Priority)).Msg("announcement published")
	return a, nil
}

func flagOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// ListForRole retrieves the active announcements visible to the role.
func (s *AnnouncementService) ListForRole(ctx context.Context, role model.Role) ([]model.Announcement, error) {
	return s.announcements.ListActiveForRole(ctx, role)
}

// Get retrieves one announcement when the role may see it.
func (s *AnnouncementService) Get(ctx context.Context, role model.Role, id int) (*model.Announcement, error) {
	a, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !a.VisibleTo(role) {
		return nil, ErrNotFound
	}
	return a, nil
}

// Deactivate retires an announcement.
func (s *AnnouncementService) Deactivate(ctx context.Context, id int) error {
	return s.announcements.Deactivate(ctx, id)
}

// Delete removes an announcement.
func (s *AnnouncementService) Delete(ctx context.Context, id int) error {
	return s.announcements.Delete(ctx, id)
}
