package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/repository"
)

// ParentService manages parent registration and child links.
type ParentService struct {
	parents *repository.ParentRepository
	auth    *AuthService
	log     zerolog.Logger
}

// NewParentService creates a new ParentService.
func NewParentService(parents *repository.ParentRepository, auth *AuthService, log zerolog.Logger) *ParentService {
	return &ParentService{
		parents: parents,
		auth:    auth,
		log:     log.With().Str("component", "parent_service").Logger(),
	}
}

// Register creates the account and the parent profile.
func (s *ParentService) Register(ctx context.Context, req model.CreateParentRequest) (*model.Parent, error) {
	hash, err := s.auth.HashPassword(req.User.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.User.Username,
		Email:        req.User.Email,
		FirstName:    req.User.FirstName,
		LastName:     req.User.LastName,
		Role:         model.RoleParent,
		PasswordHash: hash,
		Phone:        req.User.Phone,
		Address:      req.User.Address,
	}
	parent := &model.Parent{ParentID: req.ParentID}

	if err := s.parents.Create(ctx, user, parent); err != nil {
		return nil, err
	}
	s.log.Info().Int("parent_id", parent.ID).Str("code", parent.ParentID).Msg("parent registered")
	return parent, nil
}

// Get retrieves a parent with their linked children.
func (s *ParentService) Get(ctx context.Context, id int) (*model.Parent, error) {
	parent, err := s.parents.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return parent, err
}

// List retrieves all parents.
func (s *ParentService) List(ctx context.Context) ([]model.Parent, error) {
	return s.parents.List(ctx)
}

// AssignChildren replaces the students linked to a parent.
func (s *ParentService) AssignChildren(ctx context.Context, parentID int, studentIDs []int) error {
	if _, err := s.parents.GetByID(ctx, parentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.parents.ReplaceChildren(ctx, parentID, studentIDs)
}

// Delete removes a parent and their account.
func (s *ParentService) Delete(ctx context.Context, id int) error {
	return s.parents.Delete(ctx, id)
}
