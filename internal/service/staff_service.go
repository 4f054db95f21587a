package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/repository"
)

// StaffService manages staff registration and subject assignment.
type StaffService struct {
	staff *repository.StaffRepository
	auth  *AuthService
	log   zerolog.Logger
}

// NewStaffService creates a new StaffService.
func NewStaffService(staff *repository.StaffRepository, auth *AuthService, log zerolog.Logger) *StaffService {
	return &StaffService{
		staff: staff,
		auth:  auth,
		log:   log.With().Str("component", "staff_service").Logger(),
	}
}

// Register creates the account and the staff profile.
func (s *StaffService) Register(ctx context.Context, req model.CreateStaffRequest) (*model.Staff, error) {
	hash, err := s.auth.HashPassword(req.User.Password)
	if err != nil {
		return nil, err
	}

	joining := time.Now()
	if req.JoiningDate != "" {
		if joining, err = time.Parse("2006-01-02", req.JoiningDate); err != nil {
			return nil, err
		}
	}

	user := &model.User{
		Username:     req.User.Username,
		Email:        req.User.Email,
		FirstName:    req.User.FirstName,
		LastName:     req.User.LastName,
		Role:         model.RoleStaff,
		PasswordHash: hash,
		Phone:        req.User.Phone,
		Address:      req.User.Address,
	}
	member := &model.Staff{
		StaffID:         req.StaffID,
		Designation:     req.Designation,
		JoiningDate:     joining,
		Qualification:   req.Qualification,
		ExperienceYears: req.ExperienceYears,
	}

	if err := s.staff.Create(ctx, user, member); err != nil {
		return nil, err
	}
	s.log.Info().Int("staff_id", member.ID).Str("code", member.StaffID).Msg("staff registered")
	return member, nil
}

// Get retrieves a staff member with their subject assignments.
func (s *StaffService) Get(ctx context.Context, id int) (*model.Staff, error) {
	member, err := s.staff.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return member, err
}

// List retrieves all staff members.
func (s *StaffService) List(ctx context.Context) ([]model.Staff, error) {
	return s.staff.List(ctx)
}

// AssignSubjects replaces the subjects a staff member teaches.
func (s *StaffService) AssignSubjects(ctx context.Context, staffID int, subjectIDs []int) error {
	if _, err := s.staff.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.staff.ReplaceSubjects(ctx, staffID, subjectIDs)
}

// Delete removes a staff member and their account.
func (s *StaffService) Delete(ctx context.Context, id int) error {
	return s.staff.Delete(ctx, id)
}
