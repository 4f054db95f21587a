package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/repository"
	"github.com/scholaris/scholaris-backend/internal/scope"
)

// StudentService manages student enrollment and class assignment.
type StudentService struct {
	students *repository.StudentRepository
	auth     *AuthService
	log      zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(students *repository.StudentRepository, auth *AuthService, log zerolog.Logger) *StudentService {
	return &StudentService{
		students: students,
		auth:     auth,
		log:      log.With().Str("component", "student_service").Logger(),
	}
}

// Enroll creates the account and the student profile.
func (s *StudentService) Enroll(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error) {
	hash, err := s.auth.HashPassword(req.User.Password)
	if err != nil {
		return nil, err
	}

	admission := time.Now()
	if req.AdmissionDate != "" {
		if admission, err = time.Parse("2006-01-02", req.AdmissionDate); err != nil {
			return nil, err
		}
	}

	user := &model.User{
		Username:     req.User.Username,
		Email:        req.User.Email,
		FirstName:    req.User.FirstName,
		LastName:     req.User.LastName,
		Role:         model.RoleStudent,
		PasswordHash: hash,
		Phone:        req.User.Phone,
		Address:      req.User.Address,
	}
	student := &model.Student{
		StudentID:             req.StudentID,
		AdmissionDate:         admission,
		CurrentClassID:        req.CurrentClassID,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	}

	if err := s.students.Create(ctx, user, student); err != nil {
		return nil, err
	}
	s.log.Info().Int("student_id", student.ID).Str("code", student.StudentID).Msg("student enrolled")
	return student, nil
}

// Get retrieves a student visible under the scope.
func (s *StudentService) Get(ctx context.Context, sc scope.Scope, id int) (*model.Student, error) {
	visible, err := s.students.Visible(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrNotFound
	}
	student, err := s.students.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return student, err
}

// List retrieves the students visible under the scope.
func (s *StudentService) List(ctx context.Context, sc scope.Scope, classID *int) ([]model.Student, error) {
	return s.students.List(ctx, sc, classID)
}

// AssignClass moves a student to a class; nil removes the assignment.
// Prior results keep their recorded class.
func (s *StudentService) AssignClass(ctx context.Context, studentID int, classID *int) error {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.students.AssignClass(ctx, studentID, classID); err != nil {
		return err
	}
	ev := s.log.Info().Int("student_id", studentID)
	if classID != nil {
		ev = ev.Int("class_id", *classID)
	}
	ev.Msg("student class assignment changed")
	return nil
}

// Delete removes a student and their account.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.students.Delete(ctx, id)
}
