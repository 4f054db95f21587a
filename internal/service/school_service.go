package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/repository"
)

// SchoolService manages the reference data every other module hangs
// off: academic years, classes and subjects.
type SchoolService struct {
	years    *repository.AcademicYearRepository
	classes  *repository.ClassRepository
	subjects *repository.SubjectRepository
}

// NewSchoolService creates a new SchoolService.
func NewSchoolService(
	years *repository.AcademicYearRepository,
	classes *repository.ClassRepository,
	subjects *repository.SubjectRepository,
) *SchoolService {
	return &SchoolService{years: years, classes: classes, subjects: subjects}
}

// ─── Academic years ───

// CreateAcademicYear inserts a new academic year.
func (s *SchoolService) CreateAcademicYear(ctx context.Context, req model.CreateAcademicYearRequest) (*model.AcademicYear, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, err
	}
	year := &model.AcademicYear{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		IsActive:  req.IsActive,
	}
	if err := s.years.Create(ctx, year); err != nil {
		return nil, err
	}
	return year, nil
}

// ListAcademicYears retrieves all academic years.
func (s *SchoolService) ListAcademicYears(ctx context.Context) ([]model.AcademicYear, error) {
	return s.years.List(ctx)
}

// GetActiveAcademicYear retrieves the active academic year.
func (s *SchoolService) GetActiveAcademicYear(ctx context.Context) (*model.AcademicYear, error) {
	year, err := s.years.GetActive(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return year, err
}

// ─── Classes ───

// CreateClass inserts a new class.
func (s *SchoolService) CreateClass(ctx context.Context, req model.CreateClassRequest) (*model.Class, error) {
	class := &model.Class{
		Name:           req.Name,
		Grade:          req.Grade,
		Section:        req.Section,
		AcademicYearID: req.AcademicYearID,
		ClassTeacherID: req.ClassTeacherID,
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// GetClass retrieves a class by ID.
func (s *SchoolService) GetClass(ctx context.Context, id int) (*model.Class, error) {
	class, err := s.classes.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return class, err
}

// ListClasses retrieves classes, optionally for one academic year.
func (s *SchoolService) ListClasses(ctx context.Context, academicYearID *int) ([]model.Class, error) {
	return s.classes.List(ctx, academicYearID)
}

// UpdateClass modifies a class.
func (s *SchoolService) UpdateClass(ctx context.Context, class *model.Class) error {
	return s.classes.Update(ctx, class)
}

// DeleteClass removes a class.
func (s *SchoolService) DeleteClass(ctx context.Context, id int) error {
	return s.classes.Delete(ctx, id)
}

// ─── Subjects ───

// CreateSubject inserts a new subject.
func (s *SchoolService) CreateSubject(ctx context.Context, req model.CreateSubjectRequest) (*model.Subject, error) {
	subject := &model.Subject{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	}
	if err := s.subjects.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// ListSubjects retrieves all subjects.
func (s *SchoolService) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	return s.subjects.List(ctx)
}

// DeleteSubject removes a subject.
func (s *SchoolService) DeleteSubject(ctx context.Context, id int) error {
	return s.subjects.Delete(ctx, id)
}
