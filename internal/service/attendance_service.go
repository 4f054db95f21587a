package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/repository"
	"github.com/scholaris/scholaris-backend/internal/scope"
)

// AttendanceService manages daily attendance records.
type AttendanceService struct {
	attendance *repository.AttendanceRepository
	log        zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendance *repository.AttendanceRepository, log zerolog.Logger) *AttendanceService {
	return &AttendanceService{
		attendance: attendance,
		log:        log.With().Str("component", "attendance_service").Logger(),
	}
}

// Mark records attendance for a student/date/class, replacing any
// earlier mark for the same day.
func (s *AttendanceService) Mark(ctx context.Context, req model.MarkAttendanceRequest, markedBy *int) (*model.Attendance, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	a := &model.Attendance{
		StudentID: req.StudentID,
		Date:      date,
		Status:    req.Status,
		ClassID:   req.ClassID,
		MarkedBy:  markedBy,
		Remarks:   req.Remarks,
	}
	if err := s.attendance.Upsert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ClassSheet retrieves a class's attendance for one day.
func (s *AttendanceService) ClassSheet(ctx context.Context, classID int, date time.Time) ([]model.Attendance, error) {
	return s.attendance.ListForClassDate(ctx, classID, date)
}

// StudentHistory retrieves a student's attendance between two dates
// when the student is visible under the scope.
func (s *AttendanceService) StudentHistory(ctx context.Context, sc scope.Scope, studentID int, from, to time.Time) ([]model.Attendance, error) {
	return s.attendance.ListForStudent(ctx, sc, studentID, from, to)
}
