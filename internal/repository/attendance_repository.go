package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/scope"
)

var ErrAttendanceReferenceMissing = errors.New("attendance references a missing student or class")

const attendanceColumns = `a.id, a.student_id, a.date, a.status, a.class_id, a.marked_by, COALESCE(a.remarks, '')`

// AttendanceRepository handles attendance data access.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

func scanAttendance(row interface{ Scan(...any) error }) (*model.Attendance, error) {
	a := &model.Attendance{}
	err := row.Scan(&a.ID, &a.StudentID, &a.Date, &a.Status, &a.ClassID, &a.MarkedBy, &a.Remarks)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Upsert marks attendance. Re-marking the same (student, date, class)
// replaces the status and remarks in place.
func (r *AttendanceRepository) Upsert(ctx context.Context, a *model.Attendance) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO attendance (student_id, date, status, class_id, marked_by, remarks)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		 ON CONFLICT (student_id, date, class_id) DO UPDATE SET
		 status = EXCLUDED.status, marked_by = EXCLUDED.marked_by, remarks = EXCLUDED.remarks
		 RETURNING id`,
		a.StudentID, a.Date, a.Status, a.ClassID, a.MarkedBy, a.Remarks,
	).Scan(&a.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrAttendanceReferenceMissing
		}
		return err
	}
	return nil
}

// ListForClassDate retrieves a class's attendance sheet for one day.
func (r *AttendanceRepository) ListForClassDate(ctx context.Context, classID int, date time.Time) ([]model.Attendance, error) {
	return r.queryAttendance(ctx,
		`SELECT `+attendanceColumns+` FROM attendance a
		 WHERE a.class_id = $1 AND a.date = $2 ORDER BY a.student_id`,
		classID, date)
}

// ListForStudent retrieves a student's attendance between two dates
// when the student is visible under the scope.
func (r *AttendanceRepository) ListForStudent(ctx context.Context, sc scope.Scope, studentID int, from, to time.Time) ([]model.Attendance, error) {
	filter, args := studentFilter(sc, "a.student_id", "s.current_class_id", 4)
	args = append([]any{studentID, from, to}, args...)
	return r.queryAttendance(ctx,
		`SELECT `+attendanceColumns+` FROM attendance a
		 JOIN students s ON s.id = a.student_id
		 WHERE a.student_id = $1 AND a.date BETWEEN $2 AND $3 AND `+filter+`
		 ORDER BY a.date DESC`,
		args...)
}

func (r *AttendanceRepository) queryAttendance(ctx context.Context, query string, args ...any) ([]model.Attendance, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *a)
	}
	return records, rows.Err()
}
