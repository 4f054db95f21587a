package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholaris/scholaris-backend/internal/model"
)

// DashboardRepository aggregates the counts behind the per-role
// dashboard endpoints.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// ManagementStats counts school-wide totals.
func (r *DashboardRepository) ManagementStats(ctx context.Context) (*model.ManagementDashboard, error) {
	d := &model.ManagementDashboard{}
	err := r.pool.QueryRow(ctx,
		`SELECT
		 (SELECT COUNT(*) FROM students),
		 (SELECT COUNT(*) FROM staff),
		 (SELECT COUNT(*) FROM parents),
		 (SELECT COUNT(*) FROM classes),
		 (SELECT COUNT(*) FROM subjects),
		 (SELECT COUNT(*) FROM announcements
		  WHERE is_active AND (expires_at IS NULL OR expires_at > CURRENT_TIMESTAMP))`,
	).Scan(&d.TotalStudents, &d.TotalStaff, &d.TotalParents, &d.TotalClasses,
		&d.TotalSubjects, &d.ActiveAnnouncements)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// StaffStats summarizes one staff member's teaching load.
func (r *DashboardRepository) StaffStats(ctx context.Context, staffID int) (*model.StaffDashboard, error) {
	d := &model.StaffDashboard{}
	err := r.pool.QueryRow(ctx,
		`SELECT
		 (SELECT id FROM classes WHERE class_teacher_id = $1 LIMIT 1),
		 (SELECT COUNT(*) FROM students
		  WHERE current_class_id IN (SELECT id FROM classes WHERE class_teacher_id = $1)),
		 (SELECT COUNT(*) FROM staff_subjects WHERE staff_id = $1),
		 (SELECT COUNT(*) FROM results WHERE uploaded_by = $1)`,
		staffID,
	).Scan(&d.LedClassID, &d.LedClassStudents, &d.SubjectsTaught, &d.ResultsUploaded)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// StudentStats summarizes one student's own records.
func (r *DashboardRepository) StudentStats(ctx context.Context, studentID int) (*model.StudentDashboard, error) {
	d := &model.StudentDashboard{}
	err := r.pool.QueryRow(ctx,
		`SELECT
		 (SELECT current_class_id FROM students WHERE id = $1),
		 (SELECT COUNT(*) FROM results WHERE student_id = $1),
		 (SELECT COUNT(*) FROM attendance WHERE student_id = $1 AND status = 'present'),
		 (SELECT COUNT(*) FROM attendance WHERE student_id = $1),
		 (SELECT COUNT(*) FROM fee_payments WHERE student_id = $1 AND status <> 'paid')`,
		studentID,
	).Scan(&d.CurrentClassID, &d.ResultsRecorded, &d.DaysPresent, &d.DaysRecorded, &d.PendingFees)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ParentStats summarizes one parent's linked children.
func (r *DashboardRepository) ParentStats(ctx context.Context, parentID int) (*model.ParentDashboard, error) {
	d := &model.ParentDashboard{}
	err := r.pool.QueryRow(ctx,
		`SELECT
		 (SELECT COUNT(*) FROM parent_children WHERE parent_id = $1),
		 (SELECT COUNT(*) FROM fee_payments
		  WHERE status <> 'paid'
		  AND student_id IN (SELECT student_id FROM parent_children WHERE parent_id = $1))`,
		parentID,
	).Scan(&d.Children, &d.PendingFees)
	if err != nil {
		return nil, err
	}
	return d, nil
}
