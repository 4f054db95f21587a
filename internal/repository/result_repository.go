package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/scope"
)

var ErrResultReferenceMissing = errors.New("result references a missing student, subject or academic year")

const resultColumns = `r.id, r.student_id, r.subject_id, r.academic_year_id, r.term, r.recorded_class_id,
		 r.ca1_score, r.ca2_score, r.ca3_score, r.ca4_score, r.exam_score,
		 r.ca_total, r.marks_obtained, r.total_marks, r.percentage, r.grade,
		 COALESCE(r.remarks, ''), r.uploaded_by, r.created_at, r.updated_at`

// ResultRepository handles result data access.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

func scanResult(row interface{ Scan(...any) error }) (*model.Result, error) {
	res := &model.Result{}
	err := row.Scan(&res.ID, &res.StudentID, &res.SubjectID, &res.AcademicYearID, &res.Term,
		&res.RecordedClassID, &res.CA1Score, &res.CA2Score, &res.CA3Score, &res.CA4Score,
		&res.ExamScore, &res.CATotal, &res.MarksObtained, &res.TotalMarks, &res.Percentage,
		&res.Grade, &res.Remarks, &res.UploadedBy, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GetByID retrieves a result by ID.
func (r *ResultRepository) GetByID(ctx context.Context, id int) (*model.Result, error) {
	return scanResult(r.pool.QueryRow(ctx,
		`SELECT `+resultColumns+` FROM results r WHERE r.id = $1`, id))
}

// Upsert records a result. A second write for the same
// (student, subject, year, term) overwrites the scores and the derived
// fields in place; the recorded class snapshot and uploader follow the
// latest write. ca_total and percentage are generated columns and are
// never written directly.
func (r *ResultRepository) Upsert(ctx context.Context, res *model.Result) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO results (student_id, subject_id, academic_year_id, term, recorded_class_id,
		 ca1_score, ca2_score, ca3_score, ca4_score, exam_score,
		 marks_obtained, total_marks, grade, remarks, uploaded_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULLIF($14, ''), $15)
		 ON CONFLICT (student_id, subject_id, academic_year_id, term) DO UPDATE SET
		 recorded_class_id = EXCLUDED.recorded_class_id,
		 ca1_score = EXCLUDED.ca1_score, ca2_score = EXCLUDED.ca2_score,
		 ca3_score = EXCLUDED.ca3_score, ca4_score = EXCLUDED.ca4_score,
		 exam_score = EXCLUDED.exam_score,
		 marks_obtained = EXCLUDED.marks_obtained, total_marks = EXCLUDED.total_marks,
		 grade = EXCLUDED.grade, remarks = EXCLUDED.remarks,
		 uploaded_by = EXCLUDED.uploaded_by, updated_at = CURRENT_TIMESTAMP
		 RETURNING id, created_at, updated_at`,
		res.StudentID, res.SubjectID, res.AcademicYearID, res.Term, res.RecordedClassID,
		res.CA1Score, res.CA2Score, res.CA3Score, res.CA4Score, res.ExamScore,
		res.MarksObtained, res.TotalMarks, res.Grade,
		res.Remarks, res.UploadedBy,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrResultReferenceMissing
		}
		return err
	}
	return nil
}

// ListForStudent retrieves a student's results, optionally filtered by
// year and term, newest first.
func (r *ResultRepository) ListForStudent(ctx context.Context, studentID int, academicYearID *int, term *model.Term) ([]model.Result, error) {
	query := `SELECT ` + resultColumns + ` FROM results r WHERE r.student_id = $1`
	args := []any{studentID}
	if academicYearID != nil {
		args = append(args, *academicYearID)
		query += ` AND r.academic_year_id = $2`
	}
	if term != nil {
		args = append(args, *term)
		query += ` AND r.term = $` + itoa(len(args))
	}
	query += ` ORDER BY r.updated_at DESC`

	return r.queryResults(ctx, query, args...)
}

// ListVisible retrieves results under the scope for a year/term. Staff
// see the results they uploaded plus those of students in classes they
// lead.
func (r *ResultRepository) ListVisible(ctx context.Context, sc scope.Scope, academicYearID int, term model.Term) ([]model.Result, error) {
	query := `SELECT ` + resultColumns + `
		 FROM results r JOIN students s ON s.id = r.student_id
		 WHERE r.academic_year_id = $1 AND r.term = $2 AND `
	args := []any{academicYearID, term}

	if sc.Kind == scope.KindTaughtClasses {
		args = append(args, sc.ProfileID)
		query += `(r.uploaded_by = $3 OR s.current_class_id IN (SELECT id FROM classes WHERE class_teacher_id = $3))`
	} else {
		filter, fargs := studentFilter(sc, "s.id", "s.current_class_id", len(args)+1)
		args = append(args, fargs...)
		query += filter
	}
	query += ` ORDER BY r.student_id, r.subject_id`

	return r.queryResults(ctx, query, args...)
}

// rankingRow is one (student, subject) line feeding the class ranking.
type rankingRow struct {
	StudentID     int
	StudentName   string
	SubjectID     int
	SubjectName   string
	MarksObtained float64
	TotalMarks    float64
	Grade         string
}

// ListForClassTerm retrieves the ranking input rows for students
// currently assigned to the class. Membership follows the student's
// present class, not the class recorded on the result.
func (r *ResultRepository) ListForClassTerm(ctx context.Context, classID, academicYearID int, term model.Term) ([]rankingRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT r.student_id, u.first_name || ' ' || u.last_name,
		 r.subject_id, sub.name, r.marks_obtained, r.total_marks, r.grade
		 FROM results r
		 JOIN students s ON s.id = r.student_id
		 JOIN users u ON u.id = s.user_id
		 JOIN subjects sub ON sub.id = r.subject_id
		 WHERE s.current_class_id = $1 AND r.academic_year_id = $2 AND r.term = $3
		 ORDER BY r.student_id, sub.name`,
		classID, academicYearID, term,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []rankingRow
	for rows.Next() {
		var rr rankingRow
		if err := rows.Scan(&rr.StudentID, &rr.StudentName, &rr.SubjectID, &rr.SubjectName,
			&rr.MarksObtained, &rr.TotalMarks, &rr.Grade); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *ResultRepository) queryResults(ctx context.Context, query string, args ...any) ([]model.Result, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}
	return results, rows.Err()
}

// Delete removes a result by ID.
func (r *ResultRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM results WHERE id = $1`, id)
	return err
}
