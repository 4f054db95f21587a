package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/scope"
)

var ErrDuplicateStudentID = errors.New("student with this student id already exists")

const studentColumns = `s.id, s.user_id, s.student_id,
		 u.first_name || ' ' || u.last_name,
		 s.admission_date, s.current_class_id,
		 COALESCE(s.emergency_contact_name, ''), COALESCE(s.emergency_contact_phone, ''),
		 s.created_at, s.updated_at`

// StudentRepository handles student profile data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func scanStudent(row interface{ Scan(...any) error }) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(&s.ID, &s.UserID, &s.StudentID, &s.Name, &s.AdmissionDate, &s.CurrentClassID,
		&s.EmergencyContactName, &s.EmergencyContactPhone, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID retrieves a student by profile ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students s JOIN users u ON u.id = s.user_id WHERE s.id = $1`, id))
}

// GetByUserID retrieves the student profile bound to a user account.
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students s JOIN users u ON u.id = s.user_id WHERE s.user_id = $1`, userID))
}

// List retrieves the students visible under the scope, optionally
// limited to one class.
func (r *StudentRepository) List(ctx context.Context, sc scope.Scope, classID *int) ([]model.Student, error) {
	filter, args := studentFilter(sc, "s.id", "s.current_class_id", 1)
	query := `SELECT ` + studentColumns + `
		 FROM students s JOIN users u ON u.id = s.user_id
		 WHERE ` + filter
	if classID != nil {
		args = append(args, *classID)
		query += ` AND s.current_class_id = $` + itoa(len(args))
	}
	query += ` ORDER BY u.first_name, u.last_name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

// Visible reports whether the student exists and is visible under the
// scope.
func (r *StudentRepository) Visible(ctx context.Context, sc scope.Scope, studentID int) (bool, error) {
	filter, args := studentFilter(sc, "s.id", "s.current_class_id", 2)
	args = append([]any{studentID}, args...)
	var visible bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM students s WHERE s.id = $1 AND `+filter+`)`,
		args...,
	).Scan(&visible)
	return visible, err
}

// Create inserts the account and the student profile in one transaction.
// The user's ID and timestamps are populated on success.
func (r *StudentRepository) Create(ctx context.Context, u *model.User, s *model.Student) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, email, first_name, last_name, role, password_hash, phone, date_of_birth, address)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, NULLIF($9, ''))
		 RETURNING id, created_at, updated_at`,
		u.Username, u.Email, u.FirstName, u.LastName, u.Role, u.PasswordHash, u.Phone, u.DateOfBirth, u.Address,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return mapStudentCreateError(err)
	}

	s.UserID = u.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO students (user_id, student_id, admission_date, current_class_id, emergency_contact_name, emergency_contact_phone)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
		 RETURNING id, created_at, updated_at`,
		s.UserID, s.StudentID, s.AdmissionDate, s.CurrentClassID, s.EmergencyContactName, s.EmergencyContactPhone,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return mapStudentCreateError(err)
	}

	s.Name = u.FullName()
	return tx.Commit(ctx)
}

func mapStudentCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "students_student_id_key" {
			return ErrDuplicateStudentID
		}
		return ErrDuplicateUsername
	}
	return err
}

// AssignClass moves the student to a class; nil removes any assignment.
func (r *StudentRepository) AssignClass(ctx context.Context, studentID int, classID *int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE students SET current_class_id = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		classID, studentID,
	)
	return err
}

// Update modifies a student's profile fields.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE students SET admission_date = $1, current_class_id = $2,
		 emergency_contact_name = NULLIF($3, ''), emergency_contact_phone = NULLIF($4, ''),
		 updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5`,
		s.AdmissionDate, s.CurrentClassID, s.EmergencyContactName, s.EmergencyContactPhone, s.ID,
	)
	return err
}

// Delete removes a student and their account.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	// Deleting the user cascades to the profile.
	_, err := r.pool.Exec(ctx,
		`DELETE FROM users WHERE id = (SELECT user_id FROM students WHERE id = $1)`, id)
	return err
}
