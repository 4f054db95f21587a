package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholaris/scholaris-backend/internal/model"
)

var ErrDuplicateStaffID = errors.New("staff with this staff id already exists")

const staffColumns = `st.id, st.user_id, st.staff_id,
		 u.first_name || ' ' || u.last_name,
		 st.designation, st.joining_date, COALESCE(st.qualification, ''), st.experience_years,
		 st.created_at, st.updated_at`

// StaffRepository handles staff profile data access.
type StaffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository creates a new StaffRepository.
func NewStaffRepository(pool *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{pool: pool}
}

func scanStaff(row interface{ Scan(...any) error }) (*model.Staff, error) {
	s := &model.Staff{}
	err := row.Scan(&s.ID, &s.UserID, &s.StaffID, &s.Name, &s.Designation, &s.JoiningDate,
		&s.Qualification, &s.ExperienceYears, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID retrieves a staff member by profile ID, including their
// taught subject IDs.
func (r *StaffRepository) GetByID(ctx context.Context, id int) (*model.Staff, error) {
	s, err := scanStaff(r.pool.QueryRow(ctx,
		`SELECT `+staffColumns+` FROM staff st JOIN users u ON u.id = st.user_id WHERE st.id = $1`, id))
	if err != nil {
		return nil, err
	}
	s.SubjectIDs, err = r.subjectIDs(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByUserID retrieves the staff profile bound to a user account.
func (r *StaffRepository) GetByUserID(ctx context.Context, userID int) (*model.Staff, error) {
	s, err := scanStaff(r.pool.QueryRow(ctx,
		`SELECT `+staffColumns+` FROM staff st JOIN users u ON u.id = st.user_id WHERE st.user_id = $1`, userID))
	if err != nil {
		return nil, err
	}
	s.SubjectIDs, err = r.subjectIDs(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves all staff members ordered by name. Subject IDs are not
// populated on list rows.
func (r *StaffRepository) List(ctx context.Context) ([]model.Staff, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+staffColumns+` FROM staff st JOIN users u ON u.id = st.user_id
		 ORDER BY u.first_name, u.last_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []model.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *s)
	}
	return members, rows.Err()
}

func (r *StaffRepository) subjectIDs(ctx context.Context, staffID int) ([]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT subject_id FROM staff_subjects WHERE staff_id = $1 ORDER BY subject_id`, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Create inserts the account and the staff profile in one transaction.
func (r *StaffRepository) Create(ctx context.Context, u *model.User, s *model.Staff) error {
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
		return mapStaffCreateError(err)
	}

	s.UserID = u.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO staff (user_id, staff_id, designation, joining_date, qualification, experience_years)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		 RETURNING id, created_at, updated_at`,
		s.UserID, s.StaffID, s.Designation, s.JoiningDate, s.Qualification, s.ExperienceYears,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return mapStaffCreateError(err)
	}

	s.Name = u.FullName()
	return tx.Commit(ctx)
}

func mapStaffCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "staff_staff_id_key" {
			return ErrDuplicateStaffID
		}
		return ErrDuplicateUsername
	}
	return err
}

// ReplaceSubjects replaces the full set of subjects the staff member
// teaches.
func (r *StaffRepository) ReplaceSubjects(ctx context.Context, staffID int, subjectIDs []int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM staff_subjects WHERE staff_id = $1`, staffID); err != nil {
		return err
	}
	for _, subjectID := range subjectIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO staff_subjects (staff_id, subject_id) VALUES ($1, $2)`,
			staffID, subjectID,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// Update modifies a staff member's profile fields.
func (r *StaffRepository) Update(ctx context.Context, s *model.Staff) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE staff SET designation = $1, joining_date = $2, qualification = NULLIF($3, ''),
		 experience_years = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5`,
		s.Designation, s.JoiningDate, s.Qualification, s.ExperienceYears, s.ID,
	)
	return err
}

// Delete removes a staff member and their account.
func (r *StaffRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM users WHERE id = (SELECT user_id FROM staff WHERE id = $1)`, id)
	return err
}
