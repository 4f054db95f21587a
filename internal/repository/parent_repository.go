package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholaris/scholaris-backend/internal/model"
)

var ErrDuplicateParentID = errors.New("parent with this parent id already exists")

const parentColumns = `p.id, p.user_id, p.parent_id,
		 u.first_name || ' ' || u.last_name,
		 p.created_at, p.updated_at`

// ParentRepository handles parent profile data access.
type ParentRepository struct {
	pool *pgxpool.Pool
}

// NewParentRepository creates a new ParentRepository.
func NewParentRepository(pool *pgxpool.Pool) *ParentRepository {
	return &ParentRepository{pool: pool}
}

func scanParent(row interface{ Scan(...any) error }) (*model.Parent, error) {
	p := &model.Parent{}
	err := row.Scan(&p.ID, &p.UserID, &p.ParentID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID retrieves a parent by profile ID, including linked child IDs.
func (r *ParentRepository) GetByID(ctx context.Context, id int) (*model.Parent, error) {
	p, err := scanParent(r.pool.QueryRow(ctx,
		`SELECT `+parentColumns+` FROM parents p JOIN users u ON u.id = p.user_id WHERE p.id = $1`, id))
	if err != nil {
		return nil, err
	}
	p.ChildIDs, err = r.childIDs(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByUserID retrieves the parent profile bound to a user account.
func (r *ParentRepository) GetByUserID(ctx context.Context, userID int) (*model.Parent, error) {
	p, err := scanParent(r.pool.QueryRow(ctx,
		`SELECT `+parentColumns+` FROM parents p JOIN users u ON u.id = p.user_id WHERE p.user_id = $1`, userID))
	if err != nil {
		return nil, err
	}
	p.ChildIDs, err = r.childIDs(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List retrieves all parents ordered by name. Child IDs are not
// populated on list rows.
func (r *ParentRepository) List(ctx context.Context) ([]model.Parent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+parentColumns+` FROM parents p JOIN users u ON u.id = p.user_id
		 ORDER BY u.first_name, u.last_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parents []model.Parent
	for rows.Next() {
		p, err := scanParent(rows)
		if err != nil {
			return nil, err
		}
		parents = append(parents, *p)
	}
	return parents, rows.Err()
}

func (r *ParentRepository) childIDs(ctx context.Context, parentID int) ([]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT student_id FROM parent_children WHERE parent_id = $1 ORDER BY student_id`, parentID)
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

// Create inserts the account and the parent profile in one transaction.
func (r *ParentRepository) Create(ctx context.Context, u *model.User, p *model.Parent) error {
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
		return mapParentCreateError(err)
	}

	p.UserID = u.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO parents (user_id, parent_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		p.UserID, p.ParentID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return mapParentCreateError(err)
	}

	p.Name = u.FullName()
	return tx.Commit(ctx)
}

func mapParentCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "parents_parent_id_key" {
			return ErrDuplicateParentID
		}
		return ErrDuplicateUsername
	}
	return err
}

// ReplaceChildren replaces the full set of students linked to a parent.
func (r *ParentRepository) ReplaceChildren(ctx context.Context, parentID int, studentIDs []int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM parent_children WHERE parent_id = $1`, parentID); err != nil {
		return err
	}
	for _, studentID := range studentIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO parent_children (parent_id, student_id) VALUES ($1, $2)`,
			parentID, studentID,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// Delete removes a parent and their account. Child links cascade.
func (r *ParentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM users WHERE id = (SELECT user_id FROM parents WHERE id = $1)`, id)
	return err
}
