package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholaris/scholaris-backend/internal/model"
)

var ErrDuplicateUsername = errors.New("user with this username or email already exists")

const userColumns = `id, username, email, first_name, last_name, role, password_hash,
	 COALESCE(phone, ''), date_of_birth, COALESCE(address, ''), created_at, updated_at`

// UserRepository handles account data access.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.Role,
		&u.PasswordHash, &u.Phone, &u.DateOfBirth, &u.Address, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// GetByUsername retrieves a user by their unique username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

// Create inserts a new account.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, first_name, last_name, role, password_hash, phone, date_of_birth, address)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, NULLIF($9, ''))
		 RETURNING id, created_at, updated_at`,
		u.Username, u.Email, u.FirstName, u.LastName, u.Role, u.PasswordHash, u.Phone, u.DateOfBirth, u.Address,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

// UpdateProfile modifies a user's contact details (not role or password).
func (r *UserRepository) UpdateProfile(ctx context.Context, u *model.User) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET email = $1, first_name = $2, last_name = $3, phone = NULLIF($4, ''),
		 date_of_birth = $5, address = NULLIF($6, ''), updated_at = CURRENT_TIMESTAMP
		 WHERE id = $7`,
		u.Email, u.FirstName, u.LastName, u.Phone, u.DateOfBirth, u.Address, u.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

// UpdatePassword updates a user's password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		passwordHash, id,
	)
	return err
}

// Delete removes a user by ID. Profile rows cascade.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
