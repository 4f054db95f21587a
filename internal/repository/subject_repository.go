package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholaris/scholaris-backend/internal/model"
)

var ErrDuplicateSubjectCode = errors.New("subject with this code already exists")

// SubjectRepository handles subject data access.
type SubjectRepository struct {
	pool *pgxpool.Pool
}

// NewSubjectRepository creates a new SubjectRepository.
func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

// GetByID retrieves a subject by ID.
func (r *SubjectRepository) GetByID(ctx context.Context, id int) (*model.Subject, error) {
	s := &model.Subject{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, code, COALESCE(description, '') FROM subjects WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Code, &s.Description)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves all subjects ordered by name.
func (r *SubjectRepository) List(ctx context.Context) ([]model.Subject, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, code, COALESCE(description, '') FROM subjects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []model.Subject
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.Description); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// Create inserts a new subject.
func (r *SubjectRepository) Create(ctx context.Context, s *model.Subject) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO subjects (name, code, description)
		 VALUES ($1, $2, NULLIF($3, ''))
		 RETURNING id`,
		s.Name, s.Code, s.Description,
	).Scan(&s.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSubjectCode
		}
		return err
	}
	return nil
}

// Update modifies an existing subject.
func (r *SubjectRepository) Update(ctx context.Context, s *model.Subject) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE subjects SET name = $1, code = $2, description = NULLIF($3, '') WHERE id = $4`,
		s.Name, s.Code, s.Description, s.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSubjectCode
		}
		return err
	}
	return nil
}

// Delete removes a subject by ID.
func (r *SubjectRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	return err
}
