package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholaris/scholaris-backend/internal/model"
)

// AcademicYearRepository handles academic year data access.
type AcademicYearRepository struct {
	pool *pgxpool.Pool
}

// NewAcademicYearRepository creates a new AcademicYearRepository.
func NewAcademicYearRepository(pool *pgxpool.Pool) *AcademicYearRepository {
	return &AcademicYearRepository{pool: pool}
}

// GetByID retrieves an academic year by ID.
func (r *AcademicYearRepository) GetByID(ctx context.Context, id int) (*model.AcademicYear, error) {
	y := &model.AcademicYear{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, start_date, end_date, is_active FROM academic_years WHERE id = $1`, id,
	).Scan(&y.ID, &y.Name, &y.StartDate, &y.EndDate, &y.IsActive)
	if err != nil {
		return nil, err
	}
	return y, nil
}

// GetActive retrieves the active academic year. When more than one row
// is flagged active the most recent start date wins; the flag is not
// constrained to a single row.
func (r *AcademicYearRepository) GetActive(ctx context.Context) (*model.AcademicYear, error) {
	y := &model.AcademicYear{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, start_date, end_date, is_active FROM academic_years
		 WHERE is_active ORDER BY start_date DESC LIMIT 1`,
	).Scan(&y.ID, &y.Name, &y.StartDate, &y.EndDate, &y.IsActive)
	if err != nil {
		return nil, err
	}
	return y, nil
}

// List retrieves all academic years, newest first.
func (r *AcademicYearRepository) List(ctx context.Context) ([]model.AcademicYear, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, start_date, end_date, is_active FROM academic_years ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []model.AcademicYear
	for rows.Next() {
		var y model.AcademicYear
		if err := rows.Scan(&y.ID, &y.Name, &y.StartDate, &y.EndDate, &y.IsActive); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

// Create inserts a new academic year.
func (r *AcademicYearRepository) Create(ctx context.Context, y *model.AcademicYear) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO academic_years (name, start_date, end_date, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		y.Name, y.StartDate, y.EndDate, y.IsActive,
	).Scan(&y.ID)
}

// Update modifies an existing academic year.
func (r *AcademicYearRepository) Update(ctx context.Context, y *model.AcademicYear) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE academic_years SET name = $1, start_date = $2, end_date = $3, is_active = $4
		 WHERE id = $5`,
		y.Name, y.StartDate, y.EndDate, y.IsActive, y.ID,
	)
	return err
}

// Delete removes an academic year by ID.
func (r *AcademicYearRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM academic_years WHERE id = $1`, id)
	return err
}
