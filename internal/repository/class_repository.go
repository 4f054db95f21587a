package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholaris/scholaris-backend/internal/model"
)

// ClassRepository handles class data access.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// GetByID retrieves a class by its ID.
func (r *ClassRepository) GetByID(ctx context.Context, id int) (*model.Class, error) {
	c := &model.Class{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, grade, section, academic_year_id, class_teacher_id, created_at, updated_at
		 FROM classes WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Grade, &c.Section, &c.AcademicYearID, &c.ClassTeacherID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List retrieves all classes, optionally filtered by academic year.
func (r *ClassRepository) List(ctx context.Context, academicYearID *int) ([]model.Class, error) {
	query := `SELECT id, name, grade, section, academic_year_id, class_teacher_id, created_at, updated_at
		 FROM classes`
	var args []interface{}
	if academicYearID != nil {
		query += ` WHERE academic_year_id = $1`
		args = append(args, *academicYearID)
	}
	query += ` ORDER BY grade, section`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.Grade, &c.Section, &c.AcademicYearID, &c.ClassTeacherID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO classes (name, grade, section, academic_year_id, class_teacher_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		c.Name, c.Grade, c.Section, c.AcademicYearID, c.ClassTeacherID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Update modifies an existing class.
func (r *ClassRepository) Update(ctx context.Context, c *model.Class) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE classes SET name = $1, grade = $2, section = $3, academic_year_id = $4,
		 class_teacher_id = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6`,
		c.Name, c.Grade, c.Section, c.AcademicYearID, c.ClassTeacherID, c.ID,
	)
	return err
}

// Delete removes a class by its ID.
func (r *ClassRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	return err
}
