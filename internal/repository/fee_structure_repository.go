package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholaris/scholaris-backend/internal/model"
)

var ErrDuplicateFeeStructure = errors.New("fee structure for this year, grade and type already exists")

// FeeStructureRepository handles fee schedule data access.
type FeeStructureRepository struct {
	pool *pgxpool.Pool
}

// NewFeeStructureRepository creates a new FeeStructureRepository.
func NewFeeStructureRepository(pool *pgxpool.Pool) *FeeStructureRepository {
	return &FeeStructureRepository{pool: pool}
}

// GetByID retrieves a fee structure by ID.
func (r *FeeStructureRepository) GetByID(ctx context.Context, id int) (*model.FeeStructure, error) {
	fs := &model.FeeStructure{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, academic_year_id, grade, fee_type, amount, COALESCE(description, '')
		 FROM fee_structures WHERE id = $1`, id,
	).Scan(&fs.ID, &fs.AcademicYearID, &fs.Grade, &fs.FeeType, &fs.Amount, &fs.Description)
	if err != nil {
		return nil, err
	}
	return fs, nil
}

// GetByYearGradeType retrieves the schedule entry for a
// (year, grade, fee type) triple. This is the lookup the fee ledger
// resolves totals against.
func (r *FeeStructureRepository) GetByYearGradeType(ctx context.Context, academicYearID, grade int, feeType model.FeeType) (*model.FeeStructure, error) {
	fs := &model.FeeStructure{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, academic_year_id, grade, fee_type, amount, COALESCE(description, '')
		 FROM fee_structures
		 WHERE academic_year_id = $1 AND grade = $2 AND fee_type = $3`,
		academicYearID, grade, feeType,
	).Scan(&fs.ID, &fs.AcademicYearID, &fs.Grade, &fs.FeeType, &fs.Amount, &fs.Description)
	if err != nil {
		return nil, err
	}
	return fs, nil
}

// List retrieves all fee structures, optionally filtered by year.
func (r *FeeStructureRepository) List(ctx context.Context, academicYearID *int) ([]model.FeeStructure, error) {
	query := `SELECT id, academic_year_id, grade, fee_type, amount, COALESCE(description, '')
		 FROM fee_structures`
	var args []any
	if academicYearID != nil {
		args = append(args, *academicYearID)
		query += ` WHERE academic_year_id = $1`
	}
	query += ` ORDER BY grade, fee_type`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var structures []model.FeeStructure
	for rows.Next() {
		var fs model.FeeStructure
		if err := rows.Scan(&fs.ID, &fs.AcademicYearID, &fs.Grade, &fs.FeeType, &fs.Amount, &fs.Description); err != nil {
			return nil, err
		}
		structures = append(structures, fs)
	}
	return structures, rows.Err()
}

// Create inserts a new fee structure.
func (r *FeeStructureRepository) Create(ctx context.Context, fs *model.FeeStructure) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO fee_structures (academic_year_id, grade, fee_type, amount, description)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		 RETURNING id`,
		fs.AcademicYearID, fs.Grade, fs.FeeType, fs.Amount, fs.Description,
	).Scan(&fs.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateFeeStructure
		}
		return err
	}
	return nil
}

// Update modifies an existing fee structure.
func (r *FeeStructureRepository) Update(ctx context.Context, fs *model.FeeStructure) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE fee_structures SET academic_year_id = $1, grade = $2, fee_type = $3,
		 amount = $4, description = NULLIF($5, '')
		 WHERE id = $6`,
		fs.AcademicYearID, fs.Grade, fs.FeeType, fs.Amount, fs.Description, fs.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateFeeStructure
		}
		return err
	}
	return nil
}

// Delete removes a fee structure by ID. Ledger rows keep their resolved
// totals; only the advisory reference is cleared by the schema.
func (r *FeeStructureRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM fee_structures WHERE id = $1`, id)
	return err
}
