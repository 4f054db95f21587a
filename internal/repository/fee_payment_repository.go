package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/scope"
)

const feePaymentColumns = `fp.id, fp.student_id, fp.fee_structure_id, fp.academic_year_id, fp.term,
		 fp.amount_paid, fp.total_amount, fp.status,
		 COALESCE(fp.payment_method, ''), COALESCE(fp.transaction_id, ''), fp.due_date,
		 COALESCE(fp.remarks, ''), fp.created_at, fp.updated_at`

// FeePaymentRepository handles fee ledger data access. Each row is the
// accumulated ledger for one (student, year, term); the service layer
// owns the accumulation arithmetic.
type FeePaymentRepository struct {
	pool *pgxpool.Pool
}

// NewFeePaymentRepository creates a new FeePaymentRepository.
func NewFeePaymentRepository(pool *pgxpool.Pool) *FeePaymentRepository {
	return &FeePaymentRepository{pool: pool}
}

func scanFeePayment(row interface{ Scan(...any) error }) (*model.FeePayment, error) {
	fp := &model.FeePayment{}
	err := row.Scan(&fp.ID, &fp.StudentID, &fp.FeeStructureID, &fp.AcademicYearID, &fp.Term,
		&fp.AmountPaid, &fp.TotalAmount, &fp.Status, &fp.PaymentMethod, &fp.TransactionID,
		&fp.DueDate, &fp.Remarks, &fp.CreatedAt, &fp.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return fp, nil
}

// GetByID retrieves a ledger row by ID.
func (r *FeePaymentRepository) GetByID(ctx context.Context, id int) (*model.FeePayment, error) {
	return scanFeePayment(r.pool.QueryRow(ctx,
		`SELECT `+feePaymentColumns+` FROM fee_payments fp WHERE fp.id = $1`, id))
}

// GetByStudentTerm retrieves the ledger row for a (student, year, term)
// triple. Returns pgx.ErrNoRows when no payment has been applied yet.
func (r *FeePaymentRepository) GetByStudentTerm(ctx context.Context, studentID, academicYearID int, term model.Term) (*model.FeePayment, error) {
	return scanFeePayment(r.pool.QueryRow(ctx,
		`SELECT `+feePaymentColumns+` FROM fee_payments fp
		 WHERE fp.student_id = $1 AND fp.academic_year_id = $2 AND fp.term = $3`,
		studentID, academicYearID, term))
}

// List retrieves ledger rows under the scope, optionally filtered by
// year and term. Staff scopes see nothing; fee records are not part of
// a class teacher's view.
func (r *FeePaymentRepository) List(ctx context.Context, sc scope.Scope, academicYearID *int, term *model.Term) ([]model.FeePayment, error) {
	if sc.Kind == scope.KindTaughtClasses || sc.Kind == scope.KindNone {
		return nil, nil
	}

	filter, args := studentFilter(sc, "fp.student_id", "s.current_class_id", 1)
	query := `SELECT ` + feePaymentColumns + `
		 FROM fee_payments fp JOIN students s ON s.id = fp.student_id
		 WHERE ` + filter
	if academicYearID != nil {
		args = append(args, *academicYearID)
		query += ` AND fp.academic_year_id = $` + itoa(len(args))
	}
	if term != nil {
		args = append(args, *term)
		query += ` AND fp.term = $` + itoa(len(args))
	}
	query += ` ORDER BY fp.student_id, fp.term`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []model.FeePayment
	for rows.Next() {
		fp, err := scanFeePayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *fp)
	}
	return payments, rows.Err()
}

// Create inserts the first ledger row for a (student, year, term).
func (r *FeePaymentRepository) Create(ctx context.Context, fp *model.FeePayment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO fee_payments (student_id, fee_structure_id, academic_year_id, term,
		 amount_paid, total_amount, status, payment_method, transaction_id, due_date, remarks)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, NULLIF($11, ''))
		 RETURNING id, created_at, updated_at`,
		fp.StudentID, fp.FeeStructureID, fp.AcademicYearID, fp.Term,
		fp.AmountPaid, fp.TotalAmount, fp.Status, fp.PaymentMethod, fp.TransactionID,
		fp.DueDate, fp.Remarks,
	).Scan(&fp.ID, &fp.CreatedAt, &fp.UpdatedAt)
}

// Update overwrites the accumulated amounts, status and metadata of an
// existing ledger row. Metadata fields keep their prior value when the
// new one is empty; the service applies that rule before calling.
func (r *FeePaymentRepository) Update(ctx context.Context, fp *model.FeePayment) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE fee_payments SET fee_structure_id = $1, amount_paid = $2, total_amount = $3,
		 status = $4, payment_method = NULLIF($5, ''), transaction_id = NULLIF($6, ''),
		 due_date = $7, remarks = NULLIF($8, ''), updated_at = CURRENT_TIMESTAMP
		 WHERE id = $9`,
		fp.FeeStructureID, fp.AmountPaid, fp.TotalAmount, fp.Status,
		fp.PaymentMethod, fp.TransactionID, fp.DueDate, fp.Remarks, fp.ID,
	)
	return err
}
