package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/scholaris/scholaris-backend/internal/feeledger"
	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/repository"
	"github.com/scholaris/scholaris-backend/internal/scope"
)

// FeeService owns the fee schedule and the payment ledger.
type FeeService struct {
	structures *repository.FeeStructureRepository
	payments   *repository.FeePaymentRepository
	students   *repository.StudentRepository
	classes    *repository.ClassRepository
	log        zerolog.Logger
}

// NewFeeService creates a new FeeService.
func NewFeeService(
	structures *repository.FeeStructureRepository,
	payments *repository.FeePaymentRepository,
	students *repository.StudentRepository,
	classes *repository.ClassRepository,
	log zerolog.Logger,
) *FeeService {
	return &FeeService{
		structures: structures,
		payments:   payments,
		students:   students,
		classes:    classes,
		log:        log.With().Str("component", "fee_service").Logger(),
	}
}

// ApplyPayment folds a payment into the student's ledger row for the
// year/term, creating the row on first payment. The full amount is
// re-resolved against the fee schedule on every call, the running
// total is capped at it, and metadata fields only overwrite when the
// incoming value is non-empty.
func (s *FeeService) ApplyPayment(ctx context.Context, req model.ApplyFeePaymentRequest) (*model.FeePayment, error) {
	if !model.ValidSchoolTerm(req.Term) {
		return nil, ErrUnknownTerm
	}
	if req.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	scheduled, structureID, err := s.scheduledTuition(ctx, student, req.AcademicYearID)
	if err != nil {
		return nil, err
	}

	var structureHint *decimal.Decimal
	if structureID == nil && req.FeeStructureID != nil {
		hint, err := s.structures.GetByID(ctx, *req.FeeStructureID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		if err == nil {
			structureHint = &hint.Amount
			structureID = &hint.ID
		}
	}

	total := feeledger.ResolveTotal(scheduled, structureHint, req.TotalAmount, req.Amount)

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, err
		}
		dueDate = &d
	}

	ledger, err := s.payments.GetByStudentTerm(ctx, req.StudentID, req.AcademicYearID, req.Term)
	if errors.Is(err, pgx.ErrNoRows) {
		paid := feeledger.Accumulate(decimal.Zero, req.Amount, total)
		ledger = &model.FeePayment{
			StudentID:      req.StudentID,
			FeeStructureID: structureID,
			AcademicYearID: req.AcademicYearID,
			Term:           req.Term,
			AmountPaid:     paid,
			TotalAmount:    total,
			Status:         feeledger.StatusFor(paid, total),
			PaymentMethod:  req.PaymentMethod,
			TransactionID:  req.TransactionID,
			DueDate:        dueDate,
			Remarks:        req.Remarks,
		}
		if err := s.payments.Create(ctx, ledger); err != nil {
			return nil, err
		}
		s.logPayment(ledger, req.Amount)
		return ledger, nil
	}
	if err != nil {
		return nil, err
	}

	ledger.AmountPaid = feeledger.Accumulate(ledger.AmountPaid, req.Amount, total)
	ledger.TotalAmount = total
	ledger.Status = feeledger.StatusFor(ledger.AmountPaid, total)
	if structureID != nil {
		ledger.FeeStructureID = structureID
	}
	if req.PaymentMethod != "" {
		ledger.PaymentMethod = req.PaymentMethod
	}
	if req.TransactionID != "" {
		ledger.TransactionID = req.TransactionID
	}
	if dueDate != nil {
		ledger.DueDate = dueDate
	}
	if req.Remarks != "" {
		ledger.Remarks = req.Remarks
	}

	if err := s.payments.Update(ctx, ledger); err != nil {
		return nil, err
	}
	s.logPayment(ledger, req.Amount)
	return ledger, nil
}

// scheduledTuition looks up the tuition schedule entry for the grade of
// the student's current class. Returns nils when the student has no
// class or no schedule entry exists; the resolution chain falls back.
func (s *FeeService) scheduledTuition(ctx context.Context, student *model.Student, academicYearID int) (*decimal.Decimal, *int, error) {
	if student.CurrentClassID == nil {
		return nil, nil, nil
	}
	class, err := s.classes.GetByID(ctx, *student.CurrentClassID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	fs, err := s.structures.GetByYearGradeType(ctx, academicYearID, class.Grade, model.FeeTypeTuition)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return &fs.Amount, &fs.ID, nil
}

func (s *FeeService) logPayment(fp *model.FeePayment, amount decimal.Decimal) {
	s.log.Info().
		Int("student_id", fp.StudentID).
		Str("term", string(fp.Term)).
		Str("amount", amount.String()).
		Str("amount_paid", fp.AmountPaid.String()).
		Str("total_amount", fp.TotalAmount.String()).
		Str("status", string(fp.Status)).
		Msg("fee payment applied")
}

// GetLedger retrieves the ledger row for a student/year/term visible
// under the scope.
func (s *FeeService) GetLedger(ctx context.Context, sc scope.Scope, studentID, academicYearID int, term model.Term) (*model.FeePayment, error) {
	if !model.ValidSchoolTerm(term) {
		return nil, ErrUnknownTerm
	}
	if sc.Kind == scope.KindTaughtClasses || sc.Kind == scope.KindNone {
		return nil, ErrNotFound
	}
	visible, err := s.students.Visible(ctx, sc, studentID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrNotFound
	}
	ledger, err := s.payments.GetByStudentTerm(ctx, studentID, academicYearID, term)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return ledger, err
}

// ListPayments retrieves the ledger rows visible under the scope.
func (s *FeeService) ListPayments(ctx context.Context, sc scope.Scope, academicYearID *int, term *model.Term) ([]model.FeePayment, error) {
	if term != nil && !model.ValidSchoolTerm(*term) {
		return nil, ErrUnknownTerm
	}
	return s.payments.List(ctx, sc, academicYearID, term)
}

// ─── Fee schedule CRUD ───

// CreateStructure inserts a fee schedule entry.
func (s *FeeService) CreateStructure(ctx context.Context, req model.CreateFeeStructureRequest) (*model.FeeStructure, error) {
	fs := &model.FeeStructure{
		AcademicYearID: req.AcademicYearID,
		Grade:          req.Grade,
		FeeType:        req.FeeType,
		Amount:         req.Amount,
		Description:    req.Description,
	}
	if err := s.structures.Create(ctx, fs); err != nil {
		return nil, err
	}
	return fs, nil
}

// ListStructures retrieves fee schedule entries, optionally by year.
func (s *FeeService) ListStructures(ctx context.Context, academicYearID *int) ([]model.FeeStructure, error) {
	return s.structures.List(ctx, academicYearID)
}

// DeleteStructure removes a fee schedule entry.
func (s *FeeService) DeleteStructure(ctx context.Context, id int) error {
	return s.structures.Delete(ctx, id)
}
