package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeType categorizes a fee schedule entry.
type FeeType string

const (
	FeeTypeTuition     FeeType = "tuition"
	FeeTypeExamination FeeType = "examination"
	FeeTypeTransport   FeeType = "transport"
	FeeTypeHostel      FeeType = "hostel"
	FeeTypeOther       FeeType = "other"
)

// PaymentStatus is derived from the ledger's running total, never set
// by callers.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// FeeStructure is the required amount for a (year, grade, fee type)
// triple. It is the authoritative source for the fee ledger.
type FeeStructure struct {
	ID             int             `json:"id"`
	AcademicYearID int             `json:"academic_year_id"`
	Grade          int             `json:"grade"`
	FeeType        FeeType         `json:"fee_type"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description,omitempty"`
}

// CreateFeeStructureRequest is the payload for creating or updating a
// fee schedule entry.
type CreateFeeStructureRequest struct {
	AcademicYearID int             `json:"academic_year_id" binding:"required"`
	Grade          int             `json:"grade" binding:"required,min=1,max=12"`
	FeeType        FeeType         `json:"fee_type" binding:"required,oneof=tuition examination transport hostel other"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Description    string          `json:"description" binding:"omitempty,max=200"`
}

// FeePayment is the single ledger row accumulating all payments for one
// student/term/year. AmountPaid only grows and never exceeds
// TotalAmount; TotalAmount is re-resolved from the fee schedule on
// every payment.
type FeePayment struct {
	ID             int             `json:"id"`
	StudentID      int             `json:"student_id"`
	FeeStructureID *int            `json:"fee_structure_id,omitempty"`
	AcademicYearID int             `json:"academic_year_id"`
	Term           Term            `json:"term"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         PaymentStatus   `json:"status"`
	PaymentMethod  string          `json:"payment_method,omitempty"`
	TransactionID  string          `json:"transaction_id,omitempty"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	Remarks        string          `json:"remarks,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ApplyFeePaymentRequest is the payload for applying a payment to the
// ledger. FeeStructureID and TotalAmount are advisory: the schedule for
// the student's current grade wins when it exists.
type ApplyFeePaymentRequest struct {
	StudentID      int              `json:"student_id" binding:"required"`
	AcademicYearID int              `json:"academic_year_id" binding:"required"`
	Term           Term             `json:"term" binding:"required,oneof=first second third"`
	FeeStructureID *int             `json:"fee_structure_id" binding:"omitempty"`
	Amount         decimal.Decimal  `json:"amount"`
	TotalAmount    *decimal.Decimal `json:"total_amount" binding:"omitempty"`
	PaymentMethod  string           `json:"payment_method" binding:"omitempty,max=50"`
	TransactionID  string           `json:"transaction_id" binding:"omitempty,max=100"`
	DueDate        string           `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Remarks        string           `json:"remarks" binding:"omitempty,max=500"`
}
