// Package feeledger implements the fee accumulation rules: a single
// ledger row per student/term/year whose running total only grows,
// never exceeds the resolved full amount, and derives its status from
// the post-update balance.
//
// All functions are pure; the service layer supplies the looked-up
// schedule amounts and persists the outcome.
package feeledger

import (
	"github.com/shopspring/decimal"

	"github.com/scholaris/scholaris-backend/internal/model"
)

// ResolveTotal picks the authoritative full fee amount.
//
// The fee schedule entry for the student's current grade always wins —
// it overrides whatever structure or total the caller supplied, which
// guards against stale client data. When no schedule entry applies the
// chain falls back to the caller's structure amount, then the caller's
// declared total, then the incoming payment itself, so a payment is
// never rejected just because schedule data is missing.
func ResolveTotal(scheduled, structureHint, declaredTotal *decimal.Decimal, incoming decimal.Decimal) decimal.Decimal {
	if scheduled != nil {
		return *scheduled
	}
	if structureHint != nil {
		return *structureHint
	}
	if declaredTotal != nil && declaredTotal.IsPositive() {
		return *declaredTotal
	}
	return incoming
}

// Accumulate adds an incoming payment to the running total, capped at
// the full amount. Excess is absorbed, not recorded as credit.
func Accumulate(previousPaid, incoming, total decimal.Decimal) decimal.Decimal {
	paid := previousPaid.Add(incoming)
	if paid.GreaterThan(total) {
		return total
	}
	return paid
}

// StatusFor derives the payment status from the running total.
func StatusFor(paid, total decimal.Decimal) model.PaymentStatus {
	switch {
	case total.IsPositive() && paid.GreaterThanOrEqual(total):
		return model.PaymentStatusPaid
	case paid.IsPositive():
		return model.PaymentStatusPartial
	default:
		return model.PaymentStatusPending
	}
}
