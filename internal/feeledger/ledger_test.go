package feeledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/scholaris/scholaris-backend/internal/model"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decp(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// Full amount 300, payments 100/100/100/50: totals converge to 300 and
// the excess 50 is absorbed.
func TestAccumulateConvergence(t *testing.T) {
	total := dec(300)
	paid := decimal.Zero

	steps := []struct {
		incoming   int64
		wantPaid   int64
		wantStatus model.PaymentStatus
	}{
		{100, 100, model.PaymentStatusPartial},
		{100, 200, model.PaymentStatusPartial},
		{100, 300, model.PaymentStatusPaid},
		{50, 300, model.PaymentStatusPaid},
	}

	for i, step := range steps {
		paid = Accumulate(paid, dec(step.incoming), total)
		if !paid.Equal(dec(step.wantPaid)) {
			t.Fatalf("step %d: paid = %s, want %d", i, paid, step.wantPaid)
		}
		if got := StatusFor(paid, total); got != step.wantStatus {
			t.Fatalf("step %d: status = %s, want %s", i, got, step.wantStatus)
		}
	}
}

func TestAccumulateSingleOverpayment(t *testing.T) {
	paid := Accumulate(decimal.Zero, dec(500), dec(300))
	if !paid.Equal(dec(300)) {
		t.Errorf("paid = %s, want 300", paid)
	}
}

func TestStatusForZeroPaid(t *testing.T) {
	if got := StatusFor(decimal.Zero, dec(300)); got != model.PaymentStatusPending {
		t.Errorf("status = %s, want pending", got)
	}
}

func TestStatusForZeroTotal(t *testing.T) {
	// A zero full amount can never reach paid.
	if got := StatusFor(decimal.Zero, decimal.Zero); got != model.PaymentStatusPending {
		t.Errorf("status = %s, want pending", got)
	}
}

func TestResolveTotalSchedulePrecedence(t *testing.T) {
	// Schedule amount overrides the caller's structure hint and total.
	got := ResolveTotal(decp(450), decp(999), decp(888), dec(100))
	if !got.Equal(dec(450)) {
		t.Errorf("resolved = %s, want 450 (schedule wins)", got)
	}
}

func TestResolveTotalFallbackChain(t *testing.T) {
	cases := []struct {
		name          string
		scheduled     *decimal.Decimal
		structureHint *decimal.Decimal
		declaredTotal *decimal.Decimal
		want          int64
	}{
		{"structure hint when no schedule", nil, decp(400), decp(888), 400},
		{"declared total when no structure", nil, nil, decp(350), 350},
		{"incoming amount as last resort", nil, nil, nil, 100},
	}
	for _, c := range cases {
		got := ResolveTotal(c.scheduled, c.structureHint, c.declaredTotal, dec(100))
		if !got.Equal(dec(c.want)) {
			t.Errorf("%s: resolved = %s, want %d", c.name, got, c.want)
		}
	}
}

func TestResolveTotalIgnoresNonPositiveDeclared(t *testing.T) {
	zero := decimal.Zero
	got := ResolveTotal(nil, nil, &zero, dec(120))
	if !got.Equal(dec(120)) {
		t.Errorf("resolved = %s, want incoming 120 when declared total is 0", got)
	}
}
