// Package grading implements the deterministic scoring model for
// academic results: four continuous-assessment scores worth 10 marks
// each plus one exam worth 60, graded out of a fixed 100.
//
// Everything here is a pure function over raw scores so the write path
// can recompute derived fields on every persist and tests need no
// storage. Scores arrive as two-decimal values; the arithmetic runs on
// exact decimals so a total landing precisely on a band boundary gets
// the boundary's grade, never the band below it.
package grading

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Score bounds. Four CAs at 10 plus one exam at 60 always total 100.
const (
	MaxCAScore   = 10.0
	MaxExamScore = 60.0
	TotalMarks   = 100.0
)

var (
	hundred    = decimal.NewFromInt(100)
	totalMarks = decimal.NewFromInt(100)
)

// bands in descending order with inclusive lower bounds.
var bands = []struct {
	min   decimal.Decimal
	grade string
}{
	{decimal.NewFromInt(90), "A+"},
	{decimal.NewFromInt(80), "A"},
	{decimal.NewFromInt(70), "B+"},
	{decimal.NewFromInt(60), "B"},
	{decimal.NewFromInt(50), "C+"},
	{decimal.NewFromInt(40), "C"},
	{decimal.NewFromInt(30), "D"},
}

// ScoreError reports a score outside its permitted range, naming the
// offending field.
type ScoreError struct {
	Field string
	Max   float64
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("%s must be between 0 and %g", e.Field, e.Max)
}

// ValidateScores checks all five raw inputs and returns a ScoreError
// for the first field out of range. Nothing may be written when this
// fails.
func ValidateScores(ca1, ca2, ca3, ca4, exam float64) error {
	cas := []struct {
		field string
		value float64
	}{
		{"ca1_score", ca1},
		{"ca2_score", ca2},
		{"ca3_score", ca3},
		{"ca4_score", ca4},
	}
	for _, s := range cas {
		if s.value < 0 || s.value > MaxCAScore {
			return &ScoreError{Field: s.field, Max: MaxCAScore}
		}
	}
	if exam < 0 || exam > MaxExamScore {
		return &ScoreError{Field: "exam_score", Max: MaxExamScore}
	}
	return nil
}

// dec converts a raw score to its exact decimal value. NewFromFloat
// picks the shortest decimal that round-trips, so a JSON "1.39" comes
// out as exactly 1.39 rather than its float64 neighbor.
func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// CATotal sums the four continuous-assessment scores (40 marks max).
func CATotal(ca1, ca2, ca3, ca4 float64) decimal.Decimal {
	return dec(ca1).Add(dec(ca2)).Add(dec(ca3)).Add(dec(ca4))
}

// MarksObtained is the CA total plus the exam score (100 marks max).
func MarksObtained(ca1, ca2, ca3, ca4, exam float64) decimal.Decimal {
	return CATotal(ca1, ca2, ca3, ca4).Add(dec(exam))
}

// Percentage converts obtained marks to a percentage of total.
// Returns 0 when total is not positive.
func Percentage(obtained, total decimal.Decimal) decimal.Decimal {
	if total.Sign() <= 0 {
		return decimal.Zero
	}
	return obtained.Mul(hundred).Div(total)
}

// GradeFor maps a percentage to its letter band. Comparisons are
// decimal so 50.00 is C+, not the C a float sum drifts into.
func GradeFor(percentage decimal.Decimal) string {
	for _, b := range bands {
		if percentage.GreaterThanOrEqual(b.min) {
			return b.grade
		}
	}
	return "F"
}

// Computed bundles every derived field for one result row. Values are
// float64 for storage and transport; they are produced from exact
// decimals and the grade is decided before the conversion.
type Computed struct {
	CATotal       float64
	MarksObtained float64
	TotalMarks    float64
	Percentage    float64
	Grade         string
}

// Compute derives all read-only result fields from the raw scores.
// Callers must run ValidateScores first; Compute itself never fails.
func Compute(ca1, ca2, ca3, ca4, exam float64) Computed {
	caTotal := CATotal(ca1, ca2, ca3, ca4)
	obtained := MarksObtained(ca1, ca2, ca3, ca4, exam)
	pct := Percentage(obtained, totalMarks)
	return Computed{
		CATotal:       caTotal.InexactFloat64(),
		MarksObtained: obtained.InexactFloat64(),
		TotalMarks:    TotalMarks,
		Percentage:    pct.InexactFloat64(),
		Grade:         GradeFor(pct),
	}
}
