package grading

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestGradeBands(t *testing.T) {
	cases := []struct {
		pct  string
		want string
	}{
		{"100", "A+"},
		{"90.00", "A+"},
		{"89.99", "A"},
		{"80", "A"},
		{"79.99", "B+"},
		{"70", "B+"},
		{"60", "B"},
		{"50", "C+"},
		{"40.00", "C"},
		{"39.99", "D"},
		{"30", "D"},
		{"29.99", "F"},
		{"0", "F"},
	}
	for _, c := range cases {
		if got := GradeFor(decimal.RequireFromString(c.pct)); got != c.want {
			t.Errorf("GradeFor(%s) = %q, want %q", c.pct, got, c.want)
		}
	}
}

func TestComputeDerivedFields(t *testing.T) {
	got := Compute(8, 7.5, 9, 6, 45.5)

	if got.CATotal != 30.5 {
		t.Errorf("CATotal = %v, want 30.5", got.CATotal)
	}
	if got.MarksObtained != 76 {
		t.Errorf("MarksObtained = %v, want 76", got.MarksObtained)
	}
	if got.TotalMarks != 100 {
		t.Errorf("TotalMarks = %v, want 100", got.TotalMarks)
	}
	if got.Percentage != 76 {
		t.Errorf("Percentage = %v, want 76", got.Percentage)
	}
	if got.Grade != "B+" {
		t.Errorf("Grade = %q, want B+", got.Grade)
	}
}

// Two-decimal score splits whose exact sum lands on a band boundary
// must get the boundary's grade. Summed as float64 these drift just
// under the boundary (1.4+1.4+1.4+1.39+44.41 = 49.999999999999993).
func TestComputeExactBoundaryBanding(t *testing.T) {
	cases := []struct {
		ca1, ca2, ca3, ca4, exam float64
		pct                      float64
		want                     string
	}{
		{1.4, 1.4, 1.4, 1.39, 44.41, 50, "C+"},
		{9.99, 9.99, 9.99, 9.99, 50.04, 90, "A+"},
		{3.33, 3.33, 3.33, 3.34, 26.67, 40, "C"},
		{6.01, 6.03, 5.98, 5.99, 55.99, 80, "A"},
		{2.22, 2.23, 2.24, 2.25, 21.06, 30, "D"},
	}
	for _, c := range cases {
		got := Compute(c.ca1, c.ca2, c.ca3, c.ca4, c.exam)
		if got.Percentage != c.pct {
			t.Errorf("Compute(%v,%v,%v,%v,%v): percentage = %v, want %v",
				c.ca1, c.ca2, c.ca3, c.ca4, c.exam, got.Percentage, c.pct)
		}
		if got.Grade != c.want {
			t.Errorf("Compute(%v,%v,%v,%v,%v): grade = %q, want %q",
				c.ca1, c.ca2, c.ca3, c.ca4, c.exam, got.Grade, c.want)
		}
	}
}

func TestComputeZeroScores(t *testing.T) {
	got := Compute(0, 0, 0, 0, 0)
	if got.MarksObtained != 0 || got.Grade != "F" {
		t.Errorf("Compute(zeros) = %+v, want 0 marks and grade F", got)
	}
}

func TestValidateScoresBounds(t *testing.T) {
	if err := ValidateScores(0, 10, 5.25, 9.99, 60); err != nil {
		t.Fatalf("valid scores rejected: %v", err)
	}

	cases := []struct {
		name  string
		err   error
		field string
	}{
		{"ca over max", ValidateScores(10.01, 0, 0, 0, 0), "ca1_score"},
		{"ca negative", ValidateScores(0, 0, -0.5, 0, 0), "ca3_score"},
		{"exam over max", ValidateScores(0, 0, 0, 0, 60.01), "exam_score"},
		{"exam negative", ValidateScores(0, 0, 0, 0, -1), "exam_score"},
	}
	for _, c := range cases {
		if c.err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
			continue
		}
		se, ok := c.err.(*ScoreError)
		if !ok {
			t.Errorf("%s: expected *ScoreError, got %T", c.name, c.err)
			continue
		}
		if se.Field != c.field {
			t.Errorf("%s: field = %q, want %q", c.name, se.Field, c.field)
		}
	}
}

// Raising any single score must never lower marks, percentage or grade.
func TestGradeMonotonicity(t *testing.T) {
	base := Compute(5, 5, 5, 5, 30)
	higher := []Computed{
		Compute(6, 5, 5, 5, 30),
		Compute(5, 5, 5, 5.5, 30),
		Compute(5, 5, 5, 5, 40),
	}
	for i, h := range higher {
		if h.MarksObtained < base.MarksObtained {
			t.Errorf("case %d: marks decreased from %v to %v", i, base.MarksObtained, h.MarksObtained)
		}
		if h.Percentage < base.Percentage {
			t.Errorf("case %d: percentage decreased", i)
		}
		if gradeRank(h.Grade) < gradeRank(base.Grade) {
			t.Errorf("case %d: grade dropped from %s to %s", i, base.Grade, h.Grade)
		}
	}
}

func gradeRank(g string) int {
	order := []string{"F", "D", "C", "C+", "B", "B+", "A", "A+"}
	for i, v := range order {
		if v == g {
			return i
		}
	}
	return -1
}
