package grading

import (
	"math"
	"sort"
)

// StudentMarks is the per-student input to Rank: every subject line the
// student has for the class/term/year being ranked.
type StudentMarks struct {
	StudentID   int
	StudentName string
	Subjects    []SubjectMarks
}

// SubjectMarks is one subject's contribution to a student's total.
type SubjectMarks struct {
	SubjectID     int
	SubjectName   string
	MarksObtained float64
	TotalMarks    float64
	Grade         string
}

// Standing is one ranked student.
type Standing struct {
	StudentID         int
	StudentName       string
	Subjects          []SubjectMarks
	AveragePercentage float64
	Position          int
}

// Rank orders students by average percentage, descending, and assigns
// positions with the ranking-with-gaps tie policy: students with equal
// averages share a position, and the next distinct average takes the
// position of its 1-indexed place in the sorted order (1, 2, 2, 4...).
//
// The average is a sum-over-sum across subjects — Σ obtained / Σ total
// — rounded to 2 decimal places. Ties are decided on the rounded value.
func Rank(students []StudentMarks) []Standing {
	standings := make([]Standing, 0, len(students))
	for _, s := range students {
		var obtained, total float64
		for _, sub := range s.Subjects {
			obtained += sub.MarksObtained
			total += sub.TotalMarks
		}
		avg := 0.0
		if total > 0 {
			avg = round2(obtained / total * 100)
		}
		standings = append(standings, Standing{
			StudentID:         s.StudentID,
			StudentName:       s.StudentName,
			Subjects:          s.Subjects,
			AveragePercentage: avg,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].AveragePercentage > standings[j].AveragePercentage
	})

	for i := range standings {
		if i > 0 && standings[i].AveragePercentage == standings[i-1].AveragePercentage {
			standings[i].Position = standings[i-1].Position
		} else {
			standings[i].Position = i + 1
		}
	}

	return standings
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
