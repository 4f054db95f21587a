package grading

import "testing"

func student(id int, name string, marks ...float64) StudentMarks {
	s := StudentMarks{StudentID: id, StudentName: name}
	for i, m := range marks {
		s.Subjects = append(s.Subjects, SubjectMarks{
			SubjectID:     i + 1,
			MarksObtained: m,
			TotalMarks:    100,
		})
	}
	return s
}

func TestRankTiesUseGaps(t *testing.T) {
	standings := Rank([]StudentMarks{
		student(1, "Amara", 90),
		student(2, "Bilal", 85),
		student(3, "Chidi", 85),
		student(4, "Dayo", 70),
	})

	wantPositions := map[int]int{1: 1, 2: 2, 3: 2, 4: 4}
	for _, s := range standings {
		if s.Position != wantPositions[s.StudentID] {
			t.Errorf("student %d: position = %d, want %d", s.StudentID, s.Position, wantPositions[s.StudentID])
		}
	}
}

func TestRankAverageIsSumOverSum(t *testing.T) {
	// 80/100 + 70/100 = 150/200 = 75.00%
	standings := Rank([]StudentMarks{student(1, "Efe", 80, 70)})
	if len(standings) != 1 {
		t.Fatalf("expected 1 standing, got %d", len(standings))
	}
	if standings[0].AveragePercentage != 75 {
		t.Errorf("average = %v, want 75", standings[0].AveragePercentage)
	}
}

func TestRankRoundsToTwoDecimals(t *testing.T) {
	// 50 + 50 + 55 over 300 = 51.666... → 51.67
	standings := Rank([]StudentMarks{student(1, "Femi", 50, 50, 55)})
	if got := standings[0].AveragePercentage; got != 51.67 {
		t.Errorf("average = %v, want 51.67", got)
	}
}

func TestRankDescendingOrder(t *testing.T) {
	standings := Rank([]StudentMarks{
		student(1, "Gozie", 40),
		student(2, "Hawa", 95),
		student(3, "Ikem", 60),
	})

	wantOrder := []int{2, 3, 1}
	for i, want := range wantOrder {
		if standings[i].StudentID != want {
			t.Errorf("standings[%d].StudentID = %d, want %d", i, standings[i].StudentID, want)
		}
	}
	for i, want := range []int{1, 2, 3} {
		if standings[i].Position != want {
			t.Errorf("standings[%d].Position = %d, want %d", i, standings[i].Position, want)
		}
	}
}

func TestRankZeroTotalDefaultsToZero(t *testing.T) {
	s := StudentMarks{StudentID: 1, StudentName: "Jide", Subjects: []SubjectMarks{
		{SubjectID: 1, MarksObtained: 0, TotalMarks: 0},
	}}
	standings := Rank([]StudentMarks{s})
	if standings[0].AveragePercentage != 0 {
		t.Errorf("average = %v, want 0", standings[0].AveragePercentage)
	}
}

func TestRankEmptyInput(t *testing.T) {
	if standings := Rank(nil); len(standings) != 0 {
		t.Errorf("expected empty standings, got %d entries", len(standings))
	}
}
