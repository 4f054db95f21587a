package model

import "time"

// Term is an academic sub-period within a year.
type Term string

const (
	TermFirst  Term = "first"
	TermSecond Term = "second"
	TermThird  Term = "third"
	TermFinal  Term = "final"
)

// ValidResultTerm reports whether results may be recorded for the term.
func ValidResultTerm(t Term) bool {
	switch t {
	case TermFirst, TermSecond, TermThird, TermFinal:
		return true
	}
	return false
}

// ValidSchoolTerm reports whether the term is one of the three school
// terms used by rankings and fee ledgers (final is exam-only).
func ValidSchoolTerm(t Term) bool {
	switch t {
	case TermFirst, TermSecond, TermThird:
		return true
	}
	return false
}

// Result is one student's scored record for a subject/term/year,
// unique per (student, subject, academic_year, term).
//
// MarksObtained, TotalMarks, Percentage and Grade are derived from the
// raw CA and exam scores on every write; they are never set directly.
// RecordedClassID snapshots the class the student was in at recording
// time and does not follow later transfers.
type Result struct {
	ID              int       `json:"id"`
	StudentID       int       `json:"student_id"`
	SubjectID       int       `json:"subject_id"`
	AcademicYearID  int       `json:"academic_year_id"`
	Term            Term      `json:"term"`
	RecordedClassID *int      `json:"recorded_class_id,omitempty"`
	CA1Score        float64   `json:"ca1_score"`
	CA2Score        float64   `json:"ca2_score"`
	CA3Score        float64   `json:"ca3_score"`
	CA4Score        float64   `json:"ca4_score"`
	ExamScore       float64   `json:"exam_score"`
	CATotal         float64   `json:"ca_total"`
	MarksObtained   float64   `json:"marks_obtained"`
	TotalMarks      float64   `json:"total_marks"`
	Percentage      float64   `json:"percentage"`
	Grade           string    `json:"grade"`
	Remarks         string    `json:"remarks,omitempty"`
	UploadedBy      *int      `json:"uploaded_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RecordResultRequest is the payload for recording or updating a result.
// Range checks on the scores are repeated inside the grading engine so
// non-HTTP callers get the same guarantees.
type RecordResultRequest struct {
	StudentID      int     `json:"student_id" binding:"required"`
	SubjectID      int     `json:"subject_id" binding:"required"`
	AcademicYearID int     `json:"academic_year_id" binding:"required"`
	Term           Term    `json:"term" binding:"required,oneof=first second third final"`
	CA1Score       float64 `json:"ca1_score" binding:"gte=0,lte=10"`
	CA2Score       float64 `json:"ca2_score" binding:"gte=0,lte=10"`
	CA3Score       float64 `json:"ca3_score" binding:"gte=0,lte=10"`
	CA4Score       float64 `json:"ca4_score" binding:"gte=0,lte=10"`
	ExamScore      float64 `json:"exam_score" binding:"gte=0,lte=60"`
	Remarks        string  `json:"remarks" binding:"omitempty,max=500"`
}

// SubjectScore is one subject line in a student's ranking breakdown.
type SubjectScore struct {
	SubjectID     int     `json:"subject_id"`
	SubjectName   string  `json:"subject_name"`
	MarksObtained float64 `json:"marks_obtained"`
	TotalMarks    float64 `json:"total_marks"`
	Grade         string  `json:"grade"`
}

// RankingEntry is one student's standing in a class ranking.
// Position uses ranking-with-gaps: two students tied at 1 are both 1
// and the next distinct percentage takes position 3.
type RankingEntry struct {
	StudentID         int            `json:"student_id"`
	StudentName       string         `json:"student_name"`
	Subjects          []SubjectScore `json:"subjects"`
	AveragePercentage float64        `json:"average_percentage"`
	Position          int            `json:"position"`
}

// ClassRankings is the ordered standings for a class/term/year.
// Message explains an empty list (no results recorded yet).
type ClassRankings struct {
	ClassID        int            `json:"class_id"`
	Term           Term           `json:"term"`
	AcademicYearID int            `json:"academic_year_id"`
	Entries        []RankingEntry `json:"entries"`
	Message        string         `json:"message,omitempty"`
}
