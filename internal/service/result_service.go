package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/scholaris/scholaris-backend/internal/grading"
	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/repository"
	"github.com/scholaris/scholaris-backend/internal/scope"
)

// ResultService owns the result write path and the class rankings.
type ResultService struct {
	results  *repository.ResultRepository
	students *repository.StudentRepository
	classes  *repository.ClassRepository
	years    *repository.AcademicYearRepository
	log      zerolog.Logger
}

// NewResultService creates a new ResultService.
func NewResultService(
	results *repository.ResultRepository,
	students *repository.StudentRepository,
	classes *repository.ClassRepository,
	years *repository.AcademicYearRepository,
	log zerolog.Logger,
) *ResultService {
	return &ResultService{
		results:  results,
		students: students,
		classes:  classes,
		years:    years,
		log:      log.With().Str("component", "result_service").Logger(),
	}
}

// Record validates the raw scores, derives the read-only fields and
// upserts the result. The student's current class is snapshotted onto
// the row; later transfers do not rewrite it.
func (s *ResultService) Record(ctx context.Context, req model.RecordResultRequest, uploadedBy *int) (*model.Result, error) {
	if !model.ValidResultTerm(req.Term) {
		return nil, ErrUnknownTerm
	}
	if err := grading.ValidateScores(req.CA1Score, req.CA2Score, req.CA3Score, req.CA4Score, req.ExamScore); err != nil {
		return nil, err
	}

	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	derived := grading.Compute(req.CA1Score, req.CA2Score, req.CA3Score, req.CA4Score, req.ExamScore)
	res := &model.Result{
		StudentID:       req.StudentID,
		SubjectID:       req.SubjectID,
		AcademicYearID:  req.AcademicYearID,
		Term:            req.Term,
		RecordedClassID: student.CurrentClassID,
		CA1Score:        req.CA1Score,
		CA2Score:        req.CA2Score,
		CA3Score:        req.CA3Score,
		CA4Score:        req.CA4Score,
		ExamScore:       req.ExamScore,
		CATotal:         derived.CATotal,
		MarksObtained:   derived.MarksObtained,
		TotalMarks:      derived.TotalMarks,
		Percentage:      derived.Percentage,
		Grade:           derived.Grade,
		Remarks:         req.Remarks,
		UploadedBy:      uploadedBy,
	}

	if err := s.results.Upsert(ctx, res); err != nil {
		return nil, err
	}

	s.log.Info().
		Int("student_id", res.StudentID).
		Int("subject_id", res.SubjectID).
		Str("term", string(res.Term)).
		Str("grade", res.Grade).
		Msg("result recorded")
	return res, nil
}

// GetClassRankings computes the standings for a class/term/year. The
// class and year must exist; an existing class with no recorded
// results yields an empty list with an explanatory message, not an
// error. Membership follows each student's current class assignment.
func (s *ResultService) GetClassRankings(ctx context.Context, classID, academicYearID int, term model.Term) (*model.ClassRankings, error) {
	if !model.ValidSchoolTerm(term) {
		return nil, ErrUnknownTerm
	}
	if _, err := s.classes.GetByID(ctx, classID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.years.GetByID(ctx, academicYearID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := s.results.ListForClassTerm(ctx, classID, academicYearID, term)
	if err != nil {
		return nil, err
	}

	rankings := &model.ClassRankings{
		ClassID:        classID,
		Term:           term,
		AcademicYearID: academicYearID,
	}
	if len(rows) == 0 {
		rankings.Entries = []model.RankingEntry{}
		rankings.Message = "no results recorded for this class and term"
		return rankings, nil
	}

	// Rows arrive ordered by student; fold them into per-student marks.
	var marks []grading.StudentMarks
	for _, row := range rows {
		if len(marks) == 0 || marks[len(marks)-1].StudentID != row.StudentID {
			marks = append(marks, grading.StudentMarks{
				StudentID:   row.StudentID,
				StudentName: row.StudentName,
			})
		}
		last := &marks[len(marks)-1]
		last.Subjects = append(last.Subjects, grading.SubjectMarks{
			SubjectID:     row.SubjectID,
			SubjectName:   row.SubjectName,
			MarksObtained: row.MarksObtained,
			TotalMarks:    row.TotalMarks,
			Grade:         row.Grade,
		})
	}

	for _, st := range grading.Rank(marks) {
		entry := model.RankingEntry{
			StudentID:         st.StudentID,
			StudentName:       st.StudentName,
			AveragePercentage: st.AveragePercentage,
			Position:          st.Position,
		}
		for _, sub := range st.Subjects {
			entry.Subjects = append(entry.Subjects, model.SubjectScore{
				SubjectID:     sub.SubjectID,
				SubjectName:   sub.SubjectName,
				MarksObtained: sub.MarksObtained,
				TotalMarks:    sub.TotalMarks,
				Grade:         sub.Grade,
			})
		}
		rankings.Entries = append(rankings.Entries, entry)
	}
	return rankings, nil
}

// ListStudentResults retrieves one student's results when that student
// is visible under the caller's scope.
func (s *ResultService) ListStudentResults(ctx context.Context, sc scope.Scope, studentID int, academicYearID *int, term *model.Term) ([]model.Result, error) {
	visible, err := s.students.Visible(ctx, sc, studentID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrNotFound
	}
	if term != nil && !model.ValidResultTerm(*term) {
		return nil, ErrUnknownTerm
	}
	return s.results.ListForStudent(ctx, studentID, academicYearID, term)
}

// ListVisible retrieves the results the caller may see for a year/term.
func (s *ResultService) ListVisible(ctx context.Context, sc scope.Scope, academicYearID int, term model.Term) ([]model.Result, error) {
	if !model.ValidResultTerm(term) {
		return nil, ErrUnknownTerm
	}
	return s.results.ListVisible(ctx, sc, academicYearID, term)
}

// Delete removes a result.
func (s *ResultService) Delete(ctx context.Context, id int) error {
	return s.results.Delete(ctx, id)
}
