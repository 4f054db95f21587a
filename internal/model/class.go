package model

import "time"

// Class is a school class, unique per (grade, section, academic_year).
// ClassTeacherID is 1:1 — a staff member leads at most one class,
// enforced by a unique constraint on the class side.
type Class struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Grade          int       `json:"grade"`
	Section        string    `json:"section"`
	AcademicYearID int       `json:"academic_year_id"`
	ClassTeacherID *int      `json:"class_teacher_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateClassRequest is the payload for creating or updating a class.
type CreateClassRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=50"`
	Grade          int    `json:"grade" binding:"required,min=1,max=12"`
	Section        string `json:"section" binding:"omitempty,max=10"`
	AcademicYearID int    `json:"academic_year_id" binding:"required"`
	ClassTeacherID *int   `json:"class_teacher_id" binding:"omitempty"`
}
