package model

import "time"

// AcademicYear is a named school period, e.g. "2023-2024".
// At most one year is conventionally active at a time; this is not
// enforced with a constraint, matching upstream behavior.
type AcademicYear struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`
}

// CreateAcademicYearRequest is the payload for creating or updating a year.
type CreateAcademicYearRequest struct {
	Name      string `json:"name" binding:"required,min=4,max=50"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	IsActive  bool   `json:"is_active"`
}
