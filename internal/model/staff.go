package model

import "time"

// Designation is a staff member's role within the school.
type Designation string

const (
	DesignationTeacher       Designation = "teacher"
	DesignationPrincipal     Designation = "principal"
	DesignationVicePrincipal Designation = "vice_principal"
	DesignationAdministrator Designation = "administrator"
	DesignationLibrarian     Designation = "librarian"
	DesignationCounselor     Designation = "counselor"
)

// Staff is a staff profile linked 1:1 to a user account. A staff member
// may teach many subjects and lead at most one class (the class row
// holds the reference).
type Staff struct {
	ID              int         `json:"id"`
	UserID          int         `json:"user_id"`
	StaffID         string      `json:"staff_id"`
	Name            string      `json:"name"`
	Designation     Designation `json:"designation"`
	JoiningDate     time.Time   `json:"joining_date"`
	Qualification   string      `json:"qualification,omitempty"`
	ExperienceYears int         `json:"experience_years"`
	SubjectIDs      []int       `json:"subject_ids,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// CreateStaffRequest registers a new staff member with their account.
type CreateStaffRequest struct {
	User            CreateUserRequest `json:"user" binding:"required"`
	StaffID         string            `json:"staff_id" binding:"required,min=2,max=20"`
	Designation     Designation       `json:"designation" binding:"required,oneof=teacher principal vice_principal administrator librarian counselor"`
	JoiningDate     string            `json:"joining_date" binding:"omitempty,datetime=2006-01-02"`
	Qualification   string            `json:"qualification" binding:"omitempty,max=200"`
	ExperienceYears int               `json:"experience_years" binding:"omitempty,min=0"`
}

// AssignSubjectsRequest replaces the set of subjects a staff member teaches.
type AssignSubjectsRequest struct {
	SubjectIDs []int `json:"subject_ids" binding:"required"`
}
