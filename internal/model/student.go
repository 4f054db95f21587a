package model

import "time"

// Student is a student profile linked 1:1 to a user account.
// CurrentClassID is mutable — assignment operations move students
// between classes; results keep their own recorded-class snapshot.
type Student struct {
	ID                    int       `json:"id"`
	UserID                int       `json:"user_id"`
	StudentID             string    `json:"student_id"`
	Name                  string    `json:"name"`
	AdmissionDate         time.Time `json:"admission_date"`
	CurrentClassID        *int      `json:"current_class_id,omitempty"`
	EmergencyContactName  string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// CreateStudentRequest enrolls a new student with their account.
type CreateStudentRequest struct {
	User                  CreateUserRequest `json:"user" binding:"required"`
	StudentID             string            `json:"student_id" binding:"required,min=2,max=20"`
	AdmissionDate         string            `json:"admission_date" binding:"omitempty,datetime=2006-01-02"`
	CurrentClassID        *int              `json:"current_class_id" binding:"omitempty"`
	EmergencyContactName  string            `json:"emergency_contact_name" binding:"omitempty,max=100"`
	EmergencyContactPhone string            `json:"emergency_contact_phone" binding:"omitempty,max=15"`
}

// AssignClassRequest moves a student to a class (or removes them with null).
type AssignClassRequest struct {
	ClassID *int `json:"class_id"`
}
