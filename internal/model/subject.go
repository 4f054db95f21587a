package model

// Subject is static reference data identified by a unique code.
type Subject struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// CreateSubjectRequest is the payload for creating or updating a subject.
type CreateSubjectRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Code        string `json:"code" binding:"required,min=1,max=20"`
	Description string `json:"description" binding:"omitempty,max=500"`
}
