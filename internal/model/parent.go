package model

import "time"

// Parent is a parent profile linked 1:1 to a user account, with
// many-to-many links to their children.
type Parent struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ParentID  string    `json:"parent_id"`
	Name      string    `json:"name"`
	ChildIDs  []int     `json:"child_ids,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateParentRequest registers a new parent with their account.
type CreateParentRequest struct {
	User     CreateUserRequest `json:"user" binding:"required"`
	ParentID string            `json:"parent_id" binding:"required,min=2,max=20"`
}

// AssignChildrenRequest replaces the set of children linked to a parent.
type AssignChildrenRequest struct {
	StudentIDs []int `json:"student_ids" binding:"required"`
}
