package model

import "time"

// Role identifies what a user account is allowed to see and do.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManagement Role = "management"
	RoleStaff      Role = "staff"
	RoleStudent    Role = "student"
	RoleParent     Role = "parent"
)

// Valid reports whether the role is one of the recognized values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManagement, RoleStaff, RoleStudent, RoleParent:
		return true
	}
	return false
}

// User represents an account. Role-specific data lives in the
// student/staff/parent profile tables linked back to this row.
type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Role         Role       `json:"role"`
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Address      string     `json:"address,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=4,max=128"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ChangePasswordRequest is the payload for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6,max=128"`
}

// CreateUserRequest is the account portion of profile creation payloads.
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
	Phone     string `json:"phone" binding:"omitempty,max=15"`
	Address   string `json:"address" binding:"omitempty,max=500"`
}
