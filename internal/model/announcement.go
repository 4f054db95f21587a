package model

import "time"

// Priority orders announcements on dashboards.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Announcement is a school-wide notice with per-role audience flags.
type Announcement struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Priority      Priority   `json:"priority"`
	CreatedBy     int        `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	IsActive      bool       `json:"is_active"`
	ForStudents   bool       `json:"for_students"`
	ForParents    bool       `json:"for_parents"`
	ForStaff      bool       `json:"for_staff"`
	ForManagement bool       `json:"for_management"`
}

// VisibleTo reports whether the announcement targets the given role.
// Admins see everything.
func (a *Announcement) VisibleTo(role Role) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleStudent:
		return a.ForStudents
	case RoleParent:
		return a.ForParents
	case RoleStaff:
		return a.ForStaff
	case RoleManagement:
		return a.ForManagement
	}
	return false
}

// CreateAnnouncementRequest is the payload for publishing an announcement.
type CreateAnnouncementRequest struct {
	Title         string   `json:"title" binding:"required,min=1,max=200"`
	Content       string   `json:"content" binding:"required"`
	Priority      Priority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	ExpiresAt     string   `json:"expires_at" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ForStudents   *bool    `json:"for_students"`
	ForParents    *bool    `json:"for_parents"`
	ForStaff      *bool    `json:"for_staff"`
	ForManagement *bool    `json:"for_management"`
}
