package model

import "time"

// AttendanceStatus is the recorded state for one student on one day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// Attendance is one student's record for one date in one class,
// unique per (student, date, class).
type Attendance struct {
	ID        int              `json:"id"`
	StudentID int              `json:"student_id"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	ClassID   int              `json:"class_id"`
	MarkedBy  *int             `json:"marked_by,omitempty"`
	Remarks   string           `json:"remarks,omitempty"`
}

// MarkAttendanceRequest is the payload for marking attendance.
// Re-marking the same student/date/class updates in place.
type MarkAttendanceRequest struct {
	StudentID int              `json:"student_id" binding:"required"`
	Date      string           `json:"date" binding:"required,datetime=2006-01-02"`
	Status    AttendanceStatus `json:"status" binding:"required,oneof=present absent late excused"`
	ClassID   int              `json:"class_id" binding:"required"`
	Remarks   string           `json:"remarks" binding:"omitempty,max=500"`
}
