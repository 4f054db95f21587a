package model

// ManagementDashboard is the school-wide summary shown to admin and
// management users.
type ManagementDashboard struct {
	TotalStudents       int `json:"total_students"`
	TotalStaff          int `json:"total_staff"`
	TotalParents        int `json:"total_parents"`
	TotalClasses        int `json:"total_classes"`
	TotalSubjects       int `json:"total_subjects"`
	ActiveAnnouncements int `json:"active_announcements"`
}

// StaffDashboard summarizes a staff member's teaching load.
type StaffDashboard struct {
	LedClassID       *int `json:"led_class_id,omitempty"`
	LedClassStudents int  `json:"led_class_students"`
	SubjectsTaught   int  `json:"subjects_taught"`
	ResultsUploaded  int  `json:"results_uploaded"`
}

// StudentDashboard summarizes a student's own records.
type StudentDashboard struct {
	CurrentClassID  *int `json:"current_class_id,omitempty"`
	ResultsRecorded int  `json:"results_recorded"`
	DaysPresent     int  `json:"days_present"`
	DaysRecorded    int  `json:"days_recorded"`
	PendingFees     int  `json:"pending_fees"`
}

// ParentDashboard summarizes a parent's linked children.
type ParentDashboard struct {
	Children    int `json:"children"`
	PendingFees int `json:"pending_fees"`
}
