package models

// DashboardCounts holds the per-table totals shown on the index page.
type DashboardCounts struct {
	Students   int `json:"total_students"`
	Teachers   int `json:"total_teachers"`
	Classes    int `json:"total_classes"`
	Attendance int `json:"total_attendance"`
	Notices    int `json:"total_notices"`
}

// DashboardSummary is the authenticated index payload.
type DashboardSummary struct {
	Counts        DashboardCounts `json:"counts"`
	RecentNotices []RecentNotice  `json:"recent_notices"`
}
