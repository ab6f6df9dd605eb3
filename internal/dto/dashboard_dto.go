package dto

import (
	"github.com/artneelam/studio-api/internal/metrics"
	"github.com/artneelam/studio-api/internal/models"
)

// DashboardStats are the headline numbers on the admin home page.
type DashboardStats struct {
	Leads           int     `json:"leads"`
	NewLeads        int     `json:"new_leads"`
	ActiveStudents  int     `json:"active_students"`
	TotalStudents   int     `json:"total_students"`
	MonthRevenue    float64 `json:"month_revenue"`
	AttendanceToday int     `json:"attendance_today"`
	NoticeCount     int     `json:"notice_count"`
}

// BirthdayEntry is one upcoming-birthday card.
type BirthdayEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	DOB      string `json:"dob"`
	WhatsApp string `json:"whatsapp"`
}

// DashboardResponse aggregates every widget the dashboard renders. Degraded
// lists resources whose fetch failed; their widgets render empty rather than
// failing the whole page.
type DashboardResponse struct {
	Stats             DashboardStats   `json:"stats"`
	Automation        metrics.Counters `json:"automation"`
	RecentLeads       []models.Lead    `json:"recent_leads"`
	UpcomingBirthdays []BirthdayEntry  `json:"upcoming_birthdays"`
	Notices           []models.Notice  `json:"notices"`
	Degraded          []string         `json:"degraded,omitempty"`
	CacheHit          bool             `json:"cache_hit,omitempty"`
}
