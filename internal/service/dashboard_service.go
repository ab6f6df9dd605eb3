package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/metrics"
	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/repository"
)

const (
	dashboardCacheKey   = "studio:dashboard:v1"
	recentLeadsLimit    = 5
	noticePreviewLimit  = 5
	birthdayWindowDays  = 30
	defaultDashboardTTL = 2 * time.Minute
)

// DashboardService assembles the admin home page. The underlying row sets are
// fetched concurrently; a failed fetch degrades its widget to empty instead of
// failing the page, and the resource name is reported in Degraded.
type DashboardService interface {
	Get(ctx context.Context) (dto.DashboardResponse, error)
	Invalidate(ctx context.Context)
}

type dashboardService struct {
	leads      repository.LeadRepository
	students   repository.StudentRepository
	attendance repository.AttendanceRepository
	payments   repository.PaymentRepository
	notices    repository.NoticeRepository
	cache      *redis.Client
	ttl        time.Duration
	timeout    time.Duration
	logger     zerolog.Logger
	now        func() time.Time
}

// NewDashboardService builds the dashboard aggregator. cache may be nil; the
// page is then computed on every request.
func NewDashboardService(
	leads repository.LeadRepository,
	students repository.StudentRepository,
	attendance repository.AttendanceRepository,
	payments repository.PaymentRepository,
	notices repository.NoticeRepository,
	cache *redis.Client,
	ttl time.Duration,
	timeout time.Duration,
	logger zerolog.Logger,
) DashboardService {
	if ttl <= 0 {
		ttl = defaultDashboardTTL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &dashboardService{
		leads:      leads,
		students:   students,
		attendance: attendance,
		payments:   payments,
		notices:    notices,
		cache:      cache,
		ttl:        ttl,
		timeout:    timeout,
		logger:     logger.With().Str("component", "dashboard_service").Logger(),
		now:        time.Now,
	}
}

func (s *dashboardService) Get(ctx context.Context) (dto.DashboardResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, dashboardCacheKey).Result(); err == nil && cached != "" {
			var response dto.DashboardResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				response.CacheHit = true
				return response, nil
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		wg         sync.WaitGroup
		leads      []models.Lead
		students   []models.Student
		attendance []models.AttendanceRecord
		payments   []models.Payment
		notices    []models.Notice

		leadsErr, studentsErr, attendanceErr, paymentsErr, noticesErr error
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		leads, leadsErr = s.leads.List(ctx, repository.LeadFilter{})
	}()
	go func() {
		defer wg.Done()
		students, studentsErr = s.students.List(ctx, repository.StudentFilter{})
	}()
	go func() {
		defer wg.Done()
		attendance, attendanceErr = s.attendance.List(ctx, repository.AttendanceFilter{})
	}()
	go func() {
		defer wg.Done()
		payments, paymentsErr = s.payments.List(ctx, repository.PaymentFilter{})
	}()
	go func() {
		defer wg.Done()
		notices, noticesErr = s.notices.List(ctx, repository.NoticeFilter{})
	}()
	wg.Wait()

	var degraded []string
	for _, failure := range []struct {
		name string
		err  error
	}{
		{"leads", leadsErr},
		{"students", studentsErr},
		{"attendance", attendanceErr},
		{"payments", paymentsErr},
		{"notices", noticesErr},
	} {
		if failure.err != nil {
			s.logger.Warn().Err(failure.err).Str("resource", failure.name).Msg("dashboard fetch degraded")
			degraded = append(degraded, failure.name)
		}
	}

	now := s.now()
	today := now.Format(time.DateOnly)

	newLeads := 0
	for _, lead := range leads {
		if lead.Status == models.LeadStatusNew {
			newLeads++
		}
	}
	activeStudents := 0
	for _, student := range students {
		if student.Status == models.StudentStatusActive {
			activeStudents++
		}
	}
	attendanceToday := 0
	for _, record := range attendance {
		if record.Date == today {
			attendanceToday++
		}
	}

	recent := leads
	if len(recent) > recentLeadsLimit {
		recent = recent[:recentLeadsLimit]
	}
	preview := notices
	if len(preview) > noticePreviewLimit {
		preview = preview[:noticePreviewLimit]
	}

	birthdays := make([]dto.BirthdayEntry, 0)
	for _, student := range metrics.UpcomingBirthdays(students, now, birthdayWindowDays) {
		birthdays = append(birthdays, dto.BirthdayEntry{
			ID:       student.ID,
			Name:     student.Name,
			DOB:      student.DOB,
			WhatsApp: student.WhatsApp,
		})
	}

	response := dto.DashboardResponse{
		Stats: dto.DashboardStats{
			Leads:           len(leads),
			NewLeads:        newLeads,
			ActiveStudents:  activeStudents,
			TotalStudents:   len(students),
			MonthRevenue:    metrics.MonthRevenue(payments, now),
			AttendanceToday: attendanceToday,
			NoticeCount:     len(notices),
		},
		Automation:        metrics.AutomationCounters(payments, students, attendance, now),
		RecentLeads:       recent,
		UpcomingBirthdays: birthdays,
		Notices:           preview,
		Degraded:          degraded,
	}

	// Degraded pages are not cached; the next request retries the fetches.
	if s.cache != nil && len(degraded) == 0 {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, payload, s.ttl).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("dashboard cache write failed")
			}
		}
	}

	return response, nil
}

// Invalidate drops the cached page after a mutation so the next read is fresh.
func (s *dashboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("dashboard cache invalidation failed")
	}
}
