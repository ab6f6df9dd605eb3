package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/repository"
)

var (
	// ErrSeedDisabled indicates the demo data tools are disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrAlreadySeeded indicates the database already holds data.
	ErrAlreadySeeded = errors.New("database already contains students")
)

// SeedService loads a small demo dataset for development environments.
type SeedService interface {
	Seed(ctx context.Context) (map[string]int, error)
}

type seedService struct {
	leads      repository.LeadRepository
	students   repository.StudentRepository
	attendance repository.AttendanceRepository
	payments   repository.PaymentRepository
	expenses   repository.ExpenseRepository
	notices    repository.NoticeRepository
	enabled    bool
	logger     zerolog.Logger
}

// NewSeedService constructs the demo data loader.
func NewSeedService(
	leads repository.LeadRepository,
	students repository.StudentRepository,
	attendance repository.AttendanceRepository,
	payments repository.PaymentRepository,
	expenses repository.ExpenseRepository,
	notices repository.NoticeRepository,
	enabled bool,
	logger zerolog.Logger,
) SeedService {
	return &seedService{
		leads:      leads,
		students:   students,
		attendance: attendance,
		payments:   payments,
		expenses:   expenses,
		notices:    notices,
		enabled:    enabled,
		logger:     logger.With().Str("component", "seed_service").Logger(),
	}
}

func (s *seedService) Seed(ctx context.Context) (map[string]int, error) {
	if !s.enabled {
		return nil, ErrSeedDisabled
	}

	existing, err := s.students.List(ctx, repository.StudentFilter{})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrAlreadySeeded
	}

	now := time.Now()
	today := now.Format(time.DateOnly)
	monthAgo := now.AddDate(0, -1, 0).Format(time.DateOnly)
	inTwoDays := now.AddDate(0, 0, 2).Format(time.DateOnly)

	counts := map[string]int{}

	demoLeads := []models.Lead{
		{Name: "Riya Sharma", Phone: "9876543210", Course: models.CourseBasic, Status: models.LeadStatusNew, Source: "registration", Notes: "Asked about weekend batches"},
		{Name: "Aarav Mehta", Phone: "9812345678", Course: models.CourseAdvanced, Status: models.LeadStatusContacted, Source: "instagram", FollowUpDate: inTwoDays},
		{Name: "Ishaan Gupta", Phone: "9765432109", Course: models.CourseBasic, Status: models.LeadStatusDemo, Source: "walk-in"},
	}
	for i := range demoLeads {
		if err := s.leads.Create(ctx, &demoLeads[i]); err != nil {
			return nil, err
		}
		counts["leads"]++
	}

	demoStudents := []models.Student{
		{
			Name:           "Ananya Verma",
			DOB:            "2012-09-14",
			Course:         models.CourseBasic,
			Batch:          models.Batches[2],
			EnrollmentDate: monthAgo,
			ValidityStart:  monthAgo,
			TotalSessions:  48,
			FeeAmount:      12000,
			Status:         models.StudentStatusActive,
			WhatsApp:       "9898989898",
		},
		{
			Name:           "Kabir Joshi",
			DOB:            "2010-04-02",
			Course:         models.CourseProfessional,
			Batch:          models.Batches[0],
			EnrollmentDate: monthAgo,
			ValidityStart:  monthAgo,
			TotalSessions:  24,
			FeeAmount:      18000,
			Status:         models.StudentStatusActive,
			FatherContact:  "9797979797",
		},
	}
	for i := range demoStudents {
		rollNumber, err := s.students.NextRollNumber(ctx)
		if err != nil {
			return nil, err
		}
		demoStudents[i].RollNumber = rollNumber
		demoStudents[i].ValidityEnd = deriveValidityEnd(demoStudents[i].ValidityStart, demoStudents[i].TotalSessions)
		if err := s.students.Create(ctx, &demoStudents[i]); err != nil {
			return nil, err
		}
		counts["students"]++
	}

	for _, student := range demoStudents {
		record := models.AttendanceRecord{
			StudentID: student.ID,
			Date:      today,
			Status:    models.AttendancePresent,
			Batch:     student.Batch,
		}
		if err := s.attendance.Upsert(ctx, &record); err != nil {
			return nil, err
		}
		counts["attendance"]++
	}

	demoPayments := []models.Payment{
		{StudentID: demoStudents[0].ID, Amount: 4000, Method: "upi", Date: monthAgo, InstallmentNo: 1, TotalInstallments: 3, Status: models.PaymentPaid},
		{StudentID: demoStudents[0].ID, Amount: 4000, Date: inTwoDays, InstallmentNo: 2, TotalInstallments: 3, Status: models.PaymentPending},
		{StudentID: demoStudents[1].ID, Amount: 18000, Method: "cash", Date: monthAgo, InstallmentNo: 1, TotalInstallments: 1, Status: models.PaymentPaid},
	}
	for i := range demoPayments {
		if err := s.payments.Create(ctx, &demoPayments[i]); err != nil {
			return nil, err
		}
		counts["payments"]++
	}

	expense := models.Expense{Category: "Art Supplies", Description: "Canvas and acrylics restock", Amount: 5400, Date: today, Method: "upi"}
	if err := s.expenses.Create(ctx, &expense); err != nil {
		return nil, err
	}
	counts["expenses"]++

	notice := models.Notice{Title: "Annual exhibition", Body: "Submissions close at the end of the month.", Date: today, Audience: models.AudienceAll}
	if err := s.notices.Create(ctx, &notice); err != nil {
		return nil, err
	}
	counts["notices"]++

	s.logger.Info().Interface("counts", counts).Msg("demo data seeded")
	return counts, nil
}
