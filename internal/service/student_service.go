package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/metrics"
	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/repository"
)

var (
	// ErrStudentNotFound indicates the requested student does not exist.
	ErrStudentNotFound = errors.New("student not found")
	// ErrInvalidBatch indicates a batch outside the studio timetable.
	ErrInvalidBatch = errors.New("invalid batch")
)

// StudentService manages enrolled students and their derived profile numbers.
type StudentService interface {
	List(ctx context.Context, filter repository.StudentFilter) ([]models.Student, error)
	Get(ctx context.Context, id string) (models.Student, error)
	Create(ctx context.Context, req dto.StudentCreateRequest) (models.Student, error)
	Update(ctx context.Context, id string, req dto.StudentUpdateRequest) (models.Student, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, id string) (dto.StudentSummaryResponse, error)
	SetPhotoURL(ctx context.Context, id, photoURL string) (models.Student, error)
}

type studentService struct {
	students   repository.StudentRepository
	attendance repository.AttendanceRepository
	payments   repository.PaymentRepository
	validate   *validator.Validate
	logger     zerolog.Logger
	now        func() time.Time
}

// NewStudentService builds the student service.
func NewStudentService(students repository.StudentRepository, attendance repository.AttendanceRepository, payments repository.PaymentRepository, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		students:   students,
		attendance: attendance,
		payments:   payments,
		validate:   validate,
		logger:     logger.With().Str("component", "student_service").Logger(),
		now:        time.Now,
	}
}

func (s *studentService) List(ctx context.Context, filter repository.StudentFilter) ([]models.Student, error) {
	return s.students.List(ctx, filter)
}

func (s *studentService) Get(ctx context.Context, id string) (models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, ErrStudentNotFound
		}
		return models.Student{}, err
	}
	return student, nil
}

func (s *studentService) Create(ctx context.Context, req dto.StudentCreateRequest) (models.Student, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Student{}, err
	}
	if !validBatch(req.Batch) {
		return models.Student{}, ErrInvalidBatch
	}

	rollNumber, err := s.students.NextRollNumber(ctx)
	if err != nil {
		return models.Student{}, err
	}

	today := s.now().Format(time.DateOnly)
	enrollment := req.EnrollmentDate
	if enrollment == "" {
		enrollment = today
	}
	validityStart := req.ValidityStart
	if validityStart == "" {
		validityStart = enrollment
	}
	validityEnd := req.ValidityEnd
	if validityEnd == "" {
		validityEnd = deriveValidityEnd(validityStart, req.TotalSessions)
	}

	course := req.Course
	if !models.ValidCourse(course) {
		course = models.CourseBasic
	}

	discountPercent, discountAmount := normalizeDiscount(req.DiscountPercent, req.DiscountAmount)

	student := models.Student{
		RollNumber:      rollNumber,
		Name:            strings.TrimSpace(req.Name),
		DOB:             req.DOB,
		Course:          course,
		Batch:           req.Batch,
		EnrollmentDate:  enrollment,
		ValidityStart:   validityStart,
		ValidityEnd:     validityEnd,
		TotalSessions:   req.TotalSessions,
		FeeAmount:       metrics.DiscountedFee(req.FeeAmount, discountPercent, discountAmount),
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		Status:          models.StudentStatusActive,
		WhatsApp:        strings.TrimSpace(req.WhatsApp),
		FatherContact:   strings.TrimSpace(req.FatherContact),
		MotherContact:   strings.TrimSpace(req.MotherContact),
		Email:           strings.TrimSpace(req.Email),
		Address:         req.Address,
		Notes:           req.Notes,
	}

	if err := s.students.Create(ctx, &student); err != nil {
		return models.Student{}, err
	}

	s.logger.Info().Str("student_id", student.ID).Str("roll_number", student.RollNumber).Msg("student enrolled")
	return student, nil
}

func (s *studentService) Update(ctx context.Context, id string, req dto.StudentUpdateRequest) (models.Student, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Student{}, err
	}
	if !validBatch(req.Batch) {
		return models.Student{}, ErrInvalidBatch
	}

	student, err := s.Get(ctx, id)
	if err != nil {
		return models.Student{}, err
	}

	course := req.Course
	if !models.ValidCourse(course) {
		course = models.CourseBasic
	}

	discountPercent, discountAmount := normalizeDiscount(req.DiscountPercent, req.DiscountAmount)

	student.Name = strings.TrimSpace(req.Name)
	student.DOB = req.DOB
	student.Course = course
	student.Batch = req.Batch
	if req.EnrollmentDate != "" {
		student.EnrollmentDate = req.EnrollmentDate
	}
	if req.ValidityStart != "" {
		student.ValidityStart = req.ValidityStart
	}
	if req.ValidityEnd != "" {
		student.ValidityEnd = req.ValidityEnd
	} else if req.ValidityStart != "" || req.TotalSessions != student.TotalSessions {
		student.ValidityEnd = deriveValidityEnd(student.ValidityStart, req.TotalSessions)
	}
	student.TotalSessions = req.TotalSessions
	student.FeeAmount = metrics.DiscountedFee(req.FeeAmount, discountPercent, discountAmount)
	student.DiscountPercent = discountPercent
	student.DiscountAmount = discountAmount
	if req.Status != "" {
		student.Status = req.Status
	}
	student.WhatsApp = strings.TrimSpace(req.WhatsApp)
	student.FatherContact = strings.TrimSpace(req.FatherContact)
	student.MotherContact = strings.TrimSpace(req.MotherContact)
	student.Email = strings.TrimSpace(req.Email)
	student.Address = req.Address
	student.Notes = req.Notes

	if err := s.students.Update(ctx, &student); err != nil {
		return models.Student{}, err
	}
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.students.Delete(ctx, id)
}

// Summary assembles the profile view: the student row plus every derived
// number rendered on the profile, the ID card and the parent portal.
func (s *studentService) Summary(ctx context.Context, id string) (dto.StudentSummaryResponse, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return dto.StudentSummaryResponse{}, err
	}

	records, err := s.attendance.List(ctx, repository.AttendanceFilter{StudentID: id})
	if err != nil {
		return dto.StudentSummaryResponse{}, err
	}
	payments, err := s.payments.List(ctx, repository.PaymentFilter{StudentID: id})
	if err != nil {
		return dto.StudentSummaryResponse{}, err
	}

	progress := metrics.FeeProgress(payments, student.FeeAmount)

	summary := dto.StudentSummaryResponse{
		Student:             student,
		Attendance:          metrics.Summarize(records),
		SessionsAttended:    metrics.SessionsAttended(records),
		SessionsRemaining:   metrics.SessionsRemaining(student.TotalSessions, records),
		CertificateEligible: metrics.CertificateEligible(student.TotalSessions, records),
		TotalPaid:           metrics.TotalCollected(payments),
		TotalPending:        metrics.TotalPending(payments),
		FeeProgress:         progress,
		FeeProgressBar:      metrics.ClampPercent(progress),
		ValidityDaysLeft:    metrics.ValidityDaysLeft(student.ValidityEnd, s.now()),
	}
	if next, ok := metrics.NextDuePayment(payments); ok {
		summary.NextDue = &next
	}
	return summary, nil
}

func (s *studentService) SetPhotoURL(ctx context.Context, id, photoURL string) (models.Student, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return models.Student{}, err
	}

	student.PhotoURL = photoURL
	if err := s.students.Update(ctx, &student); err != nil {
		return models.Student{}, err
	}
	return student, nil
}

func validBatch(batch string) bool {
	for _, known := range models.Batches {
		if batch == known {
			return true
		}
	}
	return false
}

// deriveValidityEnd projects the validity window from the session count at
// four sessions a week, rounded up to whole weeks.
func deriveValidityEnd(start string, totalSessions int) string {
	parsed, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return ""
	}
	weeks := (totalSessions + 3) / 4
	return parsed.AddDate(0, 0, weeks*7).Format(time.DateOnly)
}

func normalizeDiscount(percent, amount float64) (float64, float64) {
	if percent > 0 {
		return percent, 0
	}
	return 0, amount
}
