package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/repository"
)

type studentRepoStub struct {
	students map[string]models.Student
	nextRoll int
}

func newStudentRepoStub(students ...models.Student) *studentRepoStub {
	stub := &studentRepoStub{students: make(map[string]models.Student), nextRoll: 1}
	for _, student := range students {
		stub.students[student.ID] = student
	}
	return stub
}

func (s *studentRepoStub) List(_ context.Context, filter repository.StudentFilter) ([]models.Student, error) {
	result := make([]models.Student, 0, len(s.students))
	for _, student := range s.students {
		if filter.Status != "" && student.Status != filter.Status {
			continue
		}
		result = append(result, student)
	}
	return result, nil
}

func (s *studentRepoStub) GetByID(_ context.Context, id string) (models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return models.Student{}, gorm.ErrRecordNotFound
	}
	return student, nil
}

func (s *studentRepoStub) Create(_ context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = "student-" + student.RollNumber
	}
	s.students[student.ID] = *student
	return nil
}

func (s *studentRepoStub) Update(_ context.Context, student *models.Student) error {
	s.students[student.ID] = *student
	return nil
}

func (s *studentRepoStub) Delete(_ context.Context, id string) error {
	delete(s.students, id)
	return nil
}

func (s *studentRepoStub) NextRollNumber(_ context.Context) (string, error) {
	roll := s.nextRoll
	s.nextRoll++
	return fmt.Sprintf("ANA-%04d", roll), nil
}

type attendanceRepoStub struct {
	records []models.AttendanceRecord
	err     error
}

func (s *attendanceRepoStub) List(_ context.Context, filter repository.AttendanceFilter) ([]models.AttendanceRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	if filter.StudentID == "" && filter.Date == "" && filter.Batch == "" {
		return s.records, nil
	}
	result := make([]models.AttendanceRecord, 0, len(s.records))
	for _, record := range s.records {
		if filter.StudentID != "" && record.StudentID != filter.StudentID {
			continue
		}
		if filter.Date != "" && record.Date != filter.Date {
			continue
		}
		result = append(result, record)
	}
	return result, nil
}

func (s *attendanceRepoStub) Upsert(_ context.Context, record *models.AttendanceRecord) error {
	for i, existing := range s.records {
		if existing.StudentID == record.StudentID && existing.Date == record.Date {
			s.records[i] = *record
			return nil
		}
	}
	s.records = append(s.records, *record)
	return nil
}

func (s *attendanceRepoStub) Delete(_ context.Context, id string) error {
	for i, record := range s.records {
		if record.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return nil
}

type paymentRepoStub struct {
	payments []models.Payment
	err      error
}

func (s *paymentRepoStub) List(_ context.Context, filter repository.PaymentFilter) ([]models.Payment, error) {
	if s.err != nil {
		return nil, s.err
	}
	result := make([]models.Payment, 0, len(s.payments))
	for _, payment := range s.payments {
		if filter.StudentID != "" && payment.StudentID != filter.StudentID {
			continue
		}
		if filter.Status != "" && payment.Status != filter.Status {
			continue
		}
		result = append(result, payment)
	}
	return result, nil
}

func (s *paymentRepoStub) GetByID(_ context.Context, id string) (models.Payment, error) {
	for _, payment := range s.payments {
		if payment.ID == id {
			return payment, nil
		}
	}
	return models.Payment{}, gorm.ErrRecordNotFound
}

func (s *paymentRepoStub) Create(_ context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = "payment"
	}
	s.payments = append(s.payments, *payment)
	return nil
}

func (s *paymentRepoStub) Update(_ context.Context, payment *models.Payment) error {
	for i, existing := range s.payments {
		if existing.ID == payment.ID {
			s.payments[i] = *payment
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *paymentRepoStub) Delete(_ context.Context, id string) error {
	for i, payment := range s.payments {
		if payment.ID == id {
			s.payments = append(s.payments[:i], s.payments[i+1:]...)
			return nil
		}
	}
	return nil
}

func newStudentService(students *studentRepoStub, attendance *attendanceRepoStub, payments *paymentRepoStub) StudentService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewStudentService(students, attendance, payments, validate, zerolog.Nop())
}

func TestStudentCreateDerivesFields(t *testing.T) {
	repo := newStudentRepoStub()
	svc := newStudentService(repo, &attendanceRepoStub{}, &paymentRepoStub{})

	student, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		Name:           "Ananya Verma",
		Batch:          models.Batches[2],
		Course:         "Oil Painting",
		EnrollmentDate: "2026-01-05",
		TotalSessions:  48,
		FeeAmount:      12000,
	})
	require.NoError(t, err)
	require.Equal(t, "ANA-0001", student.RollNumber)
	require.Equal(t, models.CourseBasic, student.Course)
	require.Equal(t, "2026-01-05", student.ValidityStart)
	// 48 sessions at four a week is twelve weeks of validity.
	require.Equal(t, "2026-03-30", student.ValidityEnd)
	require.Equal(t, models.StudentStatusActive, student.Status)
}

func TestStudentCreateDiscountExclusivity(t *testing.T) {
	repo := newStudentRepoStub()
	svc := newStudentService(repo, &attendanceRepoStub{}, &paymentRepoStub{})

	student, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		Name:            "Kabir Joshi",
		Batch:           models.Batches[0],
		TotalSessions:   24,
		FeeAmount:       12000,
		DiscountPercent: 10,
		DiscountAmount:  500,
	})
	require.NoError(t, err)
	require.Equal(t, 10.0, student.DiscountPercent)
	require.Zero(t, student.DiscountAmount)
	require.Equal(t, 10800.0, student.FeeAmount)
}

func TestStudentCreateRejectsUnknownBatch(t *testing.T) {
	svc := newStudentService(newStudentRepoStub(), &attendanceRepoStub{}, &paymentRepoStub{})

	_, err := svc.Create(context.Background(), dto.StudentCreateRequest{
		Name:          "Kabir Joshi",
		Batch:         "Midnight (2:00 AM)",
		TotalSessions: 24,
		FeeAmount:     12000,
	})
	require.ErrorIs(t, err, ErrInvalidBatch)
}

func TestStudentSummary(t *testing.T) {
	student := models.Student{
		ID:            "s1",
		RollNumber:    "ANA-0001",
		Name:          "Ananya",
		Course:        models.CourseBasic,
		Batch:         models.Batches[2],
		TotalSessions: 10,
		FeeAmount:     12000,
		ValidityEnd:   "2099-01-01",
		Status:        models.StudentStatusActive,
	}
	attendance := &attendanceRepoStub{}
	for i := 0; i < 9; i++ {
		attendance.records = append(attendance.records, models.AttendanceRecord{
			StudentID: "s1",
			Date:      fmt.Sprintf("2026-01-%02d", i+1),
			Status:    models.AttendancePresent,
		})
	}
	payments := &paymentRepoStub{payments: []models.Payment{
		{ID: "p1", StudentID: "s1", Amount: 4000, Date: "2026-01-10", Status: models.PaymentPaid},
		{ID: "p2", StudentID: "s1", Amount: 4000, Date: "2026-02-10", Status: models.PaymentPending},
	}}

	svc := newStudentService(newStudentRepoStub(student), attendance, payments)

	summary, err := svc.Summary(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, 9, summary.SessionsAttended)
	require.Equal(t, 1, summary.SessionsRemaining)
	require.False(t, summary.CertificateEligible)
	require.Equal(t, 4000.0, summary.TotalPaid)
	require.Equal(t, 4000.0, summary.TotalPending)
	require.Equal(t, 33, summary.FeeProgress)
	require.NotNil(t, summary.NextDue)
	require.Equal(t, "p2", summary.NextDue.ID)
}

func TestStudentSummaryMissingStudent(t *testing.T) {
	svc := newStudentService(newStudentRepoStub(), &attendanceRepoStub{}, &paymentRepoStub{})

	_, err := svc.Summary(context.Background(), "missing")
	require.ErrorIs(t, err, ErrStudentNotFound)
}
