package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/repository"
)

// AttendanceService records and lists daily marks. Marking a student twice on
// the same day replaces the earlier mark.
type AttendanceService interface {
	List(ctx context.Context, filter repository.AttendanceFilter) ([]models.AttendanceRecord, error)
	Mark(ctx context.Context, req dto.AttendanceMarkRequest) (models.AttendanceRecord, error)
	MarkAll(ctx context.Context, req dto.AttendanceBulkRequest) ([]models.AttendanceRecord, error)
	Delete(ctx context.Context, id string) error
}

type attendanceService struct {
	records  repository.AttendanceRepository
	students repository.StudentRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewAttendanceService builds the attendance service.
func NewAttendanceService(records repository.AttendanceRepository, students repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		records:  records,
		students: students,
		validate: validate,
		logger:   logger.With().Str("component", "attendance_service").Logger(),
	}
}

func (s *attendanceService) List(ctx context.Context, filter repository.AttendanceFilter) ([]models.AttendanceRecord, error) {
	return s.records.List(ctx, filter)
}

func (s *attendanceService) Mark(ctx context.Context, req dto.AttendanceMarkRequest) (models.AttendanceRecord, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.AttendanceRecord{}, err
	}

	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return models.AttendanceRecord{}, ErrStudentNotFound
	}

	batch := req.Batch
	if batch == "" {
		batch = student.Batch
	}

	record := models.AttendanceRecord{
		StudentID: req.StudentID,
		Date:      req.Date,
		Status:    req.Status,
		Batch:     batch,
	}
	if err := s.records.Upsert(ctx, &record); err != nil {
		return models.AttendanceRecord{}, err
	}
	return record, nil
}

// MarkAll applies the same status to every listed student, the "mark all
// present" sheet action. Students that no longer exist are skipped.
func (s *attendanceService) MarkAll(ctx context.Context, req dto.AttendanceBulkRequest) ([]models.AttendanceRecord, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	marked := make([]models.AttendanceRecord, 0, len(req.StudentIDs))
	for _, studentID := range req.StudentIDs {
		record, err := s.Mark(ctx, dto.AttendanceMarkRequest{
			StudentID: studentID,
			Date:      req.Date,
			Status:    req.Status,
			Batch:     req.Batch,
		})
		if err != nil {
			if errors.Is(err, ErrStudentNotFound) {
				s.logger.Warn().Str("student_id", studentID).Msg("skipping unknown student in bulk mark")
				continue
			}
			return nil, err
		}
		marked = append(marked, record)
	}
	return marked, nil
}

func (s *attendanceService) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}
