package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/repository"
)

var (
	// ErrPaymentNotFound indicates the requested payment does not exist.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrInvalidInstallment indicates an installment number beyond the plan size.
	ErrInvalidInstallment = errors.New("installment number exceeds total installments")
)

// PaymentService records installments against students.
type PaymentService interface {
	List(ctx context.Context, filter repository.PaymentFilter) ([]models.Payment, error)
	Create(ctx context.Context, req dto.PaymentCreateRequest) (models.Payment, error)
	Update(ctx context.Context, id string, req dto.PaymentUpdateRequest) (models.Payment, error)
	Delete(ctx context.Context, id string) error
}

type paymentService struct {
	payments repository.PaymentRepository
	students repository.StudentRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewPaymentService builds the payment service.
func NewPaymentService(payments repository.PaymentRepository, students repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) PaymentService {
	return &paymentService{
		payments: payments,
		students: students,
		validate: validate,
		logger:   logger.With().Str("component", "payment_service").Logger(),
	}
}

func (s *paymentService) List(ctx context.Context, filter repository.PaymentFilter) ([]models.Payment, error) {
	return s.payments.List(ctx, filter)
}

func (s *paymentService) Create(ctx context.Context, req dto.PaymentCreateRequest) (models.Payment, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Payment{}, err
	}
	if req.InstallmentNo > req.TotalInstallments {
		return models.Payment{}, ErrInvalidInstallment
	}

	if _, err := s.students.GetByID(ctx, req.StudentID); err != nil {
		return models.Payment{}, ErrStudentNotFound
	}

	status := req.Status
	if status == "" {
		status = models.PaymentPaid
	}

	payment := models.Payment{
		StudentID:         req.StudentID,
		Amount:            req.Amount,
		Method:            req.Method,
		Date:              req.Date,
		InstallmentNo:     req.InstallmentNo,
		TotalInstallments: req.TotalInstallments,
		Status:            status,
		Notes:             req.Notes,
	}
	if payment.InstallmentNo == 0 {
		payment.InstallmentNo = 1
	}
	if payment.TotalInstallments == 0 {
		payment.TotalInstallments = 1
	}

	if err := s.payments.Create(ctx, &payment); err != nil {
		return models.Payment{}, err
	}

	s.logger.Info().Str("payment_id", payment.ID).Str("student_id", payment.StudentID).Str("status", payment.Status).Msg("payment recorded")
	return payment, nil
}

func (s *paymentService) Update(ctx context.Context, id string, req dto.PaymentUpdateRequest) (models.Payment, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Payment{}, err
	}

	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Payment{}, ErrPaymentNotFound
		}
		return models.Payment{}, err
	}

	payment.Amount = req.Amount
	payment.Method = req.Method
	payment.Date = req.Date
	payment.Status = req.Status
	payment.Notes = req.Notes

	if err := s.payments.Update(ctx, &payment); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

func (s *paymentService) Delete(ctx context.Context, id string) error {
	if _, err := s.payments.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		}
		return err
	}
	return s.payments.Delete(ctx, id)
}
