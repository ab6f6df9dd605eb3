package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/artneelam/studio-api/internal/models"
)

var (
	// ErrPhotoRequired indicates no file was attached.
	ErrPhotoRequired = errors.New("photo file is required")
	// ErrPhotoTooLarge indicates the file exceeds the configured size cap.
	ErrPhotoTooLarge = errors.New("photo exceeds the maximum allowed size")
	// ErrPhotoTypeNotAllowed indicates a non-image upload.
	ErrPhotoTypeNotAllowed = errors.New("photo must be a jpeg, png or webp image")
	// ErrPhotoStorageDisabled indicates no image storage is configured.
	ErrPhotoStorageDisabled = errors.New("photo storage is not configured")
)

// PhotoStorage stores an image and returns its public URL.
type PhotoStorage interface {
	UploadPhoto(ctx context.Context, name string, reader io.Reader) (string, error)
}

// PhotoService validates and stores student ID-card photos. The detected
// content type decides admissibility, not the client-supplied header.
type PhotoService interface {
	Upload(ctx context.Context, studentID string, file *multipart.FileHeader) (models.Student, error)
}

type photoService struct {
	storage  PhotoStorage
	students StudentService
	maxSize  int64
	logger   zerolog.Logger
	tracer   trace.Tracer
}

// NewPhotoService builds the photo upload service. storage may be nil when no
// image backend is configured; uploads then fail with a clear error.
func NewPhotoService(storage PhotoStorage, students StudentService, maxSizeMB int, logger zerolog.Logger) PhotoService {
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	return &photoService{
		storage:  storage,
		students: students,
		maxSize:  int64(maxSizeMB) * 1024 * 1024,
		logger:   logger.With().Str("component", "photo_service").Logger(),
		tracer:   otel.Tracer("github.com/artneelam/studio-api/internal/service"),
	}
}

func (s *photoService) Upload(ctx context.Context, studentID string, file *multipart.FileHeader) (models.Student, error) {
	ctx, span := s.tracer.Start(ctx, "photo.upload")
	defer span.End()
	span.SetAttributes(attribute.String("photo.student_id", studentID))

	if s.storage == nil {
		return models.Student{}, ErrPhotoStorageDisabled
	}
	if file == nil {
		return models.Student{}, ErrPhotoRequired
	}
	if file.Size > s.maxSize {
		span.SetStatus(codes.Error, "payload too large")
		return models.Student{}, ErrPhotoTooLarge
	}

	student, err := s.students.Get(ctx, studentID)
	if err != nil {
		return models.Student{}, err
	}

	handle, err := file.Open()
	if err != nil {
		span.RecordError(err)
		return models.Student{}, err
	}
	defer handle.Close()

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, io.LimitReader(handle, s.maxSize+1)); err != nil {
		span.RecordError(err)
		return models.Student{}, err
	}
	if int64(buf.Len()) > s.maxSize {
		span.SetStatus(codes.Error, "payload too large")
		return models.Student{}, ErrPhotoTooLarge
	}

	mime := mimetype.Detect(buf.Bytes())
	span.SetAttributes(attribute.String("photo.detected_mime", mime.String()))
	if !isAllowedPhotoType(mime.String()) {
		span.SetStatus(codes.Error, "type not allowed")
		return models.Student{}, ErrPhotoTypeNotAllowed
	}

	url, err := s.storage.UploadPhoto(ctx, student.RollNumber, bytes.NewReader(buf.Bytes()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "storage failed")
		return models.Student{}, err
	}

	updated, err := s.students.SetPhotoURL(ctx, studentID, url)
	if err != nil {
		return models.Student{}, err
	}

	s.logger.Info().Str("student_id", studentID).Msg("photo uploaded")
	return updated, nil
}

func isAllowedPhotoType(mime string) bool {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/jpeg", "image/png", "image/webp":
		return true
	default:
		return false
	}
}
