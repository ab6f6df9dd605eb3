package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/artneelam/studio-api/internal/models"
)

const rollNumberPrefix = "ANA-"

// StudentFilter narrows student listings.
type StudentFilter struct {
	Status string
	Batch  string
	Course string
}

// StudentRepository provides access to student records.
type StudentRepository interface {
	List(ctx context.Context, filter StudentFilter) ([]models.Student, error)
	GetByID(ctx context.Context, id string) (models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
	NextRollNumber(ctx context.Context) (string, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(ctx context.Context, filter StudentFilter) ([]models.Student, error) {
	query := r.db.WithContext(ctx).Model(&models.Student{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Batch != "" {
		query = query.Where("batch = ?", filter.Batch)
	}
	if filter.Course != "" {
		query = query.Where("course = ?", filter.Course)
	}

	var students []models.Student
	if err := query.Order("created_at DESC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error; err != nil {
		return models.Student{}, err
	}
	return student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Student{}, "id = ?", id).Error
}

// NextRollNumber generates the next sequential roll number. Fixed-width
// numbering keeps lexical and numeric order aligned.
func (r *studentRepository) NextRollNumber(ctx context.Context) (string, error) {
	var last models.Student
	err := r.db.WithContext(ctx).
		Where("roll_number LIKE ?", rollNumberPrefix+"%").
		Order("roll_number DESC").
		First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Sprintf("%s%04d", rollNumberPrefix, 1), nil
		}
		return "", err
	}

	seq, err := strconv.Atoi(strings.TrimPrefix(last.RollNumber, rollNumberPrefix))
	if err != nil {
		return "", fmt.Errorf("malformed roll number %q: %w", last.RollNumber, err)
	}

	return fmt.Sprintf("%s%04d", rollNumberPrefix, seq+1), nil
}
