package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/artneelam/studio-api/internal/models"
)

// LeadFilter narrows lead listings.
type LeadFilter struct {
	Status string
	Source string
}

// LeadRepository provides access to lead records.
type LeadRepository interface {
	List(ctx context.Context, filter LeadFilter) ([]models.Lead, error)
	GetByID(ctx context.Context, id string) (models.Lead, error)
	Create(ctx context.Context, lead *models.Lead) error
	Update(ctx context.Context, lead *models.Lead) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	CountRecentByPhone(ctx context.Context, phone string, since time.Time) (int64, error)
}

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository constructs a lead repository.
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) List(ctx context.Context, filter LeadFilter) ([]models.Lead, error) {
	query := r.db.WithContext(ctx).Model(&models.Lead{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}

	var leads []models.Lead
	if err := query.Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (models.Lead, error) {
	var lead models.Lead
	if err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error; err != nil {
		return models.Lead{}, err
	}
	return lead, nil
}

func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) Update(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

func (r *leadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result := r.db.WithContext(ctx).Model(&models.Lead{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *leadRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Lead{}, "id = ?", id).Error
}

func (r *leadRepository) CountRecentByPhone(ctx context.Context, phone string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Lead{}).
		Where("phone = ? AND created_at >= ?", phone, since).
		Count(&count).Error
	return count, err
}
