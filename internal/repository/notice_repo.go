package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/artneelam/studio-api/internal/models"
)

// NoticeFilter narrows notice listings.
type NoticeFilter struct {
	Audience string
	Limit    int
}

// NoticeRepository provides access to board notices.
type NoticeRepository interface {
	List(ctx context.Context, filter NoticeFilter) ([]models.Notice, error)
	Create(ctx context.Context, notice *models.Notice) error
	Delete(ctx context.Context, id string) error
}

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository constructs a notice repository.
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) List(ctx context.Context, filter NoticeFilter) ([]models.Notice, error) {
	query := r.db.WithContext(ctx).Model(&models.Notice{})
	if filter.Audience != "" {
		query = query.Where("audience = ? OR audience = ?", filter.Audience, models.AudienceAll)
	}
	query = query.Order("date DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var notices []models.Notice
	if err := query.Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *noticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *noticeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Notice{}, "id = ?", id).Error
}
