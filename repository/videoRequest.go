package repository

import (
	"context"
	"time"

	"learnity/models"

	"gorm.io/gorm"
)

// VideoRequestRepository is the persistence gateway for video requests
type VideoRequestRepository interface {
	GetAll(ctx context.Context) ([]models.VideoRequest, error)
	GetByID(ctx context.Context, id uint) (*models.VideoRequest, error)
	GetByUser(ctx context.Context, userID uint) ([]models.VideoRequest, error)
	Create(ctx context.Context, v *models.VideoRequest) error
	Update(ctx context.Context, v *models.VideoRequest) error
	Delete(ctx context.Context, id uint) error
	GetPendingOlderThan(ctx context.Context, cutoff time.Time) ([]models.VideoRequest, error)
}

type videoRequestRepository struct {
	db *gorm.DB
}

func NewVideoRequestRepository(db *gorm.DB) VideoRequestRepository {
	return &videoRequestRepository{db: db}
}

func (r *videoRequestRepository) GetAll(ctx context.Context) ([]models.VideoRequest, error) {
	var requests []models.VideoRequest
	err := r.db.WithContext(ctx).Preload("User").Order("created_at desc").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *videoRequestRepository) GetByID(ctx context.Context, id uint) (*models.VideoRequest, error) {
	var request models.VideoRequest
	if err := r.db.WithContext(ctx).Preload("User").First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *videoRequestRepository) GetByUser(ctx context.Context, userID uint) ([]models.VideoRequest, error) {
	var requests []models.VideoRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *videoRequestRepository) Create(ctx context.Context, v *models.VideoRequest) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *videoRequestRepository) Update(ctx context.Context, v *models.VideoRequest) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *videoRequestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.VideoRequest{}, id).Error
}

func (r *videoRequestRepository) GetPendingOlderThan(ctx context.Context, cutoff time.Time) ([]models.VideoRequest, error) {
	var requests []models.VideoRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ? AND created_at < ?", models.VideoRequestPending, cutoff).
		Order("created_at asc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
