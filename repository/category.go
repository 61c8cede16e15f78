package repository

import (
	"context"

	"learnity/models"

	"gorm.io/gorm"
)

// CategoryRepository is the persistence gateway for course categories
type CategoryRepository interface {
	GetByID(ctx context.Context, id uint) (*models.CourseCategory, error)
	GetAll(ctx context.Context) ([]models.CourseCategory, error)
	Create(ctx context.Context, c *models.CourseCategory) error
	Update(ctx context.Context, c *models.CourseCategory) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.CourseCategory, error) {
	var category models.CourseCategory
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.CourseCategory, error) {
	var categories []models.CourseCategory
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, c *models.CourseCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepository) Update(ctx context.Context, c *models.CourseCategory) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.CourseCategory{}, id).Error
}
