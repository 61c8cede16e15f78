package repository

import (
	"context"

	"learnity/models"

	"gorm.io/gorm"
)

// CourseRepository is the persistence gateway for courses and instructors
type CourseRepository interface {
	GetAll(ctx context.Context) ([]models.Course, error)
	GetByCategory(ctx context.Context, categoryID uint) ([]models.Course, error)
	GetDetail(ctx context.Context, id uint) (*models.Course, error)
	Create(ctx context.Context, c *models.Course) error
	Update(ctx context.Context, c *models.Course) error
	Delete(ctx context.Context, id uint) error
	UpdateThumbnail(ctx context.Context, id uint, url string) error
	GetInstructors(ctx context.Context) ([]models.Instructor, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).Preload("Category").Order("created_at desc").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) GetByCategory(ctx context.Context, categoryID uint) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) GetDetail(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Instructors").
		Preload("Reviews").
		Preload("Reviews.User").
		First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) Create(ctx context.Context, c *models.Course) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *courseRepository) Update(ctx context.Context, c *models.Course) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *courseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Course{}, id).Error
}

func (r *courseRepository) UpdateThumbnail(ctx context.Context, id uint, url string) error {
	return r.db.WithContext(ctx).
		Model(&models.Course{}).
		Where("id = ?", id).
		Update("thumbnail_url", url).Error
}

func (r *courseRepository) GetInstructors(ctx context.Context) ([]models.Instructor, error) {
	var instructors []models.Instructor
	if err := r.db.WithContext(ctx).Order("last_name asc").Find(&instructors).Error; err != nil {
		return nil, err
	}
	return instructors, nil
}
