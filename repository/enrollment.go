package repository

import (
	"context"

	"learnity/models"

	"gorm.io/gorm"
)

// EnrollmentRepository is the persistence gateway for enrollments and their payments
type EnrollmentRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Enrollment, error)
	GetByUser(ctx context.Context, userID uint) ([]models.Enrollment, error)
	GetByUserAndCourse(ctx context.Context, userID, courseID uint) (*models.Enrollment, error)
	Create(ctx context.Context, e *models.Enrollment) error
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Payments").
		First(&enrollment, id).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) GetByUser(ctx context.Context, userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Payments").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepository) GetByUserAndCourse(ctx context.Context, userID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) Create(ctx context.Context, e *models.Enrollment) error {
	return r.db.WithContext(ctx).Create(e).Error
}
