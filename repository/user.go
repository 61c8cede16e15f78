package repository

import (
	"context"

	"learnity/models"

	"gorm.io/gorm"
)

// UserRepository is the persistence gateway for user profiles
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	UpdateProfilePicture(ctx context.Context, id uint, url string) error
	UpdateBio(ctx context.Context, id uint, bio string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateProfilePicture(ctx context.Context, id uint, url string) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("profile_picture_url", url).Error
}

func (r *userRepository) UpdateBio(ctx context.Context, id uint, bio string) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("bio", bio).Error
}
