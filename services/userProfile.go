package services

import (
	"context"

	"learnity/dto"
	"learnity/repository"
)

// UserProfileService manages user profile reads and partial updates
type UserProfileService interface {
	GetByID(ctx context.Context, id uint) (*dto.UserModel, error)
	UpdateProfilePicture(ctx context.Context, id uint, url string) error
	UpdateBio(ctx context.Context, id uint, bio string) error
}

type userProfileService struct {
	repo repository.UserRepository
}

func NewUserProfileService(repo repository.UserRepository) UserProfileService {
	return &userProfileService{repo: repo}
}

func (s *userProfileService) GetByID(ctx context.Context, id uint) (*dto.UserModel, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	m := dto.UserFromEntity(*user)
	return &m, nil
}

func (s *userProfileService) UpdateProfilePicture(ctx context.Context, id uint, url string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return translateNotFound(err)
	}
	return s.repo.UpdateProfilePicture(ctx, id, url)
}

func (s *userProfileService) UpdateBio(ctx context.Context, id uint, bio string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return translateNotFound(err)
	}
	return s.repo.UpdateBio(ctx, id, bio)
}
