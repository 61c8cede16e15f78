package services

import (
	"context"
	"errors"
	"fmt"

	"learnity/dto"
	"learnity/repository"
)

// ReviewService manages course reviews
type ReviewService interface {
	GetByID(ctx context.Context, id uint) (*dto.ReviewModel, error)
	GetByCourse(ctx context.Context, courseID uint) ([]dto.ReviewModel, error)
	GetByUser(ctx context.Context, userID uint) ([]dto.ReviewModel, error)
	Create(ctx context.Context, m dto.ReviewModel) (*dto.ReviewModel, error)
	Update(ctx context.Context, id uint, m dto.ReviewModel) (*dto.ReviewModel, error)
	Delete(ctx context.Context, id uint) error
}

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) GetByID(ctx context.Context, id uint) (*dto.ReviewModel, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	m := dto.ReviewFromEntity(*review)
	return &m, nil
}

func (s *reviewService) GetByCourse(ctx context.Context, courseID uint) ([]dto.ReviewModel, error) {
	reviews, err := s.repo.GetByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return dto.ReviewsFromEntities(reviews), nil
}

func (s *reviewService) GetByUser(ctx context.Context, userID uint) ([]dto.ReviewModel, error) {
	reviews, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.ReviewsFromEntities(reviews), nil
}

func (s *reviewService) Create(ctx context.Context, m dto.ReviewModel) (*dto.ReviewModel, error) {
	if err := validateReview(m); err != nil {
		return nil, err
	}

	review := m.ToEntity()
	review.ID = 0
	if err := s.repo.Create(ctx, &review); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	out := dto.ReviewFromEntity(*created)
	return &out, nil
}

func (s *reviewService) Update(ctx context.Context, id uint, m dto.ReviewModel) (*dto.ReviewModel, error) {
	if m.ReviewID != 0 && m.ReviewID != id {
		return nil, fmt.Errorf("%w: review id mismatch", ErrValidation)
	}
	if err := validateReview(m); err != nil {
		return nil, err
	}

	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	review.Rating = m.Rating
	review.Comment = m.Comment
	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	updated := dto.ReviewFromEntity(*review)
	return &updated, nil
}

// Delete is idempotent: removing an absent id succeeds.
func (s *reviewService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(translateNotFound(err), ErrNotFound) {
		return nil
	}
	return err
}

func validateReview(m dto.ReviewModel) error {
	if m.UserID == 0 || m.CourseID == 0 {
		return fmt.Errorf("%w: user id and course id are required", ErrValidation)
	}
	if m.Rating < 1 || m.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	return nil
}
