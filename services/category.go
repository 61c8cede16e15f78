package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"learnity/dto"
	"learnity/repository"
)

// CategoryService manages course categories
type CategoryService interface {
	GetByID(ctx context.Context, id uint) (*dto.CategoryModel, error)
	GetAll(ctx context.Context) ([]dto.CategoryModel, error)
	Create(ctx context.Context, m dto.CategoryModel) (*dto.CategoryModel, error)
	Update(ctx context.Context, id uint, m dto.CategoryModel) (*dto.CategoryModel, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetByID(ctx context.Context, id uint) (*dto.CategoryModel, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	m := dto.CategoryFromEntity(*category)
	return &m, nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]dto.CategoryModel, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.CategoriesFromEntities(categories), nil
}

func (s *categoryService) Create(ctx context.Context, m dto.CategoryModel) (*dto.CategoryModel, error) {
	if strings.TrimSpace(m.Name) == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	category := m.ToEntity()
	category.ID = 0
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	created := dto.CategoryFromEntity(category)
	return &created, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, m dto.CategoryModel) (*dto.CategoryModel, error) {
	if m.CategoryID != 0 && m.CategoryID != id {
		return nil, fmt.Errorf("%w: category id mismatch", ErrValidation)
	}
	if strings.TrimSpace(m.Name) == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	category.Name = m.Name
	category.Description = m.Description
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	updated := dto.CategoryFromEntity(*category)
	return &updated, nil
}

// Delete is idempotent: removing an absent id succeeds.
func (s *categoryService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(translateNotFound(err), ErrNotFound) {
		return nil
	}
	return err
}
