package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"learnity/dto"
	"learnity/repository"
)

// CourseService manages courses and their instructors
type CourseService interface {
	GetAll(ctx context.Context) ([]dto.CourseModel, error)
	GetByCategory(ctx context.Context, categoryID uint) ([]dto.CourseModel, error)
	GetDetail(ctx context.Context, id uint) (*dto.CourseDetailModel, error)
	Create(ctx context.Context, m dto.CourseModel) (*dto.CourseModel, error)
	Update(ctx context.Context, id uint, m dto.CourseModel) (*dto.CourseModel, error)
	Delete(ctx context.Context, id uint) error
	UpdateThumbnail(ctx context.Context, id uint, url string) error
	GetInstructors(ctx context.Context) ([]dto.InstructorModel, error)
}

type courseService struct {
	repo repository.CourseRepository
}

func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) GetAll(ctx context.Context) ([]dto.CourseModel, error) {
	courses, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.CoursesFromEntities(courses), nil
}

func (s *courseService) GetByCategory(ctx context.Context, categoryID uint) ([]dto.CourseModel, error) {
	courses, err := s.repo.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return dto.CoursesFromEntities(courses), nil
}

func (s *courseService) GetDetail(ctx context.Context, id uint) (*dto.CourseDetailModel, error) {
	course, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	detail := dto.CourseDetailFromEntity(*course)
	return &detail, nil
}

func (s *courseService) Create(ctx context.Context, m dto.CourseModel) (*dto.CourseModel, error) {
	if strings.TrimSpace(m.Title) == "" {
		return nil, fmt.Errorf("%w: course title is required", ErrValidation)
	}

	course := m.ToEntity()
	course.ID = 0
	if err := s.repo.Create(ctx, &course); err != nil {
		return nil, err
	}
	created := dto.CourseFromEntity(course)
	return &created, nil
}

func (s *courseService) Update(ctx context.Context, id uint, m dto.CourseModel) (*dto.CourseModel, error) {
	if m.CourseID != 0 && m.CourseID != id {
		return nil, fmt.Errorf("%w: course id mismatch", ErrValidation)
	}
	if strings.TrimSpace(m.Title) == "" {
		return nil, fmt.Errorf("%w: course title is required", ErrValidation)
	}

	course, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	course.Title = m.Title
	course.Description = m.Description
	course.Price = m.Price
	course.Duration = m.Duration
	course.CategoryID = m.CategoryID
	if m.ThumbnailURL != "" {
		course.ThumbnailURL = m.ThumbnailURL
	}
	if err := s.repo.Update(ctx, course); err != nil {
		return nil, err
	}
	updated := dto.CourseFromEntity(*course)
	return &updated, nil
}

// Delete is idempotent: removing an absent id succeeds.
func (s *courseService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(translateNotFound(err), ErrNotFound) {
		return nil
	}
	return err
}

func (s *courseService) UpdateThumbnail(ctx context.Context, id uint, url string) error {
	if _, err := s.repo.GetDetail(ctx, id); err != nil {
		return translateNotFound(err)
	}
	return s.repo.UpdateThumbnail(ctx, id, url)
}

func (s *courseService) GetInstructors(ctx context.Context) ([]dto.InstructorModel, error) {
	instructors, err := s.repo.GetInstructors(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InstructorModel, 0, len(instructors))
	for _, i := range instructors {
		out = append(out, dto.InstructorFromEntity(i))
	}
	return out, nil
}
