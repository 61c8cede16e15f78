package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learnity/dto"
	"learnity/models"
	"learnity/repository"

	"gorm.io/gorm"
)

// EnrollmentService manages course enrollments. Enrollment uniqueness is
// enforced twice: a pre-check gives callers a clean conflict message, and the
// database's composite unique index closes the check-then-insert race, with
// the resulting driver error translated back to ErrConflict.
type EnrollmentService interface {
	Enroll(ctx context.Context, userID, courseID uint) (*dto.EnrollmentModel, error)
	GetByID(ctx context.Context, id uint) (*dto.EnrollmentModel, error)
	GetByUser(ctx context.Context, userID uint) ([]dto.EnrollmentModel, error)
}

type enrollmentService struct {
	repo       repository.EnrollmentRepository
	courseRepo repository.CourseRepository
}

func NewEnrollmentService(repo repository.EnrollmentRepository, courseRepo repository.CourseRepository) EnrollmentService {
	return &enrollmentService{repo: repo, courseRepo: courseRepo}
}

func (s *enrollmentService) Enroll(ctx context.Context, userID, courseID uint) (*dto.EnrollmentModel, error) {
	if userID == 0 || courseID == 0 {
		return nil, fmt.Errorf("%w: user id and course id are required", ErrValidation)
	}

	if _, err := s.courseRepo.GetDetail(ctx, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course %d", ErrNotFound, courseID)
		}
		return nil, err
	}

	_, err := s.repo.GetByUserAndCourse(ctx, userID, courseID)
	if err == nil {
		return nil, fmt.Errorf("%w: user %d is already enrolled in course %d", ErrConflict, userID, courseID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := models.Enrollment{
		UserID:         userID,
		CourseID:       courseID,
		EnrollmentDate: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, &enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: user %d is already enrolled in course %d", ErrConflict, userID, courseID)
		}
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, enrollment.ID)
	if err != nil {
		return nil, err
	}
	m := dto.EnrollmentFromEntity(*created)
	return &m, nil
}

func (s *enrollmentService) GetByID(ctx context.Context, id uint) (*dto.EnrollmentModel, error) {
	enrollment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	m := dto.EnrollmentFromEntity(*enrollment)
	return &m, nil
}

func (s *enrollmentService) GetByUser(ctx context.Context, userID uint) ([]dto.EnrollmentModel, error) {
	enrollments, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.EnrollmentsFromEntities(enrollments), nil
}
