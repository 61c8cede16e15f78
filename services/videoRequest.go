package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"learnity/dto"
	"learnity/models"
	"learnity/repository"
)

// VideoRequestNotifier sends the acknowledgement mail after a request is
// stored. Implemented by utils.EmailService.
type VideoRequestNotifier interface {
	SendVideoRequestAck(email, name, topic string)
}

// VideoRequestService manages user video requests
type VideoRequestService interface {
	GetAll(ctx context.Context) ([]dto.VideoRequestModel, error)
	GetByID(ctx context.Context, id uint) (*dto.VideoRequestModel, error)
	GetByUser(ctx context.Context, userID uint) ([]dto.VideoRequestModel, error)
	Create(ctx context.Context, m dto.VideoRequestModel) (*dto.VideoRequestModel, error)
	Update(ctx context.Context, id uint, m dto.VideoRequestModel) (*dto.VideoRequestModel, error)
	Delete(ctx context.Context, id uint) error
	ListStalePending(ctx context.Context, cutoff time.Time) ([]dto.VideoRequestModel, error)
}

type videoRequestService struct {
	repo     repository.VideoRequestRepository
	notifier VideoRequestNotifier
}

func NewVideoRequestService(repo repository.VideoRequestRepository, notifier VideoRequestNotifier) VideoRequestService {
	return &videoRequestService{repo: repo, notifier: notifier}
}

func (s *videoRequestService) GetAll(ctx context.Context) ([]dto.VideoRequestModel, error) {
	requests, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.VideoRequestsFromEntities(requests), nil
}

func (s *videoRequestService) GetByID(ctx context.Context, id uint) (*dto.VideoRequestModel, error) {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	m := dto.VideoRequestFromEntity(*request)
	return &m, nil
}

func (s *videoRequestService) GetByUser(ctx context.Context, userID uint) ([]dto.VideoRequestModel, error) {
	requests, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.VideoRequestsFromEntities(requests), nil
}

func (s *videoRequestService) Create(ctx context.Context, m dto.VideoRequestModel) (*dto.VideoRequestModel, error) {
	if m.UserID == 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if strings.TrimSpace(m.Topic) == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrValidation)
	}

	request := m.ToEntity()
	request.ID = 0
	// New requests always start out pending, whatever the payload says
	request.Status = models.VideoRequestPending
	if err := s.repo.Create(ctx, &request); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil && created.User != nil {
		name := fmt.Sprintf("%s %s", created.User.FirstName, created.User.LastName)
		s.notifier.SendVideoRequestAck(created.User.Email, name, created.Topic)
	}
	out := dto.VideoRequestFromEntity(*created)
	return &out, nil
}

func (s *videoRequestService) Update(ctx context.Context, id uint, m dto.VideoRequestModel) (*dto.VideoRequestModel, error) {
	if m.VideoRequestID != 0 && m.VideoRequestID != id {
		return nil, fmt.Errorf("%w: video request id mismatch", ErrValidation)
	}

	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if strings.TrimSpace(m.Topic) != "" {
		request.Topic = m.Topic
	}
	request.ShortTitle = m.ShortTitle
	request.Description = m.Description
	request.Response = m.Response
	request.VideoURL = m.VideoURL
	if m.Status != "" {
		request.Status = m.Status
	}
	if err := s.repo.Update(ctx, request); err != nil {
		return nil, err
	}
	updated := dto.VideoRequestFromEntity(*request)
	return &updated, nil
}

// Delete is idempotent: removing an absent id succeeds.
func (s *videoRequestService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(translateNotFound(err), ErrNotFound) {
		return nil
	}
	return err
}

func (s *videoRequestService) ListStalePending(ctx context.Context, cutoff time.Time) ([]dto.VideoRequestModel, error) {
	requests, err := s.repo.GetPendingOlderThan(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	return dto.VideoRequestsFromEntities(requests), nil
}
