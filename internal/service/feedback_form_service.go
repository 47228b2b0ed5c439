package service

import (
	"context"
	"strings"

	"feedback-builder/internal/domain"
	"feedback-builder/internal/logger"

	"go.uber.org/zap"
)

// FeedbackFormService exposes stored forms outside of a builder session.
type FeedbackFormService interface {
	GetForm(ctx context.Context, id string) (*domain.FeedbackForm, error)
	CreateForm(ctx context.Context, form domain.PersistedForm) (string, error)
	UpdateForm(ctx context.Context, id string, form domain.PersistedForm) error
}

type feedbackFormService struct {
	repo domain.FeedbackFormRepository
}

// NewFeedbackFormService creates a new instance of feedbackFormService
func NewFeedbackFormService(repo domain.FeedbackFormRepository) FeedbackFormService {
	return &feedbackFormService{repo: repo}
}

// GetForm implements FeedbackFormService
func (s *feedbackFormService) GetForm(ctx context.Context, id string) (*domain.FeedbackForm, error) {
	form, err := s.repo.GetForm(ctx, id)
	if err != nil {
		return nil, err
	}
	return form, nil
}

// CreateForm implements FeedbackFormService
func (s *feedbackFormService) CreateForm(ctx context.Context, form domain.PersistedForm) (string, error) {
	if strings.TrimSpace(form.Title) == "" {
		return "", domain.NewMissingFieldError("title")
	}
	id, err := s.repo.CreateForm(ctx, form)
	if err != nil {
		return "", &domain.PersistError{Op: "create", Cause: err}
	}
	logger.Get().Info("Feedback form created", zap.String("formID", id))
	return id, nil
}

// UpdateForm implements FeedbackFormService
func (s *feedbackFormService) UpdateForm(ctx context.Context, id string, form domain.PersistedForm) error {
	if strings.TrimSpace(form.Title) == "" {
		return domain.NewMissingFieldError("title")
	}
	if err := s.repo.UpdateForm(ctx, id, form); err != nil {
		return &domain.PersistError{Op: "update", Cause: err}
	}
	logger.Get().Info("Feedback form updated", zap.String("formID", id))
	return nil
}
