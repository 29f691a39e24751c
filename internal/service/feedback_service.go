package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "feedbackhub/internal/errors"
	"feedbackhub/internal/model"
	"feedbackhub/internal/repository"
)

// FeedbackService handles the feedback CRUD operations.
type FeedbackService interface {
	Create(ctx context.Context, title, content, username string) (*model.Feedback, error)
	Get(ctx context.Context, id uint) (*model.Feedback, error)
	Update(ctx context.Context, id uint, title, content string) (*model.Feedback, error)
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, username string) ([]model.Feedback, error)
}

type feedbackService struct {
	feedback repository.FeedbackRepository
}

// NewFeedbackService builds a FeedbackService.
func NewFeedbackService(feedback repository.FeedbackRepository) FeedbackService {
	return &feedbackService{feedback: feedback}
}

func (s *feedbackService) Create(ctx context.Context, title, content, username string) (*model.Feedback, error) {
	feedback := &model.Feedback{
		Title:    title,
		Content:  content,
		Username: username,
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return feedback, nil
}

func (s *feedbackService) Get(ctx context.Context, id uint) (*model.Feedback, error) {
	feedback, err := s.feedback.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	return feedback, nil
}

// Update replaces title and content of an existing entry. Ownership never
// changes on update.
func (s *feedbackService) Update(ctx context.Context, id uint, title, content string) (*model.Feedback, error) {
	feedback, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	feedback.Title = title
	feedback.Content = content
	if err := s.feedback.Update(ctx, feedback); err != nil {
		return nil, fmt.Errorf("update feedback: %w", err)
	}
	return feedback, nil
}

func (s *feedbackService) Delete(ctx context.Context, id uint) error {
	if err := s.feedback.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFeedbackNotFound
		}
		return fmt.Errorf("delete feedback: %w", err)
	}
	return nil
}

func (s *feedbackService) ListByUser(ctx context.Context, username string) ([]model.Feedback, error) {
	entries, err := s.feedback.ListByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return entries, nil
}
