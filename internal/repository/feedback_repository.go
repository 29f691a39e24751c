package repository

import (
	"context"

	"gorm.io/gorm"

	"feedbackhub/internal/model"
)

// FeedbackRepository defines feedback persistence operations.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	Update(ctx context.Context, feedback *model.Feedback) error
	FindByID(ctx context.Context, id uint) (*model.Feedback, error)
	ListByUsername(ctx context.Context, username string) ([]model.Feedback, error)
	Delete(ctx context.Context, id uint) error
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository builds a GORM-backed repository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) Update(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Save(feedback).Error
}

func (r *feedbackRepository) FindByID(ctx context.Context, id uint) (*model.Feedback, error) {
	var feedback model.Feedback
	if err := r.db.WithContext(ctx).First(&feedback, id).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) ListByUsername(ctx context.Context, username string) ([]model.Feedback, error) {
	var entries []model.Feedback
	if err := r.db.WithContext(ctx).Where("username = ?", username).Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *feedbackRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Feedback{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
