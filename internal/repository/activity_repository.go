package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vault/internal/model"
)

// ActivityRepository defines access log persistence operations.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository builds a GORM-backed repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// ListByUser returns the user's activity entries, newest first.
func (r *activityRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Document").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
