package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vault/internal/cache"
	"vault/internal/model"
	"vault/internal/repository"
)

const activityCacheTTL = time.Minute

func activityCacheKey(userID uuid.UUID) string {
	return "activities:" + userID.String()
}

// ActivityService exposes the per-user access log.
type ActivityService interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Activity, error)
}

type activityService struct {
	repo  repository.ActivityRepository
	cache *cache.Client
}

// NewActivityService creates a new activity service.
func NewActivityService(repo repository.ActivityRepository, cache *cache.Client) ActivityService {
	return &activityService{repo: repo, cache: cache}
}

// ListForUser returns the user's activity entries, newest first, with
// read-through caching. Writers invalidate the key.
func (s *activityService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Activity, error) {
	key := activityCacheKey(userID)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Activity
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	activities, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	if payload, err := json.Marshal(activities); err == nil {
		_ = s.cache.Set(ctx, key, payload, activityCacheTTL)
	}

	return activities, nil
}
