package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sdeshmukh/website-backend/internal/model"
	"github.com/sdeshmukh/website-backend/internal/repository"
)

// analyticsServiceImpl is the production implementation of AnalyticsService.
type analyticsServiceImpl struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsService creates an AnalyticsService backed by the given repository.
func NewAnalyticsService(repo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsServiceImpl{repo: repo}
}

// Track injects id and UTC timestamp into the client payload and persists
// the resulting document. Client-supplied fields pass through unvalidated;
// client-supplied "id"/"timestamp" keys are overridden, never trusted.
func (s *analyticsServiceImpl) Track(ctx context.Context, payload map[string]any) (*model.AnalyticsEvent, error) {
	evt := &model.AnalyticsEvent{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
	if err := s.repo.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return evt, nil
}
