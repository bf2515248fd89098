package service

import (
	"context"

	"github.com/sdeshmukh/website-backend/internal/model"
)

// AnalyticsService defines the business logic for analytics event tracking.
type AnalyticsService interface {
	// Track stores one event built from the client payload. The returned
	// event carries the server-assigned id and timestamp.
	Track(ctx context.Context, payload map[string]any) (*model.AnalyticsEvent, error)
}
