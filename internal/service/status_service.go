package service

import (
	"context"

	"github.com/sdeshmukh/website-backend/internal/model"
)

// StatusCheckService defines the business logic for the legacy status check
// endpoints.
type StatusCheckService interface {
	// Create stores a status check for the named client. The returned record
	// carries a server-generated id and UTC timestamp.
	Create(ctx context.Context, clientName string) (*model.StatusCheck, error)

	// List returns stored status checks.
	List(ctx context.Context) ([]*model.StatusCheck, error)
}
