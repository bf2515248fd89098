package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sdeshmukh/website-backend/internal/model"
	"github.com/sdeshmukh/website-backend/internal/repository"
)

// statusCheckServiceImpl is the production implementation of StatusCheckService.
type statusCheckServiceImpl struct {
	repo repository.StatusCheckRepository
}

// NewStatusCheckService creates a StatusCheckService backed by the given repository.
func NewStatusCheckService(repo repository.StatusCheckRepository) StatusCheckService {
	return &statusCheckServiceImpl{repo: repo}
}

// Create builds a complete StatusCheck (id and UTC timestamp assigned here,
// never by the client or the database) and persists it.
func (s *statusCheckServiceImpl) Create(ctx context.Context, clientName string) (*model.StatusCheck, error) {
	sc := &model.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// List returns stored status checks.
func (s *statusCheckServiceImpl) List(ctx context.Context) ([]*model.StatusCheck, error) {
	return s.repo.List(ctx)
}
