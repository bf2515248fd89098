package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sdeshmukh/website-backend/internal/model"
	"github.com/sdeshmukh/website-backend/internal/repository"
)

// newsletterServiceImpl is the production implementation of NewsletterService.
type newsletterServiceImpl struct {
	repo repository.NewsletterRepository
}

// NewNewsletterService creates a NewsletterService backed by the given repository.
func NewNewsletterService(repo repository.NewsletterRepository) NewsletterService {
	return &newsletterServiceImpl{repo: repo}
}

// Subscribe builds a complete subscription record (id, UTC timestamp,
// status "active", source "website") and persists it.
func (s *newsletterServiceImpl) Subscribe(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	sub := &model.NewsletterSubscription{
		ID:        uuid.NewString(),
		Email:     email,
		Timestamp: time.Now().UTC(),
		Status:    "active",
		Source:    "website",
	}
	if err := s.repo.Insert(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}
