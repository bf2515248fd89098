package service

import (
	"context"

	"github.com/sdeshmukh/website-backend/internal/model"
)

// NewsletterService defines the business logic for newsletter signups.
type NewsletterService interface {
	// Subscribe records a subscription for the given (already validated)
	// email address. Duplicate emails create duplicate records.
	Subscribe(ctx context.Context, email string) (*model.NewsletterSubscription, error)
}
