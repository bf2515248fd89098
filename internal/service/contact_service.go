package service

import (
	"context"

	"github.com/sdeshmukh/website-backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact message. msg.ID, msg.Timestamp and
	// msg.Status are populated by the implementation.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns contact messages newest first, according to the given
	// pagination options.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
}
