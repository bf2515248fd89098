package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sdeshmukh/website-backend/internal/model"
	"github.com/sdeshmukh/website-backend/internal/notify"
	"github.com/sdeshmukh/website-backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier notify.Notifier
}

// NewContactService creates a ContactService backed by the given repository.
// The notifier is invoked after a successful insert; its errors are logged
// and never fail the submission.
func NewContactService(repo repository.ContactRepository, notifier notify.Notifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

// Submit completes the message (id, UTC timestamp, status "new") and
// persists it. The timestamp is captured once, here, not at request receipt
// or store commit.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.ID = uuid.NewString()
	msg.Timestamp = time.Now().UTC()
	msg.Status = "new"
	if err := s.repo.Insert(ctx, msg); err != nil {
		return err
	}

	slog.Info("contact form submitted", "email", msg.Email, "subject", msg.Subject)

	if err := s.notifier.ContactReceived(ctx, msg); err != nil {
		slog.Warn("contact notification failed", "error", err)
	}
	return nil
}

// List returns contact messages according to the given pagination options.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx, opts)
}
