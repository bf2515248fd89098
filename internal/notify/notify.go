// Package notify will deliver email notifications for contact form
// submissions once an SMTP or provider integration is configured. For now
// only a no-op implementation exists; messages are stored but nobody is
// emailed.
package notify

import (
	"context"
	"log/slog"

	"github.com/sdeshmukh/website-backend/internal/model"
)

// Notifier is called after a contact message has been persisted. Failures
// must never fail the originating request.
type Notifier interface {
	ContactReceived(ctx context.Context, msg *model.ContactMessage) error
}

// Noop is the placeholder Notifier used until an email provider is wired in.
type Noop struct{}

// ContactReceived logs that notification delivery is not implemented and
// returns nil.
func (Noop) ContactReceived(ctx context.Context, msg *model.ContactMessage) error {
	slog.Debug("email notification skipped (not configured)", "email", msg.Email)
	return nil
}
