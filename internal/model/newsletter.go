package model

import "time"

// NewsletterSubscription records an email signup from the website footer.
// Email uniqueness is intentionally not enforced; resubscribing creates a
// new record.
type NewsletterSubscription struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"` // free-form, initialized to "active"
	Source    string    `json:"source"` // initialized to "website"
}
