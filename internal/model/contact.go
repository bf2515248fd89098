package model

import "time"

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"` // free-form, initialized to "new"
}

// ContactListOptions carries pagination parameters for listing contact messages.
// Results are always ordered newest first.
type ContactListOptions struct {
	Limit int
	Skip  int
}
