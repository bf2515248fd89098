package model

import "time"

// StatusCheck is a legacy client ping record, kept for compatibility
// with earlier versions of the API.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
