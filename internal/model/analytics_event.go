package model

import "time"

// AnalyticsEvent is a schema-less telemetry record. Payload carries whatever
// fields the client sent, unvalidated; ID and Timestamp are injected by the
// server and override same-named client keys in the stored document.
type AnalyticsEvent struct {
	ID        string
	Timestamp time.Time
	Payload   map[string]any
}

// Document returns the full JSON document as stored: the client payload with
// the server-assigned id and timestamp merged in.
func (e *AnalyticsEvent) Document() map[string]any {
	doc := make(map[string]any, len(e.Payload)+2)
	for k, v := range e.Payload {
		doc[k] = v
	}
	doc["id"] = e.ID
	doc["timestamp"] = e.Timestamp
	return doc
}
