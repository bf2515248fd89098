package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sdeshmukh/website-backend/internal/service"
)

// AnalyticsHandler handles analytics event tracking. The contract is
// fire-and-forget: the endpoint always answers 200 and reports failures
// through the success flag, never an error status.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates an AnalyticsHandler with the given service.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// trackResponse is the body for POST /api/analytics/event.
type trackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Track handles POST /api/analytics/event. The payload is an arbitrary
// JSON object; its fields pass through unvalidated.
func (h *AnalyticsHandler) Track(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Error("analytics tracking error", "error", err)
		writeJSON(w, http.StatusOK, trackResponse{Success: false, Message: "Failed to track event"})
		return
	}

	if _, err := h.analyticsService.Track(r.Context(), payload); err != nil {
		slog.Error("analytics tracking error", "error", err)
		writeJSON(w, http.StatusOK, trackResponse{Success: false, Message: "Failed to track event"})
		return
	}

	writeJSON(w, http.StatusOK, trackResponse{Success: true, Message: "Event tracked"})
}
