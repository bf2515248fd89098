package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sdeshmukh/website-backend/internal/service"
)

// NewsletterHandler handles newsletter signups.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

// NewNewsletterHandler creates a NewsletterHandler with the given service.
func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// subscribeResponse is the success body for POST /api/newsletter/subscribe.
type subscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Subscribe handles POST /api/newsletter/subscribe. An absent or empty
// email fails with 400 before any store access.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "Email is required")
		return
	}

	email, _ := body["email"].(string)
	if email == "" {
		writeDetail(w, http.StatusBadRequest, "Email is required")
		return
	}

	if _, err := h.newsletterService.Subscribe(r.Context(), email); err != nil {
		slog.Error("newsletter subscription error", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to subscribe")
		return
	}

	writeJSON(w, http.StatusOK, subscribeResponse{
		Success: true,
		Message: "Successfully subscribed to newsletter!",
	})
}
