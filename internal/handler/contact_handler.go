package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sdeshmukh/website-backend/internal/model"
	"github.com/sdeshmukh/website-backend/internal/service"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// ContactHandler handles contact form submission and message listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
// All four fields are required.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// submitResponse is the success body for POST /api/contact.
type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	required := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"subject", req.Subject},
		{"message", req.Message},
	}
	for _, f := range required {
		if f.value == "" {
			writeDetail(w, http.StatusUnprocessableEntity, f.name+" is required")
			return
		}
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		slog.Error("contact form error", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to process contact form")
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Success: true,
		Message: "Thank you for your message! I'll get back to you soon.",
		ID:      msg.ID,
	})
}

// ListMessages handles GET /api/contact/messages.
// Supports query params: limit (default 50, capped at 500), skip (default 0).
func (h *ContactHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	opts := model.ContactListOptions{
		Limit: defaultListLimit,
		Skip:  0,
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= maxListLimit {
			opts.Limit = n
		}
	}
	if s := r.URL.Query().Get("skip"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			opts.Skip = n
		}
	}

	messages, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "failed to list messages")
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}
