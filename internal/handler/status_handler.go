package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sdeshmukh/website-backend/internal/model"
	"github.com/sdeshmukh/website-backend/internal/service"
)

// StatusHandler handles the legacy status check endpoints.
type StatusHandler struct {
	statusService service.StatusCheckService
}

// NewStatusHandler creates a StatusHandler with the given service.
func NewStatusHandler(statusService service.StatusCheckService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

// createStatusRequest is the expected JSON body for POST /api/status.
type createStatusRequest struct {
	ClientName string `json:"client_name"`
}

// Create handles POST /api/status. client_name is required; a missing or
// empty value fails with 422 before any store access.
func (h *StatusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	if req.ClientName == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "client_name is required")
		return
	}

	sc, err := h.statusService.Create(r.Context(), req.ClientName)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "failed to create status check")
		return
	}

	writeJSON(w, http.StatusOK, sc)
}

// List handles GET /api/status.
func (h *StatusHandler) List(w http.ResponseWriter, r *http.Request) {
	checks, err := h.statusService.List(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "failed to list status checks")
		return
	}

	// Return [] not null for empty lists
	if checks == nil {
		checks = []*model.StatusCheck{}
	}
	writeJSON(w, http.StatusOK, checks)
}
