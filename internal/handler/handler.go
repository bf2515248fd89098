package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

const (
	apiName    = "Personal Website API"
	apiVersion = "1.0.0"
)

// Handler serves the static informational endpoints and provides shared
// middleware for the rest of the API.
type Handler struct {
	frontendURL string
}

// New creates the base Handler. frontendURL is the allowed CORS origin
// ("*" permits any origin).
func New(frontendURL string) *Handler {
	return &Handler{frontendURL: frontendURL}
}

// writeJSON encodes v as the JSON response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail writes the error wire contract: a JSON body with a single
// "detail" field.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// CORS applies the cross-origin policy to every request and short-circuits
// preflight.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// APIRoot handles GET /api/.
func (h *Handler) APIRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": apiName,
		"version": apiVersion,
		"status":  "active",
	})
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// Health handles GET /api/health. The database field is a literal constant,
// not a connectivity probe; clients depend on this exact shape.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Database:  "connected",
	})
}

// BlogPosts handles GET /api/blog/posts. Blog content is rendered
// client-side today; this placeholder stays until posts move server-side.
func (h *Handler) BlogPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":         "Blog posts are currently handled client-side",
		"migration_ready": true,
	})
}

// Root handles GET / (outside the /api prefix).
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        apiName,
		"version":     apiVersion,
		"description": "Backend API for Saurabh Deshmukh's personal website",
		"endpoints": map[string]string{
			"api":     "/api/",
			"health":  "/api/health",
			"contact": "/api/contact",
		},
	})
}
