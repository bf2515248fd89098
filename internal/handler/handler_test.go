package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// GET /api/health
// ---------------------------------------------------------------------------

func TestHealth_Shape(t *testing.T) {
	h := New("*")
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var resp healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("expected status=healthy, got %q", resp.Status)
	}
	if resp.Database != "connected" {
		t.Errorf("expected database=connected, got %q", resp.Database)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected a non-zero timestamp")
	}
}

// TestHealth_TimestampISO8601 verifies the raw JSON timestamp parses as RFC 3339.
func TestHealth_TimestampISO8601(t *testing.T) {
	h := New("*")
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var raw map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	ts, ok := raw["timestamp"].(string)
	if !ok {
		t.Fatalf("expected string timestamp, got %T", raw["timestamp"])
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("timestamp %q is not RFC 3339: %v", ts, err)
	}
}

// ---------------------------------------------------------------------------
// GET /api/
// ---------------------------------------------------------------------------

func TestAPIRoot(t *testing.T) {
	h := New("*")
	rec := httptest.NewRecorder()
	h.APIRoot(rec, httptest.NewRequest(http.MethodGet, "/api/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["status"] != "active" {
		t.Errorf("expected status=active, got %v", resp["status"])
	}
	if resp["version"] != apiVersion {
		t.Errorf("expected version=%s, got %v", apiVersion, resp["version"])
	}
	if resp["message"] == "" {
		t.Error("expected a message field")
	}
}

// ---------------------------------------------------------------------------
// GET /api/blog/posts
// ---------------------------------------------------------------------------

func TestBlogPosts_Placeholder(t *testing.T) {
	h := New("*")
	rec := httptest.NewRecorder()
	h.BlogPosts(rec, httptest.NewRequest(http.MethodGet, "/api/blog/posts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["migration_ready"] != true {
		t.Errorf("expected migration_ready=true, got %v", resp["migration_ready"])
	}
}

// ---------------------------------------------------------------------------
// GET /
// ---------------------------------------------------------------------------

func TestRoot_Description(t *testing.T) {
	h := New("*")
	rec := httptest.NewRecorder()
	h.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Name      string            `json:"name"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Name != apiName {
		t.Errorf("expected name=%q, got %q", apiName, resp.Name)
	}
	if resp.Endpoints["health"] != "/api/health" {
		t.Errorf("expected health endpoint listed, got %v", resp.Endpoints)
	}
}

// ---------------------------------------------------------------------------
// CORS middleware
// ---------------------------------------------------------------------------

func TestCORS_Preflight(t *testing.T) {
	h := New("https://example.com")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run for OPTIONS")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.CORS(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("expected allow-origin=https://example.com, got %q", got)
	}
}

func TestCORS_PassesThrough(t *testing.T) {
	h := New("*")
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.CORS(next).ServeHTTP(rec, req)

	if !called {
		t.Error("expected next handler to be called")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected allow-origin=*, got %q", got)
	}
}
