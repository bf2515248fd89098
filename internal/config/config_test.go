package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.FrontendURL != "*" {
		t.Errorf("expected default frontend URL *, got %q", cfg.FrontendURL)
	}
	if cfg.DatabaseURL == "" {
		t.Error("expected a default database URL")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/site")
	t.Setenv("PORT", "9090")
	t.Setenv("FRONTEND_URL", "https://example.com")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DatabaseURL != "postgres://u:p@db:5432/site" {
		t.Errorf("unexpected database URL %q", cfg.DatabaseURL)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("expected addr :9090, got %q", cfg.Addr())
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("expected log level DEBUG, got %q", cfg.LogLevel)
	}
}
