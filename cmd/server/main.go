package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sdeshmukh/website-backend/internal/config"
	"github.com/sdeshmukh/website-backend/internal/handler"
	"github.com/sdeshmukh/website-backend/internal/logging"
	"github.com/sdeshmukh/website-backend/internal/notify"
	"github.com/sdeshmukh/website-backend/internal/repository"
	"github.com/sdeshmukh/website-backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer func() {
		pool.Close()
		slog.Info("database connection closed")
	}()

	statusRepo := repository.NewPgStatusCheckRepository(pool)
	contactRepo := repository.NewPgContactRepository(pool)
	analyticsRepo := repository.NewPgAnalyticsRepository(pool)
	newsletterRepo := repository.NewPgNewsletterRepository(pool)

	statusService := service.NewStatusCheckService(statusRepo)
	contactService := service.NewContactService(contactRepo, notify.Noop{})
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	newsletterService := service.NewNewsletterService(newsletterRepo)

	h := handler.New(cfg.FrontendURL)
	statusHandler := handler.NewStatusHandler(statusService)
	contactHandler := handler.NewContactHandler(contactService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/{$}", h.APIRoot)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/status", statusHandler.Create)
	mux.HandleFunc("GET /api/status", statusHandler.List)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/contact/messages", contactHandler.ListMessages)
	mux.HandleFunc("GET /api/blog/posts", h.BlogPosts)
	mux.HandleFunc("POST /api/analytics/event", analyticsHandler.Track)
	mux.HandleFunc("POST /api/newsletter/subscribe", newsletterHandler.Subscribe)
	mux.HandleFunc("GET /{$}", h.Root)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler.RequestLogger(h.CORS(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("api started", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
