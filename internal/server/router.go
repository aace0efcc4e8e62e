package server

import (
	"log/slog"
	"net/http"

	"github.com/akarpov/marknote/internal/config"
	"github.com/akarpov/marknote/internal/server/handlers"
	"github.com/akarpov/marknote/internal/server/middleware"
	"github.com/akarpov/marknote/internal/server/storage"
)

// Store is the full storage surface the router needs
type Store interface {
	storage.UserStorage
	storage.NoteStorage
	handlers.Pinger
}

// NewRouter wires all handlers and middleware into a single handler.
// Auth endpoints are rate limited; every /notes route goes through the
// bearer-token validator.
func NewRouter(logger *slog.Logger, cfg *config.Config, store Store, version string) http.Handler {
	jwtConfig := handlers.JWTConfig{
		Secret:   cfg.JWTSecret,
		TokenTTL: cfg.TokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig)
	notesHandler := handlers.NewNotesHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store, version)

	authLimit := middleware.RateLimitMiddleware(cfg.AuthRateLimit, cfg.AuthRateWindow, logger)
	requireAuth := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	mux.Handle("POST /api/v1/auth/register", authLimit(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/v1/auth/login", authLimit(http.HandlerFunc(authHandler.Login)))

	mux.Handle("GET /api/v1/notes", requireAuth(http.HandlerFunc(notesHandler.List)))
	mux.Handle("POST /api/v1/notes", requireAuth(http.HandlerFunc(notesHandler.Create)))
	mux.Handle("GET /api/v1/notes/{id}", requireAuth(http.HandlerFunc(notesHandler.Get)))
	mux.Handle("PUT /api/v1/notes/{id}", requireAuth(http.HandlerFunc(notesHandler.Update)))
	mux.Handle("DELETE /api/v1/notes/{id}", requireAuth(http.HandlerFunc(notesHandler.Delete)))

	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}
