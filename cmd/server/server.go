package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"avalon/internal/config"
	"avalon/internal/handlers"
	"avalon/internal/middleware"
	"avalon/internal/store"
)

// SetupServer wires the store, handlers and middleware into a router
func SetupServer(cfg *config.ServerConfig) (http.Handler, *store.MemoryStore) {
	gameStore := store.NewMemoryStore(cfg)
	h := handlers.New(gameStore, cfg)

	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Use(middleware.RequestSizeLimiter(cfg.Server.MaxRequestSize))
	r.Use(middleware.SecurityHeaders())

	rateLimiter := middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateLimitBurst)
	r.Use(rateLimiter.Middleware())

	// Sessions and game actions
	r.Post("/game/new", h.CreateGame)
	r.Post("/game/{code}/join", h.JoinGame)
	r.Get("/game/{code}", h.GetGame)
	r.Post("/game/{code}/team", h.SelectTeam)
	r.Post("/game/{code}/vote", h.SubmitVote)
	r.Post("/game/{code}/mission", h.SubmitMissionResult)
	r.Post("/game/{code}/assassinate", h.Assassinate)
	r.Get("/game/{code}/result", h.GetResult)

	// SSE endpoint with validation middleware
	r.Get("/sse/game/{code}", handlers.ValidateSSERequest(h.StreamGame))

	// Health check endpoints
	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if gameStore == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Store not ready"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Periodic housekeeping for expired sessions and idle limiter entries
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			gameStore.CleanupExpired()
			rateLimiter.Cleanup(time.Hour)
		}
	}()

	return r, gameStore
}
