package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"avalon/internal/config"
	"avalon/internal/game"
	"avalon/internal/store"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	store    *store.MemoryStore
	config   *config.ServerConfig
	eventBus *EventBus
}

// New creates a new handler
func New(s *store.MemoryStore, cfg *config.ServerConfig) *Handler {
	return &Handler{
		store:    s,
		config:   cfg,
		eventBus: NewEventBus(),
	}
}

// Store returns the handler's store (for testing)
func (h *Handler) Store() *store.MemoryStore {
	return h.store
}

// Event is published whenever a game snapshot changes
type Event struct {
	Type string
	Code string
}

// EventBus manages per-session event subscriptions
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[string][]chan Event
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]chan Event),
	}
}

// Subscribe subscribes to events for a session
func (eb *EventBus) Subscribe(code string) chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan Event, 10)
	eb.subscribers[code] = append(eb.subscribers[code], ch)
	return ch
}

// Unsubscribe removes a subscription
func (eb *EventBus) Unsubscribe(code string, ch chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[code]
	for i, sub := range subs {
		if sub == ch {
			eb.subscribers[code] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}
}

// Publish publishes an event to all subscribers of a session
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for _, ch := range eb.subscribers[event.Code] {
		select {
		case ch <- event:
		default:
			// slow subscriber, drop rather than block the mutation
		}
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps engine and store errors onto HTTP statuses. The engine
// message is passed through untouched so the UI can show it as a prompt.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, store.ErrSessionNotFound),
		errors.Is(err, game.ErrUnknownPlayer),
		errors.Is(err, game.ErrUnknownTarget):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrGoodCannotFail),
		errors.Is(err, game.ErrNotOnTeam),
		errors.Is(err, game.ErrNotAssassin):
		status = http.StatusForbidden
	case errors.Is(err, game.ErrDuplicateVote),
		errors.Is(err, game.ErrDuplicateAction),
		errors.Is(err, game.ErrSlotTaken),
		errors.Is(err, game.ErrWrongPhase),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, game.ErrAssassinationResolved),
		errors.Is(err, store.ErrStoreFull):
		status = http.StatusConflict
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}

// playerCookieName names the per-session identity cookie
func playerCookieName(code string) string {
	return "player_" + code
}

// requirePlayer resolves the caller's identity from their session cookie
func (h *Handler) requirePlayer(r *http.Request, g *game.Game, code string) (*game.Player, error) {
	cookie, err := r.Cookie(playerCookieName(code))
	if err != nil {
		return nil, game.ErrUnknownPlayer
	}
	player := g.PlayerByID(cookie.Value)
	if player == nil {
		return nil, game.ErrUnknownPlayer
	}
	return player, nil
}
