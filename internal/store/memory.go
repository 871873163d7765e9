package store

import (
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
	"time"

	"avalon/internal/config"
	"avalon/internal/game"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrStoreFull       = errors.New("session limit reached")
)

// session pairs a game snapshot with its bookkeeping
type session struct {
	game      *game.Game
	createdAt time.Time
}

// MemoryStore holds every running game in memory, one authoritative
// snapshot per session code. Snapshots are replaced wholesale on update,
// never mutated through the store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	cfg      *config.ServerConfig
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore(cfg *config.ServerConfig) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*session),
		cfg:      cfg,
	}
}

// CreateSession registers a new game under a fresh session code
func (s *MemoryStore) CreateSession(g *game.Game) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= s.cfg.Game.MaxSessions {
		return "", ErrStoreFull
	}

	var code string
	for i := 0; i < 10; i++ {
		code = generateSessionCode(s.cfg.Game.SessionCodeLength)
		if _, exists := s.sessions[code]; !exists {
			break
		}
	}

	s.sessions[code] = &session{game: g, createdAt: time.Now()}
	return code, nil
}

// GetGame retrieves the current snapshot for a session code
func (s *MemoryStore) GetGame(code string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[code]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, code)
	}
	return sess.game, nil
}

// UpdateGame swaps in a new snapshot for a session code
func (s *MemoryStore) UpdateGame(code string, g *game.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[code]
	if !exists {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, code)
	}
	sess.game = g
	return nil
}

// DeleteSession removes a session
func (s *MemoryStore) DeleteSession(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, code)
}

// SessionCount returns the number of live sessions
func (s *MemoryStore) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// CleanupExpired drops sessions older than the configured timeout and
// returns how many were removed.
func (s *MemoryStore) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.cfg.Game.SessionTimeout)
	removed := 0
	for code, sess := range s.sessions {
		if sess.createdAt.Before(cutoff) {
			delete(s.sessions, code)
			removed++
		}
	}
	return removed
}

// generateSessionCode generates an alphanumeric code of the given length
func generateSessionCode(length int) string {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	rand.Read(b)

	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}

	return string(b)
}
