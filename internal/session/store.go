package session

import (
	"context"
	"sync"

	"github.com/sandevgo/wikirag/internal/core"
	"github.com/sandevgo/wikirag/pkg/log"
)

// History is an append-only list of chat turns for one session.
type History struct {
	mu    sync.Mutex
	turns []core.Message
}

func (h *History) Add(msg core.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = append(h.turns, msg)
}

// Turns returns a copy of the recorded turns in insertion order.
func (h *History) Turns() []core.Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]core.Message, len(h.turns))
	copy(out, h.turns)
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.turns)
}

// Store holds per-session histories for the lifetime of the process.
// Nothing is persisted and nothing is evicted.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*History
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*History)}
}

// Get returns the history for a session, creating an empty one on
// first access. Repeated calls with the same id return the same
// *History.
func (s *Store) Get(ctx context.Context, sessionID string) *History {
	s.mu.Lock()
	defer s.mu.Unlock()

	hist, ok := s.sessions[sessionID]
	if !ok {
		hist = &History{}
		s.sessions[sessionID] = hist
	}

	log.FromCtx(ctx).Debug().
		Str("session_id", sessionID).
		Int("sessions", len(s.sessions)).
		Bool("created", !ok).
		Msg("session history accessed")

	return hist
}

// Len reports the number of known sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
