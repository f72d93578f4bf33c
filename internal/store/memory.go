// internal/store/memory.go
//
// Live game sessions, keyed by session ID. Nothing is written to disk: a
// restart ends every game in progress. Sweep evicts sessions nobody has
// touched for a while.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/twiddle/internal/game"
)

var ErrNotFound = errors.New("session not found")

// Store holds the sessions the HTTP API is serving.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Session, error)

	// Sweep drops sessions idle since before cutoff and returns how many.
	Sweep(ctx context.Context, cutoff time.Time) int

	// Len returns the number of stored sessions.
	Len() int
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
}

// NewMemoryStore returns an empty Store safe for concurrent use.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*game.Session)}
}

func (m *memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.IdleSince(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
