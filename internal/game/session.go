package game

import (
	"sync"
	"time"
)

// Session wraps a Game shared between goroutines. Every call holds one
// mutex, so inputs are applied one at a time in arrival order.
type Session struct {
	ID        string
	Mode      string
	CreatedAt time.Time

	mu           sync.Mutex
	game         *Game
	lastActivity time.Time
	now          func() time.Time
}

// NewSession wraps g.
func NewSession(id, mode string, g *Game) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:           id,
		Mode:         mode,
		CreatedAt:    now,
		game:         g,
		lastActivity: now,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// EnterKeys applies keys in order and returns one state change per key.
func (s *Session) EnterKeys(keys ...Key) []StateChange {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]StateChange, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.game.EnterChar(k))
	}
	s.lastActivity = s.now()
	return out
}

// View returns a board snapshot and, once the game is over, the solution.
func (s *Session) View() (Snapshot, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.game.Snapshot()
	if snap.IsFinished {
		return snap, s.game.Solution()
	}
	return snap, ""
}

// IdleSince reports whether the session saw no input since t.
func (s *Session) IdleSince(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity.Before(t)
}
