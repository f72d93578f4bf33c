package game

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_EnterKeys(t *testing.T) {
	s := NewSession("g1", "random", newTestGame(t, "CRANE", 2))

	changes := s.EnterKeys(Letter('C'), Backspace, Enter)

	assert.Equal(t, []StateChange{
		AddedChar{AttemptIndex: 0, Char: 'C'},
		RemovedChar{AttemptIndex: 0},
		GameError{Message: MsgNotEnough},
	}, changes)
}

func TestSession_ViewHidesSolutionUntilFinished(t *testing.T) {
	s := NewSession("g1", "random", newTestGame(t, "CRANE", 1))

	_, solution := s.View()
	assert.Empty(t, solution)

	s.EnterKeys(Letter('T'), Letter('R'), Letter('A'), Letter('I'), Letter('N'), Enter)

	snap, solution := s.View()
	assert.True(t, snap.IsFinished)
	assert.Equal(t, "CRANE", solution)
}

func TestSession_IdleSince(t *testing.T) {
	s := NewSession("g1", "random", newTestGame(t, "CRANE", 2))
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	s.EnterKeys(Letter('C'))

	assert.True(t, s.IdleSince(clock.Add(time.Second)))
	assert.False(t, s.IdleSince(clock.Add(-time.Second)))
}

func TestSession_ConcurrentInputs(t *testing.T) {
	s := NewSession("g1", "random", newTestGame(t, "CRANE", 2))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.EnterKeys(Letter('A'))
		}()
	}
	wg.Wait()

	snap, _ := s.View()
	require.Equal(t, "AAAAA", snap.Attempts[0].Word)
}
