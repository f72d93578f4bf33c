package game

// Snapshot is a copy of the board, safe to hand to presentation code.
type Snapshot struct {
	WordLength         int
	MaxAttempts        int
	ActiveAttemptIndex int
	IsFinished         bool
	IsWin              bool
	Attempts           []AttemptSnapshot
}

// AttemptSnapshot is a copy of one row.
type AttemptSnapshot struct {
	Index       int
	Word        string
	CharStates  []CharState
	IsValidated bool
}

// Snapshot copies the current board. The solution is not
// part of it; callers reveal it through Solution once the game is over.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		WordLength:         g.WordLength(),
		MaxAttempts:        g.maxAttempts,
		ActiveAttemptIndex: g.active,
		IsFinished:         g.finished,
		IsWin:              g.won,
		Attempts:           make([]AttemptSnapshot, len(g.attempts)),
	}
	for i, a := range g.attempts {
		s.Attempts[i] = AttemptSnapshot{
			Index:       a.Index(),
			Word:        a.Word(),
			CharStates:  a.CharStates(),
			IsValidated: a.IsValidated(),
		}
	}
	return s
}
