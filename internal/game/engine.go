// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Choose the solution once (random from the dictionary, or forced).
//   - Route each key to the active attempt: append, remove, or validate.
//   - Track turn progression and termination: playing → won/lost.
//
// Notes:
//   - Inputs never return errors; rejections are GameError/InvalidAttempt
//     state changes.
//   - A Game is not safe for concurrent use. Wrap it in a Session when it
//     is shared between goroutines.
package game

import (
	"errors"
	"fmt"

	"github.com/robalobadob/twiddle/internal/dictionary"
)

// DefaultMaxAttempts is the number of rows when none is configured.
const DefaultMaxAttempts = 6

var ErrInvalidOptions = errors.New("invalid game options")

// Game holds the state of one game session.
type Game struct {
	dict        Dictionary
	solution    string
	attempts    []*Attempt
	active      int
	maxAttempts int
	finished    bool
	won         bool
}

type config struct {
	maxAttempts int
	solution    string
}

// Option configures New.
type Option func(*config)

// WithMaxAttempts sets the number of rows.
func WithMaxAttempts(n int) Option {
	return func(c *config) { c.maxAttempts = n }
}

// WithSolution forces the solution instead of picking one at random.
// The word must have the dictionary's word length.
func WithSolution(word string) Option {
	return func(c *config) { c.solution = word }
}

// New starts a game whose solution comes from dict.
func New(dict Dictionary, opts ...Option) (*Game, error) {
	cfg := config{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxAttempts < 1 {
		return nil, fmt.Errorf("%w: max attempts %d", ErrInvalidOptions, cfg.maxAttempts)
	}
	wordLength := dict.WordLength()

	solution := dictionary.Normalize(cfg.solution)
	if solution == "" {
		w, err := dict.PickRandomEntry()
		if err != nil {
			return nil, fmt.Errorf("pick solution: %w", err)
		}
		solution = dictionary.Normalize(w)
	} else if n := len([]rune(solution)); n != wordLength {
		return nil, fmt.Errorf("%w: solution %q has %d letters, dictionary words have %d",
			ErrInvalidOptions, solution, n, wordLength)
	}

	g := &Game{
		dict:        dict,
		solution:    solution,
		attempts:    make([]*Attempt, cfg.maxAttempts),
		maxAttempts: cfg.maxAttempts,
	}
	for i := range g.attempts {
		g.attempts[i] = NewAttempt(i, wordLength)
	}
	return g, nil
}

// EnterChar applies one key and reports what happened.
//
// The fullness of the active row is checked before the key is classified,
// so a full row only accepts Enter and Backspace.
func (g *Game) EnterChar(k Key) StateChange {
	if !k.IsValid() {
		panic(ErrInvalidKey)
	}
	if g.finished {
		return GameError{Message: MsgAlreadyFinished}
	}
	a := g.activeAttempt()

	if a.IsFull() {
		switch {
		case k.IsEnter():
			return g.validateActiveAttempt()
		case k.IsBackspace():
			mustNot(a.RemoveLastChar())
			return RemovedChar{AttemptIndex: a.Index()}
		default:
			return GameError{Message: MsgRowFull}
		}
	}

	switch {
	case k.IsEnter():
		return GameError{Message: MsgNotEnough}
	case k.IsBackspace():
		if a.IsEmpty() {
			return GameError{Message: MsgRowEmpty}
		}
		mustNot(a.RemoveLastChar())
		return RemovedChar{AttemptIndex: a.Index()}
	default:
		a.AddChar(k.Char())
		return AddedChar{AttemptIndex: a.Index(), Char: k.Char()}
	}
}

// validateActiveAttempt checks the full active row against the dictionary,
// scores it, and moves on to the next row unless the game is over.
func (g *Game) validateActiveAttempt() StateChange {
	a := g.activeAttempt()
	if !g.dict.Contains(a.Word()) {
		return InvalidAttempt{}
	}

	mustNot(a.Validate(g.solution))

	g.won = a.IsCorrect()
	g.finished = g.won || g.isLastAttempt()
	if !g.finished {
		g.active++
	}

	return AttemptValidated{
		AttemptIndex: a.Index(),
		CharStates:   a.CharStates(),
		Word:         a.Word(),
		IsFinished:   g.finished,
		IsWin:        g.won,
		Solution:     g.solution,
	}
}

func (g *Game) activeAttempt() *Attempt { return g.attempts[g.active] }
func (g *Game) isLastAttempt() bool     { return g.active == g.maxAttempts-1 }

func (g *Game) Solution() string        { return g.solution }
func (g *Game) IsFinished() bool        { return g.finished }
func (g *Game) IsWin() bool             { return g.won }
func (g *Game) ActiveAttemptIndex() int { return g.active }
func (g *Game) MaxAttempts() int        { return g.maxAttempts }
func (g *Game) WordLength() int         { return g.dict.WordLength() }

// mustNot panics on errors the engine has already ruled out. Reaching it
// means the engine's own preconditions are broken.
func mustNot(err error) {
	if err != nil {
		panic(fmt.Errorf("game: broken invariant: %w", err))
	}
}
