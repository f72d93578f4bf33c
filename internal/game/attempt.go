package game

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyAttempt     = errors.New("attempt is empty")
	ErrNotFull          = errors.New("attempt is not full")
	ErrAlreadyValidated = errors.New("attempt already validated")
)

// Attempt is one guess row. It accumulates letters until full and is
// validated against the solution exactly once.
type Attempt struct {
	index      int
	wordLength int
	word       []rune
	charStates []CharState
	validated  bool
}

// NewAttempt returns an empty row that holds wordLength letters.
func NewAttempt(index, wordLength int) *Attempt {
	return &Attempt{
		index:      index,
		wordLength: wordLength,
		word:       make([]rune, 0, wordLength),
	}
}

// AddChar appends r. It is silently ignored once the row is full.
func (a *Attempt) AddChar(r rune) {
	if a.IsFull() {
		return
	}
	a.word = append(a.word, r)
}

// RemoveLastChar drops the last letter.
func (a *Attempt) RemoveLastChar() error {
	if a.validated {
		return ErrAlreadyValidated
	}
	if a.IsEmpty() {
		return ErrEmptyAttempt
	}
	a.word = a.word[:len(a.word)-1]
	return nil
}

// Validate scores the row against solution and freezes it.
func (a *Attempt) Validate(solution string) error {
	if a.validated {
		return ErrAlreadyValidated
	}
	if !a.IsFull() {
		return fmt.Errorf("%w: %d of %d letters", ErrNotFull, len(a.word), a.wordLength)
	}
	states, err := Compare(string(a.word), solution)
	if err != nil {
		return err
	}
	a.charStates = states
	a.validated = true
	return nil
}

func (a *Attempt) Index() int        { return a.index }
func (a *Attempt) Word() string      { return string(a.word) }
func (a *Attempt) Len() int          { return len(a.word) }
func (a *Attempt) IsFull() bool      { return len(a.word) >= a.wordLength }
func (a *Attempt) IsEmpty() bool     { return len(a.word) == 0 }
func (a *Attempt) IsValidated() bool { return a.validated }

// IsCorrect reports whether every letter was scored Correct.
// It is false until the row is validated.
func (a *Attempt) IsCorrect() bool {
	return a.validated && len(a.charStates) == a.wordLength && allCorrect(a.charStates)
}

// CharStates returns a copy of the scores, nil before validation.
func (a *Attempt) CharStates() []CharState {
	if !a.validated {
		return nil
	}
	return append([]CharState(nil), a.charStates...)
}
