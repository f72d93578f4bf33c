// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - CharState: per-letter result of a validated guess.
//   - Dictionary: the word source the engine depends on.

package game

import "fmt"

// CharState represents the evaluation result for a single letter in a guess.
//   - Correct: same letter, same position as the solution.
//   - Present: letter occurs elsewhere among the unmatched solution letters.
//   - Miss:    letter is not among the unmatched solution letters.
type CharState int

const (
	Miss CharState = iota
	Present
	Correct
)

var charStateNames = [...]string{
	Miss:    "miss",
	Present: "present",
	Correct: "correct",
}

func (s CharState) String() string {
	if s < 0 || int(s) >= len(charStateNames) {
		return fmt.Sprintf("CharState(%d)", int(s))
	}
	return charStateNames[s]
}

// MarshalText encodes the state as its lowercase name.
func (s CharState) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(charStateNames) {
		return nil, fmt.Errorf("invalid char state %d", int(s))
	}
	return []byte(charStateNames[s]), nil
}

// UnmarshalText decodes a lowercase state name.
func (s *CharState) UnmarshalText(b []byte) error {
	for i, name := range charStateNames {
		if string(b) == name {
			*s = CharState(i)
			return nil
		}
	}
	return fmt.Errorf("invalid char state %q", b)
}

// Dictionary is the read-only word source a Game validates guesses against
// and draws its solution from. *dictionary.Dictionary satisfies it.
type Dictionary interface {
	Contains(word string) bool
	PickRandomEntry() (string, error)
	WordLength() int
}
