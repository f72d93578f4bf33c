package tui

import (
	"github.com/robalobadob/twiddle/internal/game"
)

// keyboardRows is the on-screen layout. The glyphs stand for Enter and
// Backspace.
var keyboardRows = []string{
	"QWERTYUIOP",
	"ASDFGHJKL",
	game.EnterGlyph + "ZXCVBNM" + game.BackspaceGlyph,
}

// Keyboard remembers the best state seen for each letter across all
// scored rows. Correct beats Present beats Miss; a letter never goes back.
type Keyboard struct {
	best map[rune]game.CharState
}

func NewKeyboard() *Keyboard {
	return &Keyboard{best: make(map[rune]game.CharState)}
}

// Record folds one scored row into the keyboard.
func (k *Keyboard) Record(word string, states []game.CharState) {
	i := 0
	for _, r := range word {
		if i >= len(states) {
			return
		}
		if prev, seen := k.best[r]; !seen || states[i] > prev {
			k.best[r] = states[i]
		}
		i++
	}
}

// State reports the best state of r, and whether r was ever played.
func (k *Keyboard) State(r rune) (game.CharState, bool) {
	s, ok := k.best[r]
	return s, ok
}
