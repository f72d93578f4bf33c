package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var ErrInvalidKey = errors.New("invalid key")

type keyKind uint8

const (
	keyNone keyKind = iota
	keyLetter
	keyEnter
	keyBackspace
)

// Key is one discrete input: a letter, Enter, or Backspace.
// The zero Key is not a valid input.
type Key struct {
	kind keyKind
	char rune
}

var (
	Enter     = Key{kind: keyEnter}
	Backspace = Key{kind: keyBackspace}
)

// Glyphs used by on-screen keyboards for the control keys.
const (
	EnterGlyph     = "↵"
	BackspaceGlyph = "←"
)

// Letter returns the key for r, upper-cased.
func Letter(r rune) Key {
	return Key{kind: keyLetter, char: unicode.ToUpper(r)}
}

// ParseKey accepts a single ASCII letter, "enter", "backspace" or the
// control glyphs.
func ParseKey(s string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enter", "return", EnterGlyph:
		return Enter, nil
	case "backspace", BackspaceGlyph:
		return Backspace, nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return Letter(r), nil
		}
	}
	return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
}

func (k Key) IsEnter() bool     { return k.kind == keyEnter }
func (k Key) IsBackspace() bool { return k.kind == keyBackspace }
func (k Key) IsLetter() bool    { return k.kind == keyLetter }
func (k Key) IsValid() bool     { return k.kind != keyNone }

// Char is the letter of a letter key, 0 otherwise.
func (k Key) Char() rune {
	if k.kind != keyLetter {
		return 0
	}
	return k.char
}

func (k Key) String() string {
	switch k.kind {
	case keyEnter:
		return "enter"
	case keyBackspace:
		return "backspace"
	case keyNone:
		return ""
	}
	return string(k.char)
}
