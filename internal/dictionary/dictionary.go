// internal/dictionary/dictionary.go
//
// Fixed-length word set used by the game engine.
// Responsibilities:
//   - Normalize entries (trim + upper-case) and enforce a single word length.
//   - Answer membership queries with the same normalization.
//   - Pick a random entry, with an injectable random source for tests.
//
// Notes:
//   - The word length is taken from the first entry and never changes.
//   - A Dictionary is read-only once loaded; PickRandomEntry is safe for
//     concurrent use, Add is not.

package dictionary

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

var (
	ErrEmpty          = errors.New("dictionary is empty")
	ErrEmptyWord      = errors.New("empty word")
	ErrLengthMismatch = errors.New("word length mismatch")
)

// Dictionary holds a set of normalized words of equal length.
type Dictionary struct {
	wordLength int
	entries    map[string]struct{}

	mu   sync.Mutex // guards intn
	intn func(n int) int
}

// Option configures a Dictionary.
type Option func(*Dictionary)

// WithSource makes PickRandomEntry draw from src (deterministic in tests).
func WithSource(src rand.Source) Option {
	return WithRand(rand.New(src))
}

// WithRand makes PickRandomEntry draw from r.
func WithRand(r *rand.Rand) Option {
	return func(d *Dictionary) { d.intn = r.IntN }
}

// New returns an empty dictionary.
func New(opts ...Option) *Dictionary {
	d := &Dictionary{
		entries: make(map[string]struct{}),
		intn:    rand.IntN,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FromWords builds a dictionary from already-split words.
func FromWords(words []string, opts ...Option) (*Dictionary, error) {
	d := New(opts...)
	for _, w := range words {
		if err := d.Add(w); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Normalize returns the canonical form used for entries and lookups.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Add inserts word. The first entry fixes the dictionary's word length;
// later entries of another length fail with ErrLengthMismatch.
// Adding a word twice is a no-op.
func (d *Dictionary) Add(word string) error {
	w := Normalize(word)
	n := utf8.RuneCountInString(w)
	if n == 0 {
		return ErrEmptyWord
	}
	if d.wordLength == 0 {
		d.wordLength = n
	} else if n != d.wordLength {
		return fmt.Errorf("%w: %q has %d letters, expected %d", ErrLengthMismatch, w, n, d.wordLength)
	}
	d.entries[w] = struct{}{}
	return nil
}

// Contains reports whether word (after normalization) is an entry.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.entries[Normalize(word)]
	return ok
}

// PickRandomEntry returns an entry chosen uniformly at random.
func (d *Dictionary) PickRandomEntry() (string, error) {
	if len(d.entries) == 0 {
		return "", ErrEmpty
	}
	// Map iteration order is not uniform, so index into the sorted entries.
	entries := d.Entries()

	d.mu.Lock()
	i := d.intn(len(entries))
	d.mu.Unlock()

	return entries[i], nil
}

// WordLength is the length shared by every entry, or 0 while empty.
func (d *Dictionary) WordLength() int { return d.wordLength }

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// Entries returns a sorted copy of all entries.
func (d *Dictionary) Entries() []string {
	out := make([]string, 0, len(d.entries))
	for w := range d.entries {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
