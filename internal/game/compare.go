package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrLengthMismatch = errors.New("guess and solution differ in length")

// Compare scores guess against solution, one CharState per guess letter.
// Both words are upper-cased before comparison.
//
// Pass 1 marks exact matches Correct and collects the remaining solution
// letters. Pass 2 marks each other letter Present while a copy of it is
// left in that pool (consuming one), Miss otherwise. A letter is thus
// never credited more often than it occurs in the solution.
func Compare(guess, solution string) ([]CharState, error) {
	g := []rune(strings.ToUpper(guess))
	s := []rune(strings.ToUpper(solution))
	if len(g) != len(s) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(g), len(s))
	}

	res := make([]CharState, len(g))
	pool := make(map[rune]int, len(s))

	for i := range g {
		if g[i] == s[i] {
			res[i] = Correct
		} else {
			pool[s[i]]++
		}
	}

	for i := range g {
		if res[i] == Correct {
			continue
		}
		if pool[g[i]] > 0 {
			res[i] = Present
			pool[g[i]]--
		} else {
			res[i] = Miss
		}
	}
	return res, nil
}

func allCorrect(states []CharState) bool {
	for _, s := range states {
		if s != Correct {
			return false
		}
	}
	return true
}
