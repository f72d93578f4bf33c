package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillAttempt(a *Attempt, word string) {
	for _, r := range word {
		a.AddChar(r)
	}
}

func TestAttempt_AddChar(t *testing.T) {
	// Given: an empty five-letter row
	a := NewAttempt(0, 5)
	require.True(t, a.IsEmpty())

	// When: more letters are added than fit
	fillAttempt(a, "CRANES")

	// Then: the row stops at five letters
	assert.True(t, a.IsFull())
	assert.Equal(t, "CRANE", a.Word())
}

func TestAttempt_RemoveLastChar(t *testing.T) {
	t.Run("removes the last letter", func(t *testing.T) {
		a := NewAttempt(0, 5)
		fillAttempt(a, "CRA")

		require.NoError(t, a.RemoveLastChar())

		assert.Equal(t, "CR", a.Word())
	})

	t.Run("empty row fails", func(t *testing.T) {
		a := NewAttempt(0, 5)

		require.ErrorIs(t, a.RemoveLastChar(), ErrEmptyAttempt)
	})

	t.Run("validated row fails", func(t *testing.T) {
		a := NewAttempt(0, 5)
		fillAttempt(a, "CRANE")
		require.NoError(t, a.Validate("CRANE"))

		require.ErrorIs(t, a.RemoveLastChar(), ErrAlreadyValidated)
		assert.Equal(t, "CRANE", a.Word())
	})
}

func TestAttempt_Validate(t *testing.T) {
	t.Run("row not full", func(t *testing.T) {
		a := NewAttempt(0, 5)
		fillAttempt(a, "CRA")

		err := a.Validate("CRANE")

		require.ErrorIs(t, err, ErrNotFull)
		assert.False(t, a.IsValidated())
		assert.Nil(t, a.CharStates())
	})

	t.Run("stores the scores", func(t *testing.T) {
		a := NewAttempt(2, 5)
		fillAttempt(a, "TRAIN")

		require.NoError(t, a.Validate("CRANE"))

		assert.True(t, a.IsValidated())
		assert.False(t, a.IsCorrect())
		assert.Equal(t, 2, a.Index())
		assert.Equal(t, []CharState{Miss, Correct, Correct, Miss, Present}, a.CharStates())
	})

	t.Run("correct row", func(t *testing.T) {
		a := NewAttempt(0, 5)
		fillAttempt(a, "crane")

		require.NoError(t, a.Validate("CRANE"))

		assert.True(t, a.IsCorrect())
	})

	t.Run("second validation fails", func(t *testing.T) {
		a := NewAttempt(0, 5)
		fillAttempt(a, "TRAIN")
		require.NoError(t, a.Validate("CRANE"))

		err := a.Validate("TRAIN")

		require.ErrorIs(t, err, ErrAlreadyValidated)
		assert.False(t, a.IsCorrect())
	})

	t.Run("returned scores are a copy", func(t *testing.T) {
		a := NewAttempt(0, 5)
		fillAttempt(a, "CRANE")
		require.NoError(t, a.Validate("CRANE"))

		states := a.CharStates()
		states[0] = Miss

		assert.True(t, a.IsCorrect())
	})
}

func TestAttempt_IsCorrectBeforeValidation(t *testing.T) {
	a := NewAttempt(0, 5)
	fillAttempt(a, "CRANE")

	assert.False(t, a.IsCorrect())
}
