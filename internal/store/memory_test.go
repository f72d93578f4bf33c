package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/twiddle/internal/dictionary"
	"github.com/robalobadob/twiddle/internal/game"
)

func newSession(t *testing.T, id string) *game.Session {
	t.Helper()
	dict, err := dictionary.FromWords([]string{"CRANE", "TRAIN"})
	require.NoError(t, err)
	g, err := game.New(dict, game.WithSolution("CRANE"))
	require.NoError(t, err)
	return game.NewSession(id, "random", g)
}

func TestMemoryStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := newSession(t, "g1")

	require.NoError(t, st.Save(ctx, s))

	got, err := st.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, st.Len())

	_, err = st.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.Save(ctx, newSession(t, "old")))
	require.NoError(t, st.Save(ctx, newSession(t, "new")))

	// Given: a cutoff in the past, nothing is idle
	assert.Equal(t, 0, st.Sweep(ctx, time.Now().Add(-time.Hour)))
	assert.Equal(t, 2, st.Len())

	// When: the cutoff is in the future, everything is idle
	n := st.Sweep(ctx, time.Now().Add(time.Hour))

	// Then: all sessions are dropped
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, st.Len())
}
