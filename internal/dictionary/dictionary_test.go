package dictionary

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionary_Add(t *testing.T) {
	t.Run("first entry fixes the word length", func(t *testing.T) {
		d := New()
		require.Equal(t, 0, d.WordLength())

		require.NoError(t, d.Add("crane"))

		assert.Equal(t, 5, d.WordLength())
		assert.Equal(t, 1, d.Len())
	})

	t.Run("mismatched length fails", func(t *testing.T) {
		d := New()
		require.NoError(t, d.Add("crane"))

		err := d.Add("cranes")

		require.ErrorIs(t, err, ErrLengthMismatch)
		assert.Equal(t, 5, d.WordLength())
		assert.Equal(t, 1, d.Len())
	})

	t.Run("whitespace is trimmed before the length check", func(t *testing.T) {
		d := New()
		require.NoError(t, d.Add("  crane\r"))
		require.NoError(t, d.Add("\ttrain "))

		assert.Equal(t, []string{"CRANE", "TRAIN"}, d.Entries())
	})

	t.Run("duplicates are a no-op", func(t *testing.T) {
		d := New()
		require.NoError(t, d.Add("crane"))
		require.NoError(t, d.Add("CRANE"))
		require.NoError(t, d.Add(" Crane "))

		assert.Equal(t, 1, d.Len())
	})

	t.Run("empty word fails", func(t *testing.T) {
		d := New()

		require.ErrorIs(t, d.Add("   "), ErrEmptyWord)
		assert.Equal(t, 0, d.WordLength())
	})
}

func TestDictionary_Contains(t *testing.T) {
	d, err := FromWords([]string{"CRANE", "train"})
	require.NoError(t, err)

	assert.True(t, d.Contains("CRANE"))
	assert.True(t, d.Contains("crane"))
	assert.True(t, d.Contains(" Train "))
	assert.False(t, d.Contains("BRAVE"))
	assert.False(t, d.Contains(""))
}

func TestDictionary_PickRandomEntry(t *testing.T) {
	t.Run("empty dictionary fails", func(t *testing.T) {
		_, err := New().PickRandomEntry()

		require.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("same seed picks the same sequence", func(t *testing.T) {
		words := []string{"CRANE", "TRAIN", "BRAVE", "SLATE", "PLUMB"}
		a, err := FromWords(words, WithSource(rand.NewPCG(7, 11)))
		require.NoError(t, err)
		b, err := FromWords(words, WithSource(rand.NewPCG(7, 11)))
		require.NoError(t, err)

		for i := 0; i < 20; i++ {
			wa, err := a.PickRandomEntry()
			require.NoError(t, err)
			wb, err := b.PickRandomEntry()
			require.NoError(t, err)
			require.Equal(t, wa, wb)
		}
	})

	t.Run("every entry is reachable", func(t *testing.T) {
		words := []string{"CRANE", "TRAIN", "BRAVE"}
		d, err := FromWords(words, WithSource(rand.NewPCG(1, 2)))
		require.NoError(t, err)

		seen := map[string]int{}
		for i := 0; i < 300; i++ {
			w, err := d.PickRandomEntry()
			require.NoError(t, err)
			seen[w]++
		}

		require.Len(t, seen, len(words))
		for _, w := range words {
			assert.Greater(t, seen[w], 0, w)
		}
	})
}

func TestFromWords_PropagatesErrors(t *testing.T) {
	_, err := FromWords([]string{"crane", "cat"})

	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, err.Error(), `"CAT"`)
}

func TestLoad(t *testing.T) {
	t.Run("skips comments and blank lines", func(t *testing.T) {
		src := "# five letter words\ncrane\n\ntrain\r\nbrave\n"

		d, err := Load(strings.NewReader(src))

		require.NoError(t, err)
		assert.Equal(t, 5, d.WordLength())
		assert.Equal(t, []string{"BRAVE", "CRANE", "TRAIN"}, d.Entries())
	})

	t.Run("reports the offending line", func(t *testing.T) {
		_, err := Load(strings.NewReader("crane\ntrain\nbus\n"))

		require.ErrorIs(t, err, ErrLengthMismatch)
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("empty input fails", func(t *testing.T) {
		_, err := Load(strings.NewReader("# nothing\n\n"))

		require.ErrorIs(t, err, ErrEmpty)
	})
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/missing.txt")

	require.Error(t, err)
}
