package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/twiddle/internal/dictionary"
)

func TestOpenWords(t *testing.T) {
	f, err := OpenWords()
	require.NoError(t, err)
	defer f.Close()

	d, err := dictionary.Load(f)
	require.NoError(t, err)

	assert.Equal(t, 5, d.WordLength())
	assert.True(t, d.Contains("crane"))
}

func TestMigrations(t *testing.T) {
	names, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)

	assert.Contains(t, names, "001_preferences.sql")
}
