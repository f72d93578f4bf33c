package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/twiddle/assets"
	"github.com/robalobadob/twiddle/internal/config"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store, key string) {
	t.Helper()
	ctx := context.Background()

	// Given: nothing stored, the default comes back
	v, err := s.Get(ctx, key, DefaultTheme)
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, v)

	// When: a value is stored, then overwritten
	require.NoError(t, s.Set(ctx, key, ThemeLight))
	v, err = s.Get(ctx, key, DefaultTheme)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, v)

	require.NoError(t, s.Set(ctx, key, ThemeDark))
	v, err = s.Get(ctx, key, DefaultTheme)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, v)

	// Then: other keys are untouched
	v, err = s.Get(ctx, key+"-other", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", v)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	t.Cleanup(func() { _ = s.Close() })

	exerciseStore(t, s, KeyTheme)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")

	s, err := NewSQLiteStore(context.Background(), path, assets.Migrations)
	require.NoError(t, err)
	exerciseStore(t, s, KeyTheme)
	require.NoError(t, s.Close())

	// Reopening keeps the value and skips applied migrations.
	s, err = NewSQLiteStore(context.Background(), path, assets.Migrations)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	v, err := s.Get(context.Background(), KeyTheme, "")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, v)
}

func TestSQLiteStore_BadMigration(t *testing.T) {
	bad := fstest.MapFS{
		"001_broken.sql": {Data: []byte("CREATE TABLE nope (")},
	}

	_, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "prefs.db"), bad)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_broken.sql")
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	s, err := NewRedisStore(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStore(t, s, Scope(t.Name(), KeyTheme))
}

func TestOpen(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		s, err := Open(context.Background(), config.Prefs{Backend: config.BackendMemory}, assets.Migrations)

		require.NoError(t, err)
		exerciseStore(t, s, KeyTheme)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := config.Prefs{
			Backend:    config.BackendSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "prefs.db"),
		}

		s, err := Open(context.Background(), cfg, assets.Migrations)

		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		exerciseStore(t, s, KeyTheme)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Open(context.Background(), config.Prefs{Backend: "etcd"}, assets.Migrations)

		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(KeyTheme, ThemeLight))
	require.NoError(t, Validate(KeyTheme, ThemeDark))
	require.ErrorIs(t, Validate(KeyTheme, "sepia"), ErrInvalidValue)
	require.ErrorIs(t, Validate("font", "mono"), ErrUnknownKey)
}

func TestScopeAndToggle(t *testing.T) {
	assert.Equal(t, "abc:theme", Scope("abc", KeyTheme))
	assert.Equal(t, "theme", Scope("", KeyTheme))

	assert.Equal(t, ThemeLight, Toggle(ThemeDark))
	assert.Equal(t, ThemeDark, Toggle(ThemeLight))
}
