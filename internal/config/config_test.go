package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no stray .env

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, 6, cfg.MaxAttempts)
	assert.Equal(t, BackendMemory, cfg.Prefs.Backend)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.AllowFixedAnswer)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MAX_ATTEMPTS", "4")
	t.Setenv("PREFS_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/prefs.db")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("ALLOW_FIXED_ANSWER", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxAttempts)
	assert.Equal(t, BackendSQLite, cfg.Prefs.Backend)
	assert.Equal(t, "/tmp/prefs.db", cfg.Prefs.SQLitePath)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.AllowFixedAnswer)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			MaxAttempts:     6,
			Prefs:           Prefs{Backend: BackendMemory},
			SessionTTL:      time.Hour,
			JWTExpiresHours: 24,
		}
	}
	require.NoError(t, valid().Validate())

	tests := map[string]func(*Config){
		"no attempts":     func(c *Config) { c.MaxAttempts = 0 },
		"unknown backend": func(c *Config) { c.Prefs.Backend = "etcd" },
		"zero ttl":        func(c *Config) { c.SessionTTL = 0 },
		"zero jwt expiry": func(c *Config) { c.JWTExpiresHours = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)

			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
