package prefs

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/twiddle/internal/config"
)

// Open returns the Store selected by cfg.Backend.
func Open(ctx context.Context, cfg config.Prefs, migrations fs.FS) (Store, error) {
	switch cfg.Backend {
	case config.BackendMemory, "":
		log.Debug().Msg("using in-memory preference store")
		return NewMemoryStore(), nil
	case config.BackendSQLite:
		log.Info().Str("path", cfg.SQLitePath).Msg("opening sqlite preference store")
		return NewSQLiteStore(ctx, cfg.SQLitePath, migrations)
	case config.BackendRedis:
		log.Info().Str("addr", cfg.RedisAddr).Msg("connecting redis preference store")
		return NewRedisStore(ctx, cfg.RedisAddr)
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", config.ErrInvalidConfig, cfg.Backend)
	}
}
