package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Preference store backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Port     string `env:"PORT" env-default:"5175"`

	// WordsFile replaces the embedded word list when set.
	WordsFile   string `env:"WORDS_FILE"`
	MaxAttempts int    `env:"MAX_ATTEMPTS" env-default:"6"`

	Prefs Prefs

	JWTSecret       string        `env:"JWT_SECRET" env-default:"dev_secret_change_me"`
	JWTExpiresHours int           `env:"JWT_EXPIRES_HOURS" env-default:"24"`
	SessionTTL      time.Duration `env:"SESSION_TTL" env-default:"2h"`

	DailySalt        string `env:"DAILY_SALT" env-default:"local_dev_salt"`
	ClientOrigin     string `env:"CLIENT_ORIGIN" env-default:"http://localhost:5173"`
	AllowFixedAnswer bool   `env:"ALLOW_FIXED_ANSWER" env-default:"false"`
}

type Prefs struct {
	Backend    string `env:"PREFS_BACKEND" env-default:"memory"`
	SQLitePath string `env:"SQLITE_PATH" env-default:"./data/twiddle.db"`
	RedisAddr  string `env:"REDIS_ADDR" env-default:"localhost:6379"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) Validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: MAX_ATTEMPTS must be at least 1, got %d", ErrInvalidConfig, c.MaxAttempts)
	}
	switch c.Prefs.Backend {
	case BackendMemory, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("%w: unknown PREFS_BACKEND %q", ErrInvalidConfig, c.Prefs.Backend)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("%w: SESSION_TTL must be positive", ErrInvalidConfig)
	}
	if c.JWTExpiresHours < 1 {
		return fmt.Errorf("%w: JWT_EXPIRES_HOURS must be at least 1", ErrInvalidConfig)
	}
	return nil
}
