package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/twiddle/assets"
	"github.com/robalobadob/twiddle/internal/daily"
	"github.com/robalobadob/twiddle/internal/dictionary"
	"github.com/robalobadob/twiddle/internal/game"
	"github.com/robalobadob/twiddle/internal/httpserver"
	"github.com/robalobadob/twiddle/internal/prefs"
	"github.com/robalobadob/twiddle/internal/store"
	"github.com/robalobadob/twiddle/internal/tui"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the game API over HTTP",
		RunE:  runServe,
	}
	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		RunE:  runPlay,
	}
)

func init() {
	playCmd.Flags().String("words", "", "Word list file (one word per line); overrides WORDS_FILE")
	playCmd.Flags().Int("attempts", 0, "Number of attempts; overrides MAX_ATTEMPTS")
	playCmd.Flags().Bool("daily", false, "Play today's word")
	playCmd.Flags().Uint64("seed", 0, "Seed for the word pick (0 = random)")
}

// loadDictionary reads path, or the embedded list when path is empty.
func loadDictionary(path string, opts ...dictionary.Option) (*dictionary.Dictionary, error) {
	if path != "" {
		return dictionary.LoadFile(path, opts...)
	}
	f, err := assets.OpenWords()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dictionary.Load(f, opts...)
}

func runServe(cmd *cobra.Command, _ []string) error {
	setupLogging(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dict, err := loadDictionary(cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}
	log.Info().Int("words", dict.Len()).Int("length", dict.WordLength()).Msg("dictionary loaded")

	ps, err := prefs.Open(ctx, cfg.Prefs, assets.Migrations)
	if err != nil {
		return fmt.Errorf("open preference store: %w", err)
	}
	defer ps.Close()

	srv := httpserver.New(httpserver.Options{
		Store:            store.NewMemoryStore(),
		Dictionary:       dict,
		Prefs:            ps,
		MaxAttempts:      cfg.MaxAttempts,
		JWTSecret:        cfg.JWTSecret,
		JWTExpiry:        time.Duration(cfg.JWTExpiresHours) * time.Hour,
		DailySalt:        cfg.DailySalt,
		ClientOrigin:     cfg.ClientOrigin,
		AllowFixedAnswer: cfg.AllowFixedAnswer,
		Secure:           strings.HasPrefix(cfg.ClientOrigin, "https://"),
	})
	go srv.RunJanitor(ctx, cfg.SessionTTL)

	return srv.Run(ctx, ":"+cfg.Port)
}

// playOptions are the resolved flags of `twiddle play`.
type playOptions struct {
	wordsFile   string
	maxAttempts int
	daily       bool
	seed        uint64
}

func newPlayGame(o playOptions, salt string, now time.Time) (*game.Game, error) {
	var dictOpts []dictionary.Option
	if o.seed != 0 {
		dictOpts = append(dictOpts, dictionary.WithSource(rand.NewPCG(o.seed, o.seed)))
	}
	dict, err := loadDictionary(o.wordsFile, dictOpts...)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}

	gameOpts := []game.Option{game.WithMaxAttempts(o.maxAttempts)}
	if o.daily {
		word, err := daily.Solution(dict, now, salt)
		if err != nil {
			return nil, err
		}
		gameOpts = append(gameOpts, game.WithSolution(word))
	}
	return game.New(dict, gameOpts...)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The terminal belongs to the UI; logs go to TWIDDLE_LOG_FILE or nowhere.
	var logOut io.Writer = io.Discard
	if path := os.Getenv("TWIDDLE_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	setupLogging(cfg.LogLevel, logOut)

	o := playOptions{wordsFile: cfg.WordsFile, maxAttempts: cfg.MaxAttempts}
	flags := cmd.Flags()
	if v, _ := flags.GetString("words"); v != "" {
		o.wordsFile = v
	}
	if v, _ := flags.GetInt("attempts"); v > 0 {
		o.maxAttempts = v
	}
	o.daily, _ = flags.GetBool("daily")
	o.seed, _ = flags.GetUint64("seed")

	g, err := newPlayGame(o, cfg.DailySalt, time.Now())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ps, err := prefs.Open(ctx, cfg.Prefs, assets.Migrations)
	if err != nil {
		log.Warn().Err(err).Msg("preference store unavailable, theme will not be saved")
		ps = nil
	} else {
		defer ps.Close()
	}
	return tui.Run(ctx, g, ps)
}
