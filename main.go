package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/twiddle/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "twiddle",
	Short:         "A word-guessing game, playable in the terminal or over HTTP",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		return err
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, playCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("twiddle exited")
	}
}

// setupLogging points the global zerolog logger at w: human-readable on a
// terminal, JSON otherwise.
func setupLogging(level string, w io.Writer) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
