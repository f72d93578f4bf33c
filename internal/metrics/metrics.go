// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/robalobadob/twiddle/internal/game"
)

var (
	GamesStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twiddle_games_started_total",
		Help: "Games started by mode",
	}, []string{"mode"})

	GamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twiddle_games_finished_total",
		Help: "Games finished by result (win/loss)",
	}, []string{"result"})

	KeyEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twiddle_key_events_total",
		Help: "State changes produced by key input, by kind",
	}, []string{"kind"})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "twiddle_active_sessions",
		Help: "Game sessions currently held in memory",
	})
)

// ObserveChanges counts state changes and any game they finish.
func ObserveChanges(changes []game.StateChange) {
	for _, c := range changes {
		KeyEvents.WithLabelValues(c.Kind()).Inc()
		if v, ok := c.(game.AttemptValidated); ok && v.IsFinished {
			result := "loss"
			if v.IsWin {
				result = "win"
			}
			GamesFinished.WithLabelValues(result).Inc()
		}
	}
}
