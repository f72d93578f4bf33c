// internal/httpserver/routes_game.go
//
// Game routes:
//   - POST /game/new        → start a game (random or daily word), returns its token
//   - POST /game/{id}/keys  → apply key presses, returns one event per key
//   - GET  /game/{id}       → board snapshot
//
// The solution is only ever sent once the game is finished.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/twiddle/internal/daily"
	"github.com/robalobadob/twiddle/internal/game"
	"github.com/robalobadob/twiddle/internal/metrics"
)

// Game modes accepted by POST /game/new.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
)

// maxKeysPerRequest bounds the keys accepted by one /keys call.
const maxKeysPerRequest = 64

func (s *Server) mountGame() {
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireGameToken)
		r.Get("/", s.handleGetGame)
		r.Post("/keys", s.handleKeys)
	})
}

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode   string `json:"mode"`   // "random" (default) | "daily"
	Answer string `json:"answer"` // fixed answer, honoured only when enabled
}
type newGameRes struct {
	GameID      string    `json:"gameId"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Mode        string    `json:"mode"`
	Date        string    `json:"date,omitempty"`
	WordLength  int       `json:"wordLength"`
	MaxAttempts int       `json:"maxAttempts"`
}

// handleNewGame creates a session, stores it and returns its token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Mode == "" {
		req.Mode = ModeRandom
	}

	opts := []game.Option{game.WithMaxAttempts(s.opts.MaxAttempts)}
	res := newGameRes{Mode: req.Mode}

	switch req.Mode {
	case ModeRandom:
		if req.Answer != "" {
			if !s.opts.AllowFixedAnswer {
				writeError(w, http.StatusBadRequest, "fixed_answer_disabled")
				return
			}
			opts = append(opts, game.WithSolution(req.Answer))
		}
	case ModeDaily:
		now := s.opts.Now()
		word, err := daily.Solution(s.opts.Dictionary, now, s.opts.DailySalt)
		if err != nil {
			log.Error().Err(err).Msg("daily solution")
			writeError(w, http.StatusInternalServerError, "no_words")
			return
		}
		opts = append(opts, game.WithSolution(word))
		res.Date = daily.DateKey(now)
	default:
		writeError(w, http.StatusBadRequest, "unknown_mode")
		return
	}

	g, err := game.New(s.opts.Dictionary, opts...)
	if err != nil {
		log.Warn().Err(err).Str("mode", req.Mode).Msg("new game")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess := game.NewSession(uuid.NewString(), req.Mode, g)
	if err := s.opts.Store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signGameToken(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}

	metrics.GamesStarted.WithLabelValues(req.Mode).Inc()
	metrics.ActiveSessions.Set(float64(s.opts.Store.Len()))
	log.Info().Str("gameId", sess.ID).Str("mode", req.Mode).Msg("game started")

	res.GameID = sess.ID
	res.Token = tok
	res.ExpiresAt = exp
	res.WordLength = g.WordLength()
	res.MaxAttempts = g.MaxAttempts()
	writeJSON(w, http.StatusOK, res)
}

// keysReq/Res payloads for POST /game/{id}/keys.
type keysReq struct {
	Keys []string `json:"keys"` // letters, "enter", "backspace"
}
type keysRes struct {
	Events []eventView `json:"events"`
	Game   gameView    `json:"game"`
}

// handleKeys parses every key first, then applies them in order.
// A single unparseable key rejects the whole request.
func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	var req keysReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if len(req.Keys) == 0 || len(req.Keys) > maxKeysPerRequest {
		writeError(w, http.StatusBadRequest, "bad_key_count")
		return
	}
	keys := make([]game.Key, len(req.Keys))
	for i, k := range req.Keys {
		key, err := game.ParseKey(k)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		keys[i] = key
	}

	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	changes := sess.EnterKeys(keys...)
	metrics.ObserveChanges(changes)

	snap, solution := sess.View()
	res := keysRes{Events: make([]eventView, len(changes)), Game: newGameView(sess, snap, solution)}
	for i, c := range changes {
		res.Events[i] = newEventView(c)
		if v, ok := c.(game.AttemptValidated); ok && v.IsFinished {
			log.Info().Str("gameId", sess.ID).Bool("won", v.IsWin).Msg("game finished")
		}
	}
	writeJSON(w, http.StatusOK, res)
}

// handleGetGame returns the board of one game.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	snap, solution := sess.View()
	writeJSON(w, http.StatusOK, newGameView(sess, snap, solution))
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*game.Session, bool) {
	sess, err := s.opts.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return sess, true
}
