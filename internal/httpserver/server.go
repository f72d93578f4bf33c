// internal/httpserver/server.go
//
// JSON API over the game engine.
//
//	GET  /, /health, /metrics
//	POST /game/new            (routes_game.go)
//	POST /game/{id}/keys
//	GET  /game/{id}
//	GET|PUT /prefs/{key}      (routes_prefs.go)
//
// A game can only be played with the token returned when it was created.
// Preferences are keyed by an anonymous cookie, so CORS allows credentials.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/twiddle/internal/dictionary"
	"github.com/robalobadob/twiddle/internal/metrics"
	"github.com/robalobadob/twiddle/internal/prefs"
	"github.com/robalobadob/twiddle/internal/store"
)

// Options configures a Server.
type Options struct {
	Store       store.Store
	Dictionary  *dictionary.Dictionary
	Prefs       prefs.Store
	MaxAttempts int

	JWTSecret string
	JWTExpiry time.Duration

	DailySalt        string
	ClientOrigin     string
	AllowFixedAnswer bool
	Secure           bool // set cookies with Secure + SameSite=None

	// Now is the clock used for tokens and the daily word; time.Now if nil.
	Now func() time.Time
}

const defaultClientOrigin = "http://localhost:5173"

// Server serves the API for one dictionary.
type Server struct {
	r    *chi.Mux
	opts Options
}

// New builds the router. Zero Options fields keep their zero behaviour,
// except Now which defaults to time.Now.
func New(opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Server{r: chi.NewRouter(), opts: opts}

	s.r.Use(
		chimw.RequestID,
		chimw.RealIP,
		accessLog,
		chimw.Recoverer,
		chimw.Timeout(10*time.Second),
		jsonContentType,
		cors(opts.ClientOrigin),
	)

	s.r.Get("/", s.handleIndex)
	s.r.Get("/health", s.handleHealth)
	s.r.Handle("/metrics", promhttp.Handler())
	s.mountGame()
	s.mountPrefs()
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Router is the root handler.
func (s *Server) Router() chi.Router { return s.r }

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "twiddle",
		"routes":  []string{"GET /health", "POST /game/new", "POST /game/{id}/keys", "GET /game/{id}", "GET|PUT /prefs/{key}"},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "words": s.opts.Dictionary.Len()})
}

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// RunJanitor drops sessions idle for longer than ttl, checking every
// ttl/4, until ctx is cancelled.
func (s *Server) RunJanitor(ctx context.Context, ttl time.Duration) {
	ticker := time.NewTicker(ttl / 4)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.opts.Store.Sweep(ctx, s.opts.Now().Add(-ttl)); n > 0 {
				log.Info().Int("dropped", n).Msg("swept idle sessions")
			}
			metrics.ActiveSessions.Set(float64(s.opts.Store.Len()))
		}
	}
}

// jsonContentType marks every response as JSON; /metrics overrides it.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows one browser origin, with cookies, and answers preflights.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = defaultClientOrigin
	}
	headers := map[string]string{
		"Vary":                             "Origin",
		"Access-Control-Allow-Origin":      origin,
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Allow-Methods":     "GET, POST, PUT, OPTIONS",
		"Access-Control-Allow-Headers":     "Authorization, Content-Type",
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for k, v := range headers {
				w.Header().Set(k, v)
			}
			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

// accessLog writes one structured line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
