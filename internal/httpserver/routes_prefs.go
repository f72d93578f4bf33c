package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/twiddle/internal/prefs"
)

func (s *Server) mountPrefs() {
	s.r.Get("/prefs/{key}", s.handleGetPref)
	s.r.Put("/prefs/{key}", s.handleSetPref)
}

type prefRes struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type prefReq struct {
	Value string `json:"value"`
}

// handleGetPref returns the client's value for key, or the key's default.
func (s *Server) handleGetPref(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	def, known := prefs.Defaults[key]
	if !known {
		writeError(w, http.StatusNotFound, "unknown_key")
		return
	}
	owner := s.ensureAnonID(w, r)
	v, err := s.opts.Prefs.Get(r.Context(), prefs.Scope(owner, key), def)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("get preference")
		writeError(w, http.StatusInternalServerError, "prefs_unavailable")
		return
	}
	writeJSON(w, http.StatusOK, prefRes{Key: key, Value: v})
}

// handleSetPref validates and stores the client's value for key.
func (s *Server) handleSetPref(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var req prefReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if err := prefs.Validate(key, req.Value); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, prefs.ErrUnknownKey) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}
	owner := s.ensureAnonID(w, r)
	if err := s.opts.Prefs.Set(r.Context(), prefs.Scope(owner, key), req.Value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("set preference")
		writeError(w, http.StatusInternalServerError, "prefs_unavailable")
		return
	}
	writeJSON(w, http.StatusOK, prefRes{Key: key, Value: req.Value})
}
