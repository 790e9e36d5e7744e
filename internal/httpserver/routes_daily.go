// apps/go-solver/internal/httpserver/routes_daily.go
//
// HTTP routes for recorded daily solves.
// Exposes two endpoints under /daily:
//   - GET /daily/results → most recent recorded solves (?limit=, default 20)
//   - GET /daily/stats   → per-strategy aggregates

package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/results", s.handleResults)
		r.Get("/stats", s.handleStats)
	})
}

// handleResults returns the latest recorded solves.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	rows, err := s.results.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("recent results")
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": rows})
}

// handleStats returns per-strategy aggregates.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.results.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("strategy stats")
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"strategies": stats})
}
