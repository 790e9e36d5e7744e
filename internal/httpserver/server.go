// apps/go-solver/internal/httpserver/server.go
//
// HTTP server wiring for the solver.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver endpoints: POST /feedback, POST /filter, POST /solve.
//   - Interactive games with solver hints: POST /game/new, POST /game/guess,
//     GET /game/{id}/hint.
//   - Recorded daily solves: mounted under /daily when a results store is set.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - POST /solve requires a bearer token when a JWT secret is configured.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/filter"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/scorer"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Config carries the defaults applied to requests that leave fields empty.
type Config struct {
	Strategy     scorer.Strategy
	Opening      game.Word
	UseGuessPool bool
	JWTSecret    string // empty disables auth
	ClientOrigin string // defaults to http://localhost:5173
}

// Server bundles router, session store, word lists and the results store.
type Server struct {
	r       *chi.Mux
	store   store.Store
	lists   *words.Lists
	results *daily.Store
	cfg     Config
}

// New constructs a Server, installs middleware, and registers routes.
// results may be nil, in which case /daily is not mounted.
func New(st store.Store, lists *words.Lists, results *daily.Store, cfg Config) *Server {
	if cfg.Strategy == "" {
		cfg.Strategy = scorer.Frequency
	}
	if cfg.ClientOrigin == "" {
		cfg.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), store: st, lists: lists, results: results, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(30 * time.Second)) // bound handler time; entropy solves are slow
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /feedback","POST /filter","POST /solve","POST /game/new","POST /game/guess","GET /game/{id}/hint","GET /daily/results"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.lists.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g})
	})

	s.r.Post("/feedback", s.handleFeedback)
	s.r.Post("/filter", s.handleFilter)
	s.r.With(s.requireAuth()).Post("/solve", s.handleSolve)

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game/{id}/hint", s.handleHint)

	if results != nil {
		s.mountDaily(s.r)
	}

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.ClientOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ---------------------------- SOLVER ---------------------------------------

type feedbackReq struct {
	Guess  string `json:"guess"`
	Target string `json:"target"`
}

type feedbackRes struct {
	Marks   game.Feedback `json:"marks"`
	Display string        `json:"display"`
	Solved  bool          `json:"solved"`
}

// handleFeedback simulates the feedback for a (guess, target) pair.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	guess, err := game.ParseWord(req.Guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	target, err := game.ParseWord(req.Target)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fb, err := game.Simulate(guess, target)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, feedbackRes{Marks: fb, Display: fb.String(), Solved: fb.Solved()})
}

type filterReq struct {
	Guess      string   `json:"guess"`
	Feedback   string   `json:"feedback"`   // GYB letters or emoji
	Candidates []string `json:"candidates"` // defaults to the answers list
	Strategy   string   `json:"strategy"`
}

type filterRes struct {
	Candidates []game.Word `json:"candidates"`
	Count      int         `json:"count"`
	Suggestion game.Word   `json:"suggestion,omitempty"`
}

// handleFilter narrows a candidate list with one observed round and suggests
// the next guess.
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req filterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	guess, err := game.ParseWord(req.Guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fb, err := game.ParseFeedback(req.Feedback)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	candidates := s.lists.Answers
	if len(req.Candidates) > 0 {
		candidates = words.Normalize(req.Candidates)
	}

	out, err := filter.Filter(guess, fb, candidates)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res := filterRes{Candidates: out, Count: len(out)}
	if len(out) > 0 {
		res.Suggestion, _ = scorer.Select(out, s.strategy(req.Strategy))
	}
	writeJSON(w, http.StatusOK, res)
}

type solveReq struct {
	Target   string `json:"target"`
	Strategy string `json:"strategy"`
	Opening  string `json:"opening"`
}

// handleSolve runs the solver against a caller-provided target.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	target, err := game.ParseWord(req.Target)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	cfg, err := s.solverConfig(req.Strategy, req.Opening)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	log.Debug().Str("sub", subject(r)).Str("target", string(target)).Str("strategy", string(cfg.Strategy)).Msg("solve request")
	res, err := solver.Solve(target, s.lists.Answers, cfg)
	if err != nil {
		log.Error().Err(err).Str("target", string(target)).Msg("solve")
		writeError(w, http.StatusInternalServerError, "solve_failed")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) strategy(name string) scorer.Strategy {
	if name == "" {
		return s.cfg.Strategy
	}
	return scorer.ParseStrategy(name)
}

func (s *Server) solverConfig(strategy, opening string) (solver.Config, error) {
	cfg := solver.Config{Strategy: s.strategy(strategy), Opening: s.cfg.Opening, Logger: &log.Logger}
	if opening != "" {
		w, err := game.ParseWord(opening)
		if err != nil {
			return cfg, err
		}
		cfg.Opening = w
	}
	if s.cfg.UseGuessPool {
		cfg.GuessPool = s.lists.Extra
	}
	return cfg, nil
}

// ------------------------------ GAME ---------------------------------------

type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}

type newGameRes struct {
	GameID string `json:"gameId"`
}

// handleNewGame creates a new in-memory game.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	answer := s.lists.RandomAnswer()
	if req.Answer != "" {
		a, err := game.ParseWord(req.Answer)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		answer = a
	}
	g, err := game.New(answer)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID})
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

type guessRes struct {
	Marks   game.Feedback `json:"marks"`
	Display string        `json:"display"`
	State   string        `json:"state"` // "playing" | "won" | "lost"
	Answer  game.Word     `json:"answer,omitempty"`
}

// handleGuess applies a guess to an in-memory game and saves it.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	marks, state, err := g.ApplyGuess(req.Guess, s.lists.IsAllowed)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, game.ErrFinished) {
			status = http.StatusConflict
		}
		writeError(w, status, err.Error())
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	res := guessRes{Marks: marks, Display: marks.String(), State: state}
	if state == "lost" {
		res.Answer = g.Answer
	}
	writeJSON(w, http.StatusOK, res)
}

type hintRes struct {
	Suggestion game.Word `json:"suggestion"`
	Remaining  int       `json:"remaining"`
	Strategy   string    `json:"strategy"`
}

// handleHint suggests the next guess for a game from its history so far.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if g.Finished {
		writeError(w, http.StatusConflict, game.ErrFinished.Error())
		return
	}
	strategy := s.strategy(r.URL.Query().Get("strategy"))
	if len(g.Guesses) == 0 {
		writeJSON(w, http.StatusOK, hintRes{Suggestion: s.opening(), Remaining: len(s.lists.Answers), Strategy: string(strategy)})
		return
	}

	rounds := make([]solver.Round, len(g.Guesses))
	for i := range g.Guesses {
		rounds[i] = solver.Round{Guess: g.Guesses[i], Feedback: g.Marks[i]}
	}
	guess, possible, err := solver.Suggest(s.lists.Answers, rounds, strategy)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, hintRes{Suggestion: guess, Remaining: len(possible), Strategy: string(strategy)})
}

func (s *Server) opening() game.Word {
	if s.cfg.Opening != "" {
		return s.cfg.Opening
	}
	return solver.DefaultOpening
}
