// apps/go-solver/internal/solver/solver.go
//
// The solving loop: opening guess → feedback → filter → rescore, for at most
// MaxRounds rounds.
//
// Outcomes:
//   - Solved:    a guess produced all-exact feedback.
//   - Exhausted: the candidate set became empty before a round.
//   - Failed:    MaxRounds guesses were made without solving.
//
// Every run owns its candidate slice and history; nothing is shared between runs.
package solver

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/filter"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/scorer"
)

const (
	DefaultOpening   game.Word = "CRANE"
	DefaultMaxRounds           = 6
)

// Outcome is the terminal state of a run.
type Outcome string

const (
	Solved    Outcome = "solved"
	Exhausted Outcome = "exhausted"
	Failed    Outcome = "failed"
)

// Config controls a run. The zero value is usable: it opens with CRANE, plays
// six rounds with the frequency strategy and logs nothing.
type Config struct {
	Opening   game.Word
	Strategy  scorer.Strategy
	MaxRounds int
	// GuessPool, when non-empty, is scored against the candidates together
	// with the candidates themselves from round 2 on. Candidates come first so
	// they win ties.
	GuessPool []game.Word
	Logger    *zerolog.Logger
}

func (c Config) withDefaults() Config {
	if c.Opening == "" {
		c.Opening = DefaultOpening
	}
	if c.Strategy == "" {
		c.Strategy = scorer.Frequency
	}
	if c.MaxRounds <= 0 {
		c.MaxRounds = DefaultMaxRounds
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	return c
}

// Result reports one run. Guesses, Feedback and Remaining are index-aligned;
// Remaining[i] is the candidate count after filtering with Guesses[i] (it is
// omitted for the solving guess).
type Result struct {
	Target    game.Word       `json:"target"`
	Strategy  scorer.Strategy `json:"strategy"`
	Outcome   Outcome         `json:"outcome"`
	Guesses   []game.Word     `json:"guesses"`
	Feedback  []game.Feedback `json:"feedback"`
	Remaining []int           `json:"remaining"`
}

// Solved reports whether the last guess was all-exact.
func (r Result) Solved() bool {
	return len(r.Feedback) > 0 && r.Feedback[len(r.Feedback)-1].Solved()
}

// Solve plays against target starting from candidates. candidates is not
// modified. Errors are only returned for invalid input; running out of
// candidates or rounds is reported through Result.Outcome.
func Solve(target game.Word, candidates []game.Word, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()
	if !target.Valid() {
		return Result{}, fmt.Errorf("target: %w: %q", game.ErrInvalidWord, target)
	}
	if !cfg.Opening.Valid() {
		return Result{}, fmt.Errorf("opening: %w: %q", game.ErrInvalidWord, cfg.Opening)
	}
	if err := checkWords("candidate", candidates); err != nil {
		return Result{}, err
	}
	if err := checkWords("guess pool", cfg.GuessPool); err != nil {
		return Result{}, err
	}
	logger := cfg.Logger.With().Str("target", string(target)).Str("strategy", string(cfg.Strategy)).Logger()

	res := Result{Target: target, Strategy: cfg.Strategy, Outcome: Failed}
	possible := candidates

	for round := 1; round <= cfg.MaxRounds; round++ {
		if len(possible) == 0 {
			res.Outcome = Exhausted
			logger.Debug().Int("round", round).Msg("no candidates left")
			return res, nil
		}

		guess, err := nextGuess(round, possible, cfg)
		if err != nil {
			return res, err
		}
		fb := game.Score(guess, target)
		res.Guesses = append(res.Guesses, guess)
		res.Feedback = append(res.Feedback, fb)

		if fb.Solved() {
			res.Outcome = Solved
			logger.Debug().Int("round", round).Str("guess", string(guess)).Msg("solved")
			return res, nil
		}

		if possible, err = filter.Filter(guess, fb, possible); err != nil {
			return res, err
		}
		// a guess that did not solve is never the target
		possible = without(possible, guess)
		res.Remaining = append(res.Remaining, len(possible))
		logger.Debug().
			Int("round", round).
			Str("guess", string(guess)).
			Str("feedback", fb.Letters()).
			Int("remaining", len(possible)).
			Msg("round")
	}
	return res, nil
}

func checkWords(what string, list []game.Word) error {
	for _, w := range list {
		if !w.Valid() {
			return fmt.Errorf("%s: %w: %q", what, game.ErrInvalidWord, w)
		}
	}
	return nil
}

// without returns list minus w. list is returned as is when w is absent.
func without(list []game.Word, w game.Word) []game.Word {
	for i, c := range list {
		if c == w {
			out := make([]game.Word, 0, len(list)-1)
			return append(append(out, list[:i]...), list[i+1:]...)
		}
	}
	return list
}

func nextGuess(round int, possible []game.Word, cfg Config) (game.Word, error) {
	if round == 1 {
		return cfg.Opening, nil
	}
	if len(cfg.GuessPool) > 0 {
		pool := make([]game.Word, 0, len(possible)+len(cfg.GuessPool))
		pool = append(append(pool, possible...), cfg.GuessPool...)
		return scorer.SelectFrom(pool, possible, cfg.Strategy)
	}
	return scorer.Select(possible, cfg.Strategy)
}

// Round is an observed (guess, feedback) pair.
type Round struct {
	Guess    game.Word     `json:"guess"`
	Feedback game.Feedback `json:"feedback"`
}

// ErrInconsistent is returned by Narrow when no candidate fits the rounds.
var ErrInconsistent = errors.New("no candidate matches the observed feedback")

// Narrow replays observed rounds over candidates and returns what remains.
// Unsolved guesses are dropped from the result.
func Narrow(candidates []game.Word, rounds []Round) ([]game.Word, error) {
	possible := candidates
	for _, r := range rounds {
		var err error
		if possible, err = filter.Filter(r.Guess, r.Feedback, possible); err != nil {
			return nil, err
		}
		if !r.Feedback.Solved() {
			possible = without(possible, r.Guess)
		}
	}
	if len(possible) == 0 {
		return nil, ErrInconsistent
	}
	return possible, nil
}

// Suggest narrows candidates with rounds and picks the next guess.
func Suggest(candidates []game.Word, rounds []Round, s scorer.Strategy) (game.Word, []game.Word, error) {
	possible, err := Narrow(candidates, rounds)
	if err != nil {
		return "", nil, err
	}
	guess, err := scorer.Select(possible, s)
	return guess, possible, err
}
