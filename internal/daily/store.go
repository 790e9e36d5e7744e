package daily

import (
	"context"
	"database/sql"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Result is one recorded daily solve.
type Result struct {
	Date       string   `json:"date"`
	Target     string   `json:"target"`
	Strategy   string   `json:"strategy"`
	Opening    string   `json:"opening"`
	Guesses    []string `json:"guesses"`
	NumGuesses int      `json:"numGuesses"`
	Outcome    string   `json:"outcome"`
	Source     string   `json:"source"`
	CreatedAt  string   `json:"createdAt,omitempty"`
}

// FromSolve converts a solver result for storage.
func FromSolve(date, source string, r solver.Result) Result {
	guesses := make([]string, len(r.Guesses))
	for i, g := range r.Guesses {
		guesses[i] = string(g)
	}
	opening := ""
	if len(guesses) > 0 {
		opening = guesses[0]
	}
	return Result{
		Date:       date,
		Target:     string(r.Target),
		Strategy:   string(r.Strategy),
		Opening:    opening,
		Guesses:    guesses,
		NumGuesses: len(guesses),
		Outcome:    string(r.Outcome),
		Source:     source,
	}
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadySolved reports whether a result exists for date and strategy.
func (s *Store) AlreadySolved(ctx context.Context, date, strategy string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM solves WHERE date=? AND strategy=?",
		date, strategy,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records r. A second result for the same (date, strategy) is ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO solves(date, target, strategy, opening, guesses, num_guesses, outcome, source)
VALUES(?,?,?,?,?,?,?,?)`,
		r.Date, r.Target, r.Strategy, r.Opening, strings.Join(r.Guesses, ","), r.NumGuesses, r.Outcome, r.Source,
	)
	return err
}

// Recent returns the latest results, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, target, strategy, opening, guesses, num_guesses, outcome, source, created_at
FROM solves
ORDER BY date DESC, strategy ASC
LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]Result, 0, limit)
	for rows.Next() {
		var r Result
		var guesses string
		if err := rows.Scan(&r.Date, &r.Target, &r.Strategy, &r.Opening, &guesses, &r.NumGuesses, &r.Outcome, &r.Source, &r.CreatedAt); err != nil {
			return nil, err
		}
		if guesses != "" {
			r.Guesses = strings.Split(guesses, ",")
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// StrategyStats aggregates results per strategy.
type StrategyStats struct {
	Strategy   string  `json:"strategy"`
	Played     int     `json:"played"`
	Solved     int     `json:"solved"`
	AvgGuesses float64 `json:"avgGuesses"` // over solved runs
}

// Stats returns per-strategy aggregates ordered by strategy name.
func (s *Store) Stats(ctx context.Context) ([]StrategyStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT strategy,
       COUNT(1),
       SUM(CASE WHEN outcome='solved' THEN 1 ELSE 0 END),
       COALESCE(AVG(CASE WHEN outcome='solved' THEN num_guesses END), 0)
FROM solves
GROUP BY strategy
ORDER BY strategy ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []StrategyStats
	for rows.Next() {
		var st StrategyStats
		if err := rows.Scan(&st.Strategy, &st.Played, &st.Solved, &st.AvgGuesses); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
