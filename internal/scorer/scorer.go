// apps/go-solver/internal/scorer/scorer.go
//
// Guess selection heuristics.
//
// Strategies:
//   - frequency: sum of (position, letter) popularity across the candidates.
//   - entropy:   Shannon entropy (bits) of the feedback-pattern distribution a
//                guess induces over the candidates.
//
// Selection always returns the first maximum in enumeration order. Entropy
// scores are computed in parallel (one slot per word) and the winner is picked
// afterwards by a sequential scan, so results do not depend on scheduling.
//
// Like game.Score, every function here expects Valid words (see words.Normalize).
package scorer

import (
	"errors"
	"math"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// ErrNoCandidates is returned when there is nothing to select from.
var ErrNoCandidates = errors.New("no candidates to score")

// Strategy names a scoring heuristic.
type Strategy string

const (
	Frequency Strategy = "frequency"
	Entropy   Strategy = "entropy"
)

// ParseStrategy maps a configuration value to a Strategy.
// Unrecognized values fall back to Frequency.
func ParseStrategy(s string) Strategy {
	if Strategy(strings.ToLower(strings.TrimSpace(s))) == Entropy {
		return Entropy
	}
	return Frequency
}

// Table counts, per position, how many candidates carry each letter there.
type Table [game.WordLen][26]int

// FrequencyTable builds the positional letter table for candidates.
func FrequencyTable(candidates []game.Word) *Table {
	var t Table
	for _, w := range candidates {
		for i := 0; i < game.WordLen; i++ {
			t[i][w[i]-'A']++
		}
	}
	return &t
}

// Score sums the table entries for w's letters.
func (t *Table) Score(w game.Word) int {
	s := 0
	for i := 0; i < game.WordLen; i++ {
		s += t[i][w[i]-'A']
	}
	return s
}

// FrequencyScore scores a single word against candidates.
func FrequencyScore(w game.Word, candidates []game.Word) int {
	return FrequencyTable(candidates).Score(w)
}

// EntropyScore returns the entropy in bits of the feedback patterns produced by
// guessing w against every candidate. It is 0 for zero or one candidates.
func EntropyScore(w game.Word, candidates []game.Word) float64 {
	if len(candidates) == 0 {
		return 0
	}
	var buckets [game.Patterns]int
	for _, c := range candidates {
		buckets[game.Score(w, c).Code()]++
	}
	total := float64(len(candidates))
	h := 0.0
	for _, n := range buckets {
		if n == 0 {
			continue
		}
		p := float64(n) / total
		h -= p * math.Log2(p)
	}
	return h
}

// Select returns the best guess from candidates under strategy s.
func Select(candidates []game.Word, s Strategy) (game.Word, error) {
	return SelectFrom(candidates, candidates, s)
}

// SelectFrom scores every word in pool against candidates and returns the best.
// Select is SelectFrom with pool == candidates.
func SelectFrom(pool, candidates []game.Word, s Strategy) (game.Word, error) {
	if len(pool) == 0 || len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	if s == Entropy {
		scores := EntropyScores(pool, candidates)
		return pool[argmax(scores)], nil
	}

	t := FrequencyTable(candidates)
	best, bestScore := 0, -1
	for i, w := range pool {
		if sc := t.Score(w); sc > bestScore {
			best, bestScore = i, sc
		}
	}
	return pool[best], nil
}

// EntropyScores computes EntropyScore for every word of pool, in pool order.
// At most GOMAXPROCS words are scored at once; each goroutine writes only its
// own slot.
func EntropyScores(pool, candidates []game.Word) []float64 {
	scores := make([]float64, len(pool))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, w := range pool {
		i, w := i, w
		g.Go(func() error {
			scores[i] = EntropyScore(w, candidates)
			return nil
		})
	}
	// scoring cannot fail
	_ = g.Wait()
	return scores
}

// argmax returns the index of the first maximum.
func argmax(xs []float64) int {
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}
	return best
}
