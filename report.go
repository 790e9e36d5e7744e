package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// report prints a solve result: a header line, then one line per guess.
func report(w io.Writer, res solver.Result) error {
	n := len(res.Guesses)
	var err error
	switch res.Outcome {
	case solver.Solved:
		_, err = fmt.Fprintf(w, "Solved %s in %d guesses:\n", res.Target, n)
	case solver.Exhausted:
		_, err = fmt.Fprintf(w, "No candidates left for %s after %d guesses:\n", res.Target, n)
	default:
		_, err = fmt.Fprintf(w, "Failed to solve %s in %d guesses:\n", res.Target, n)
	}
	if err != nil {
		return err
	}
	for i, g := range res.Guesses {
		if _, err := fmt.Fprintf(w, "Guess %d: %s %s\n", i+1, g, res.Feedback[i]); err != nil {
			return err
		}
	}
	return nil
}

// benchStats tallies many solves.
type benchStats struct {
	dist      [solver.DefaultMaxRounds + 1]int // solved runs by guess count
	total     int
	solved    int
	exhausted int
	failed    int
	guesses   int // over solved runs
}

func (b *benchStats) add(res solver.Result) {
	b.total++
	switch res.Outcome {
	case solver.Solved:
		b.solved++
		n := len(res.Guesses)
		b.guesses += n
		if n < len(b.dist) {
			b.dist[n]++
		}
	case solver.Exhausted:
		b.exhausted++
	default:
		b.failed++
	}
}

func (b *benchStats) average() float64 {
	if b.solved == 0 {
		return 0
	}
	return float64(b.guesses) / float64(b.solved)
}

// write prints the distribution as a bar per guess count.
func (b *benchStats) write(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Solved %d/%d (avg %.3f guesses)\n", b.solved, b.total, b.average())
	for n := 1; n < len(b.dist); n++ {
		bar := 0
		if b.total > 0 {
			bar = b.dist[n] * 40 / b.total
		}
		fmt.Fprintf(&sb, "%d: %-40s %d\n", n, strings.Repeat("#", bar), b.dist[n])
	}
	if b.failed > 0 {
		fmt.Fprintf(&sb, "failed: %d\n", b.failed)
	}
	if b.exhausted > 0 {
		fmt.Fprintf(&sb, "exhausted: %d\n", b.exhausted)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
