package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func TestReportSolved(t *testing.T) {
	res, err := solver.Solve("SLATE", []game.Word{"CRANE", "SLATE", "PLATE", "GRATE"}, solver.Config{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report(&buf, res))
	assert.Equal(t, "Solved SLATE in 2 guesses:\n"+
		"Guess 1: CRANE ⬛⬛🟩⬛🟩\n"+
		"Guess 2: SLATE 🟩🟩🟩🟩🟩\n", buf.String())
}

func TestReportExhausted(t *testing.T) {
	res, err := solver.Solve("ZESTY", []game.Word{"CRANE", "SLATE"}, solver.Config{})
	require.NoError(t, err)
	require.Equal(t, solver.Exhausted, res.Outcome)

	var buf bytes.Buffer
	require.NoError(t, report(&buf, res))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "No candidates left for ZESTY"))
	assert.Len(t, lines, len(res.Guesses)+1)
}

func TestBenchStats(t *testing.T) {
	var b benchStats
	b.add(solver.Result{Outcome: solver.Solved, Guesses: make([]game.Word, 2)})
	b.add(solver.Result{Outcome: solver.Solved, Guesses: make([]game.Word, 4)})
	b.add(solver.Result{Outcome: solver.Failed, Guesses: make([]game.Word, 6)})
	b.add(solver.Result{Outcome: solver.Exhausted, Guesses: make([]game.Word, 1)})

	assert.Equal(t, 4, b.total)
	assert.Equal(t, 2, b.solved)
	assert.InDelta(t, 3.0, b.average(), 1e-9)

	var buf bytes.Buffer
	require.NoError(t, b.write(&buf))
	out := buf.String()
	assert.Contains(t, out, "Solved 2/4 (avg 3.000 guesses)")
	assert.Contains(t, out, "failed: 1")
	assert.Contains(t, out, "exhausted: 1")
	assert.Regexp(t, `(?m)^2: #{10}\s+1$`, out)

	var empty benchStats
	assert.Zero(t, empty.average())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOLVER_TEST_VAR", "entropy")
	assert.Equal(t, "entropy", getEnv("SOLVER_TEST_VAR", "frequency"))
	assert.Equal(t, "frequency", getEnv("SOLVER_TEST_UNSET", "frequency"))

	t.Setenv("SOLVER_TEST_BOOL", "true")
	assert.True(t, getEnvBool("SOLVER_TEST_BOOL", false))
	t.Setenv("SOLVER_TEST_BOOL", "nope")
	assert.False(t, getEnvBool("SOLVER_TEST_BOOL", false))
}
