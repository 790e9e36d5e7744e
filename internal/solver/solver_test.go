package solver

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/filter"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/scorer"
)

func wordsOf(ss ...string) []game.Word {
	out := make([]game.Word, len(ss))
	for i, s := range ss {
		out[i] = game.MustWord(s)
	}
	return out
}

var answers = wordsOf(
	"CRANE", "SLATE", "PLATE", "GRATE", "TRACE", "CRATE", "REACT", "ABIDE",
	"ALLOY", "LOYAL", "THEME", "HELLO", "KEBAB", "ABBEY", "MAXIM", "ROBOT",
	"FUZZY", "JUMPY", "SISSY", "GAWKY", "RETRO", "EPOXY", "TACIT", "WATCH",
	"STOVE", "BEADY", "NYMPH", "PINTO", "SPEED", "ERASE", "BRINE", "SHINE",
)

func TestSolveOpeningIsTarget(t *testing.T) {
	t.Parallel()
	res, err := Solve("CRANE", answers, Config{Opening: "CRANE"})
	require.NoError(t, err)
	assert.Equal(t, Solved, res.Outcome)
	assert.Equal(t, wordsOf("CRANE"), res.Guesses)
	assert.True(t, res.Solved())
	assert.Empty(t, res.Remaining)
}

func TestSolveSlateFrequency(t *testing.T) {
	t.Parallel()
	list := wordsOf("CRANE", "SLATE", "PLATE", "GRATE")
	res, err := Solve("SLATE", list, Config{Opening: "CRANE", Strategy: scorer.Frequency})
	require.NoError(t, err)

	require.Equal(t, "BBGBG", res.Feedback[0].Letters())
	filtered, err := filter.Filter("CRANE", res.Feedback[0], list)
	require.NoError(t, err)
	assert.Equal(t, wordsOf("SLATE", "PLATE"), filtered)
	assert.Equal(t, []int{2}, res.Remaining)
	assert.Equal(t, wordsOf("CRANE", "SLATE"), res.Guesses)
	assert.Equal(t, Solved, res.Outcome)
}

func TestSolveEveryAnswer(t *testing.T) {
	t.Parallel()
	for _, s := range []scorer.Strategy{scorer.Frequency, scorer.Entropy} {
		for _, target := range answers {
			res, err := Solve(target, answers, Config{Strategy: s})
			require.NoError(t, err)
			assert.LessOrEqual(t, len(res.Guesses), DefaultMaxRounds)
			assert.NotEqual(t, Exhausted, res.Outcome, "target %s: the answer is in the list", target)
			if res.Outcome == Solved {
				assert.Equal(t, target, res.Guesses[len(res.Guesses)-1])
			}
			for i := 1; i < len(res.Remaining); i++ {
				assert.LessOrEqual(t, res.Remaining[i], res.Remaining[i-1])
			}
		}
	}
}

func TestSolveExhaustedWhenTargetMissing(t *testing.T) {
	t.Parallel()
	res, err := Solve("ZESTY", wordsOf("CRANE", "SLATE", "PLATE"), Config{})
	require.NoError(t, err)
	assert.Equal(t, Exhausted, res.Outcome)
	assert.Equal(t, wordsOf("CRANE"), res.Guesses)
	assert.Equal(t, []int{0}, res.Remaining)
	assert.False(t, res.Solved())
}

func TestSolveFailsAfterMaxRounds(t *testing.T) {
	t.Parallel()
	// Every word differs only in the first letter; frequency ties pick the
	// first, so one candidate is eliminated per round.
	list := wordsOf("BATCH", "CATCH", "HATCH", "LATCH", "MATCH", "PATCH", "WATCH")
	res, err := Solve("WATCH", list, Config{Opening: "BATCH", MaxRounds: 3})
	require.NoError(t, err)
	assert.Equal(t, Failed, res.Outcome)
	assert.Len(t, res.Guesses, 3)
	assert.False(t, res.Solved())
}

func TestSolveRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	_, err := Solve("CRANES", answers, Config{})
	assert.ErrorIs(t, err, game.ErrInvalidWord)

	_, err = Solve("CRANE", answers, Config{Opening: "NOPE"})
	assert.ErrorIs(t, err, game.ErrInvalidWord)

	_, err = Solve("CRANE", []game.Word{"CRANE", "slate"}, Config{})
	assert.ErrorIs(t, err, game.ErrInvalidWord)

	_, err = Solve("CRANE", answers, Config{GuessPool: []game.Word{"SOAR"}})
	assert.ErrorIs(t, err, game.ErrInvalidWord)

	_, err = Narrow(answers, []Round{{Guess: "crane"}})
	assert.ErrorIs(t, err, game.ErrInvalidWord)
}

func TestSolveNeverRepeatsAGuess(t *testing.T) {
	t.Parallel()
	// GGGBG keeps SPEED a candidate; it still must not be guessed twice
	list := wordsOf("SPEED", "SPEND")
	res, err := Solve("SPEND", list, Config{Opening: "SPEED"})
	require.NoError(t, err)
	assert.Equal(t, Solved, res.Outcome)
	assert.Equal(t, wordsOf("SPEED", "SPEND"), res.Guesses)
	assert.Equal(t, []int{1}, res.Remaining)

	got, err := Narrow(list, []Round{{Guess: "SPEED", Feedback: res.Feedback[0]}})
	require.NoError(t, err)
	assert.Equal(t, wordsOf("SPEND"), got)
}

func TestSolveDoesNotMutateCandidates(t *testing.T) {
	t.Parallel()
	list := append([]game.Word(nil), answers...)
	_, err := Solve("NYMPH", list, Config{Strategy: scorer.Entropy})
	require.NoError(t, err)
	assert.Equal(t, answers, list)
}

func TestSolveWithGuessPool(t *testing.T) {
	t.Parallel()
	list := wordsOf("BATCH", "CATCH", "HATCH", "LATCH", "MATCH", "PATCH", "WATCH")
	res, err := Solve("WATCH", list, Config{
		Opening:   "BATCH",
		Strategy:  scorer.Entropy,
		GuessPool: wordsOf("CLAMP"),
	})
	require.NoError(t, err)
	assert.Equal(t, wordsOf("BATCH", "CLAMP", "HATCH", "WATCH"), res.Guesses)
	assert.Equal(t, []int{6, 2, 1}, res.Remaining)
	assert.Equal(t, Solved, res.Outcome)
}

func TestSolveLogsRounds(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, err := Solve("SLATE", wordsOf("CRANE", "SLATE", "PLATE", "GRATE"), Config{Logger: &logger})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"feedback":"BBGBG"`)
	assert.Contains(t, buf.String(), `"message":"solved"`)
}

func TestNarrowAndSuggest(t *testing.T) {
	t.Parallel()
	rounds := []Round{{Guess: "CRANE", Feedback: game.Score("CRANE", "SLATE")}}

	got, err := Narrow(wordsOf("CRANE", "SLATE", "PLATE", "GRATE"), rounds)
	require.NoError(t, err)
	assert.Equal(t, wordsOf("SLATE", "PLATE"), got)

	guess, possible, err := Suggest(wordsOf("CRANE", "SLATE", "PLATE", "GRATE"), rounds, scorer.Frequency)
	require.NoError(t, err)
	assert.Equal(t, game.Word("SLATE"), guess)
	assert.Len(t, possible, 2)

	_, err = Narrow(wordsOf("CRANE"), rounds)
	assert.ErrorIs(t, err, ErrInconsistent)
}
