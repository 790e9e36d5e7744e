package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

func wordsOf(ss ...string) []game.Word {
	out := make([]game.Word, len(ss))
	for i, s := range ss {
		out[i] = game.MustWord(s)
	}
	return out
}

var four = wordsOf("CRANE", "SLATE", "PLATE", "GRATE")

func TestParseStrategy(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Entropy, ParseStrategy("entropy"))
	assert.Equal(t, Entropy, ParseStrategy(" Entropy "))
	assert.Equal(t, Frequency, ParseStrategy("frequency"))
	assert.Equal(t, Frequency, ParseStrategy(""))
	assert.Equal(t, Frequency, ParseStrategy("minimax"))
}

func TestFrequencyScore(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 12, FrequencyScore("CRANE", four))
	assert.Equal(t, 14, FrequencyScore("SLATE", four))
	assert.Equal(t, 14, FrequencyScore("GRATE", four))
	assert.Equal(t, 0, FrequencyScore("FUZZY", four))
}

func TestSelectFrequencyFirstMaximumWins(t *testing.T) {
	t.Parallel()
	w, err := Select(four, Frequency)
	require.NoError(t, err)
	assert.Equal(t, game.Word("SLATE"), w)

	w, err = Select(wordsOf("PLATE", "SLATE"), Frequency)
	require.NoError(t, err)
	assert.Equal(t, game.Word("PLATE"), w)
}

func TestEntropyScore(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 1.5, EntropyScore("CRANE", four), 1e-9)
	assert.InDelta(t, 2.0, EntropyScore("SLATE", four), 1e-9)
	assert.Equal(t, 0.0, EntropyScore("SLATE", wordsOf("CRANE")))
	assert.Equal(t, 0.0, EntropyScore("SLATE", nil))
}

func TestEntropyScoresNonNegative(t *testing.T) {
	t.Parallel()
	pool := wordsOf("FUZZY", "CRANE", "MAMMA", "SLATE", "EERIE", "JUMPY")
	scores := EntropyScores(pool, four)
	require.Len(t, scores, len(pool))
	for i, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0, pool[i])
		assert.Equal(t, EntropyScore(pool[i], four), s)
	}
	// FUZZY shares no letter with any candidate: a single bucket.
	assert.Equal(t, 0.0, scores[0])
}

func TestEntropyScoresMatchesSequential(t *testing.T) {
	t.Parallel()
	base := wordsOf("CRANE", "SLATE", "PLATE", "GRATE", "SPEED", "ABIDE", "ALLOY", "LOYAL", "THEME", "KEBAB")
	// more words than any realistic GOMAXPROCS
	var pool []game.Word
	for i := 0; i < 40; i++ {
		pool = append(pool, base...)
	}
	scores := EntropyScores(pool, base)
	require.Len(t, scores, len(pool))
	for i, w := range pool {
		assert.Equal(t, EntropyScore(w, base), scores[i], "%d %s", i, w)
	}
	assert.Empty(t, EntropyScores(nil, base))
}

func TestSelectEntropy(t *testing.T) {
	t.Parallel()
	w, err := Select(four, Entropy)
	require.NoError(t, err)
	assert.Equal(t, game.Word("SLATE"), w)

	w, err = Select(wordsOf("PLATE", "SLATE"), Entropy)
	require.NoError(t, err)
	assert.Equal(t, game.Word("PLATE"), w)
}

func TestSelectEntropyDeterministic(t *testing.T) {
	t.Parallel()
	pool := wordsOf(
		"CRANE", "SLATE", "PLATE", "GRATE", "TRACE", "CRATE", "REACT", "SPEED",
		"ABIDE", "ALLOY", "LOYAL", "THEME", "EERIE", "LLAMA", "HELLO", "KEBAB",
	)
	first, err := Select(pool, Entropy)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		w, err := Select(pool, Entropy)
		require.NoError(t, err)
		assert.Equal(t, first, w)
	}
}

func TestSelectFromPool(t *testing.T) {
	t.Parallel()
	candidates := wordsOf("SLATE", "PLATE")
	w, err := SelectFrom(wordsOf("FUZZY", "SPLAT"), candidates, Entropy)
	require.NoError(t, err)
	assert.Equal(t, game.Word("SPLAT"), w)
}

func TestSelectEmpty(t *testing.T) {
	t.Parallel()
	_, err := Select(nil, Frequency)
	assert.ErrorIs(t, err, ErrNoCandidates)
	_, err = Select([]game.Word{}, Entropy)
	assert.ErrorIs(t, err, ErrNoCandidates)
	_, err = SelectFrom(four, nil, Entropy)
	assert.ErrorIs(t, err, ErrNoCandidates)
}
