package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	g, err := game.New("SLATE")
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, g))

	got, err := s.Get(ctx, g.ID)
	require.NoError(t, err)
	_, _, err = got.ApplyGuess("CRANE", nil)
	require.NoError(t, err)

	// unsaved changes stay local to the copy
	again, err := s.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Guesses)

	require.NoError(t, s.Save(ctx, got))
	again, err = s.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, []game.Word{"CRANE"}, again.Guesses)
}
