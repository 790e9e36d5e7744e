package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadKeepsOrderAndDuplicates(t *testing.T) {
	t.Parallel()
	p := writeFile(t, "answers.txt", " crane \nSlate\ncrane\n\nplate\n")
	got, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "SLATE", "CRANE", "", "PLATE"}, got)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	got := Normalize([]string{"# comment", "CRANE", "", "CRANES", "SLATE", "CRANE", "PL4TE"})
	assert.Equal(t, []game.Word{"CRANE", "SLATE"}, got)
}

func TestInitEmbedded(t *testing.T) {
	t.Parallel()
	l, err := Init("", "")
	require.NoError(t, err)
	assert.True(t, l.IsAnswer("CRANE"))
	assert.True(t, l.IsAllowed("CRANE"))
	assert.True(t, l.IsAllowed("SOARE"))
	assert.False(t, l.IsAnswer("SOARE"))

	a, g := l.Stats()
	assert.Equal(t, len(l.Answers), a)
	assert.Equal(t, a+len(l.Extra), g)
	assert.Len(t, l.Guesses(), g)
	assert.True(t, l.IsAnswer(l.RandomAnswer()))
}

func TestInitFromFiles(t *testing.T) {
	t.Parallel()
	ans := writeFile(t, "answers.txt", "crane\nslate\n")
	allowed := writeFile(t, "allowed.txt", "soare\ncrane\nroate\n")

	l, err := Init(ans, allowed)
	require.NoError(t, err)
	assert.Equal(t, []game.Word{"CRANE", "SLATE"}, l.Answers)
	assert.Equal(t, []game.Word{"SOARE", "ROATE"}, l.Extra)
	assert.Equal(t, []game.Word{"CRANE", "SLATE", "SOARE", "ROATE"}, l.Guesses())

	l, err = Init("", allowed)
	require.NoError(t, err)
	assert.Equal(t, []game.Word{"SOARE", "CRANE", "ROATE"}, l.Answers)
	assert.Empty(t, l.Extra)

	l, err = Init(ans, "")
	require.NoError(t, err)
	assert.Equal(t, []game.Word{"CRANE", "SLATE"}, l.Answers)
}

func TestInitEmpty(t *testing.T) {
	t.Parallel()
	p := writeFile(t, "answers.txt", "# nothing here\nxx\n")
	_, err := Init(p, "")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestReadLines(t *testing.T) {
	t.Parallel()
	got, err := ReadLines(strings.NewReader("a\r\nb"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, got)
}
