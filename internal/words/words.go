// apps/go-solver/internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Load raw word lists (one word per line) from files or the embedded assets.
//   - Normalize raw lines into validated, de-duplicated game.Words.
//   - Keep an answers list and an allowed set (answers ∪ extra guesses).
//
// Initialization behavior (Init):
//   1. If both an answers path and an allowed path are given,
//      load answers from the first and extra guesses from the second.
//   2. If only the allowed path is given,
//      load that file and use it for both answers and allowed guesses.
//   3. If only the answers path is given, use it for both.
//   4. If neither is given,
//      fall back to the embedded `answers.txt` and `allowed.txt`.
package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// ErrEmpty is returned when no valid answer could be loaded.
var ErrEmpty = errors.New("words: answers list is empty")

// Lists holds the loaded answers and the allowed guess set.
type Lists struct {
	Answers []game.Word // canonical answers, file order, unique
	Extra   []game.Word // allowed guesses that are not answers, file order
	allowed map[game.Word]struct{}
	answers map[game.Word]struct{}
}

// Load reads every line of path, upper-cased and trimmed, in file order.
// Duplicates and invalid entries are kept; see Normalize.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// ReadLines is Load for an already open reader.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, strings.ToUpper(strings.TrimSpace(sc.Text())))
	}
	return out, sc.Err()
}

// Normalize keeps the valid five-letter words of lines, dropping blanks,
// '#' comments, invalid entries and repeats (first occurrence wins).
func Normalize(lines []string) []game.Word {
	seen := make(map[game.Word]struct{}, len(lines))
	out := make([]game.Word, 0, len(lines))
	for _, l := range lines {
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		w, err := game.ParseWord(l)
		if err != nil {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Init loads the word lists following the rules in the package comment.
func Init(answersPath, allowedPath string) (*Lists, error) {
	var ansLines, allowLines []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansLines, err = Load(answersPath); err != nil {
			return nil, fmt.Errorf("answers: %w", err)
		}
		if allowLines, err = Load(allowedPath); err != nil {
			return nil, fmt.Errorf("allowed: %w", err)
		}
	case allowedPath != "":
		if allowLines, err = Load(allowedPath); err != nil {
			return nil, fmt.Errorf("allowed: %w", err)
		}
		ansLines = allowLines
	case answersPath != "":
		if ansLines, err = Load(answersPath); err != nil {
			return nil, fmt.Errorf("answers: %w", err)
		}
	default:
		if ansLines, err = embedded("answers.txt"); err != nil {
			return nil, err
		}
		if allowLines, err = embedded("allowed.txt"); err != nil {
			return nil, err
		}
	}
	return New(Normalize(ansLines), Normalize(allowLines))
}

// New builds Lists from already normalized words. Every answer is allowed.
func New(answers, allowed []game.Word) (*Lists, error) {
	if len(answers) == 0 {
		return nil, ErrEmpty
	}
	l := &Lists{
		Answers: answers,
		answers: toSet(answers),
		allowed: toSet(answers),
	}
	for _, w := range allowed {
		if _, ok := l.allowed[w]; ok {
			continue
		}
		l.allowed[w] = struct{}{}
		l.Extra = append(l.Extra, w)
	}
	return l, nil
}

func embedded(name string) ([]string, error) {
	f, err := assets.Open(name)
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", name, err)
	}
	defer f.Close()
	return ReadLines(f)
}

func toSet(list []game.Word) map[game.Word]struct{} {
	m := make(map[game.Word]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// Guesses returns every allowed word: answers first, then the extra guesses.
func (l *Lists) Guesses() []game.Word {
	out := make([]game.Word, 0, len(l.Answers)+len(l.Extra))
	return append(append(out, l.Answers...), l.Extra...)
}

// RandomAnswer returns a cryptographically random answer.
func (l *Lists) RandomAnswer() game.Word {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.Answers))))
	if err != nil {
		return l.Answers[0]
	}
	return l.Answers[n.Int64()]
}

// IsAllowed reports whether w is a valid guess (answers ∪ extra guesses).
func (l *Lists) IsAllowed(w game.Word) bool {
	_, ok := l.allowed[w]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *Lists) IsAnswer(w game.Word) bool {
	_, ok := l.answers[w]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount int, allowedCount int) {
	return len(l.Answers), len(l.allowed)
}
