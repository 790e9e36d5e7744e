// apps/go-solver/internal/game/types.go
//
// Core type definitions shared by the simulator, filter, scorer and solver.
// Defines:
//   - Word:     a validated five-letter uppercase word.
//   - Mark:     per-letter feedback (exact/present/absent).
//   - Feedback: the five marks for one (guess, target) pair.
//   - Game:     state for a single interactive session.

package game

import (
	"errors"
	"fmt"
	"strings"
)

// WordLen is the only supported word length.
const WordLen = 5

// Patterns is the number of distinct Feedback values (3^5).
const Patterns = 243

var (
	// ErrInvalidWord is returned for anything that is not five letters A–Z.
	ErrInvalidWord = errors.New("invalid word")
	// ErrLength is returned when guess and target differ in length.
	ErrLength = errors.New("guess and target length mismatch")
	// ErrInvalidFeedback is returned by ParseFeedback for malformed input.
	ErrInvalidFeedback = errors.New("invalid feedback")
)

// Word is an uppercase five-letter word. Construct with ParseWord.
type Word string

// ParseWord trims and upper-cases s and checks it is exactly five letters A–Z.
func ParseWord(s string) (Word, error) {
	w := strings.ToUpper(strings.TrimSpace(s))
	if len(w) != WordLen || !isUpperAlpha(w) {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, s)
	}
	return Word(w), nil
}

// MustWord is ParseWord for literals; it panics on invalid input.
func MustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// Valid reports whether w is five letters A–Z.
func (w Word) Valid() bool {
	return len(w) == WordLen && isUpperAlpha(string(w))
}

// Mark represents the evaluation result for a single letter of a guess.
type Mark uint8

const (
	Absent  Mark = iota // letter not in the remaining target letters (black)
	Present             // letter elsewhere in the target (yellow)
	Exact               // letter in the correct position (green)
)

func (m Mark) String() string {
	switch m {
	case Exact:
		return "exact"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// Emoji returns the colored marker used for display.
func (m Mark) Emoji() string {
	switch m {
	case Exact:
		return "🟩"
	case Present:
		return "🟨"
	default:
		return "⬛"
	}
}

// MarshalText encodes the mark as its lowercase name for JSON payloads.
func (m Mark) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText accepts the names produced by MarshalText.
func (m *Mark) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "exact":
		*m = Exact
	case "present":
		*m = Present
	case "absent":
		*m = Absent
	default:
		return fmt.Errorf("%w: mark %q", ErrInvalidFeedback, b)
	}
	return nil
}

// Feedback holds one Mark per guess position.
type Feedback [WordLen]Mark

// AllExact is the feedback for a solved guess.
var AllExact = Feedback{Exact, Exact, Exact, Exact, Exact}

// Solved reports whether every position is Exact.
func (f Feedback) Solved() bool { return f == AllExact }

// Code maps f to a base-3 number in [0, 243).
func (f Feedback) Code() int {
	c := 0
	for _, m := range f {
		c = c*3 + int(m)
	}
	return c
}

// String renders the feedback as colored markers.
func (f Feedback) String() string {
	var b strings.Builder
	for _, m := range f {
		b.WriteString(m.Emoji())
	}
	return b.String()
}

// Letters renders the feedback as G/Y/B letters.
func (f Feedback) Letters() string {
	var b [WordLen]byte
	for i, m := range f {
		switch m {
		case Exact:
			b[i] = 'G'
		case Present:
			b[i] = 'Y'
		default:
			b[i] = 'B'
		}
	}
	return string(b[:])
}

// ParseFeedback reads five markers: G/Y/B letters (also '.', '-', '_', 'X' for absent)
// or the emoji produced by String.
func ParseFeedback(s string) (Feedback, error) {
	var f Feedback
	n := 0
	for _, r := range strings.TrimSpace(s) {
		if n == WordLen {
			return f, fmt.Errorf("%w: %q", ErrInvalidFeedback, s)
		}
		switch r {
		case 'G', 'g', '🟩':
			f[n] = Exact
		case 'Y', 'y', '🟨':
			f[n] = Present
		case 'B', 'b', 'X', 'x', '.', '-', '_', '⬛', '⬜':
			f[n] = Absent
		default:
			return f, fmt.Errorf("%w: %q", ErrInvalidFeedback, s)
		}
		n++
	}
	if n != WordLen {
		return f, fmt.Errorf("%w: %q", ErrInvalidFeedback, s)
	}
	return f, nil
}

// Game holds the state of a single interactive session.
type Game struct {
	ID       string     // Unique game identifier (random hex string).
	Answer   Word       // The solution word.
	Rows     int        // Maximum number of guesses allowed (typically 6).
	Guesses  []Word     // Guesses made so far.
	Marks    []Feedback // Feedback for each guess, same order as Guesses.
	Finished bool       // True once the game is over (won or lost).
	Won      bool       // True if the game was finished with a win.
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
