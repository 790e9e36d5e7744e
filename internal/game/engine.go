// apps/go-solver/internal/game/engine.go
//
// Feedback simulation and the interactive game session.
// Responsibilities:
//   - Score a guess against a target using the classic two-pass algorithm.
//   - Create sessions with deterministic dimensions (6 rows).
//   - Validate and apply guesses, tracking playing → won/lost.
//
// Notes:
//   - The simulator never allocates: remaining target letters are tracked in a
//     fixed [26]int instead of removing elements from a slice.
//   - Word lists live in the words package; callers pass an allow-check in.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

const defaultRows = 6

var (
	ErrFinished   = errors.New("game finished")
	ErrNotAllowed = errors.New("not in word list")
)

// Simulate returns the feedback a player would see for guess against target.
//
// Pass 1:
//   - Mark exact matches.
//   - Count the remaining (non-exact) target letters by letter index.
//
// Pass 2:
//   - For each non-exact guess letter: if a remaining count exists, mark
//     Present and decrement it; otherwise Absent.
//
// Repeated letters therefore never earn more marks than the target holds.
func Simulate(guess, target Word) (Feedback, error) {
	if len(guess) != len(target) {
		return Feedback{}, fmt.Errorf("%w: %q vs %q", ErrLength, guess, target)
	}
	if !guess.Valid() {
		return Feedback{}, fmt.Errorf("%w: guess %q", ErrInvalidWord, guess)
	}
	if !target.Valid() {
		return Feedback{}, fmt.Errorf("%w: target %q", ErrInvalidWord, target)
	}
	return Score(guess, target), nil
}

// Score is Simulate without validation, for hot loops over words that were
// already checked (see words.Normalize).
func Score(guess, target Word) Feedback {
	var res Feedback
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == target[i] {
			res[i] = Exact
		} else {
			counts[target[i]-'A']++
		}
	}

	for i := 0; i < WordLen; i++ {
		if res[i] == Exact {
			continue
		}
		j := guess[i] - 'A'
		if counts[j] > 0 {
			res[i] = Present
			counts[j]--
		}
	}
	return res
}

// New constructs a session for answer.
func New(answer Word) (*Game, error) {
	if !answer.Valid() {
		return nil, fmt.Errorf("%w: answer %q", ErrInvalidWord, answer)
	}
	return &Game{
		ID:     randomID(),
		Answer: answer,
		Rows:   defaultRows,
	}, nil
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the feedback, the new state string ("playing"/"won"/"lost"), or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must parse as a Word.
//   - If allowed is non-nil the guess must pass it.
func (g *Game) ApplyGuess(guess string, allowed func(Word) bool) (Feedback, string, error) {
	if g.Finished {
		return Feedback{}, g.State(), ErrFinished
	}
	w, err := ParseWord(guess)
	if err != nil {
		return Feedback{}, g.State(), err
	}
	if allowed != nil && !allowed(w) {
		return Feedback{}, g.State(), fmt.Errorf("%w: %s", ErrNotAllowed, w)
	}

	fb := Score(w, g.Answer)
	g.Guesses = append(g.Guesses, w)
	g.Marks = append(g.Marks, fb)

	if fb.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return fb, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
