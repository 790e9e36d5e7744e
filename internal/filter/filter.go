// apps/go-solver/internal/filter/filter.go
//
// Constraint derivation and candidate filtering.
//
// A Builder consumes one guess position at a time and produces an immutable
// Constraints value; Filter keeps the candidates that satisfy it.
//
// Precedence for repeated letters within one guess:
//   - EXACT raises the letter's minimum to at least 1.
//   - PRESENT adds 1 to the minimum for every mark seen.
//   - ABSENT caps the letter at 0 only if the letter has no rule yet, so a
//     letter that was EXACT/PRESENT earlier in the guess keeps its minimum
//     and gains no other rule.
//   - An EXACT/PRESENT arriving after such an ABSENT lifts the cap again and
//     turns the earlier ABSENT positions into must-not-equal rules.
package filter

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// unbounded is the maximum count for a letter with no upper limit.
const unbounded = game.WordLen

type position uint8

const (
	anyLetter position = iota
	mustEqual
	mustNotEqual
)

type rule struct {
	min, max  int
	positions [game.WordLen]position
}

// Constraints is the rule set derived from one (guess, feedback) pair.
// The zero value accepts every word.
type Constraints struct {
	rules [26]rule
	used  uint32 // bit i set when letter 'A'+i carries a rule
}

// Allows reports whether w satisfies every constrained letter. Words that are
// not five letters A-Z are never allowed.
func (c Constraints) Allows(w game.Word) bool {
	if !w.Valid() {
		return false
	}
	if c.used == 0 {
		return true
	}
	var counts [26]int
	for i := 0; i < len(w); i++ {
		counts[w[i]-'A']++
	}
	for l := 0; l < 26; l++ {
		if c.used&(1<<l) == 0 {
			continue
		}
		r := &c.rules[l]
		if counts[l] < r.min || counts[l] > r.max {
			return false
		}
		letter := byte('A' + l)
		for pos, p := range r.positions {
			switch p {
			case mustEqual:
				if w[pos] != letter {
					return false
				}
			case mustNotEqual:
				if w[pos] == letter {
					return false
				}
			}
		}
	}
	return true
}

// Bounds returns the (min, max) occurrence count for letter and whether the
// letter is constrained at all.
func (c Constraints) Bounds(letter byte) (lo, hi int, ok bool) {
	l := letter - 'A'
	if l >= 26 || c.used&(1<<l) == 0 {
		return 0, unbounded, false
	}
	return c.rules[l].min, c.rules[l].max, true
}

// Builder accumulates per-letter rules. Use NewBuilder; Build returns a copy, so
// a Builder may keep being fed afterwards without affecting earlier results.
type Builder struct {
	c        Constraints
	capped   uint32                 // letters whose only rule so far is an ABSENT cap
	absentAt [26][game.WordLen]bool // ABSENT positions of capped letters
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Observe records the mark seen for letter at position pos. Letters outside
// A-Z and positions outside the word are ignored.
func (b *Builder) Observe(pos int, letter byte, m game.Mark) *Builder {
	if letter < 'A' || letter > 'Z' || pos < 0 || pos >= game.WordLen {
		return b
	}
	l := letter - 'A'
	bit := uint32(1) << l
	r := &b.c.rules[l]

	switch m {
	case game.Exact, game.Present:
		if b.capped&bit != 0 {
			for p, absent := range b.absentAt[l] {
				if absent {
					r.positions[p] = mustNotEqual
				}
			}
			b.capped &^= bit
		}
		if b.c.used&bit == 0 || r.max == 0 {
			r.max = unbounded
		}
		b.c.used |= bit
		if m == game.Exact {
			r.positions[pos] = mustEqual
			if r.min < 1 {
				r.min = 1
			}
		} else {
			r.positions[pos] = mustNotEqual
			r.min++
		}
	default:
		if b.c.used&bit == 0 {
			b.c.used |= bit
			b.capped |= bit
			r.min, r.max = 0, 0
		}
		if b.capped&bit != 0 {
			b.absentAt[l][pos] = true
		}
	}
	return b
}

// Build returns the accumulated Constraints.
func (b *Builder) Build() Constraints { return b.c }

// Derive builds the Constraints for one guess and its feedback, walking the
// positions left to right. guess must be Valid.
func Derive(guess game.Word, fb game.Feedback) (Constraints, error) {
	if !guess.Valid() {
		return Constraints{}, fmt.Errorf("%w: guess %q", game.ErrInvalidWord, guess)
	}
	b := NewBuilder()
	for i := 0; i < game.WordLen; i++ {
		b.Observe(i, guess[i], fb[i])
	}
	return b.Build(), nil
}

// Filter returns the candidates consistent with guess/fb, preserving order.
// The input slice is not modified. An empty result is valid; an invalid guess
// is an error. Invalid candidates are dropped.
func Filter(guess game.Word, fb game.Feedback, candidates []game.Word) ([]game.Word, error) {
	c, err := Derive(guess, fb)
	if err != nil {
		return nil, err
	}
	out := make([]game.Word, 0, len(candidates))
	for _, w := range candidates {
		if c.Allows(w) {
			out = append(out, w)
		}
	}
	return out, nil
}
