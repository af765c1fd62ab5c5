// Package rhythm holds the rhythm pattern tables and the weighted selection
// used by melody and bass generation.
//
// Accent levels: 0 weak, 1 medium, 2 strong, 3 accented. The velocity each
// level maps to belongs to the caller (melody and bass use different bases).
package rhythm

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/codefugue/codefugue/score"
)

var ErrUnknownPattern = errors.New("unknown rhythm pattern")

// Pattern is an ordered list of duration denominators with a parallel accent
// list.
type Pattern struct {
	Durations []int `yaml:"durations"`
	Accents   []int `yaml:"accents"`
}

// Beats is the pattern's total duration in quarter-note beats.
func (p Pattern) Beats() score.Beats {
	total := score.BeatsOf(0, 1)
	for _, d := range p.Durations {
		total = total.Add(score.DurationBeats(d))
	}
	return total
}

// Accent returns the accent level for a slot, 0 past the end of the table.
func (p Pattern) Accent(i int) int {
	if i < len(p.Accents) {
		return p.Accents[i]
	}
	return 0
}

// Validate checks the invariants pattern tables must hold: positive
// durations, accents in 0..3, and a total duration equal to the bar target.
func Validate(p Pattern, target score.Beats) error {
	for _, d := range p.Durations {
		if d <= 0 {
			return fmt.Errorf("non-positive duration %d", d)
		}
	}
	for _, a := range p.Accents {
		if a < 0 || a > 3 {
			return fmt.Errorf("accent %d out of range", a)
		}
	}
	if got := p.Beats(); got.Cmp(target) != 0 {
		return fmt.Errorf("pattern sums to %s beats, want %s", got, target)
	}
	return nil
}

// Weighted pairs a selection weight with a resolved pattern.
type Weighted struct {
	Weight  int
	Pattern Pattern
}

// Choose picks a pattern by weight-proportional draw. A single-entry list is
// deterministic; zero-weight entries are never selected.
func Choose(rng *rand.Rand, ws []Weighted) Pattern {
	if len(ws) == 1 {
		return ws[0].Pattern
	}
	total := 0
	for _, w := range ws {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	if total <= 0 {
		return ws[0].Pattern
	}
	r := rng.Intn(total)
	for _, w := range ws {
		if w.Weight <= 0 {
			continue
		}
		if r < w.Weight {
			return w.Pattern
		}
		r -= w.Weight
	}
	return ws[len(ws)-1].Pattern
}

// Lookup resolves a pattern name against a meter's library.
func Lookup(lib map[string]Pattern, name string) (Pattern, error) {
	p, ok := lib[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}
