// Package motif turns a chord and scale context into short melodic shapes.
// Each generator is a small state machine over a pitch lattice: the scale's
// pitch classes laid out across several octaves around the melody register.
package motif

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/codefugue/codefugue/theory"
)

var ErrUnknown = errors.New("unknown motif")

// Kind names a motif shape.
type Kind string

const (
	Ascending  Kind = "ascending"
	Descending Kind = "descending"
	Arch       Kind = "arch"
	Valley     Kind = "valley"
	Repeat     Kind = "repeat"
	RandomWalk Kind = "random_walk"
	Pattern    Kind = "pattern"
)

// Spec is a motif table entry. Steps apply only to pattern motifs: relative
// scale-step moves cycled per note (positive up, negative down, zero hold).
type Spec struct {
	Kind  Kind  `yaml:"kind"`
	Steps []int `yaml:"steps,omitempty"`
}

// Weighted pairs a selection weight with a named motif spec.
type Weighted struct {
	Weight int
	Name   string
	Spec   Spec
}

// Generator yields successive melody pitches. Generators are resumable: a
// single generator may span several rhythm slots within a bar.
type Generator interface {
	Next() theory.Pitch
}

// Choose picks a motif by weight-proportional draw, mirroring rhythm
// selection: single-entry lists are deterministic, zero weights never win.
func Choose(rng *rand.Rand, ws []Weighted) Weighted {
	if len(ws) == 1 {
		return ws[0]
	}
	total := 0
	for _, w := range ws {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	if total <= 0 {
		return ws[0]
	}
	r := rng.Intn(total)
	for _, w := range ws {
		if w.Weight <= 0 {
			continue
		}
		if r < w.Weight {
			return w
		}
		r -= w.Weight
	}
	return ws[len(ws)-1]
}

// New builds a generator for the spec. The lattice covers three octaves of
// the scale's pitch classes centered on the melody register; the start pitch
// is the chord tone nearest the register, ties going to the lower pitch.
func New(spec Spec, chord theory.Chord, scalePitches []theory.Pitch, octave int, rng *rand.Rand) (Generator, error) {
	lattice := buildLattice(scalePitches, octave)
	if len(lattice) == 0 {
		return nil, fmt.Errorf("%w: empty scale lattice", ErrUnknown)
	}
	start := startIndex(lattice, chord, octave)

	switch spec.Kind {
	case Ascending:
		return &linear{lattice: lattice, idx: start, dir: 1}, nil
	case Descending:
		return &linear{lattice: lattice, idx: start, dir: -1}, nil
	case Arch:
		return &bounce{lattice: lattice, idx: start, dir: 1}, nil
	case Valley:
		return &bounce{lattice: lattice, idx: start, dir: -1}, nil
	case Repeat:
		return &repeater{lattice: lattice, anchor: start, rng: rng}, nil
	case RandomWalk:
		return &walker{lattice: lattice, idx: start, rng: rng}, nil
	case Pattern:
		if len(spec.Steps) == 0 {
			return nil, fmt.Errorf("%w: pattern motif with no steps", ErrUnknown)
		}
		return &stepper{lattice: lattice, idx: start, steps: spec.Steps}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknown, spec.Kind)
	}
}

// buildLattice lays the scale's pitch classes across octaves octave-1
// through octave+1, sorted ascending by MIDI key.
func buildLattice(scalePitches []theory.Pitch, octave int) []theory.Pitch {
	seen := map[string]bool{}
	var classes []string
	for _, p := range scalePitches {
		if !seen[p.Name] {
			seen[p.Name] = true
			classes = append(classes, p.Name)
		}
	}
	var lattice []theory.Pitch
	for o := octave - 1; o <= octave+1; o++ {
		for _, name := range classes {
			lattice = append(lattice, theory.Pitch{Name: name, Octave: o})
		}
	}
	sort.Slice(lattice, func(i, j int) bool {
		return lattice[i].Midi() < lattice[j].Midi()
	})
	return lattice
}

func startIndex(lattice []theory.Pitch, chord theory.Chord, octave int) int {
	chordClass := map[string]bool{}
	for _, p := range chord {
		chordClass[p.Name] = true
	}
	target := theory.Pitch{Name: "c", Octave: octave}.Midi()
	if len(chord) > 0 {
		target = chord[0].AtOctave(octave).Midi()
	}

	best, bestDist := 0, -1
	for i, p := range lattice {
		if len(chordClass) > 0 && !chordClass[p.Name] {
			continue
		}
		d := p.Midi() - target
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if bestDist < 0 {
		// chord tones foreign to the scale: nearest lattice pitch instead
		for i, p := range lattice {
			d := p.Midi() - target
			if d < 0 {
				d = -d
			}
			if bestDist < 0 || d < bestDist {
				best, bestDist = i, d
			}
		}
	}
	return best
}

// linear steps one lattice slot per note and holds at the edge.
type linear struct {
	lattice []theory.Pitch
	idx     int
	dir     int
	started bool
}

func (g *linear) Next() theory.Pitch {
	if !g.started {
		g.started = true
		return g.lattice[g.idx]
	}
	next := g.idx + g.dir
	if next >= 0 && next < len(g.lattice) {
		g.idx = next
	}
	return g.lattice[g.idx]
}

// bounce steps like linear but reverses direction at the lattice boundary.
type bounce struct {
	lattice []theory.Pitch
	idx     int
	dir     int
	started bool
}

func (g *bounce) Next() theory.Pitch {
	if !g.started {
		g.started = true
		return g.lattice[g.idx]
	}
	next := g.idx + g.dir
	if next < 0 || next >= len(g.lattice) {
		g.dir = -g.dir
		next = g.idx + g.dir
	}
	g.idx = next
	return g.lattice[g.idx]
}

// repeater holds an anchor pitch, occasionally touching a neighbor.
type repeater struct {
	lattice []theory.Pitch
	anchor  int
	rng     *rand.Rand
}

func (g *repeater) Next() theory.Pitch {
	if g.rng.Float64() < 0.2 {
		step := 1
		if g.rng.Intn(2) == 0 {
			step = -1
		}
		n := g.anchor + step
		if n >= 0 && n < len(g.lattice) {
			return g.lattice[n]
		}
	}
	return g.lattice[g.anchor]
}

// walker drifts -1/0/+1 lattice slots per note, clamped to the boundary.
type walker struct {
	lattice []theory.Pitch
	idx     int
	rng     *rand.Rand
	started bool
}

func (g *walker) Next() theory.Pitch {
	if !g.started {
		g.started = true
		return g.lattice[g.idx]
	}
	next := g.idx + g.rng.Intn(3) - 1
	if next >= 0 && next < len(g.lattice) {
		g.idx = next
	}
	return g.lattice[g.idx]
}

// stepper cycles relative scale-step moves: positive climbs, negative
// descends, zero holds. Moves clamp at the lattice boundary.
type stepper struct {
	lattice []theory.Pitch
	idx     int
	steps   []int
	pos     int
}

func (g *stepper) Next() theory.Pitch {
	next := g.idx + g.steps[g.pos%len(g.steps)]
	g.pos++
	if next < 0 {
		next = 0
	}
	if next >= len(g.lattice) {
		next = len(g.lattice) - 1
	}
	g.idx = next
	return g.lattice[g.idx]
}
