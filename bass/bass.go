// Package bass renders the accompaniment line from slot-indexed chord
// templates. Slot index 0 means the whole chord stacked; index i > 0 selects
// chord tone (i-1) modulo the chord size.
package bass

import (
	"errors"
	"fmt"

	"github.com/codefugue/codefugue/rhythm"
	"github.com/codefugue/codefugue/score"
	"github.com/codefugue/codefugue/theory"
	"github.com/codefugue/codefugue/util"
)

var ErrUnknownPattern = errors.New("unknown bass pattern")

// Pattern pairs a slot template with the name of the rhythm pattern that
// gives each slot its duration and accent.
type Pattern struct {
	Slots  [][]int `yaml:"pattern"`
	Rhythm string  `yaml:"rhythm"`
}

// Lookup resolves a pattern name against a meter's library.
func Lookup(lib map[string]Pattern, name string) (Pattern, error) {
	p, ok := lib[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// GenerateBar renders one bar of bass for a chord. Slots and rhythm entries
// are paired positionally and truncated to the shorter list; the voice is
// padded with rests to the bar target.
func GenerateBar(p Pattern, rp rhythm.Pattern, target score.Beats, volume, octave int, chord theory.Chord) score.Voice {
	var voice score.Voice
	n := util.Min(len(p.Slots), len(rp.Durations))
	for i := 0; i < n; i++ {
		duration := rp.Durations[i]
		velocity := volume + rp.Accent(i)*5
		var group score.NoteGroup
		for _, slot := range p.Slots[i] {
			for _, pitch := range slotPitches(slot, chord, octave) {
				group = append(group, score.NewNote(pitch, duration, velocity))
			}
		}
		if len(group) == 0 {
			group = score.NoteGroup{score.NewRest(duration)}
		}
		voice = append(voice, group)
	}
	return score.PadToTarget(voice, target)
}

// slotPitches maps a slot index to chord tones at the bass register.
func slotPitches(slot int, chord theory.Chord, octave int) []theory.Pitch {
	if len(chord) == 0 {
		return nil
	}
	if slot == 0 {
		out := make([]theory.Pitch, len(chord))
		for i, p := range chord {
			out[i] = atRegister(p, chord[0], octave)
		}
		return out
	}
	p := chord[(slot-1)%len(chord)]
	return []theory.Pitch{atRegister(p, chord[0], octave)}
}

// atRegister keeps the chord's internal voicing while moving the root to the
// bass octave.
func atRegister(p, root theory.Pitch, octave int) theory.Pitch {
	return p.Transpose((octave - root.Octave) * 12)
}
