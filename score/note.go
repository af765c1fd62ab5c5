package score

import "github.com/codefugue/codefugue/theory"

// Note is a single voiced note or rest. Duration is the denominator of the
// time value (1=whole, 2=half, 4=quarter, 8=eighth, tuplets 6/12/5/7/...).
// A nil Pitch is a rest.
type Note struct {
	Duration int
	Pitch    *theory.Pitch
	Velocity int
}

// NoteGroup is a set of simultaneous notes at one rhythmic position; a group
// of size > 1 is a stacked chord.
type NoteGroup []Note

// Voice is one line of music: an ordered sequence of note groups.
type Voice []NoteGroup

func NewNote(p theory.Pitch, duration, velocity int) Note {
	return Note{Duration: duration, Pitch: &p, Velocity: velocity}
}

func NewRest(duration int) Note {
	return Note{Duration: duration}
}

func (n Note) IsRest() bool {
	return n.Pitch == nil
}

// Beats is the duration of a group, taken from its first note (all notes in
// a group share one rhythmic position).
func (g NoteGroup) Beats() Beats {
	if len(g) == 0 {
		return BeatsOf(0, 1)
	}
	return DurationBeats(g[0].Duration)
}

// SumBeats totals a voice's duration in quarter-note beats.
func (v Voice) SumBeats() Beats {
	total := BeatsOf(0, 1)
	for _, g := range v {
		total = total.Add(g.Beats())
	}
	return total
}

// restGreedyOrder lists the rest denominators tried when padding out a bar,
// longest first. No whole rests, to avoid long dead stretches.
var restGreedyOrder = []int{2, 4, 6, 8, 12, 16, 32}

// FillRests greedily covers the remaining beats with rest durations.
func FillRests(remaining Beats) []int {
	var res []int
	rem := remaining
	for _, d := range restGreedyOrder {
		beats := DurationBeats(d)
		for rem.Cmp(beats) >= 0 {
			res = append(res, d)
			rem = rem.Sub(beats)
		}
	}
	return res
}

// PadToTarget appends rest groups until the voice reaches the bar target.
// Overfull voices are left alone; pattern tables are validated against the
// meter at load time.
func PadToTarget(v Voice, target Beats) Voice {
	total := v.SumBeats()
	if total.Cmp(target) >= 0 {
		return v
	}
	for _, d := range FillRests(target.Sub(total)) {
		v = append(v, NoteGroup{NewRest(d)})
	}
	return v
}
