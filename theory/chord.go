package theory

import "errors"

// Chord is a set of pitches sounding together, root first.
type Chord []Pitch

var ErrUnknownChordType = errors.New("unknown chord type")

// ChordFormulas maps a chord-type suffix to the degrees stacked on the root.
// An empty suffix in progression notation resolves to "maj".
var ChordFormulas = map[string][]ScaleDegree{
	// triads
	"maj": {Deg(1, 0), Deg(3, 0), Deg(5, 0)},
	"min": {Deg(1, 0), Deg(3, -1), Deg(5, 0)},
	"dim": {Deg(1, 0), Deg(3, -1), Deg(5, -1)},
	"aug": {Deg(1, 0), Deg(3, 0), Deg(5, 1)},

	// suspensions
	"sus2": {Deg(1, 0), Deg(2, 0), Deg(5, 0)},
	"sus4": {Deg(1, 0), Deg(4, 0), Deg(5, 0)},

	// sevenths
	"7":    {Deg(1, 0), Deg(3, 0), Deg(5, 0), Deg(7, -1)},
	"dom7": {Deg(1, 0), Deg(3, 0), Deg(5, 0), Deg(7, -1)},
	"maj7": {Deg(1, 0), Deg(3, 0), Deg(5, 0), Deg(7, 0)},
	"min7": {Deg(1, 0), Deg(3, -1), Deg(5, 0), Deg(7, -1)},
	"m7b5": {Deg(1, 0), Deg(3, -1), Deg(5, -1), Deg(7, -1)},
	"dim7": {Deg(1, 0), Deg(3, -1), Deg(5, -1), Deg(7, -2)},

	// altered sevenths
	"7b5": {Deg(1, 0), Deg(3, 0), Deg(5, -1), Deg(7, -1)},
	"7#5": {Deg(1, 0), Deg(3, 0), Deg(5, 1), Deg(7, -1)},

	// ninths
	"maj9": {Deg(1, 0), Deg(3, 0), Deg(5, 0), Deg(7, 0), Deg(9, 0)},
	"min9": {Deg(1, 0), Deg(3, -1), Deg(5, 0), Deg(7, -1), Deg(9, 0)},
	"9":    {Deg(1, 0), Deg(3, 0), Deg(5, 0), Deg(7, -1), Deg(9, 0)},
	"7b9":  {Deg(1, 0), Deg(3, 0), Deg(5, 0), Deg(7, -1), Deg(9, -1)},
	"7#9":  {Deg(1, 0), Deg(3, 0), Deg(5, 0), Deg(7, -1), Deg(9, 1)},

	// elevenths
	"maj11": {Deg(1, 0), Deg(3, 0), Deg(5, 0), Deg(7, 0), Deg(9, 0), Deg(11, 0)},
	"min11": {Deg(1, 0), Deg(3, -1), Deg(5, 0), Deg(7, -1), Deg(9, 0), Deg(11, 0)},

	// thirteenths
	"maj13": {Deg(1, 0), Deg(3, 0), Deg(5, 0), Deg(7, 0), Deg(9, 0), Deg(13, 0)},
	"min13": {Deg(1, 0), Deg(3, -1), Deg(5, 0), Deg(7, -1), Deg(9, 0), Deg(13, 0)},
	"13":    {Deg(1, 0), Deg(3, 0), Deg(5, 0), Deg(7, -1), Deg(9, 0), Deg(13, 0)},

	// added tones
	"add9":  {Deg(1, 0), Deg(3, 0), Deg(5, 0), Deg(9, 0)},
	"madd9": {Deg(1, 0), Deg(3, -1), Deg(5, 0), Deg(9, 0)},
	"add11": {Deg(1, 0), Deg(3, 0), Deg(5, 0), Deg(11, 0)},
}

// BuildChord applies a degree formula to a root pitch.
func BuildChord(root Pitch, formula []ScaleDegree) Chord {
	chord := make(Chord, 0, len(formula))
	for _, d := range formula {
		chord = append(chord, root.Transpose(d.Semitones()))
	}
	return chord
}

// VaryChord returns a dissonant variant: the fifth (third chord tone)
// flattened a semitone. Chords too small to have a fifth are returned
// unchanged.
func VaryChord(c Chord) Chord {
	if len(c) < 3 {
		return c
	}
	varied := make(Chord, len(c))
	copy(varied, c)
	varied[2] = varied[2].Transpose(-1)
	return varied
}
