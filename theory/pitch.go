package theory

import (
	"errors"
	"fmt"
	"strings"
)

// NotesSharp is the canonical chromatic set. All pitch names normalize to
// this sharp-based spelling.
var NotesSharp = []string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}

var flatToSharp = map[string]string{
	"bb": "a#",
	"db": "c#",
	"eb": "d#",
	"gb": "f#",
	"ab": "g#",
	"cb": "b",
	"fb": "e",
}

var enharmonic = map[string]string{
	"b#": "c",
	"e#": "f",
}

var ErrInvalidPitchName = errors.New("invalid pitch name")

var noteIndexes = func() map[string]int {
	m := make(map[string]int, len(NotesSharp))
	for i, n := range NotesSharp {
		m[n] = i
	}
	return m
}()

// Normalize resolves flats and enharmonic spellings to the canonical
// sharp-based name.
func Normalize(note string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(note))
	if v, ok := flatToSharp[n]; ok {
		n = v
	} else if v, ok := enharmonic[n]; ok {
		n = v
	}
	if _, ok := noteIndexes[n]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPitchName, note)
	}
	return n, nil
}

// Pitch is a note name plus octave in scientific notation (c4 = middle C).
// The name is always canonical, so Pitch values compare with ==.
type Pitch struct {
	Name   string
	Octave int
}

func NewPitch(name string, octave int) (Pitch, error) {
	n, err := Normalize(name)
	if err != nil {
		return Pitch{}, err
	}
	return Pitch{Name: n, Octave: octave}, nil
}

// MustPitch is for literals known to be valid.
func MustPitch(name string, octave int) Pitch {
	p, err := NewPitch(name, octave)
	if err != nil {
		panic(err)
	}
	return p
}

// Index is the pitch class index within the chromatic set.
func (p Pitch) Index() int {
	return noteIndexes[p.Name]
}

// Midi is the MIDI key number (c4 = 60).
func (p Pitch) Midi() int {
	return (p.Octave+1)*12 + p.Index()
}

func (p Pitch) String() string {
	return fmt.Sprintf("%s%d", p.Name, p.Octave)
}

// Transpose moves the pitch by a signed number of semitones, carrying octave
// changes.
func (p Pitch) Transpose(semitones int) Pitch {
	idx := p.Index() + semitones
	note := idx % 12
	oct := idx / 12
	if note < 0 {
		note += 12
		oct--
	}
	return Pitch{Name: NotesSharp[note], Octave: p.Octave + oct}
}

// AtOctave returns the same pitch class at a different octave.
func (p Pitch) AtOctave(octave int) Pitch {
	return Pitch{Name: p.Name, Octave: octave}
}
