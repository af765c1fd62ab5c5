package theory

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ProgressionChord pairs the source symbol with the realized chord.
type ProgressionChord struct {
	Symbol string
	Chord  Chord
}

// Progression is an ordered chord cycle parsed from dash-separated symbols
// like "1-6min-4-5" or "2min7-5dom7-1maj7".
type Progression []ProgressionChord

var progressionTokenRe = regexp.MustCompile(`^([b#]?)(\d+)(.*)$`)

// ParseProgressionToken splits a symbol into its degree and chord formula.
// An empty chord-type suffix resolves to a major triad.
func ParseProgressionToken(tok string) (ScaleDegree, []ScaleDegree, error) {
	t := strings.TrimSpace(tok)
	m := progressionTokenRe.FindStringSubmatch(t)
	if m == nil {
		return ScaleDegree{}, nil, fmt.Errorf("bad progression symbol %q", tok)
	}

	accidental := 0
	switch m[1] {
	case "b":
		accidental = -1
	case "#":
		accidental = 1
	}
	number, err := strconv.Atoi(m[2])
	if err != nil || number < 1 {
		return ScaleDegree{}, nil, fmt.Errorf("bad degree in progression symbol %q", tok)
	}

	suffix := m[3]
	if suffix == "" {
		suffix = "maj"
	}
	formula, ok := ChordFormulas[suffix]
	if !ok {
		return ScaleDegree{}, nil, fmt.Errorf("%w: %q", ErrUnknownChordType, suffix)
	}
	return ScaleDegree{Number: number, Accidental: accidental}, formula, nil
}

// GenProgression realizes a dash-separated progression against a tonic and
// scale. Degree roots found in the scale's degree table use the scale pitch;
// chromatic degrees transpose directly from the tonic.
func GenProgression(tonic Pitch, scaleName, progression string, scales map[string][]ScaleDegree) (Progression, error) {
	pitches, err := GetScale(tonic, scaleName, scales)
	if err != nil {
		return nil, err
	}
	degrees := scales[scaleName]

	var chords Progression
	for _, tok := range strings.Split(progression, "-") {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		degree, formula, err := ParseProgressionToken(tok)
		if err != nil {
			return nil, err
		}
		root := PitchForDegree(degree, tonic, pitches, degrees)
		chords = append(chords, ProgressionChord{Symbol: tok, Chord: BuildChord(root, formula)})
	}
	return chords, nil
}
