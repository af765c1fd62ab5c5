package theory

import (
	"fmt"
	"strconv"
	"strings"
)

// majorSemitones maps diatonic degrees 1..7 onto semitone offsets from the
// tonic.
var majorSemitones = []int{0, 2, 4, 5, 7, 9, 11}

// ScaleDegree is a position relative to the tonic: a number >= 1 plus an
// accidental (-1 flat, 0 natural, +1 sharp). Degrees 1-7 address one octave;
// 9, 11, 13 address compound intervals (2, 4, 6 raised one octave).
type ScaleDegree struct {
	Number     int
	Accidental int
}

// Semitones converts the degree to a semitone offset from the tonic, based
// on the major-scale mapping.
func (d ScaleDegree) Semitones() int {
	var base int
	if d.Number <= 7 {
		base = majorSemitones[d.Number-1]
	} else {
		folded := (d.Number-1)%7 + 1
		octaves := (d.Number - 1) / 7
		base = majorSemitones[folded-1] + 12*octaves
	}
	return base + d.Accidental
}

func (d ScaleDegree) String() string {
	switch d.Accidental {
	case -1:
		return fmt.Sprintf("b%d", d.Number)
	case 1:
		return fmt.Sprintf("#%d", d.Number)
	default:
		return strconv.Itoa(d.Number)
	}
}

// ParseDegree reads degrees like "1", "b3", "#4", "9", "b13".
func ParseDegree(s string) (ScaleDegree, error) {
	t := strings.TrimSpace(s)
	accidental := 0
	if strings.HasPrefix(t, "b") && len(t) > 1 {
		accidental = -1
		t = t[1:]
	} else if strings.HasPrefix(t, "#") {
		accidental = 1
		t = t[1:]
	}
	number, err := strconv.Atoi(t)
	if err != nil {
		return ScaleDegree{}, fmt.Errorf("bad scale degree %q: %w", s, err)
	}
	if number < 1 {
		return ScaleDegree{}, fmt.Errorf("scale degree must be >= 1, got %d", number)
	}
	return ScaleDegree{Number: number, Accidental: accidental}, nil
}

// Deg is a shorthand constructor for degree tables.
func Deg(number, accidental int) ScaleDegree {
	return ScaleDegree{Number: number, Accidental: accidental}
}
