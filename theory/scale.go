package theory

import (
	"errors"
	"fmt"
)

var ErrUnknownScale = errors.New("unknown scale")

// Intervals converts an ordered degree table into semitone deltas between
// consecutive degrees.
func Intervals(degrees []ScaleDegree) []int {
	if len(degrees) == 0 {
		return nil
	}
	intervals := make([]int, 0, len(degrees)-1)
	prev := degrees[0].Semitones()
	for _, d := range degrees[1:] {
		cur := d.Semitones()
		intervals = append(intervals, cur-prev)
		prev = cur
	}
	return intervals
}

// BuildScale walks the intervals upward from the tonic, producing one
// ascending octave of scale pitches.
func BuildScale(tonic Pitch, intervals []int) []Pitch {
	pitches := make([]Pitch, 0, len(intervals)+1)
	pitches = append(pitches, tonic)
	cur := tonic
	for _, step := range intervals {
		cur = cur.Transpose(step)
		pitches = append(pitches, cur)
	}
	return pitches
}

// GetScale looks the scale name up in the degree table registry and builds
// its pitches from the tonic.
func GetScale(tonic Pitch, name string, scales map[string][]ScaleDegree) ([]Pitch, error) {
	degrees, ok := scales[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, name)
	}
	return BuildScale(tonic, Intervals(degrees)), nil
}

// PitchForDegree resolves a degree against the scale. A degree present in
// the scale's table maps to its scale pitch; anything else (a chromatic
// degree, or one missing from an exotic scale) is transposed directly from
// the tonic.
func PitchForDegree(target ScaleDegree, tonic Pitch, pitches []Pitch, degrees []ScaleDegree) Pitch {
	for i, d := range degrees {
		if d == target && i < len(pitches) {
			return pitches[i]
		}
	}
	return tonic.Transpose(target.Semitones())
}

// ScaleSequence is the test-mode sequence: two octaves up, a held peak, then
// back down to the tonic.
func ScaleSequence(tonic Pitch, name string, scales map[string][]ScaleDegree) ([]Pitch, error) {
	base, err := GetScale(tonic, name, scales)
	if err != nil {
		return nil, err
	}
	upper := make([]Pitch, len(base))
	for i, p := range base {
		upper[i] = p.Transpose(12)
	}

	var seq []Pitch
	seq = append(seq, base...)
	seq = append(seq, upper...)
	seq = append(seq, tonic.Transpose(24), tonic.Transpose(24))
	for i := len(upper) - 1; i >= 0; i-- {
		seq = append(seq, upper[i])
	}
	for i := len(base) - 1; i >= 0; i-- {
		seq = append(seq, base[i])
	}
	return seq, nil
}
