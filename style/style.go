// Package style defines composition style presets: meter, tempo, key,
// register, instrument, and the named pattern tables a composition draws on.
package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/codefugue/codefugue/score"
)

var ErrUnknownStyle = errors.New("unknown style")

// WeightedRhythm names a rhythm pattern with its selection weight.
type WeightedRhythm struct {
	Weight  int    `yaml:"weight"`
	Pattern string `yaml:"pattern"`
}

// WeightedMotif names a motif with its selection weight.
type WeightedMotif struct {
	Weight int    `yaml:"weight"`
	Motif  string `yaml:"motif"`
}

// Style is one preset. All pattern references are names resolved against the
// loaded libraries at startup.
type Style struct {
	Name               string           `yaml:"name"`
	TimeSignature      string           `yaml:"time_signature"`
	Tempo              int              `yaml:"tempo"`
	Key                string           `yaml:"key"`
	Scale              string           `yaml:"scale"`
	Octave             int              `yaml:"octave"`
	Instrument         string           `yaml:"instrument"`
	Progression        string           `yaml:"progression"`
	ProgressionSources []string         `yaml:"progression_sources"`
	BassPattern        string           `yaml:"bass_pattern"`
	RhythmWeights      []WeightedRhythm `yaml:"rhythm_weights"`
	MotifWeights       []WeightedMotif  `yaml:"motif_weights"`
}

// BarBeats is the bar length in quarter-note beats, derived from the time
// signature ("4/4" -> 4 quarters, "3/4" -> 3, "6/8" -> 3).
func (s Style) BarBeats() (score.Beats, error) {
	num, den, ok := strings.Cut(s.TimeSignature, "/")
	if !ok {
		return score.Beats{}, fmt.Errorf("malformed time signature %q", s.TimeSignature)
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil || n <= 0 {
		return score.Beats{}, fmt.Errorf("malformed time signature %q", s.TimeSignature)
	}
	d, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil || d <= 0 {
		return score.Beats{}, fmt.Errorf("malformed time signature %q", s.TimeSignature)
	}
	return score.BeatsOf(4*n, d), nil
}

// Overrides carries per-run adjustments from CLI flags or requests. Zero
// values leave the preset field untouched.
type Overrides struct {
	Key         string
	Scale       string
	Tempo       int
	Octave      int
	Instrument  string
	Progression string
	BassPattern string
}

// With clones the style and applies non-zero overrides.
func (s Style) With(o Overrides) Style {
	out := s
	if o.Key != "" {
		out.Key = o.Key
	}
	if o.Scale != "" {
		out.Scale = o.Scale
	}
	if o.Tempo > 0 {
		out.Tempo = o.Tempo
	}
	if o.Octave > 0 {
		out.Octave = o.Octave
	}
	if o.Instrument != "" {
		out.Instrument = o.Instrument
	}
	if o.Progression != "" {
		out.Progression = o.Progression
	}
	if o.BassPattern != "" {
		out.BassPattern = o.BassPattern
	}
	return out
}
