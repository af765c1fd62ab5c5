// Package composer maps a token stream onto a composition. The build runs in
// two passes: a structural skeleton (phrases, chord spans, bars) laid out
// from the progression and the token count, then a content pass filling each
// bar with melody and bass.
package composer

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/codefugue/codefugue/bass"
	"github.com/codefugue/codefugue/config"
	"github.com/codefugue/codefugue/frontend"
	"github.com/codefugue/codefugue/motif"
	"github.com/codefugue/codefugue/rhythm"
	"github.com/codefugue/codefugue/score"
	"github.com/codefugue/codefugue/style"
	"github.com/codefugue/codefugue/theory"
)

var (
	ErrEmptyTokenStream   = errors.New("empty token stream")
	ErrUnknownProgression = errors.New("unknown progression")
)

// melodyVolumes maps accent level to melody velocity.
var melodyVolumes = [4]int{75, 80, 85, 95}

// bassVolume is the base bass velocity; accents add 5 per level.
const bassVolume = 70

// Part selection for the output score.
const (
	PartsBoth   = "both"
	PartsMelody = "melody"
	PartsBass   = "bass"
)

// Options are the per-run knobs.
type Options struct {
	Seed         int64
	Parts        string // both, melody, bass
	IgnoreBad    bool   // treat malformed tokens like clean ones
	BarsPerToken int
}

// ResolveStyle looks a style preset up by name.
func ResolveStyle(lib *config.Library, name string) (style.Style, error) {
	st, ok := lib.Styles[name]
	if !ok {
		return style.Style{}, fmt.Errorf("%w: %q", style.ErrUnknownStyle, name)
	}
	return st, nil
}

// Compose builds the piece and serializes it. The same style, library,
// tokens, and options always yield byte-identical output.
func Compose(st style.Style, lib *config.Library, tokens []frontend.Token, opts Options) (string, *score.Composition, error) {
	tokens = frontend.Filter(tokens)
	if len(tokens) == 0 {
		return "", nil, ErrEmptyTokenStream
	}
	if opts.BarsPerToken <= 0 {
		opts.BarsPerToken = 1
	}
	if opts.Parts == "" {
		opts.Parts = PartsBoth
	}

	tonic, err := theory.NewPitch(st.Key, st.Octave)
	if err != nil {
		return "", nil, err
	}
	progText, err := resolveProgression(lib, st)
	if err != nil {
		return "", nil, err
	}
	prog, err := theory.GenProgression(tonic, st.Scale, progText, lib.Scales)
	if err != nil {
		return "", nil, err
	}
	if len(prog) == 0 {
		return "", nil, fmt.Errorf("%w: %q is empty", ErrUnknownProgression, st.Progression)
	}
	scalePitches, err := theory.GetScale(tonic, st.Scale, lib.Scales)
	if err != nil {
		return "", nil, err
	}
	target, err := st.BarBeats()
	if err != nil {
		return "", nil, err
	}
	rhythmWeights, err := lib.RhythmWeights(st)
	if err != nil {
		return "", nil, err
	}
	motifWeights, err := lib.MotifWeights(st)
	if err != nil {
		return "", nil, err
	}
	bassPattern, bassRhythm, err := lib.BassFor(st)
	if err != nil {
		return "", nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	comp := &score.Composition{
		Tempo:  st.Tempo,
		Style:  st.Name,
		Key:    tonic.Name,
		Scale:  st.Scale,
		Tokens: tokens,
	}
	buildSkeleton(comp, prog, len(tokens), opts.BarsPerToken)

	gen := &barGen{
		style:         st,
		opts:          opts,
		target:        target,
		scalePitches:  scalePitches,
		rhythmWeights: rhythmWeights,
		motifWeights:  motifWeights,
		bassPattern:   bassPattern,
		bassRhythm:    bassRhythm,
		rng:           rng,
	}
	for pi := range comp.Phrases {
		for si := range comp.Phrases[pi].Spans {
			span := &comp.Phrases[pi].Spans[si]
			level := 0
			if span.TokenIdx >= 0 {
				level = tokens[span.TokenIdx].Level
			}
			for bi := range span.Bars {
				gen.fill(&span.Bars[bi], span.Chord, level)
			}
		}
	}

	return score.RenderScore(comp), comp, nil
}

// resolveProgression looks the style's progression up in its source
// collections, falling back to treating the string as a literal progression
// when it contains a degree digit.
func resolveProgression(lib *config.Library, st style.Style) (string, error) {
	if text, ok := lib.LookupProgression(st.ProgressionSources, st.Progression); ok {
		return text, nil
	}
	if strings.ContainsAny(st.Progression, "1234567") {
		return st.Progression, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProgression, st.Progression)
}

// buildSkeleton lays out phrases and chord spans. A phrase holds the
// progression length rounded up to a multiple of 4 spans; spans cycle the
// progression and take tokens in stream order, padding with TokenIdx -1 once
// the stream runs out.
func buildSkeleton(comp *score.Composition, prog theory.Progression, numTokens, barsPerToken int) {
	spansPerPhrase := ((len(prog) + 3) / 4) * 4
	numPhrases := (numTokens + spansPerPhrase - 1) / spansPerPhrase

	barNum := 1
	for pi := 0; pi < numPhrases; pi++ {
		phrase := score.Phrase{Index: pi}
		for si := 0; si < spansPerPhrase; si++ {
			tokenIdx := pi*spansPerPhrase + si
			if tokenIdx >= numTokens {
				tokenIdx = -1
			}
			pc := prog[si%len(prog)]
			span := score.ChordSpan{
				TokenIdx:  tokenIdx,
				ChordName: pc.Symbol,
				Chord:     pc.Chord,
			}
			for b := 0; b < barsPerToken; b++ {
				span.Bars = append(span.Bars, score.Bar{
					Num:       barNum,
					PhraseIdx: pi,
					ChordIdx:  si,
					ChordName: pc.Symbol,
					Chord:     pc.Chord,
				})
				barNum++
			}
			phrase.Spans = append(phrase.Spans, span)
		}
		comp.Phrases = append(comp.Phrases, phrase)
	}
}

// barGen carries the content-pass state shared across bars.
type barGen struct {
	style         style.Style
	opts          Options
	target        score.Beats
	scalePitches  []theory.Pitch
	rhythmWeights []rhythm.Weighted
	motifWeights  []motif.Weighted
	bassPattern   bass.Pattern
	bassRhythm    rhythm.Pattern
	rng           *rand.Rand
}

// fill populates one bar's parts. Token complexity picks the melody
// strategy: clean tokens get the weighted motif melody, malformed ones the
// fixed ornament; level 2 also darkens the harmony with a flattened fifth.
func (g *barGen) fill(bar *score.Bar, chord theory.Chord, level int) {
	barChord := chord
	if !g.opts.IgnoreBad && level >= 2 {
		barChord = theory.VaryChord(chord)
	}

	var melody score.Voice
	if g.opts.IgnoreBad || level <= 0 {
		melody = g.genBarMelody(barChord)
	} else {
		melody = g.genBarFancy(barChord)
	}
	bassVoice := bass.GenerateBar(g.bassPattern, g.bassRhythm, g.target, bassVolume, g.style.Octave-2, barChord)

	bar.Parts = assembleParts(g.style.Instrument, g.opts.Parts, melody, bassVoice)
}

// genBarMelody is the weighted strategy: one rhythm pattern, one motif
// generator, one pitch per rhythm slot.
func (g *barGen) genBarMelody(chord theory.Chord) score.Voice {
	rp := rhythm.Choose(g.rng, g.rhythmWeights)
	mw := motif.Choose(g.rng, g.motifWeights)
	gen, err := motif.New(mw.Spec, chord, g.scalePitches, g.style.Octave, g.rng)
	if err != nil {
		// validated at load time; fall back to rests
		return score.PadToTarget(nil, g.target)
	}

	var voice score.Voice
	for i, d := range rp.Durations {
		pitch := gen.Next()
		velocity := melodyVolumes[rp.Accent(i)]
		voice = append(voice, score.NoteGroup{score.NewNote(pitch, d, velocity)})
	}
	return score.PadToTarget(voice, g.target)
}

// genBarFancy is the fixed ornament for malformed tokens: a fast arpeggio
// run in tuplets of the chord size, either stacked straight up the octaves
// or up to a peak and back down. The shape is a coin flip; everything else
// is fixed.
func (g *barGen) genBarFancy(chord theory.Chord) score.Voice {
	n := len(chord)
	if n == 0 {
		return score.PadToTarget(nil, g.target)
	}
	repeats := 3
	if g.target.Cmp(score.BeatsOf(4, 1)) == 0 {
		repeats = 4
	}
	duration := n * 4
	count := n * repeats

	ladder := chordLadder(chord, g.style.Octave)
	var pitches []theory.Pitch
	if g.rng.Intn(2) == 0 {
		pitches = ladder
	} else {
		pitches = upPeakDown(ladder)
	}
	if count > len(pitches) {
		count = len(pitches)
	}

	var voice score.Voice
	for i := 0; i < count; i++ {
		accent := 2
		if i%n == 0 {
			accent = 3
		}
		voice = append(voice, score.NoteGroup{score.NewNote(pitches[i], duration, melodyVolumes[accent])})
	}
	return score.PadToTarget(voice, g.target)
}

// chordLadder stacks the chord tones ascending across four octaves around
// the melody register.
func chordLadder(chord theory.Chord, octave int) []theory.Pitch {
	root := chord[0]
	var ladder []theory.Pitch
	for o := octave - 1; o <= octave+2; o++ {
		shift := (o - root.Octave) * 12
		for _, p := range chord {
			ladder = append(ladder, p.Transpose(shift))
		}
	}
	return ladder
}

// upPeakDown folds the ladder: ascend through its lower half, then walk back
// down from the peak.
func upPeakDown(ladder []theory.Pitch) []theory.Pitch {
	peak := len(ladder)/2 + 1
	if peak > len(ladder) {
		peak = len(ladder)
	}
	out := make([]theory.Pitch, 0, 2*peak)
	out = append(out, ladder[:peak]...)
	for i := peak - 2; i >= 0; i-- {
		out = append(out, ladder[i])
	}
	return out
}

// assembleParts maps voices to instruments. A non-piano melody instrument
// gets its own part with the bass on piano; piano carries both voices in one
// part.
func assembleParts(instrument, parts string, melody, bassVoice score.Voice) []score.Part {
	switch parts {
	case PartsMelody:
		return []score.Part{{Instrument: instrument, Voices: []score.Voice{melody}}}
	case PartsBass:
		return []score.Part{{Instrument: "piano", Voices: []score.Voice{bassVoice}}}
	}
	if instrument != "piano" {
		return []score.Part{
			{Instrument: instrument, Voices: []score.Voice{melody}},
			{Instrument: "piano", Voices: []score.Voice{bassVoice}},
		}
	}
	return []score.Part{{Instrument: "piano", Voices: []score.Voice{melody, bassVoice}}}
}
