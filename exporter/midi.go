// Package exporter turns a composition into playable artifacts: a native
// Standard MIDI File, an Alda source file, and subprocess pipelines for
// audio rendering and playback.
package exporter

import (
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/codefugue/codefugue/score"
)

// ticksPerQuarter is the SMF resolution. A duration denominator d spans
// 4/d quarter notes, so 1920/d ticks.
const ticksPerQuarter = 480

// gmPrograms maps the instrument names the styles use onto General MIDI
// program numbers. Unknown names fall back to piano.
var gmPrograms = map[string]uint8{
	"piano":   0,
	"guitar":  24,
	"violin":  40,
	"cello":   42,
	"trumpet": 56,
	"flute":   73,
}

func durationTicks(d int) uint32 {
	whole := 4 * ticksPerQuarter
	return uint32((whole + d/2) / d)
}

// RenderSMF builds a multi-track SMF: one track per voice, tempo on the
// first.
func RenderSMF(c *score.Composition) *smf.SMF {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	bars := c.AllBars()
	if len(bars) == 0 {
		return &s
	}

	channel := uint8(0)
	first := true
	for pi, part := range bars[0].Parts {
		program := gmPrograms[part.Instrument]
		for vi := range part.Voices {
			var track smf.Track
			if first {
				track.Add(0, smf.MetaTempo(float64(c.Tempo)))
				first = false
			}
			track.Add(0, midi.ProgramChange(channel, program))
			renderVoiceTrack(&track, bars, pi, vi, channel)
			track.Close(0)
			s.Tracks = append(s.Tracks, track)
			if channel < 15 {
				channel++
			}
		}
	}
	return &s
}

func renderVoiceTrack(track *smf.Track, bars []score.Bar, pi, vi int, channel uint8) {
	var pending uint32
	for _, bar := range bars {
		for _, group := range bar.Parts[pi].Voices[vi] {
			if len(group) == 0 {
				continue
			}
			ticks := durationTicks(group[0].Duration)
			if group[0].IsRest() && len(group) == 1 {
				pending += ticks
				continue
			}
			delta := pending
			pending = 0
			sounding := 0
			for _, n := range group {
				if n.IsRest() {
					continue
				}
				track.Add(delta, midi.NoteOn(channel, uint8(n.Pitch.Midi()), uint8(n.Velocity)))
				delta = 0
				sounding++
			}
			if sounding == 0 {
				pending += ticks
				continue
			}
			off := ticks
			for _, n := range group {
				if n.IsRest() {
					continue
				}
				track.Add(off, midi.NoteOff(channel, uint8(n.Pitch.Midi())))
				off = 0
			}
		}
	}
}

// WriteMIDIFile renders the composition and writes it as an SMF.
func WriteMIDIFile(c *score.Composition, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = RenderSMF(c).WriteTo(f)
	return err
}
