package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codefugue/codefugue/score"
	"github.com/codefugue/codefugue/theory"
)

func TestDurationTicks(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint32(1920), durationTicks(1))
	assert.Equal(uint32(960), durationTicks(2))
	assert.Equal(uint32(480), durationTicks(4))
	assert.Equal(uint32(240), durationTicks(8))
	assert.Equal(uint32(320), durationTicks(6))
	assert.Equal(uint32(160), durationTicks(12))
}

func onePianoBar(voices ...score.Voice) *score.Composition {
	bar := score.Bar{Num: 1, Parts: []score.Part{{Instrument: "piano", Voices: voices}}}
	return &score.Composition{
		Tempo:   120,
		Phrases: []score.Phrase{{Spans: []score.ChordSpan{{Bars: []score.Bar{bar}}}}},
	}
}

func TestRenderSMFOneTrackPerVoice(t *testing.T) {
	melody := score.Voice{{score.NewNote(theory.MustPitch("c", 4), 4, 80)}}
	bass := score.Voice{{score.NewNote(theory.MustPitch("c", 2), 1, 70)}}

	s := RenderSMF(onePianoBar(melody, bass))
	assert.Len(t, s.Tracks, 2)
}

func TestRenderSMFEmptyComposition(t *testing.T) {
	s := RenderSMF(&score.Composition{Tempo: 120})
	assert.Empty(t, s.Tracks)
}

func TestRenderSMFRestsBecomeDeltas(t *testing.T) {
	v := score.Voice{
		{score.NewRest(4)},
		{score.NewNote(theory.MustPitch("c", 4), 4, 80)},
	}
	s := RenderSMF(onePianoBar(v))

	// tempo, program change, note on (delta 480), note off, end of track
	track := s.Tracks[0]
	var sawDelayedOn bool
	for _, ev := range track {
		if ev.Delta == 480 {
			sawDelayedOn = true
		}
	}
	assert.True(t, sawDelayedOn)
}
