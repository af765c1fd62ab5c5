package bass

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codefugue/codefugue/rhythm"
	"github.com/codefugue/codefugue/score"
	"github.com/codefugue/codefugue/theory"
)

func cTriad() theory.Chord {
	return theory.Chord{theory.MustPitch("c", 4), theory.MustPitch("e", 4), theory.MustPitch("g", 4)}
}

func TestBlockStacksWholeChord(t *testing.T) {
	assert := assert.New(t)

	p := Pattern{Slots: [][]int{{0}}, Rhythm: "whole"}
	rp := rhythm.Pattern{Durations: []int{1}, Accents: []int{3}}
	voice := GenerateBar(p, rp, score.BeatsOf(4, 1), 70, 2, cTriad())

	assert.Len(voice, 1)
	assert.Len(voice[0], 3)
	assert.Equal(theory.MustPitch("c", 2), *voice[0][0].Pitch)
	assert.Equal(theory.MustPitch("e", 2), *voice[0][1].Pitch)
	assert.Equal(theory.MustPitch("g", 2), *voice[0][2].Pitch)
	assert.Equal(85, voice[0][0].Velocity)
}

func TestSlotsIndexChordTonesModulo(t *testing.T) {
	assert := assert.New(t)

	p := Pattern{Slots: [][]int{{1}, {2}, {3}, {4}}, Rhythm: "four_quarters"}
	rp := rhythm.Pattern{Durations: []int{4, 4, 4, 4}, Accents: []int{3, 1, 2, 1}}
	voice := GenerateBar(p, rp, score.BeatsOf(4, 1), 70, 2, cTriad())

	assert.Equal(theory.MustPitch("c", 2), *voice[0][0].Pitch)
	assert.Equal(theory.MustPitch("e", 2), *voice[1][0].Pitch)
	assert.Equal(theory.MustPitch("g", 2), *voice[2][0].Pitch)
	// slot 4 wraps back to the root
	assert.Equal(theory.MustPitch("c", 2), *voice[3][0].Pitch)
}

func TestAccentsScaleVelocity(t *testing.T) {
	p := Pattern{Slots: [][]int{{1}, {1}}, Rhythm: "two_halves"}
	rp := rhythm.Pattern{Durations: []int{2, 2}, Accents: []int{3, 0}}
	voice := GenerateBar(p, rp, score.BeatsOf(4, 1), 70, 2, cTriad())

	assert.Equal(t, 85, voice[0][0].Velocity)
	assert.Equal(t, 70, voice[1][0].Velocity)
}

func TestShortTemplateIsPaddedWithRests(t *testing.T) {
	assert := assert.New(t)

	p := Pattern{Slots: [][]int{{1}}, Rhythm: "four_quarters"}
	rp := rhythm.Pattern{Durations: []int{4, 4, 4, 4}, Accents: []int{3, 1, 2, 1}}
	voice := GenerateBar(p, rp, score.BeatsOf(4, 1), 70, 2, cTriad())

	assert.Equal(0, voice.SumBeats().Cmp(score.BeatsOf(4, 1)))
	assert.True(voice[len(voice)-1][0].IsRest())
}

func TestWaltzBarSumsToThreeBeats(t *testing.T) {
	p := Pattern{Slots: [][]int{{1}, {2, 3}, {2, 3}}, Rhythm: "three_quarters"}
	rp := rhythm.Pattern{Durations: []int{4, 4, 4}, Accents: []int{3, 1, 1}}
	voice := GenerateBar(p, rp, score.BeatsOf(3, 1), 70, 2, cTriad())

	assert.Equal(t, 0, voice.SumBeats().Cmp(score.BeatsOf(3, 1)))
	assert.Len(t, voice[1], 2)
}

func TestLookupUnknownPattern(t *testing.T) {
	_, err := Lookup(map[string]Pattern{}, "nope")
	assert.ErrorIs(t, err, ErrUnknownPattern)
}
