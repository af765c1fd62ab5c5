package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codefugue/codefugue/rhythm"
)

func TestLoadsEmbeddedLibraries(t *testing.T) {
	assert := assert.New(t)

	lib, err := Load()
	assert.NoError(err)

	assert.Contains(lib.Scales, "major")
	assert.Contains(lib.Scales, "minor")
	assert.Contains(lib.Scales, "gypsy_minor")
	assert.Contains(lib.Styles, "default")
	assert.Contains(lib.Styles, "jazz")
	assert.Contains(lib.Styles, "waltz")
	assert.Contains(lib.Progressions["major"], "pop")
	assert.NotEmpty(lib.Rhythms["4/4"])
	assert.NotEmpty(lib.Rhythms["3/4"])
	assert.NotEmpty(lib.Bass["4/4"])
	assert.NotEmpty(lib.Bass["3/4"])
}

func TestAllRhythmPatternsSumToTheirMeter(t *testing.T) {
	lib, err := Load()
	assert.NoError(t, err)

	for ts, table := range lib.Rhythms {
		target, err := meterBeats(ts)
		assert.NoError(t, err)
		for name, p := range table {
			assert.NoError(t, rhythm.Validate(p, target), "rhythm %s/%s", ts, name)
		}
	}
}

func TestEveryStyleResolvesCompletely(t *testing.T) {
	assert := assert.New(t)

	lib, err := Load()
	assert.NoError(err)

	for name, st := range lib.Styles {
		ws, err := lib.RhythmWeights(st)
		assert.NoError(err, "style %s", name)
		assert.NotEmpty(ws, "style %s", name)

		ms, err := lib.MotifWeights(st)
		assert.NoError(err, "style %s", name)
		assert.NotEmpty(ms, "style %s", name)

		bp, rp, err := lib.BassFor(st)
		assert.NoError(err, "style %s", name)
		assert.NotEmpty(bp.Slots, "style %s", name)
		assert.NotEmpty(rp.Durations, "style %s", name)

		_, ok := lib.LookupProgression(st.ProgressionSources, st.Progression)
		assert.True(ok, "style %s progression %s", name, st.Progression)
	}
}

func TestLookupProgressionSearchesSourcesInOrder(t *testing.T) {
	lib, err := Load()
	assert.NoError(t, err)

	text, ok := lib.LookupProgression([]string{"jazz", "major"}, "two_five_one")
	assert.True(t, ok)
	assert.Equal(t, "2min7-5dom7-1maj7", text)

	_, ok = lib.LookupProgression([]string{"major"}, "two_five_one")
	assert.False(t, ok)
}
