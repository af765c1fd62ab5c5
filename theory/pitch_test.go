package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizesFlatsToSharps(t *testing.T) {
	assert := assert.New(t)
	for flat, sharp := range map[string]string{
		"bb": "a#", "db": "c#", "eb": "d#", "gb": "f#", "ab": "g#",
		"cb": "b", "fb": "e", "b#": "c", "e#": "f",
	} {
		got, err := Normalize(flat)
		assert.NoError(err)
		assert.Equal(sharp, got)
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	_, err := Normalize("h")
	assert.ErrorIs(t, err, ErrInvalidPitchName)
}

func TestTransposeCarriesOctaveUp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(MustPitch("c", 5), MustPitch("b", 4).Transpose(1))
	assert.Equal(MustPitch("c", 5), MustPitch("c", 4).Transpose(12))
	assert.Equal(MustPitch("f#", 4), MustPitch("c", 4).Transpose(6))
}

func TestTransposeCarriesOctaveDown(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(MustPitch("b", 3), MustPitch("c", 4).Transpose(-1))
	assert.Equal(MustPitch("a", 2), MustPitch("c", 4).Transpose(-15))
}

func TestMidiNumbers(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(60, MustPitch("c", 4).Midi())
	assert.Equal(69, MustPitch("a", 4).Midi())
	assert.Equal(21, MustPitch("a", 0).Midi())
}
