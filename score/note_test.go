package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codefugue/codefugue/theory"
)

func TestFillRestsGreedyOrder(t *testing.T) {
	assert := assert.New(t)

	// 4 beats: one half rest then one quarter... half covers 2, then 2 more
	assert.Equal([]int{2, 2}, FillRests(BeatsOf(4, 1)))
	assert.Equal([]int{2, 4}, FillRests(BeatsOf(3, 1)))
	assert.Equal([]int{4, 8}, FillRests(BeatsOf(3, 2)))
	assert.Equal([]int{6}, FillRests(BeatsOf(2, 3)))
	assert.Empty(FillRests(BeatsOf(0, 1)))
}

func TestPadToTargetTopsUpShortVoices(t *testing.T) {
	assert := assert.New(t)

	v := Voice{
		{NewNote(theory.MustPitch("c", 4), 4, 80)},
		{NewNote(theory.MustPitch("d", 4), 4, 80)},
	}
	padded := PadToTarget(v, BeatsOf(4, 1))
	assert.Equal(0, padded.SumBeats().Cmp(BeatsOf(4, 1)))
	assert.True(padded[len(padded)-1][0].IsRest())
}

func TestPadToTargetLeavesFullVoicesAlone(t *testing.T) {
	v := Voice{{NewNote(theory.MustPitch("c", 4), 1, 80)}}
	assert.Equal(t, v, PadToTarget(v, BeatsOf(4, 1)))
}
