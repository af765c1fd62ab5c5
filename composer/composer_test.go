package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codefugue/codefugue/config"
	"github.com/codefugue/codefugue/frontend"
	"github.com/codefugue/codefugue/score"
	"github.com/codefugue/codefugue/style"
)

const sampleC = `
int main(void) {
    int total = 0;
    for (int i = 0; i < 10; i++) {
        total += i;
    }
    return total;
}
`

func loadLib(t *testing.T) *config.Library {
	t.Helper()
	lib, err := config.Load()
	require.NoError(t, err)
	return lib
}

func defaultStyle(t *testing.T, lib *config.Library) style.Style {
	t.Helper()
	st, err := ResolveStyle(lib, "default")
	require.NoError(t, err)
	return st
}

func TestComposeIsDeterministicUnderSeed(t *testing.T) {
	lib := loadLib(t)
	st := defaultStyle(t, lib)
	tokens := frontend.Lex(sampleC, "c")
	opts := Options{Seed: 42}

	text1, _, err := Compose(st, lib, tokens, opts)
	require.NoError(t, err)
	text2, _, err := Compose(st, lib, tokens, opts)
	require.NoError(t, err)

	assert.Equal(t, text1, text2)
}

func TestComposeDifferentSeedsDiffer(t *testing.T) {
	lib := loadLib(t)
	st := defaultStyle(t, lib)
	tokens := frontend.Lex(sampleC, "c")

	text1, _, err := Compose(st, lib, tokens, Options{Seed: 1})
	require.NoError(t, err)
	text2, _, err := Compose(st, lib, tokens, Options{Seed: 2})
	require.NoError(t, err)

	assert.NotEqual(t, text1, text2)
}

func TestComposeEmptyStreamErrors(t *testing.T) {
	lib := loadLib(t)
	st := defaultStyle(t, lib)

	_, _, err := Compose(st, lib, nil, Options{})
	assert.ErrorIs(t, err, ErrEmptyTokenStream)

	_, _, err = Compose(st, lib, frontend.Lex("   ", "c"), Options{})
	assert.ErrorIs(t, err, ErrEmptyTokenStream)
}

func TestSkeletonBarCount(t *testing.T) {
	lib := loadLib(t)
	st := defaultStyle(t, lib) // progression pop has 4 chords

	tokens := frontend.Lex("int a = 1;", "c") // 5 tokens
	_, comp, err := Compose(st, lib, tokens, Options{})
	require.NoError(t, err)

	// 5 tokens over 4 spans per phrase: 2 phrases, 8 spans, 8 bars
	assert.Equal(t, 2, comp.NumPhrases())
	assert.Equal(t, 8, comp.NumBars())

	// trailing spans are padding
	last := comp.Phrases[1].Spans[3]
	assert.Equal(t, -1, last.TokenIdx)
	assert.Equal(t, 0, comp.Phrases[0].Spans[0].TokenIdx)
}

func TestBarsPerTokenMultipliesBars(t *testing.T) {
	lib := loadLib(t)
	st := defaultStyle(t, lib)

	tokens := frontend.Lex("int a = 1;", "c")
	_, comp, err := Compose(st, lib, tokens, Options{BarsPerToken: 2})
	require.NoError(t, err)

	assert.Equal(t, 16, comp.NumBars())
}

func TestSpansCycleTheProgression(t *testing.T) {
	lib := loadLib(t)
	st := defaultStyle(t, lib)

	tokens := frontend.Lex(sampleC, "c")
	_, comp, err := Compose(st, lib, tokens, Options{})
	require.NoError(t, err)

	// pop = 1-5-6min-4 in C major: roots c g a f, cycled each phrase
	for _, phrase := range comp.Phrases {
		assert.Equal(t, "1", phrase.Spans[0].ChordName)
		assert.Equal(t, "5", phrase.Spans[1].ChordName)
		assert.Equal(t, "6min", phrase.Spans[2].ChordName)
		assert.Equal(t, "4", phrase.Spans[3].ChordName)
		assert.Equal(t, "c", phrase.Spans[0].Chord[0].Name)
		assert.Equal(t, "g", phrase.Spans[1].Chord[0].Name)
		assert.Equal(t, "a", phrase.Spans[2].Chord[0].Name)
		assert.Equal(t, "f", phrase.Spans[3].Chord[0].Name)
	}
}

func TestEveryVoiceFillsItsBar(t *testing.T) {
	lib := loadLib(t)
	tokens := frontend.Lex(sampleC, "c")

	for _, styleName := range []string{"default", "jazz", "waltz", "minuet", "nocturne"} {
		st, err := ResolveStyle(lib, styleName)
		require.NoError(t, err)
		target, err := st.BarBeats()
		require.NoError(t, err)

		_, comp, err := Compose(st, lib, tokens, Options{Seed: 9})
		require.NoError(t, err, "style %s", styleName)

		for _, bar := range comp.AllBars() {
			for _, part := range bar.Parts {
				for _, voice := range part.Voices {
					assert.Equal(t, 0, voice.SumBeats().Cmp(target),
						"style %s bar %d", styleName, bar.Num)
				}
			}
		}
	}
}

func TestNonPianoInstrumentSplitsParts(t *testing.T) {
	lib := loadLib(t)
	tokens := frontend.Lex(sampleC, "c")

	st, err := ResolveStyle(lib, "jazz") // violin melody
	require.NoError(t, err)
	_, comp, err := Compose(st, lib, tokens, Options{})
	require.NoError(t, err)

	bar := comp.AllBars()[0]
	require.Len(t, bar.Parts, 2)
	assert.Equal(t, "violin", bar.Parts[0].Instrument)
	assert.Len(t, bar.Parts[0].Voices, 1)
	assert.Equal(t, "piano", bar.Parts[1].Instrument)
}

func TestPianoCarriesBothVoices(t *testing.T) {
	lib := loadLib(t)
	st := defaultStyle(t, lib)
	tokens := frontend.Lex(sampleC, "c")

	_, comp, err := Compose(st, lib, tokens, Options{})
	require.NoError(t, err)

	bar := comp.AllBars()[0]
	require.Len(t, bar.Parts, 1)
	assert.Equal(t, "piano", bar.Parts[0].Instrument)
	assert.Len(t, bar.Parts[0].Voices, 2)
}

func TestPartsFilter(t *testing.T) {
	lib := loadLib(t)
	st := defaultStyle(t, lib)
	tokens := frontend.Lex(sampleC, "c")

	_, comp, err := Compose(st, lib, tokens, Options{Parts: PartsMelody})
	require.NoError(t, err)
	bar := comp.AllBars()[0]
	require.Len(t, bar.Parts, 1)
	assert.Len(t, bar.Parts[0].Voices, 1)

	_, comp, err = Compose(st, lib, tokens, Options{Parts: PartsBass})
	require.NoError(t, err)
	bar = comp.AllBars()[0]
	require.Len(t, bar.Parts, 1)
	assert.Equal(t, "piano", bar.Parts[0].Instrument)
}

func TestLiteralProgressionOverride(t *testing.T) {
	lib := loadLib(t)
	st := defaultStyle(t, lib).With(style.Overrides{Progression: "1-4"})
	tokens := frontend.Lex(sampleC, "c")

	_, comp, err := Compose(st, lib, tokens, Options{})
	require.NoError(t, err)

	// a 2-chord progression still rounds up to 4 spans per phrase
	assert.Len(t, comp.Phrases[0].Spans, 4)
	assert.Equal(t, "1", comp.Phrases[0].Spans[0].ChordName)
	assert.Equal(t, "4", comp.Phrases[0].Spans[1].ChordName)
	assert.Equal(t, "1", comp.Phrases[0].Spans[2].ChordName)
}

func TestUnknownProgressionErrors(t *testing.T) {
	lib := loadLib(t)
	st := defaultStyle(t, lib).With(style.Overrides{Progression: "nonexistent"})

	_, _, err := Compose(st, lib, frontend.Lex("int a;", "c"), Options{})
	assert.ErrorIs(t, err, ErrUnknownProgression)
}

func TestUnknownStyleErrors(t *testing.T) {
	lib := loadLib(t)
	_, err := ResolveStyle(lib, "dubstep")
	assert.ErrorIs(t, err, style.ErrUnknownStyle)
}

func TestMalformedTokensStillCompose(t *testing.T) {
	lib := loadLib(t)
	st := defaultStyle(t, lib)
	tokens := frontend.Lex(`char *s = "never closed`, "c")

	text, comp, err := Compose(st, lib, tokens, Options{Seed: 5})
	require.NoError(t, err)
	assert.NotEmpty(t, text)

	target, _ := st.BarBeats()
	for _, bar := range comp.AllBars() {
		for _, part := range bar.Parts {
			for _, voice := range part.Voices {
				assert.Equal(t, 0, voice.SumBeats().Cmp(target))
			}
		}
	}
}

func TestIgnoreBadMatchesCleanStrategy(t *testing.T) {
	lib := loadLib(t)
	st := defaultStyle(t, lib)

	// identical shapes, one with a malformed literal
	clean := frontend.Lex("x = \"ok\";", "c")
	bad := frontend.Lex("x = \"ok\n;", "c")
	require.Equal(t, len(clean), len(bad))

	textClean, _, err := Compose(st, lib, clean, Options{Seed: 11, IgnoreBad: true})
	require.NoError(t, err)
	textBad, _, err := Compose(st, lib, bad, Options{Seed: 11, IgnoreBad: true})
	require.NoError(t, err)

	assert.Equal(t, textClean, textBad)
}

func TestRenderedScoreMatchesComposition(t *testing.T) {
	lib := loadLib(t)
	st := defaultStyle(t, lib)
	tokens := frontend.Lex(sampleC, "c")

	text, comp, err := Compose(st, lib, tokens, Options{Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, score.RenderScore(comp), text)
}
