package score

import (
	"fmt"
	"strings"

	"github.com/codefugue/codefugue/frontend"
	"github.com/codefugue/codefugue/theory"
)

// Part is one instrument's voices within a bar. Parts are an ordered slice,
// not a map, so serialization never depends on iteration order.
type Part struct {
	Instrument string
	Voices     []Voice
}

// Bar is one measure: the atomic unit of generated content. Bars are built
// once, fully populated, and never mutated afterwards.
type Bar struct {
	Num       int // global bar number, starting at 1
	PhraseIdx int
	ChordIdx  int // chord slot index within the phrase
	ChordName string
	Chord     theory.Chord
	Parts     []Part
}

// ChordSpan is the run of bars governed by one chord, tied to one source
// token. TokenIdx is -1 for padding spans past the end of the stream.
type ChordSpan struct {
	TokenIdx  int
	ChordName string
	Chord     theory.Chord
	Bars      []Bar
}

func (s ChordSpan) NumBars() int {
	return len(s.Bars)
}

// Phrase is one full cycle of the harmonic progression: its span count is
// the progression length rounded up to a multiple of 4.
type Phrase struct {
	Index int
	Spans []ChordSpan
}

func (p Phrase) NumBars() int {
	n := 0
	for _, s := range p.Spans {
		n += s.NumBars()
	}
	return n
}

// Composition is the fully built piece. Immutable once built; serialization
// is a pure function of this tree.
type Composition struct {
	Tempo   int
	Style   string
	Key     string
	Scale   string
	Phrases []Phrase
	Tokens  []frontend.Token
}

func (c *Composition) NumPhrases() int {
	return len(c.Phrases)
}

func (c *Composition) NumBars() int {
	n := 0
	for _, p := range c.Phrases {
		n += p.NumBars()
	}
	return n
}

// AllBars flattens the tree into bar order.
func (c *Composition) AllBars() []Bar {
	var bars []Bar
	for _, p := range c.Phrases {
		for _, s := range p.Spans {
			bars = append(bars, s.Bars...)
		}
	}
	return bars
}

// Summary is a compact phrase/span/bar listing for verbose CLI output.
func (c *Composition) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s composition | key %s %s | tempo %d BPM\n", c.Style, c.Key, c.Scale, c.Tempo)
	fmt.Fprintf(&b, "%d phrases, %d bars, %d tokens\n", c.NumPhrases(), c.NumBars(), len(c.Tokens))
	for _, p := range c.Phrases {
		fmt.Fprintf(&b, "phrase %d (%d spans, %d bars)\n", p.Index, len(p.Spans), p.NumBars())
		for _, s := range p.Spans {
			tokenInfo := "PAD"
			if s.TokenIdx >= 0 && s.TokenIdx < len(c.Tokens) {
				tok := c.Tokens[s.TokenIdx]
				tokenInfo = fmt.Sprintf("#%d:%s(%.12q)", s.TokenIdx, tok.Type, tok.Value)
			}
			names := make([]string, len(s.Chord))
			for i, pch := range s.Chord {
				names[i] = pch.Name
			}
			barNums := make([]string, len(s.Bars))
			for i, bar := range s.Bars {
				barNums[i] = fmt.Sprintf("Bar%d", bar.Num)
			}
			fmt.Fprintf(&b, "  %-8s [%s] %s <- %s\n",
				s.ChordName, strings.Join(names, " "), strings.Join(barNums, " "), tokenInfo)
		}
	}
	return b.String()
}
