package score

import (
	"fmt"
	"strings"

	"github.com/codefugue/codefugue/theory"
)

// RenderScore flattens the composition into bar-oriented multi-voice Alda
// text: one block per instrument, each voice a V-line spanning all bars.
// Pure function of the tree; rendering twice yields identical text.
func RenderScore(c *Composition) string {
	bars := c.AllBars()
	if len(bars) == 0 {
		return ""
	}

	var blocks []string
	for pi, part := range bars[0].Parts {
		var lines []string
		for vi := range part.Voices {
			label := fmt.Sprintf("V%d", vi+1)
			// octave marker state spans the whole voice line
			octave := -1
			barTexts := make([]string, 0, len(bars))
			for _, bar := range bars {
				barTexts = append(barTexts, renderVoiceBar(bar.Parts[pi].Voices[vi], &octave))
			}
			lines = append(lines, "  "+label+": "+strings.Join(barTexts, "\n  "+label+": "))
		}
		block := fmt.Sprintf("%s:\n  (tempo %d)\n%s", part.Instrument, c.Tempo, strings.Join(lines, "\n"))
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n")
}

func renderVoiceBar(v Voice, octave *int) string {
	parts := make([]string, 0, len(v))
	for _, g := range v {
		if s := renderGroup(g, octave); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// renderGroup renders one note group. Octave markers are emitted only on
// octave change; a stacked chord shares one velocity marker.
func renderGroup(g NoteGroup, octave *int) string {
	switch len(g) {
	case 0:
		return ""
	case 1:
		return renderSingle(g[0], octave)
	default:
		return renderChord(g, octave)
	}
}

func renderSingle(n Note, octave *int) string {
	if n.IsRest() {
		return fmt.Sprintf("r%d", n.Duration)
	}
	var parts []string
	if n.Pitch.Octave != *octave {
		parts = append(parts, fmt.Sprintf("o%d", n.Pitch.Octave))
		*octave = n.Pitch.Octave
	}
	parts = append(parts, fmt.Sprintf("(vol %d) %s%d", n.Velocity, theory.NoteToAlda(n.Pitch.Name), n.Duration))
	return strings.Join(parts, " ")
}

func renderChord(g NoteGroup, octave *int) string {
	velocity := 0
	for _, n := range g {
		if !n.IsRest() {
			velocity = n.Velocity
			break
		}
	}

	notes := make([]string, 0, len(g))
	for _, n := range g {
		if n.IsRest() {
			notes = append(notes, fmt.Sprintf("r%d", n.Duration))
			continue
		}
		var prefix string
		if n.Pitch.Octave != *octave {
			prefix = fmt.Sprintf("o%d ", n.Pitch.Octave)
			*octave = n.Pitch.Octave
		}
		notes = append(notes, fmt.Sprintf("%s%s%d", prefix, theory.NoteToAlda(n.Pitch.Name), n.Duration))
	}
	return fmt.Sprintf("(vol %d) %s", velocity, strings.Join(notes, "/"))
}
