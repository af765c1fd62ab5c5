package theory

import (
	"fmt"
	"strings"
)

// NoteToAlda converts a canonical note name to Alda spelling (# becomes +).
func NoteToAlda(name string) string {
	return strings.ReplaceAll(name, "#", "+")
}

// ScaleAlda renders the test-mode scale sequence as a playable Alda line.
func ScaleAlda(tonic Pitch, scaleName string, tempo int, scales map[string][]ScaleDegree) (string, error) {
	seq, err := ScaleSequence(tonic, scaleName, scales)
	if err != nil {
		return "", err
	}

	parts := []string{fmt.Sprintf("(tempo %d)", tempo)}
	octave := -1
	for _, p := range seq {
		if p.Octave != octave {
			parts = append(parts, fmt.Sprintf("o%d", p.Octave))
			octave = p.Octave
		}
		parts = append(parts, NoteToAlda(p.Name)+"4")
	}
	return "piano: " + strings.Join(parts, " "), nil
}

// ProgressionAlda renders a progression as whole-note block chords, emitting
// Alda octave shifts (>/<) as the voicing moves.
func ProgressionAlda(tonic Pitch, scaleName, progression string, tempo int, scales map[string][]ScaleDegree) (string, error) {
	chords, err := GenProgression(tonic, scaleName, progression, scales)
	if err != nil {
		return "", err
	}

	parts := []string{fmt.Sprintf("(tempo %d) o%d", tempo, tonic.Octave)}
	octave := tonic.Octave
	for _, pc := range chords {
		notes := make([]string, 0, len(pc.Chord))
		for _, p := range pc.Chord {
			var prefix string
			for octave < p.Octave {
				prefix += ">"
				octave++
			}
			for octave > p.Octave {
				prefix += "<"
				octave--
			}
			notes = append(notes, prefix+NoteToAlda(p.Name)+"1")
		}
		parts = append(parts, strings.Join(notes, "/"))
	}
	return "piano: " + strings.Join(parts, " "), nil
}
