// Package config loads the embedded pattern libraries: scales, rhythm and
// bass tables per meter, motifs, progression collections, and style presets.
// All name references are validated at load time so a bad table fails fast
// instead of mid-composition.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/codefugue/codefugue/bass"
	"github.com/codefugue/codefugue/motif"
	"github.com/codefugue/codefugue/rhythm"
	"github.com/codefugue/codefugue/score"
	"github.com/codefugue/codefugue/style"
	"github.com/codefugue/codefugue/theory"
)

// Library is the full loaded configuration. Rhythms and Bass are keyed by
// time signature first, pattern name second; Progressions by collection name
// then progression name.
type Library struct {
	Scales       map[string][]theory.ScaleDegree
	Rhythms      map[string]map[string]rhythm.Pattern
	Motifs       map[string]motif.Spec
	Bass         map[string]map[string]bass.Pattern
	Progressions map[string]map[string]string
	Styles       map[string]style.Style
}

type meterFile[T any] struct {
	TimeSignature string       `yaml:"time_signature"`
	Patterns      map[string]T `yaml:"patterns"`
}

// Load reads the libraries embedded in the binary.
func Load() (*Library, error) {
	return LoadFS(dataFS, "data")
}

// LoadDir reads the libraries from a directory on disk, overriding the
// embedded defaults. The directory mirrors the embedded data layout.
func LoadDir(dir string) (*Library, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS reads the libraries from an arbitrary fs tree rooted at dir.
func LoadFS(fsys fs.FS, dir string) (*Library, error) {
	lib := &Library{
		Scales:       map[string][]theory.ScaleDegree{},
		Rhythms:      map[string]map[string]rhythm.Pattern{},
		Motifs:       map[string]motif.Spec{},
		Bass:         map[string]map[string]bass.Pattern{},
		Progressions: map[string]map[string]string{},
		Styles:       map[string]style.Style{},
	}

	if err := lib.loadScales(fsys, path.Join(dir, "scales.yml")); err != nil {
		return nil, err
	}
	if err := lib.loadMotifs(fsys, path.Join(dir, "motifs.yml")); err != nil {
		return nil, err
	}
	if err := lib.loadRhythms(fsys, path.Join(dir, "rhythms")); err != nil {
		return nil, err
	}
	if err := lib.loadBass(fsys, path.Join(dir, "bass")); err != nil {
		return nil, err
	}
	if err := lib.loadProgressions(fsys, path.Join(dir, "progressions")); err != nil {
		return nil, err
	}
	if err := lib.loadStyles(fsys, path.Join(dir, "styles")); err != nil {
		return nil, err
	}
	if err := lib.validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

func readYAML(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

func ymlFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yml") {
			files = append(files, path.Join(dir, e.Name()))
		}
	}
	return files, nil
}

func (lib *Library) loadScales(fsys fs.FS, name string) error {
	var raw map[string][]string
	if err := readYAML(fsys, name, &raw); err != nil {
		return err
	}
	for scaleName, degreeStrs := range raw {
		degrees := make([]theory.ScaleDegree, 0, len(degreeStrs))
		for _, s := range degreeStrs {
			d, err := theory.ParseDegree(s)
			if err != nil {
				return fmt.Errorf("scale %q: %w", scaleName, err)
			}
			degrees = append(degrees, d)
		}
		lib.Scales[scaleName] = degrees
	}
	return nil
}

func (lib *Library) loadMotifs(fsys fs.FS, name string) error {
	return readYAML(fsys, name, &lib.Motifs)
}

func (lib *Library) loadRhythms(fsys fs.FS, dir string) error {
	files, err := ymlFiles(fsys, dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		var mf meterFile[rhythm.Pattern]
		if err := readYAML(fsys, f, &mf); err != nil {
			return err
		}
		target, err := meterBeats(mf.TimeSignature)
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
		table := lib.Rhythms[mf.TimeSignature]
		if table == nil {
			table = map[string]rhythm.Pattern{}
			lib.Rhythms[mf.TimeSignature] = table
		}
		for patternName, p := range mf.Patterns {
			if err := rhythm.Validate(p, target); err != nil {
				return fmt.Errorf("%s: rhythm %q: %w", f, patternName, err)
			}
			table[patternName] = p
		}
	}
	return nil
}

func (lib *Library) loadBass(fsys fs.FS, dir string) error {
	files, err := ymlFiles(fsys, dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		var mf meterFile[bass.Pattern]
		if err := readYAML(fsys, f, &mf); err != nil {
			return err
		}
		table := lib.Bass[mf.TimeSignature]
		if table == nil {
			table = map[string]bass.Pattern{}
			lib.Bass[mf.TimeSignature] = table
		}
		for patternName, p := range mf.Patterns {
			table[patternName] = p
		}
	}
	return nil
}

func (lib *Library) loadProgressions(fsys fs.FS, dir string) error {
	files, err := ymlFiles(fsys, dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		collection := strings.TrimSuffix(path.Base(f), ".yml")
		var raw map[string]string
		if err := readYAML(fsys, f, &raw); err != nil {
			return err
		}
		lib.Progressions[collection] = raw
	}
	return nil
}

func (lib *Library) loadStyles(fsys fs.FS, dir string) error {
	files, err := ymlFiles(fsys, dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		var st style.Style
		if err := readYAML(fsys, f, &st); err != nil {
			return err
		}
		if st.Name == "" {
			st.Name = strings.TrimSuffix(path.Base(f), ".yml")
		}
		lib.Styles[st.Name] = st
	}
	return nil
}

func meterBeats(timeSignature string) (score.Beats, error) {
	return style.Style{TimeSignature: timeSignature}.BarBeats()
}

// validate checks every cross-table reference the styles make.
func (lib *Library) validate() error {
	knownKinds := map[motif.Kind]bool{
		motif.Ascending: true, motif.Descending: true, motif.Arch: true,
		motif.Valley: true, motif.Repeat: true, motif.RandomWalk: true,
		motif.Pattern: true,
	}
	for name, spec := range lib.Motifs {
		if !knownKinds[spec.Kind] {
			return fmt.Errorf("motif %q: unknown kind %q", name, spec.Kind)
		}
		if spec.Kind == motif.Pattern && len(spec.Steps) == 0 {
			return fmt.Errorf("motif %q: pattern kind needs steps", name)
		}
	}

	for ts, table := range lib.Bass {
		rhythms := lib.Rhythms[ts]
		for name, p := range table {
			if _, ok := rhythms[p.Rhythm]; !ok {
				return fmt.Errorf("bass pattern %q (%s): unknown rhythm %q", name, ts, p.Rhythm)
			}
		}
	}

	for name, st := range lib.Styles {
		if _, err := st.BarBeats(); err != nil {
			return fmt.Errorf("style %q: %w", name, err)
		}
		if _, ok := lib.Scales[st.Scale]; !ok {
			return fmt.Errorf("style %q: unknown scale %q", name, st.Scale)
		}
		if _, err := theory.Normalize(st.Key); err != nil {
			return fmt.Errorf("style %q: %w", name, err)
		}
		rhythms, ok := lib.Rhythms[st.TimeSignature]
		if !ok {
			return fmt.Errorf("style %q: no rhythm table for %s", name, st.TimeSignature)
		}
		for _, w := range st.RhythmWeights {
			if _, ok := rhythms[w.Pattern]; !ok {
				return fmt.Errorf("style %q: unknown rhythm pattern %q", name, w.Pattern)
			}
		}
		for _, w := range st.MotifWeights {
			if _, ok := lib.Motifs[w.Motif]; !ok {
				return fmt.Errorf("style %q: unknown motif %q", name, w.Motif)
			}
		}
		if _, ok := lib.Bass[st.TimeSignature][st.BassPattern]; !ok {
			return fmt.Errorf("style %q: unknown bass pattern %q", name, st.BassPattern)
		}
		for _, src := range st.ProgressionSources {
			if _, ok := lib.Progressions[src]; !ok {
				return fmt.Errorf("style %q: unknown progression collection %q", name, src)
			}
		}
		if _, ok := lib.LookupProgression(st.ProgressionSources, st.Progression); !ok {
			return fmt.Errorf("style %q: progression %q not found in sources", name, st.Progression)
		}
	}
	return nil
}

// LookupProgression resolves a progression name against collections in
// order.
func (lib *Library) LookupProgression(sources []string, name string) (string, bool) {
	for _, src := range sources {
		if text, ok := lib.Progressions[src][name]; ok {
			return text, true
		}
	}
	return "", false
}

// RhythmWeights resolves a style's weighted rhythm names into patterns.
func (lib *Library) RhythmWeights(st style.Style) ([]rhythm.Weighted, error) {
	table := lib.Rhythms[st.TimeSignature]
	out := make([]rhythm.Weighted, 0, len(st.RhythmWeights))
	for _, w := range st.RhythmWeights {
		p, err := rhythm.Lookup(table, w.Pattern)
		if err != nil {
			return nil, err
		}
		out = append(out, rhythm.Weighted{Weight: w.Weight, Pattern: p})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("style %q: no rhythm weights", st.Name)
	}
	return out, nil
}

// MotifWeights resolves a style's weighted motif names into specs.
func (lib *Library) MotifWeights(st style.Style) ([]motif.Weighted, error) {
	out := make([]motif.Weighted, 0, len(st.MotifWeights))
	for _, w := range st.MotifWeights {
		spec, ok := lib.Motifs[w.Motif]
		if !ok {
			return nil, fmt.Errorf("%w: %q", motif.ErrUnknown, w.Motif)
		}
		out = append(out, motif.Weighted{Weight: w.Weight, Name: w.Motif, Spec: spec})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("style %q: no motif weights", st.Name)
	}
	return out, nil
}

// BassFor resolves a style's bass pattern and its backing rhythm.
func (lib *Library) BassFor(st style.Style) (bass.Pattern, rhythm.Pattern, error) {
	bp, err := bass.Lookup(lib.Bass[st.TimeSignature], st.BassPattern)
	if err != nil {
		return bass.Pattern{}, rhythm.Pattern{}, err
	}
	rp, err := rhythm.Lookup(lib.Rhythms[st.TimeSignature], bp.Rhythm)
	if err != nil {
		return bass.Pattern{}, rhythm.Pattern{}, err
	}
	return bp, rp, nil
}
