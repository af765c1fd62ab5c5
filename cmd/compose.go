package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/codefugue/codefugue/composer"
	"github.com/codefugue/codefugue/exporter"
	"github.com/codefugue/codefugue/frontend"
	"github.com/codefugue/codefugue/score"
	"github.com/codefugue/codefugue/style"
)

var composeFlags struct {
	file         string
	code         string
	lang         string
	styleName    string
	key          string
	scale        string
	tempo        int
	octave       int
	instrument   string
	progression  string
	bassPattern  string
	barsPerToken int
	seed         int64
	parts        string
	ignoreBad    bool
	output       string
	noPlay       bool
	verbose      bool
}

func init() {
	f := composeCmd.Flags()
	f.StringVarP(&composeFlags.file, "file", "f", "", "source file to compose from")
	f.StringVarP(&composeFlags.code, "code", "c", "", "inline source code to compose from")
	f.StringVar(&composeFlags.lang, "lang", "", "source language (c, python; default: detect)")
	f.StringVar(&composeFlags.styleName, "style", "default", "style preset")
	f.StringVar(&composeFlags.key, "key", "", "key override")
	f.StringVar(&composeFlags.scale, "scale", "", "scale override")
	f.IntVar(&composeFlags.tempo, "tempo", 0, "tempo override (BPM)")
	f.IntVar(&composeFlags.octave, "octave", 0, "melody octave override")
	f.StringVar(&composeFlags.instrument, "instrument", "", "melody instrument override")
	f.StringVar(&composeFlags.progression, "progression", "", "progression override (name or literal like 1-6min-4-5)")
	f.StringVar(&composeFlags.bassPattern, "bass-pattern", "", "bass pattern override")
	f.IntVar(&composeFlags.barsPerToken, "bars-per-token", 1, "bars generated per source token")
	f.Int64Var(&composeFlags.seed, "seed", 0, "random seed")
	f.StringVar(&composeFlags.parts, "parts", "both", "parts to render (both, melody, bass)")
	f.BoolVar(&composeFlags.ignoreBad, "ignore-bad", false, "treat malformed tokens like clean ones")
	f.StringVarP(&composeFlags.output, "output", "o", "", "output file (.alda, .mid, .mp3)")
	f.BoolVar(&composeFlags.noPlay, "no-play", false, "skip playback")
	f.BoolVarP(&composeFlags.verbose, "verbose", "v", false, "print the composition summary")
	rootCmd.AddCommand(composeCmd)
}

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Composes music from source code",
	Long:  `Composes music from source code`,
	Run: func(cmd *cobra.Command, args []string) {
		compose()
	},
}

func readSource() string {
	if composeFlags.code != "" {
		return composeFlags.code
	}
	if composeFlags.file == "" {
		panic("either --file or --code is required")
	}
	dat, err := os.ReadFile(composeFlags.file)
	if err != nil {
		panic("Could not read source file: " + err.Error())
	}
	return string(dat)
}

func compose() {
	source := readSource()
	tokens := frontend.Lex(source, composeFlags.lang)

	lib := loadLibrary()
	st, err := composer.ResolveStyle(lib, composeFlags.styleName)
	if err != nil {
		panic(err.Error())
	}
	st = st.With(style.Overrides{
		Key:         composeFlags.key,
		Scale:       composeFlags.scale,
		Tempo:       composeFlags.tempo,
		Octave:      composeFlags.octave,
		Instrument:  composeFlags.instrument,
		Progression: composeFlags.progression,
		BassPattern: composeFlags.bassPattern,
	})

	text, comp, err := composer.Compose(st, lib, tokens, composer.Options{
		Seed:         composeFlags.seed,
		Parts:        composeFlags.parts,
		IgnoreBad:    composeFlags.ignoreBad,
		BarsPerToken: composeFlags.barsPerToken,
	})
	if err != nil {
		panic(err.Error())
	}

	if composeFlags.verbose {
		fmt.Println(comp.Summary())
	}
	if composeFlags.output != "" {
		writeOutput(text, comp)
	}
	if composeFlags.noPlay {
		if composeFlags.output == "" && !composeFlags.verbose {
			fmt.Println(text)
		}
		return
	}
	play(text)
}

// writeOutput dispatches on the output extension: Alda text, a native SMF,
// or an mp3 rendered through the timidity/ffmpeg pipeline.
func writeOutput(text string, comp *score.Composition) {
	out := composeFlags.output
	switch strings.ToLower(filepath.Ext(out)) {
	case ".alda":
		if err := exporter.WriteAlda(text, out); err != nil {
			panic("Could not write alda file: " + err.Error())
		}
	case ".mid", ".midi":
		if err := exporter.WriteMIDIFile(comp, out); err != nil {
			panic("Could not write midi file: " + err.Error())
		}
	case ".mp3":
		aldaPath := filepath.Join(os.TempDir(), uuid.NewString()+".alda")
		midiPath := filepath.Join(os.TempDir(), uuid.NewString()+".mid")
		defer os.Remove(aldaPath)
		defer os.Remove(midiPath)
		if err := exporter.WriteAlda(text, aldaPath); err != nil {
			panic("Could not write alda file: " + err.Error())
		}
		if err := exporter.ExportMIDI(context.Background(), aldaPath, midiPath); err != nil {
			panic(err.Error())
		}
		if err := exporter.MIDIToMP3(context.Background(), midiPath, out); err != nil {
			panic(err.Error())
		}
	default:
		panic("unsupported output extension: " + out)
	}
}

func play(text string) {
	aldaPath := filepath.Join(os.TempDir(), uuid.NewString()+".alda")
	defer os.Remove(aldaPath)
	if err := exporter.WriteAlda(text, aldaPath); err != nil {
		panic("Could not write alda file: " + err.Error())
	}
	if err := exporter.Play(context.Background(), aldaPath); err != nil {
		panic("Playback failed: " + err.Error())
	}
}
