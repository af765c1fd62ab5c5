package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codefugue/codefugue/theory"
	"github.com/codefugue/codefugue/util"
)

var progressionTempo int

func init() {
	progressionCmd.Flags().IntVar(&progressionTempo, "tempo", 120, "tempo (BPM)")
	rootCmd.AddCommand(progressionCmd)
}

var progressionCmd = &cobra.Command{
	Use:   "progression <key> <scale> <progression>",
	Short: "Prints a progression as Alda block chords",
	Long:  `Prints a progression as Alda block chords. The progression may be a library name (pop) or a literal (1-6min-4-5).`,
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		lib := loadLibrary()
		tonic, err := theory.NewPitch(args[0], 4)
		if err != nil {
			panic(err.Error())
		}

		prog := args[2]
		if text, ok := lib.LookupProgression(util.SortedKeys(lib.Progressions), prog); ok {
			prog = text
		}

		text, err := theory.ProgressionAlda(tonic, args[1], prog, progressionTempo, lib.Scales)
		if err != nil {
			panic(err.Error())
		}
		fmt.Println(text)
	},
}
