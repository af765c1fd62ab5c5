package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codefugue/codefugue/theory"
)

var scaleTempo int

func init() {
	scaleCmd.Flags().IntVar(&scaleTempo, "tempo", 120, "tempo (BPM)")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <key> <scale>",
	Short: "Prints a scale as Alda",
	Long:  `Prints a scale (two octaves up and back down) as Alda, for auditioning scale tables.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		lib := loadLibrary()
		tonic, err := theory.NewPitch(args[0], 4)
		if err != nil {
			panic(err.Error())
		}
		text, err := theory.ScaleAlda(tonic, args[1], scaleTempo, lib.Scales)
		if err != nil {
			panic(err.Error())
		}
		fmt.Println(text)
	},
}
