package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codefugue/codefugue/util"
)

func init() {
	rootCmd.AddCommand(stylesCmd)
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "Lists styles and the loaded pattern libraries",
	Long:  `Lists styles and the loaded pattern libraries`,
	Run: func(cmd *cobra.Command, args []string) {
		lib := loadLibrary()

		fmt.Println("styles:")
		for _, name := range util.SortedKeys(lib.Styles) {
			st := lib.Styles[name]
			fmt.Printf("  %-10s %s %s %s, %d BPM, %s, progression %s\n",
				name, st.TimeSignature, st.Key, st.Scale, st.Tempo, st.Instrument, st.Progression)
		}

		fmt.Printf("scales: %s\n", strings.Join(util.SortedKeys(lib.Scales), ", "))
		fmt.Printf("motifs: %s\n", strings.Join(util.SortedKeys(lib.Motifs), ", "))
		for _, ts := range util.SortedKeys(lib.Rhythms) {
			fmt.Printf("rhythms %s: %s\n", ts, strings.Join(util.SortedKeys(lib.Rhythms[ts]), ", "))
		}
		for _, ts := range util.SortedKeys(lib.Bass) {
			fmt.Printf("bass %s: %s\n", ts, strings.Join(util.SortedKeys(lib.Bass[ts]), ", "))
		}
		for _, collection := range util.SortedKeys(lib.Progressions) {
			fmt.Printf("progressions %s: %s\n", collection, strings.Join(util.SortedKeys(lib.Progressions[collection]), ", "))
		}
	},
}
