package cmd

import (
	"github.com/spf13/cobra"

	"github.com/codefugue/codefugue/config"
)

var rootCmd = &cobra.Command{
	Use:   "codefugue",
	Short: "Turns source code into music",
	Long:  `codefugue lexes source code and maps the token stream onto a musical composition.`,
}

var configDir string

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "directory overriding the embedded pattern libraries")
}

func loadLibrary() *config.Library {
	var (
		lib *config.Library
		err error
	)
	if configDir != "" {
		lib, err = config.LoadDir(configDir)
	} else {
		lib, err = config.Load()
	}
	if err != nil {
		panic("Could not load config: " + err.Error())
	}
	return lib
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
