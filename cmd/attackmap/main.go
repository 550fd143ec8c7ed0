package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Version: "indev",
	Use:     "attackmap",
	Short:   "Prints the attack map of a chess position",
}

func main() {
	addGlobalFlags(rootCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(svgCmd)
	rootCmd.AddCommand(tuiCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
