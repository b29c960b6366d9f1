package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tanaval/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tanaval",
	Short: "Tana validation error formatter",
	Long:  `tanaval renders Tana smart-contract validation errors into the diagnostic format shared by every Tana system`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
