// Package cmd implements the proxydump CLI commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "proxydump",
	Short: "Inspect render trees and pre-draw proxy resolution",
	Long: `proxydump mounts a demo window on a headless surface, pumps one
frame through the build, layout, pre-draw, and paint phases, and prints
a YAML snapshot of the resulting render tree along with the chrome
elements the proxy layer resolved during the pre-draw pass.`,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Directory holding the optional proxydump.yaml")
}
