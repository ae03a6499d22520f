package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "turtle-art",
		Short: "turtle-art draws turtle graphics into a static SVG drawing",
		Long: `turtle-art steers a pen-bearing turtle across a plane, records every stroke
and exports the result as an HTML page (or bare SVG) on a 600x600 canvas.

Without a subcommand it runs the built-in drawing session, same as "draw".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDraw,
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file (default from config: turtle_art.html)")
	rootCmd.PersistentFlags().String("format", "", "Output format: html or svg")

	rootCmd.AddCommand(newDrawCmd(), newRunCmd(), newVersionCmd())
	return rootCmd
}
