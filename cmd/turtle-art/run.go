package main

import (
	"github.com/spf13/cobra"

	"turtle-art/internal/script"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Run a YAML drawing script",
		Long: `Runs the steps of a drawing script (color, forward, turn, polygon, spiral,
path, artwork) in order and exports the drawing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := script.Load(args[0])
			if err != nil {
				return err
			}
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			s.log.WithField("script", args[0]).WithField("steps", len(prog.Steps)).Debug("running script")

			instructions, err := prog.Run(s.turtle, s.log)
			if err != nil {
				return err
			}
			return s.finish(instructions)
		},
	}
}
