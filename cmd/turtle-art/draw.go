package main

import (
	"github.com/spf13/cobra"

	"turtle-art/internal/turtle"
)

// tourWaypoints is the route the built-in session plans a path through.
var tourWaypoints = []turtle.Point{
	{X: 0, Y: 0},
	{X: 100, Y: 100},
	{X: -100, Y: 150},
	{X: -150, Y: -50},
	{X: 0, Y: 0},
}

func newDrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draw",
		Short: "Run the built-in drawing session",
		Long: `Draws a hexagon, an outward spiral, a planned route through fixed waypoints
and the layered polygon artwork, then exports the drawing.`,
		Args: cobra.NoArgs,
		RunE: runDraw,
	}
}

func runDraw(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	instructions, err := defaultDrawing(s.turtle)
	if err != nil {
		return err
	}
	return s.finish(instructions)
}

func defaultDrawing(t turtle.Turtle) ([]string, error) {
	if err := t.SetColor("blue"); err != nil {
		return nil, err
	}
	if err := turtle.DrawPolygon(t, 100, 6); err != nil {
		return nil, err
	}

	if err := t.SetColor("green"); err != nil {
		return nil, err
	}
	if err := turtle.DrawSpiralingCircle(t, 20, 36); err != nil {
		return nil, err
	}

	if err := t.SetColor("red"); err != nil {
		return nil, err
	}
	instructions, err := turtle.PlotOptimalPath(t, tourWaypoints)
	if err != nil {
		return nil, err
	}

	if err := turtle.CreateGeometricArtwork(t); err != nil {
		return nil, err
	}
	return instructions, nil
}
