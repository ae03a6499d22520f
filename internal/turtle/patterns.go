package turtle

import (
	"fmt"
	"math"
)

// SpiralGrowth is the factor the spiral radius grows by after each step.
const SpiralGrowth = 1.05

// ArtworkPalette is the fixed palette CreateGeometricArtwork picks from.
var ArtworkPalette = [8]Color{
	"red",
	"orange",
	"gold",
	"green",
	"cyan",
	"blue",
	"purple",
	"magenta",
}

func checkCount(name string, n int) error {
	if n == 0 {
		return fmt.Errorf("%w: %s is 0", ErrDivisionByZero, name)
	}
	if n < 0 {
		return fmt.Errorf("%w: %s %d is below 1", ErrInvalidInput, name, n)
	}
	return nil
}

// DrawPolygon draws a regular polygon with numSides sides, turning
// counter-clockwise at each corner. The heading is back where it started
// (mod 360) once it returns.
func DrawPolygon(t Turtle, sideLength float64, numSides int) error {
	if err := checkCount("polygon sides", numSides); err != nil {
		return err
	}
	if !isFinite(sideLength) {
		return fmt.Errorf("%w: side length %v", ErrInvalidInput, sideLength)
	}
	angle := 360.0 / float64(numSides)
	for i := 0; i < numSides; i++ {
		if err := t.Forward(sideLength); err != nil {
			return err
		}
		if err := t.Turn(angle); err != nil {
			return err
		}
	}
	return nil
}

// DrawSpiralingCircle approximates a circle with iterations chords, growing the
// radius by SpiralGrowth after every chord, so the stroke spirals outwards.
// A spiral whose radius would overflow is rejected before anything is drawn.
// A turtle that fails partway through (e.g. a custom Turtle) leaves the chords
// drawn so far in place.
func DrawSpiralingCircle(t Turtle, radius float64, iterations int) error {
	if err := checkCount("spiral iterations", iterations); err != nil {
		return err
	}
	if !isFinite(radius) || radius < 0 {
		return fmt.Errorf("%w: spiral radius %v", ErrInvalidInput, radius)
	}
	// the last chord is the longest and never exceeds the last diameter
	if maxChord := 2 * radius * math.Pow(SpiralGrowth, float64(iterations-1)); radius > 0 && !isFinite(maxChord) {
		return fmt.Errorf("%w: spiral of radius %v overflows within %d iterations", ErrInvalidInput, radius, iterations)
	}
	angle := 360.0 / float64(iterations)
	current := radius
	for i := 0; i < iterations; i++ {
		chord, err := ChordLength(current, angle)
		if err != nil {
			return err
		}
		if err := t.Forward(chord); err != nil {
			return err
		}
		if err := t.Turn(angle); err != nil {
			return err
		}
		current *= SpiralGrowth
	}
	return nil
}

// PlotOptimalPath walks the turtle through the legs between consecutive
// waypoints: turn to face the next waypoint, then move the leg length. Turns
// take the short way round. It returns two display instructions per leg, with
// values rounded to two decimals; the turtle itself moves at full precision.
//
// The turtle is not moved to points[0] first; legs are measured between
// waypoints and drawn from wherever the turtle stands.
func PlotOptimalPath(t Turtle, points []Point) ([]string, error) {
	if len(points) < 2 {
		return []string{}, nil
	}
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return nil, fmt.Errorf("%w: waypoint %d is (%v, %v)", ErrInvalidInput, i, p.X, p.Y)
		}
	}

	instructions := make([]string, 0, 2*(len(points)-1))
	for i := 0; i < len(points)-1; i++ {
		current, next := points[i], points[i+1]
		turn := ShortestTurn(Bearing(current, next) - t.Heading())
		dist := Distance(current, next)

		if err := t.Turn(turn); err != nil {
			return instructions, err
		}
		if err := t.Forward(dist); err != nil {
			return instructions, err
		}
		instructions = append(instructions,
			fmt.Sprintf("Turn %.2f degrees", turn),
			fmt.Sprintf("Move %.2f units", dist),
		)
	}
	return instructions, nil
}

// CreateGeometricArtwork draws the layered polygon pattern: five layers of
// shrinking triangles through octagons, each layer in its own palette color.
// It uses no randomness; the same start state always gives the same path.
func CreateGeometricArtwork(t Turtle) error {
	for complexity := 1; complexity <= 5; complexity++ {
		if err := t.SetColor(ArtworkPalette[(complexity*2)%len(ArtworkPalette)]); err != nil {
			return err
		}
		side := 50.0 / float64(complexity)
		for sides := 3; sides <= 8; sides++ {
			if err := DrawPolygon(t, side, sides); err != nil {
				return err
			}
			if err := t.Turn(360.0 / float64(sides*complexity)); err != nil {
				return err
			}
		}
	}
	return nil
}
