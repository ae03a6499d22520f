package turtle

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// Point is an immutable pair of coordinates on the drawing plane.
type Point = geom.Coord

// chordPrecision fixes ChordLength output to 6 decimal digits.
const chordPrecision = 1e6

func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func Degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return a.DistanceFrom(b)
}

// ChordLength returns the length of the chord that subtends angleDeg on a circle
// of the given radius, rounded to 6 decimal digits. Negative angles give a
// negative length. Chords too large to round are returned as computed; chords
// that overflow float64 are rejected.
func ChordLength(radius, angleDeg float64) (float64, error) {
	if !isFinite(radius) || radius < 0 {
		return 0, fmt.Errorf("%w: radius %v", ErrInvalidInput, radius)
	}
	if !isFinite(angleDeg) {
		return 0, fmt.Errorf("%w: angle %v", ErrInvalidInput, angleDeg)
	}
	chord := 2 * radius * math.Sin(Radians(angleDeg/2))
	if !isFinite(chord) {
		return 0, fmt.Errorf("%w: chord for radius %v overflows", ErrInvalidInput, radius)
	}
	// too large to scale; such values carry no digits past the sixth anyway
	if math.Abs(chord) > math.MaxFloat64/chordPrecision {
		return chord, nil
	}
	return math.Round(chord*chordPrecision) / chordPrecision, nil
}

// Bearing is the heading, in degrees, that faces from toward to.
// 0 is +x and angles grow counter-clockwise.
func Bearing(from, to Point) float64 {
	return Degrees(math.Atan2(to.Y-from.Y, to.X-from.X))
}

// NormalizeHeading maps deg into [0, 360).
func NormalizeHeading(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	// -1e-17 + 360 rounds to 360
	if h >= 360 {
		h = 0
	}
	return h
}

// ShortestTurn maps a turn delta into (-180, 180].
func ShortestTurn(deg float64) float64 {
	d := NormalizeHeading(deg)
	if d > 180 {
		d -= 360
	}
	return d
}

// Comparing floating point is only ever approximate here; the threshold is
// tuned for drawing coordinates, not for general use.
const floatEqualThresh = 1e-8

func FloatAlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatEqualThresh
}

func AlmostEqualPoints(a, b Point) bool {
	return FloatAlmostEqual(a.X, b.X) && FloatAlmostEqual(a.Y, b.Y)
}
