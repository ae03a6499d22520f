package turtle

import (
	"math"

	"github.com/jbeda/geom"
)

// Stats summarizes a recorded path.
type Stats struct {
	Segments  int
	InkLength float64
	Bounds    geom.Rect
	// Closed is true when the last segment ends on the first one's start.
	Closed bool
	// Area is the shoelace area of the outline when Closed, else 0.
	Area float64
	// Colors lists the pen colors in the order they were first used.
	Colors []Color
}

func Summarize(path []Segment) Stats {
	var st Stats
	if len(path) == 0 {
		return st
	}
	st.Segments = len(path)
	st.Bounds = Bounds(path)

	seen := make(map[Color]bool)
	for _, seg := range path {
		st.InkLength += seg.Length()
		if !seen[seg.Color] {
			seen[seg.Color] = true
			st.Colors = append(st.Colors, seg.Color)
		}
	}

	st.Closed = AlmostEqualPoints(path[0].Start, path[len(path)-1].End)
	if st.Closed {
		st.Area = area(path)
	}
	return st
}

// Bounds is the smallest rectangle holding every segment endpoint. It is the
// zero Rect for an empty path.
func Bounds(path []Segment) geom.Rect {
	if len(path) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: path[0].Start, Max: path[0].Start}
	for _, seg := range path {
		r.ExpandToContainCoord(seg.Start)
		r.ExpandToContainCoord(seg.End)
	}
	return r
}

func area(path []Segment) float64 {
	points := make([]Point, 0, len(path)+1)
	points = append(points, path[0].Start)
	for _, seg := range path {
		points = append(points, seg.End)
	}

	a := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += points[i].X * points[j].Y
		a -= points[j].X * points[i].Y
	}
	return math.Abs(a) / 2
}
