// Package turtle implements a pen-bearing cursor on a 2D plane and the
// geometric generators that drive it. Every forward move is recorded as a
// Segment; the recorded path is what gets rendered later.
package turtle

import (
	"fmt"
	"math"
)

// Color is a pen color tag, passed through verbatim to the renderer
// (e.g. "red", "#ff8800").
type Color string

const DefaultColor Color = "black"

// Segment is one straight stroke. Segments are never modified once recorded.
type Segment struct {
	Start Point
	End   Point
	Color Color
}

func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}

// Turtle is the capability set the generators draw with.
type Turtle interface {
	Forward(distance float64) error
	Turn(deltaDeg float64) error
	SetColor(c Color) error
	Heading() float64
	Position() Point
}

// Recorder is a Turtle that keeps every segment it draws, in draw order.
// It is not safe for concurrent use.
type Recorder struct {
	pos     Point
	heading float64
	color   Color
	path    []Segment

	start state
}

type state struct {
	pos     Point
	heading float64
	color   Color
}

// Option configures the start state of a Recorder. Non-finite coordinates or
// headings and empty colors are ignored, leaving the default in place.
type Option func(*state)

func WithPosition(p Point) Option {
	return func(s *state) {
		if isFinite(p.X) && isFinite(p.Y) {
			s.pos = p
		}
	}
}

func WithHeading(deg float64) Option {
	return func(s *state) {
		if isFinite(deg) {
			s.heading = NormalizeHeading(deg)
		}
	}
}

func WithColor(c Color) Option {
	return func(s *state) {
		if c != "" {
			s.color = c
		}
	}
}

// NewRecorder returns a turtle at the origin facing +x with a black pen,
// unless options say otherwise.
func NewRecorder(opts ...Option) *Recorder {
	s := state{color: DefaultColor}
	for _, opt := range opts {
		opt(&s)
	}
	r := &Recorder{start: s}
	r.Reset()
	return r
}

// Reset drops the recorded path and returns to the start state.
func (r *Recorder) Reset() {
	r.pos = r.start.pos
	r.heading = r.start.heading
	r.color = r.start.color
	r.path = nil
}

// Forward moves distance units along the current heading and records the
// stroke. Negative distances move backwards.
func (r *Recorder) Forward(distance float64) error {
	if !isFinite(distance) {
		return fmt.Errorf("%w: forward distance %v", ErrInvalidInput, distance)
	}
	rad := Radians(r.heading)
	start := r.pos
	end := Point{
		X: start.X + distance*math.Cos(rad),
		Y: start.Y + distance*math.Sin(rad),
	}
	if !isFinite(end.X) || !isFinite(end.Y) {
		return fmt.Errorf("%w: forward %v from (%v, %v) leaves the plane", ErrInvalidInput, distance, start.X, start.Y)
	}
	r.path = append(r.path, Segment{Start: start, End: end, Color: r.color})
	r.pos = end
	return nil
}

func (r *Recorder) Turn(deltaDeg float64) error {
	if !isFinite(deltaDeg) {
		return fmt.Errorf("%w: turn angle %v", ErrInvalidInput, deltaDeg)
	}
	r.heading = NormalizeHeading(r.heading + deltaDeg)
	return nil
}

func (r *Recorder) SetColor(c Color) error {
	if c == "" {
		return fmt.Errorf("%w: empty pen color", ErrInvalidInput)
	}
	r.color = c
	return nil
}

func (r *Recorder) Color() Color {
	return r.color
}

// Heading is in degrees within [0, 360), 0 facing +x, counter-clockwise.
func (r *Recorder) Heading() float64 {
	return r.heading
}

func (r *Recorder) Position() Point {
	return r.pos
}

// Path returns a copy of the recorded segments in draw order.
func (r *Recorder) Path() []Segment {
	out := make([]Segment, len(r.path))
	copy(out, r.path)
	return out
}
