// Package script runs drawing programs written in YAML against a turtle.
//
//	steps:
//	  - op: color
//	    color: red
//	  - op: polygon
//	    side: 80
//	    sides: 6
//	  - op: path
//	    points: [{x: 0, y: 0}, {x: 30, y: 40}]
package script

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"turtle-art/internal/turtle"
)

// ErrUnknownOp is returned for a step whose op is not recognised.
var ErrUnknownOp = errors.New("unknown op")

// ErrMissingField is returned when a step leaves out one of its fields.
var ErrMissingField = errors.New("missing field")

// Script is a parsed drawing program. Steps keep their raw form until they run.
type Script struct {
	Name  string           `yaml:"name"`
	Steps []map[string]any `yaml:"steps"`
}

type colorStep struct {
	Color string `mapstructure:"color"`
}

type forwardStep struct {
	Distance float64 `mapstructure:"distance"`
}

type turnStep struct {
	Degrees float64 `mapstructure:"degrees"`
}

type polygonStep struct {
	Side  float64 `mapstructure:"side"`
	Sides int     `mapstructure:"sides"`
}

type spiralStep struct {
	Radius     float64 `mapstructure:"radius"`
	Iterations int     `mapstructure:"iterations"`
}

type waypoint struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

type pathStep struct {
	Points []waypoint `mapstructure:"points"`
}

func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return &s, nil
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// decode fills out from a raw step. The op key is ignored; a key that does
// not belong to the step, or a step field with no key, is an error.
func decode(raw map[string]any, out any) error {
	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		if k != "op" {
			fields[k] = v
		}
	}
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Metadata:    &md,
		Result:      out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(fields); err != nil {
		return err
	}
	if len(md.Unset) > 0 {
		sort.Strings(md.Unset)
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(md.Unset, ", "))
	}
	return nil
}

// Run executes the steps in order and returns the navigation instructions
// produced by path steps. It stops at the first failing step.
func (s *Script) Run(t turtle.Turtle, log logrus.FieldLogger) ([]string, error) {
	instructions := []string{}
	for i, raw := range s.Steps {
		op, _ := raw["op"].(string)
		stepLog := log.WithFields(logrus.Fields{"step": i + 1, "op": op})

		out, err := runStep(t, op, raw)
		if err != nil {
			return instructions, fmt.Errorf("step %d (%s): %w", i+1, op, err)
		}
		instructions = append(instructions, out...)
		stepLog.Debug("step done")
	}
	return instructions, nil
}

func runStep(t turtle.Turtle, op string, raw map[string]any) ([]string, error) {
	switch op {
	case "color":
		var st colorStep
		if err := decode(raw, &st); err != nil {
			return nil, err
		}
		return nil, t.SetColor(turtle.Color(st.Color))
	case "forward":
		var st forwardStep
		if err := decode(raw, &st); err != nil {
			return nil, err
		}
		return nil, t.Forward(st.Distance)
	case "turn":
		var st turnStep
		if err := decode(raw, &st); err != nil {
			return nil, err
		}
		return nil, t.Turn(st.Degrees)
	case "polygon":
		var st polygonStep
		if err := decode(raw, &st); err != nil {
			return nil, err
		}
		return nil, turtle.DrawPolygon(t, st.Side, st.Sides)
	case "spiral":
		var st spiralStep
		if err := decode(raw, &st); err != nil {
			return nil, err
		}
		return nil, turtle.DrawSpiralingCircle(t, st.Radius, st.Iterations)
	case "path":
		var st pathStep
		if err := decode(raw, &st); err != nil {
			return nil, err
		}
		points := make([]turtle.Point, len(st.Points))
		for i, w := range st.Points {
			points[i] = turtle.Point{X: w.X, Y: w.Y}
		}
		return turtle.PlotOptimalPath(t, points)
	case "artwork":
		if err := decode(raw, &struct{}{}); err != nil {
			return nil, err
		}
		return nil, turtle.CreateGeometricArtwork(t)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownOp, op)
	}
}
