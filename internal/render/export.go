// Package render turns a recorded turtle path into a static drawing: an HTML
// page embedding an SVG canvas, or a bare SVG file.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jbeda/geom"
	"github.com/sirupsen/logrus"

	"turtle-art/internal/config"
	"turtle-art/internal/turtle"
)

// ErrIO is returned when the drawing cannot be written out. The recorded path
// is not affected.
var ErrIO = errors.New("export failed")

type Exporter struct {
	canvas config.Canvas
	format string
	log    logrus.FieldLogger
}

func NewExporter(cfg config.Config, log logrus.FieldLogger) *Exporter {
	return &Exporter{
		canvas: cfg.Canvas,
		format: strings.ToLower(cfg.Format),
		log:    log.WithField("component", "render"),
	}
}

// Transform maps a turtle point onto the canvas: scaled, then moved so the
// turtle origin sits in the middle of the canvas.
func (e *Exporter) Transform(p turtle.Point) geom.Coord {
	y := p.Y * e.canvas.Scale
	if e.canvas.FlipY {
		y = -y
	}
	return geom.Coord{
		X: e.canvas.Width/2 + p.X*e.canvas.Scale,
		Y: e.canvas.Height/2 + y,
	}
}

func (e *Exporter) lineStyle(c turtle.Color) []string {
	return []string{
		attr("stroke", c),
		attr("stroke-width", e.canvas.StrokeWidth),
		attr("stroke-opacity", e.canvas.Opacity),
		attr("stroke-linecap", "round"),
	}
}

func (e *Exporter) drawing(svg *SVG, path []turtle.Segment) {
	svg.Start(e.canvas.Width, e.canvas.Height)
	svg.Title(e.canvas.Title)
	canvas := geom.Rect{Max: geom.Coord{X: e.canvas.Width, Y: e.canvas.Height}}
	if e.canvas.Background != "" {
		svg.Rect(canvas, attr("fill", e.canvas.Background))
	}

	var drawn geom.Rect
	for i, seg := range path {
		p1, p2 := e.Transform(seg.Start), e.Transform(seg.End)
		if i == 0 {
			drawn = geom.Rect{Min: p1, Max: p1}
		}
		drawn.ExpandToContainCoord(p1)
		drawn.ExpandToContainCoord(p2)
		svg.Line(p1, p2, e.lineStyle(seg.Color)...)
	}
	svg.End()

	if len(path) > 0 && !canvas.ContainsRect(drawn) {
		e.log.WithFields(logrus.Fields{
			"min_x": drawn.Min.X, "min_y": drawn.Min.Y,
			"max_x": drawn.Max.X, "max_y": drawn.Max.Y,
		}).Warn("drawing extends past the canvas and will be clipped")
	}
}

// Export writes the document for path to w in the configured format.
func (e *Exporter) Export(w io.Writer, path []turtle.Segment) error {
	svg := NewSVG(w)
	switch e.format {
	case config.FormatSVG:
		svg.XMLHeader()
		e.drawing(svg, path)
	case config.FormatHTML, "":
		svg.printf("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n",
			html.EscapeString(e.canvas.Title))
		e.drawing(svg, path)
		svg.printf("</body>\n</html>\n")
	default:
		return fmt.Errorf("unknown format %q", e.format)
	}
	return svg.Err()
}

// WriteFile exports path to the named file, creating parent directories. The
// drawing goes to a temporary file beside name and replaces name only once it
// is complete, so a failed export leaves any previous file untouched.
func (e *Exporter) WriteFile(name string, path []turtle.Segment) (err error) {
	log := e.log.WithField("path", name)

	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	bw := bufio.NewWriter(f)
	if err := e.Export(bw, path); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, name, err)
	}
	if err := f.Chmod(0644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := os.Rename(f.Name(), name); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	log.WithField("segments", len(path)).Debug("drawing written")
	return nil
}
