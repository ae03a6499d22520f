package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/jbeda/geom"
)

// SVG writes SVG elements to an underlying writer. The first write error is
// kept and every later call becomes a no-op; check Err when done.
type SVG struct {
	writer io.Writer
	err    error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

func (svg *SVG) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

func (svg *SVG) Err() error {
	return svg.err
}

// attr renders one escaped attribute.
func attr(name string, value interface{}) string {
	return fmt.Sprintf("%s='%s'", name, html.EscapeString(fmt.Sprint(value)))
}

// extraparams joins prebuilt attributes; anything that is not name=value is
// treated as an inline style.
func extraparams(s []string) string {
	var b strings.Builder
	for _, p := range s {
		switch {
		case strings.Index(p, "=") > 0:
			b.WriteString(p)
		case len(p) > 0:
			b.WriteString(attr("style", p))
		default:
			continue
		}
		b.WriteByte(' ')
	}
	return b.String()
}

// XMLHeader starts a standalone SVG file.
func (svg *SVG) XMLHeader() {
	svg.printf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
}

func (svg *SVG) Start(width, height float64, s ...string) {
	svg.printf("<svg version='1.1' width='%g' height='%g' viewBox='0 0 %g %g' xmlns='http://www.w3.org/2000/svg' %s>\n",
		width, height, width, height, extraparams(s))
}

func (svg *SVG) End() {
	svg.printf("</svg>\n")
}

func (svg *SVG) Title(title string) {
	svg.printf("<title>%s</title>\n", html.EscapeString(title))
}

func (svg *SVG) Rect(r geom.Rect, s ...string) {
	svg.printf("<rect x='%g' y='%g' width='%g' height='%g' %s/>\n",
		r.Min.X, r.Min.Y, r.Width(), r.Height(), extraparams(s))
}

func (svg *SVG) Line(p1 geom.Coord, p2 geom.Coord, s ...string) {
	svg.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' %s/>\n", p1.X, p1.Y, p2.X, p2.Y, extraparams(s))
}
