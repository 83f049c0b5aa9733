// Given polylines extracted from an SVG document, implements how to
// draw them on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package svgdraw

import (
	"image/color"
	"math"

	"github.com/benoitkugler/svg2polylines/svgpolyline"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG kwowledge
// In particular, tranformations matrix are already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new drawing)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// Stop ends the current path, joining its ends if `closeLoop` is true.
	Stop(closeLoop bool)
}

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Round JoinMode = iota
	Bevel
	Miter
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "Round"
	case Bevel:
		return "Bevel"
	case Miter:
		return "Miter"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "<unknown CapMode>"
	}
}

type StrokeOptions struct {
	LineWidth float64 // in output units
	Join      JoinMode
	Cap       CapMode
	Color     color.Color
}

// DefaultStroke draws thin black lines with round ends.
var DefaultStroke = StrokeOptions{
	LineWidth: 1,
	Join:      Round,
	Cap:       RoundCap,
	Color:     color.Black,
}

func toFixed(m matrix.Matrix, p svgpolyline.CoordinatePair) fixed.Point26_6 {
	return svgpolyline.CoordinatePair{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}.Fixed()
}

// Draw clears `d`, then sends the polylines to it, after applying
// the transform `m`. Closed polylines end with Stop(true), without
// repeating their first point.
func Draw(d Drawer, lines []svgpolyline.Polyline, m matrix.Matrix) {
	d.Clear()
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		closed := line.Closed()
		if closed {
			line = line[:len(line)-1]
		}
		d.Start(toFixed(m, line[0]))
		for _, p := range line[1:] {
			d.Line(toFixed(m, p))
		}
		d.Stop(closed)
	}
}

// FitTo returns the transform mapping `bounds` into a `w` x `h` viewport,
// keeping the aspect ratio, leaving at least `margin` on each side,
// and centering the drawing.
func FitTo(bounds rect.Rect, w, h, margin float64) matrix.Matrix {
	bw, bh := bounds.URx-bounds.LLx, bounds.URy-bounds.LLy
	aw, ah := w-2*margin, h-2*margin
	var scale float64
	switch {
	case bw > 0 && bh > 0:
		scale = math.Min(aw/bw, ah/bh)
	case bw > 0:
		scale = aw / bw
	case bh > 0:
		scale = ah / bh
	default: // a single point
		scale = 1
	}
	tx := margin + (aw-scale*bw)/2 - scale*bounds.LLx
	ty := margin + (ah-scale*bh)/2 - scale*bounds.LLy
	return matrix.Matrix{scale, 0, 0, scale, tx, ty}
}
