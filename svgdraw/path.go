package svgdraw

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Operation is one of MoveTo, LineTo or Close
type Operation interface {
	isOperation()
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type Close struct{}

func (MoveTo) isOperation() {}
func (LineTo) isOperation() {}
func (Close) isOperation()  {}

// Path records the draw operations it receives,
// and implements Drawer.
type Path []Operation

var _ Drawer = (*Path)(nil) // assert interface conformance

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}
