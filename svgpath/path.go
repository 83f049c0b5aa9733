// Implements an abstract representation of
// svg path data, as a sequence of drawing commands
// which can then be consumed by a path interpreter.
package svgpath

import (
	"fmt"
	"strings"
)

// Kind identifies an SVG path command, regardless
// of the absolute or relative form used in the source.
type Kind uint8

// Human readable path constants
const (
	KindMoveTo Kind = iota
	KindLineTo
	KindHorizontalLineTo
	KindVerticalLineTo
	KindClosePath
	KindCurveTo
	KindSmoothCurveTo
	KindQuadratic
	KindSmoothQuadratic
	KindEllipticalArc
)

func (k Kind) String() string {
	switch k {
	case KindMoveTo:
		return "MoveTo"
	case KindLineTo:
		return "LineTo"
	case KindHorizontalLineTo:
		return "HorizontalLineTo"
	case KindVerticalLineTo:
		return "VerticalLineTo"
	case KindClosePath:
		return "ClosePath"
	case KindCurveTo:
		return "CurveTo"
	case KindSmoothCurveTo:
		return "SmoothCurveTo"
	case KindQuadratic:
		return "Quadratic"
	case KindSmoothQuadratic:
		return "SmoothQuadratic"
	case KindEllipticalArc:
		return "EllipticalArc"
	default:
		return "<unknown Kind>"
	}
}

// Segment groups the different SVG commands
type Segment interface {
	Kind() Kind
}

type MoveTo struct{ X, Y float64 }

type LineTo struct{ X, Y float64 }

type HorizontalLineTo struct{ X float64 }

type VerticalLineTo struct{ Y float64 }

type ClosePath struct{}

// Unsupported is emitted for the curve commands (cubic and quadratic
// Béziers, their smooth variants and elliptical arcs). Their parameters
// are consumed but not reported.
type Unsupported struct{ Command Kind }

func (MoveTo) Kind() Kind           { return KindMoveTo }
func (LineTo) Kind() Kind           { return KindLineTo }
func (HorizontalLineTo) Kind() Kind { return KindHorizontalLineTo }
func (VerticalLineTo) Kind() Kind   { return KindVerticalLineTo }
func (ClosePath) Kind() Kind        { return KindClosePath }
func (u Unsupported) Kind() Kind    { return u.Command }

// Path is a sequence of segments, as returned by a Tokenizer.
type Path []Segment

// ToSVGPath returns a string representation of the path,
// using absolute commands only.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, seg := range p {
		switch seg := seg.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", seg.X, seg.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", seg.X, seg.Y)
		case HorizontalLineTo:
			chunks[i] = fmt.Sprintf("H%4.3f", seg.X)
		case VerticalLineTo:
			chunks[i] = fmt.Sprintf("V%4.3f", seg.Y)
		case ClosePath:
			chunks[i] = "Z"
		case Unsupported:
			chunks[i] = "<" + seg.Command.String() + ">"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}
