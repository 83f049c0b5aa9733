package svgpolyline

import (
	"math"

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Vec2 returns the point as a vector.
func (c CoordinatePair) Vec2() vec.Vec2 { return vec.Vec2{X: c.X, Y: c.Y} }

// Fixed rounds the point to 26.6 fixed point coordinates,
// as used by rasterizers.
func (c CoordinatePair) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(c.X * 64)),
		Y: fixed.Int26_6(math.Round(c.Y * 64)),
	}
}

// Bounds returns the smallest rectangle containing every point
// of `lines`. It returns false if there is no point.
func Bounds(lines []Polyline) (rect.Rect, bool) {
	var (
		out   rect.Rect
		found bool
	)
	for _, line := range lines {
		for _, p := range line {
			if !found {
				out = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
				found = true
				continue
			}
			out.LLx = math.Min(out.LLx, p.X)
			out.LLy = math.Min(out.LLy, p.Y)
			out.URx = math.Max(out.URx, p.X)
			out.URy = math.Max(out.URy, p.Y)
		}
	}
	return out, found
}
