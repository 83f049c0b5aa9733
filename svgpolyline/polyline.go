// Provides the conversion of the path data found in SVG documents
// into polylines, that is flat sequences of points.
//
// Only lines are supported: moveto, lineto, horizontal and vertical lineto and
// closepath. A path using a curve command (Bézier curves or elliptical arcs)
// is truncated at the first curve.
package svgpolyline

// CoordinatePair is a point of a polyline.
// Its memory layout is the one of the C struct { double x; double y; }
type CoordinatePair struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polyline is a sequence of connected points.
// The polylines returned by this package have at least two points.
type Polyline []CoordinatePair

// Closed returns true if the polyline ends at its first point.
func (p Polyline) Closed() bool {
	return len(p) > 2 && p[0] == p[len(p)-1]
}
