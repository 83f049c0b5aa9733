package svgpolyline

import "errors"

// ErrClose is returned when closing a line with less than 2 points.
var ErrClose = errors.New("lines with less than 2 coordinate pairs cannot be closed")

// currentLine acts as a Polyline buffer, holding
// the subpath being built.
type currentLine struct {
	line Polyline
}

func (c *currentLine) add(pair CoordinatePair) {
	c.line = append(c.line, pair)
}

// isValid returns true if the line has more than 1 point
func (c *currentLine) isValid() bool {
	return len(c.line) > 1
}

// lastX returns the last x coordinate, if the line is not empty.
func (c *currentLine) lastX() (float64, bool) {
	if len(c.line) == 0 {
		return 0, false
	}
	return c.line[len(c.line)-1].X, true
}

// lastY returns the last y coordinate, if the line is not empty.
func (c *currentLine) lastY() (float64, bool) {
	if len(c.line) == 0 {
		return 0, false
	}
	return c.line[len(c.line)-1].Y, true
}

// close adds the first point at the end of the line.
func (c *currentLine) close() error {
	if len(c.line) < 2 {
		return ErrClose
	}
	c.line = append(c.line, c.line[0])
	return nil
}

// finish returns the stored points and resets the line.
func (c *currentLine) finish() Polyline {
	out := c.line
	c.line = nil
	return out
}
