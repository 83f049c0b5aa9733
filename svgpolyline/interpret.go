package svgpolyline

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/benoitkugler/svg2polylines/svgpath"
)

// parseSegment applies one segment to the current line,
// pushing the completed subpaths to `lines`.
func parseSegment(seg svgpath.Segment, current *currentLine, lines *[]Polyline) error {
	switch seg := seg.(type) {
	case svgpath.MoveTo:
		// a lone point stays in the line, and is joined to the next subpath
		if current.isValid() {
			*lines = append(*lines, current.finish())
		}
		current.add(CoordinatePair{X: seg.X, Y: seg.Y})
	case svgpath.LineTo:
		current.add(CoordinatePair{X: seg.X, Y: seg.Y})
	case svgpath.HorizontalLineTo:
		y, ok := current.lastY()
		if !ok {
			return fmt.Errorf("HorizontalLineTo on empty line: %w", ErrInvalidState)
		}
		current.add(CoordinatePair{X: seg.X, Y: y})
	case svgpath.VerticalLineTo:
		x, ok := current.lastX()
		if !ok {
			return fmt.Errorf("VerticalLineTo on empty line: %w", ErrInvalidState)
		}
		current.add(CoordinatePair{X: x, Y: seg.Y})
	case svgpath.ClosePath:
		return current.close()
	default:
		return &UnsupportedSegmentError{Kind: seg.Kind()}
	}
	return nil
}

// parsePath converts the content of one `d` attribute.
// The returned error, if any, explains why the path was truncated:
// the polylines completed before the failure are still returned.
func parsePath(data string, resolveRelative bool, logger *slog.Logger) ([]Polyline, error) {
	logger.Debug("new path")

	var (
		lines   []Polyline
		current currentLine
		err     error
	)
	tk := svgpath.NewTokenizer(data)
	tk.ResolveRelative = resolveRelative
	for {
		var seg svgpath.Segment
		seg, err = tk.Next()
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			break
		}
		logger.Debug("segment", slog.Any("data", seg))
		if err = parseSegment(seg, &current, &lines); err != nil {
			break
		}
	}

	// path parsing is done, add the pending line if valid
	if current.isValid() {
		lines = append(lines, current.finish())
	}
	return lines, err
}
