package svgpolyline

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/svg2polylines/svgpath"
)

// ErrInvalidState is returned for a horizontal or vertical lineto
// with no current point.
var ErrInvalidState = errors.New("invalid state: no current point")

// UnsupportedSegmentError is returned for the curve commands.
type UnsupportedSegmentError struct {
	Kind svgpath.Kind
}

func (e *UnsupportedSegmentError) Error() string {
	return fmt.Sprintf("unsupported segment data: %s", e.Kind)
}

// PathError describes why a `d` attribute was truncated.
// It never aborts the parsing of a document: the polylines
// completed before the failure are kept.
type PathError struct {
	Index int   // index of the `d` attribute in the document, starting at 0
	Err   error // *svgpath.SyntaxError, *UnsupportedSegmentError, ErrInvalidState or ErrClose
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %d: %s", e.Index, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// DocumentSyntaxError is returned when the document itself
// is malformed. No polylines are returned in this case.
type DocumentSyntaxError struct {
	Line int // 0 if unknown
	Err  error
}

func (e *DocumentSyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid svg document (line %d): %s", e.Line, e.Err)
	}
	return fmt.Sprintf("invalid svg document: %s", e.Err)
}

func (e *DocumentSyntaxError) Unwrap() error { return e.Err }
