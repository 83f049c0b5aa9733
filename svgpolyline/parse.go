package svgpolyline

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options configures the parsing of a document.
// The zero value is ready to use.
type Options struct {
	// Tolerance is reserved for the approximation of curves by lines.
	// Curves are not supported, so that it is not used yet.
	Tolerance float64

	// ResolveRelative resolves the coordinates of relative path commands
	// against the current point. By default, they are used as written.
	ResolveRelative bool

	// Logger receives debug traces and a warning for each truncated path.
	// Nil disables logging.
	Logger *slog.Logger

	// OnPathError, if not nil, is called for each truncated path.
	OnPathError func(*PathError)
}

// Parse returns the polylines found in the `d` attributes of the
// given SVG document, using default options.
// See ParseReader for details.
func Parse(svg string) ([]Polyline, error) {
	return ParseReader(strings.NewReader(svg), Options{})
}

// ParseWithOptions is the same as Parse, with custom options.
func ParseWithOptions(svg string, opts Options) ([]Polyline, error) {
	return ParseReader(strings.NewReader(svg), opts)
}

// ParseReader reads an SVG document and converts the path data of
// every `d` attribute into polylines, in document order.
// A path with invalid or unsupported data is truncated,
// keeping the polylines completed before the failure, and reported
// through `opts`. Only a malformed document returns an error,
// of type *DocumentSyntaxError, in which case no polylines are returned.
func ParseReader(r io.Reader, opts Options) ([]Polyline, error) {
	logger := opts.Logger
	if logger == nil {
		logger = newNopLogger()
	}
	if opts.Tolerance != 0 {
		logger.Debug("curves are not supported, tolerance is ignored", "tolerance", opts.Tolerance)
	}

	var polylines []Polyline
	scanner := newAttrScanner(r)
	index := 0
	for {
		attr, err := scanner.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, scanner.syntaxError(err)
		}

		// process only 'd' attributes
		if attr.Name.Space != "" || attr.Name.Local != "d" {
			continue
		}

		lines, err := parsePath(attr.Value, opts.ResolveRelative, logger)
		polylines = append(polylines, lines...)
		if err != nil {
			pathErr := &PathError{Index: index, Err: err}
			logger.Warn("invalid path segment", "error", pathErr)
			if opts.OnPathError != nil {
				opts.OnPathError(pathErr)
			}
		}
		index++
	}
	return polylines, nil
}

// ReadFile reads the named SVG file.
// See ParseReader for details.
func ReadFile(name string, opts Options) ([]Polyline, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReader(f, opts)
}
