package svgpolyline

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// attrScanner returns the attributes of the elements
// of an XML document, in document order.
type attrScanner struct {
	decoder *xml.Decoder
	pending []xml.Attr // remaining attributes of the last start element
}

func newAttrScanner(r io.Reader) *attrScanner {
	// a byte order mark selects the encoding, and is removed
	r = transform.NewReader(r, unicode.BOMOverride(transform.Nop))
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charsetReader
	return &attrScanner{decoder: decoder}
}

// UTF-16 documents must start with a byte order mark,
// so that they are already transcoded to UTF-8.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-16", "utf-16le", "utf-16be":
		return input, nil
	}
	return charset.NewReaderLabel(label, input)
}

// next returns io.EOF at the end of a well formed document.
func (s *attrScanner) next() (xml.Attr, error) {
	for len(s.pending) == 0 {
		tok, err := s.decoder.Token()
		if err != nil {
			return xml.Attr{}, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			s.pending = se.Attr
		}
	}
	attr := s.pending[0]
	s.pending = s.pending[1:]
	return attr, nil
}

func (s *attrScanner) syntaxError(err error) *DocumentSyntaxError {
	out := &DocumentSyntaxError{Err: err}
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		out.Line = se.Line
	} else {
		out.Line, _ = s.decoder.InputPos()
	}
	return out
}
