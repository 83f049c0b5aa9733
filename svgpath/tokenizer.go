package svgpath

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// SyntaxError reports malformed path data.
type SyntaxError struct {
	Offset int // byte offset into the path data
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("svgpath: syntax error at offset %d: %s", e.Offset, e.Msg)
}

const commands = "MmLlHhVvZzCcSsQqTtAa"

// number of parameters, indexed by lower case command
var paramCounts = map[byte]int{
	'm': 2, 'l': 2, 'h': 1, 'v': 1, 'z': 0,
	'c': 6, 's': 4, 'q': 4, 't': 2, 'a': 7,
}

var commandKinds = map[byte]Kind{
	'm': KindMoveTo,
	'l': KindLineTo,
	'h': KindHorizontalLineTo,
	'v': KindVerticalLineTo,
	'z': KindClosePath,
	'c': KindCurveTo,
	's': KindSmoothCurveTo,
	'q': KindQuadratic,
	't': KindSmoothQuadratic,
	'a': KindEllipticalArc,
}

// Tokenizer splits the content of a `d` attribute into segments,
// one at a time.
// A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	// ResolveRelative makes relative commands report coordinates
	// resolved against the current point. When false, the numbers
	// are reported as written.
	ResolveRelative bool

	data []byte
	pos  int
	cmd  byte // command repeated by implicit parameters, 0 before the first command

	curX, curY     float64 // current point
	startX, startY float64 // start of the current subpath

	err error // sticky
}

// NewTokenizer returns a tokenizer reading the given path data.
func NewTokenizer(data string) *Tokenizer {
	return &Tokenizer{data: []byte(data)}
}

// Tokenize reads the whole path data, stopping at the first error.
// The segments read before the error are returned.
func Tokenize(data string) (Path, error) {
	var out Path
	tk := NewTokenizer(data)
	for {
		seg, err := tk.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, seg)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isNumberStart(c byte) bool {
	return ('0' <= c && c <= '9') || c == '-' || c == '+' || c == '.'
}

func lower(c byte) byte { return c | 0x20 }

func (t *Tokenizer) skipCommaSpaces() {
	for t.pos < len(t.data) && isSpace(t.data[t.pos]) {
		t.pos++
	}
	if t.pos < len(t.data) && t.data[t.pos] == ',' {
		t.pos++
		for t.pos < len(t.data) && isSpace(t.data[t.pos]) {
			t.pos++
		}
	}
}

func (t *Tokenizer) fail(format string, args ...interface{}) error {
	t.err = &SyntaxError{Offset: t.pos, Msg: fmt.Sprintf(format, args...)}
	return t.err
}

func (t *Tokenizer) number() (float64, error) {
	t.skipCommaSpaces()
	if t.pos >= len(t.data) {
		return 0, t.fail("unexpected end of path data, expected a number")
	}
	f, n := strconv.ParseFloat(t.data[t.pos:])
	if n == 0 {
		return 0, t.fail("expected a number, got %q", t.data[t.pos])
	}
	t.pos += n
	return f, nil
}

// arc flags are a single digit, and may be packed
// without separator
func (t *Tokenizer) flag() (float64, error) {
	t.skipCommaSpaces()
	if t.pos < len(t.data) {
		switch t.data[t.pos] {
		case '0':
			t.pos++
			return 0, nil
		case '1':
			t.pos++
			return 1, nil
		}
	}
	return 0, t.fail("expected an arc flag (0 or 1)")
}

// Next returns the next segment, or io.EOF when the path data is exhausted.
// Once an error has been returned, every following call returns it again.
func (t *Tokenizer) Next() (Segment, error) {
	if t.err != nil {
		return nil, t.err
	}
	t.skipCommaSpaces()
	if t.pos >= len(t.data) {
		t.err = io.EOF
		return nil, io.EOF
	}

	c := t.data[t.pos]
	var cmd byte
	switch {
	case strings.IndexByte(commands, c) >= 0:
		cmd = c
		t.pos++
	case isNumberStart(c):
		if t.cmd == 0 {
			return nil, t.fail("path data must start with a command")
		}
		if lower(t.cmd) == 'z' {
			return nil, t.fail("closepath takes no parameters")
		}
		cmd = t.cmd
	default:
		return nil, t.fail("unexpected character %q", c)
	}

	seg, err := t.segment(cmd)
	if err != nil {
		return nil, err
	}

	// implicit parameters after a moveto are linetos
	switch cmd {
	case 'M':
		t.cmd = 'L'
	case 'm':
		t.cmd = 'l'
	default:
		t.cmd = cmd
	}
	return seg, nil
}

func (t *Tokenizer) segment(cmd byte) (Segment, error) {
	lc := lower(cmd)
	n := paramCounts[lc]
	var args [7]float64
	for i := 0; i < n; i++ {
		var err error
		if lc == 'a' && (i == 3 || i == 4) {
			args[i], err = t.flag()
		} else {
			args[i], err = t.number()
		}
		if err != nil {
			return nil, err
		}
	}

	var dx, dy float64
	if cmd == lc && t.ResolveRelative {
		dx, dy = t.curX, t.curY
	}

	switch lc {
	case 'm':
		t.curX, t.curY = args[0]+dx, args[1]+dy
		t.startX, t.startY = t.curX, t.curY
		return MoveTo{X: t.curX, Y: t.curY}, nil
	case 'l':
		t.curX, t.curY = args[0]+dx, args[1]+dy
		return LineTo{X: t.curX, Y: t.curY}, nil
	case 'h':
		t.curX = args[0] + dx
		return HorizontalLineTo{X: t.curX}, nil
	case 'v':
		t.curY = args[0] + dy
		return VerticalLineTo{Y: t.curY}, nil
	case 'z':
		t.curX, t.curY = t.startX, t.startY
		return ClosePath{}, nil
	default:
		// every curve command ends with its end point
		t.curX, t.curY = args[n-2]+dx, args[n-1]+dy
		return Unsupported{Command: commandKinds[lc]}, nil
	}
}
