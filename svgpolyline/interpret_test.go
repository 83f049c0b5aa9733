package svgpolyline

import (
	"errors"
	"testing"

	"github.com/benoitkugler/svg2polylines/svgpath"
	"github.com/google/go-cmp/cmp"
)

func applySegments(t *testing.T, segs ...svgpath.Segment) (*currentLine, []Polyline) {
	t.Helper()
	var (
		current currentLine
		lines   []Polyline
	)
	for _, seg := range segs {
		if err := parseSegment(seg, &current, &lines); err != nil {
			t.Fatalf("segment %v: %s", seg, err)
		}
	}
	return &current, lines
}

func TestParseSegment(t *testing.T) {
	current, lines := applySegments(t,
		svgpath.MoveTo{X: 1, Y: 2},
		svgpath.LineTo{X: 2, Y: 3},
		svgpath.LineTo{X: 3, Y: 2},
	)
	if len(lines) != 0 {
		t.Errorf("expected no finished line, got %v", lines)
	}
	if d := cmp.Diff(Polyline{{1, 2}, {2, 3}, {3, 2}}, current.finish()); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}

func TestParseSegmentHorizontalVertical(t *testing.T) {
	current, lines := applySegments(t,
		svgpath.MoveTo{X: 1, Y: 2},
		svgpath.HorizontalLineTo{X: 3},
		svgpath.VerticalLineTo{Y: -1},
	)
	if len(lines) != 0 {
		t.Errorf("expected no finished line, got %v", lines)
	}
	if d := cmp.Diff(Polyline{{1, 2}, {3, 2}, {3, -1}}, current.finish()); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}

func TestParseSegmentUnsupported(t *testing.T) {
	current, lines := applySegments(t, svgpath.MoveTo{X: 1, Y: 2})
	err := parseSegment(svgpath.Unsupported{Command: svgpath.KindSmoothQuadratic}, current, &lines)
	var ue *UnsupportedSegmentError
	if !errors.As(err, &ue) || ue.Kind != svgpath.KindSmoothQuadratic {
		t.Fatalf("expected an unsupported segment error, got %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no finished line, got %v", lines)
	}
	if d := cmp.Diff(Polyline{{1, 2}}, current.finish()); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}

func TestParseSegmentMultiple(t *testing.T) {
	current, lines := applySegments(t,
		svgpath.MoveTo{X: 1, Y: 2},
		svgpath.LineTo{X: 2, Y: 3},
		svgpath.MoveTo{X: 1, Y: 3},
		svgpath.LineTo{X: 2, Y: 4},
		svgpath.MoveTo{X: 1, Y: 4},
		svgpath.LineTo{X: 2, Y: 5},
		svgpath.MoveTo{X: 1, Y: 5},
	)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if current.isValid() {
		t.Error("pending line should not be valid")
	}
	if got := current.finish(); len(got) != 1 {
		t.Errorf("expected 1 pending point, got %v", got)
	}
}

func TestParseSegmentLonePoint(t *testing.T) {
	current, lines := applySegments(t,
		svgpath.MoveTo{X: 0, Y: 0},
		svgpath.MoveTo{X: 1, Y: 1},
		svgpath.LineTo{X: 2, Y: 2},
		svgpath.MoveTo{X: 3, Y: 3},
	)
	if d := cmp.Diff([]Polyline{{{0, 0}, {1, 1}, {2, 2}}}, lines); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
	if d := cmp.Diff(Polyline{{3, 3}}, current.finish()); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}

func TestParsePathErrors(t *testing.T) {
	logger := newNopLogger()
	for _, test := range []struct {
		data  string
		want  []Polyline
		check func(error) bool
	}{
		{
			"h 10 l 1 1 2 2",
			nil,
			func(err error) bool { return errors.Is(err, ErrInvalidState) },
		},
		{
			"v 10",
			nil,
			func(err error) bool { return errors.Is(err, ErrInvalidState) },
		},
		{
			"M 0 0 L 1 1 L 2 2 C 1 1 2 2 3 3 L 5 5",
			[]Polyline{{{0, 0}, {1, 1}, {2, 2}}},
			func(err error) bool { var ue *UnsupportedSegmentError; return errors.As(err, &ue) },
		},
		{
			"M 0 0 Q 1 1 2 2",
			nil,
			func(err error) bool { var ue *UnsupportedSegmentError; return errors.As(err, &ue) },
		},
		{
			"M 0 0 L 1 1 M 5 5 z",
			[]Polyline{{{0, 0}, {1, 1}}},
			func(err error) bool { return errors.Is(err, ErrClose) },
		},
		{
			"M 0 0 L 1 1 L 2 # 3",
			[]Polyline{{{0, 0}, {1, 1}}},
			func(err error) bool { var se *svgpath.SyntaxError; return errors.As(err, &se) },
		},
	} {
		got, err := parsePath(test.data, false, logger)
		if !test.check(err) {
			t.Errorf("%q: unexpected error %v", test.data, err)
		}
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("%q: (-want +got)\n%s", test.data, d)
		}
	}
}

// subpathCount returns the number of subpaths holding more than one point
// when the next moveto (or the end of data) is reached.
func subpathCount(path svgpath.Path) int {
	count, points := 0, 0
	for _, seg := range path {
		switch seg.Kind() {
		case svgpath.KindMoveTo:
			if points > 1 {
				count++
				points = 0
			}
			points++
		case svgpath.KindClosePath:
			if points > 1 {
				points++
			}
		default:
			points++
		}
	}
	if points > 1 {
		count++
	}
	return count
}

func TestParsePathMoveToCount(t *testing.T) {
	for _, test := range []struct {
		data string
		want []Polyline
	}{
		{
			"M 0 0 L 1 1 M 2 2 L 3 3 M 4 4 L 5 5",
			[]Polyline{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}, {{4, 4}, {5, 5}}},
		},
		{
			"M 0 0 M 1 1 M 2 2 L 3 3",
			[]Polyline{{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		},
		{
			"M 0 0 L 1 1 Z M 2 2 L 3 3 L 4 4 Z M 5 5",
			[]Polyline{{{0, 0}, {1, 1}, {0, 0}}, {{2, 2}, {3, 3}, {4, 4}, {2, 2}}},
		},
		{
			"M 1 1 2 2 3 3",
			[]Polyline{{{1, 1}, {2, 2}, {3, 3}}},
		},
		{
			"M 9 9 M 0 0 H 4 V 4 M 7 7 L 8 8",
			[]Polyline{{{9, 9}, {0, 0}, {4, 0}, {4, 4}}, {{7, 7}, {8, 8}}},
		},
		{"M 1 1", nil},
	} {
		got, err := parsePath(test.data, false, newNopLogger())
		if err != nil {
			t.Fatal(err)
		}
		path, err := svgpath.Tokenize(test.data)
		if err != nil {
			t.Fatal(err)
		}
		if n := subpathCount(path); len(got) != n {
			t.Errorf("%q: expected %d polylines, got %d", test.data, n, len(got))
		}
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("%q: (-want +got)\n%s", test.data, d)
		}
	}
}

func TestParsePathResolveRelative(t *testing.T) {
	got, err := parsePath("m 113,35 h 40 l -39,49 h 40", true, newNopLogger())
	if err != nil {
		t.Fatal(err)
	}
	want := []Polyline{{{113, 35}, {153, 35}, {114, 84}, {154, 84}}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}
