// Implements a PDF backend to render polylines,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"image/color"
	"io"

	"github.com/benoitkugler/svg2polylines/svgdraw"
	"github.com/benoitkugler/svg2polylines/svgpolyline"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Drawer = (*Renderer)(nil) // assert interface conformance

// A4 page, in points
const (
	defaultWidth  = 595.28
	defaultHeight = 841.89
)

// Options controls the output page.
type Options struct {
	Width, Height float64 // page size, in points; zero means A4
	Margin        float64
	Stroke        svgdraw.StrokeOptions // zero means svgdraw.DefaultStroke

	Parse svgpolyline.Options // used by RenderSVGToPDF
}

func (opts Options) pageSize() (w, h float64) {
	w, h = opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}
	return w, h
}

// Renderer writes the path it receives into a PDF page.
// Paths are only painted when calling Stroke.
type Renderer struct {
	pdf *gofpdf.Fpdf
}

// NewRenderer return a renderer which will
// write to the current page of `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

// Clear is a no-op: gofpdf starts a new path after each painting.
func (r Renderer) Clear() {}

func (r Renderer) Start(a fixed.Point26_6) {
	r.pdf.MoveTo(fixedTof(a))
}

func (r Renderer) Line(b fixed.Point26_6) {
	r.pdf.LineTo(fixedTof(b))
}

func (r Renderer) Stop(closeLoop bool) {
	if closeLoop {
		r.pdf.ClosePath()
	}
}

var (
	capStyles = [...]string{
		svgdraw.ButtCap:   "butt",
		svgdraw.RoundCap:  "round",
		svgdraw.SquareCap: "square",
	}
	joinStyles = [...]string{
		svgdraw.Miter: "miter",
		svgdraw.Round: "round",
		svgdraw.Bevel: "bevel",
	}
)

func (r Renderer) SetStrokeOptions(options svgdraw.StrokeOptions) {
	r.pdf.SetLineWidth(options.LineWidth)
	if int(options.Cap) < len(capStyles) {
		r.pdf.SetLineCapStyle(capStyles[options.Cap])
	}
	if int(options.Join) < len(joinStyles) {
		r.pdf.SetLineJoinStyle(joinStyles[options.Join])
	}
	if options.Color == nil {
		return
	}
	c := color.NRGBAModel.Convert(options.Color).(color.NRGBA)
	r.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	r.pdf.SetAlpha(float64(c.A)/255, "Normal")
}

// Stroke paints the current path.
func (r Renderer) Stroke() {
	r.pdf.DrawPath("D")
}

// DrawPolylines writes `lines` on a new page of `pdf`, scaled to fit the page.
func DrawPolylines(pdf *gofpdf.Fpdf, lines []svgpolyline.Polyline, opts Options) {
	w, h := opts.pageSize()
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})

	bounds, ok := svgpolyline.Bounds(lines)
	if !ok {
		return
	}
	stroke := opts.Stroke
	if stroke.Color == nil {
		stroke = svgdraw.DefaultStroke
	}

	r := NewRenderer(pdf)
	r.SetStrokeOptions(stroke)
	svgdraw.Draw(r, lines, svgdraw.FitTo(bounds, w, h, opts.Margin))
	r.Stroke()
}

func newDocument(opts Options) *gofpdf.Fpdf {
	w, h := opts.pageSize()
	return gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
}

// RenderPolylinesToPDF writes a one page PDF document showing `lines`.
func RenderPolylinesToPDF(lines []svgpolyline.Polyline, out io.Writer, opts Options) error {
	pdf := newDocument(opts)
	DrawPolylines(pdf, lines, opts)
	return pdf.Output(out)
}

// RenderSVGToPDF reads the given SVG document and renders
// its polylines into `out`.
func RenderSVGToPDF(svg io.Reader, out io.Writer, opts Options) error {
	lines, err := svgpolyline.ParseReader(svg, opts.Parse)
	if err != nil {
		return err
	}
	return RenderPolylinesToPDF(lines, out, opts)
}
