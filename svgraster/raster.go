// Implements a raster backend to render polylines,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"io"

	"github.com/benoitkugler/svg2polylines/svgdraw"
	"github.com/benoitkugler/svg2polylines/svgpolyline"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Drawer = (*Renderer)(nil) // assert interface conformance

// Options controls the output image.
type Options struct {
	Width, Height int // in pixels
	Margin        float64
	Stroke        svgdraw.StrokeOptions // zero means svgdraw.DefaultStroke
	Background    color.Color           // nil means transparent

	Parse svgpolyline.Options // used by RasterSVGToImage
}

type Renderer struct {
	dasher *rasterx.Dasher
}

// NewRenderer returns a renderer with default values,
// drawing through `scanner`.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner)}
}

func (rd *Renderer) Clear() {
	rd.dasher.Clear()
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgdraw.Round: rasterx.Round,
		svgdraw.Bevel: rasterx.Bevel,
		svgdraw.Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgdraw.ButtCap:   rasterx.ButtCap,
		svgdraw.SquareCap: rasterx.SquareCap,
		svgdraw.RoundCap:  rasterx.RoundCap,
	}
)

const miterLimit = 4 * 64

func (rd *Renderer) SetStrokeOptions(options svgdraw.StrokeOptions) {
	join, capF := rasterx.Round, rasterx.CapFunc(rasterx.RoundCap)
	if int(options.Join) < len(joinToJoin) {
		join = joinToJoin[options.Join]
	}
	if int(options.Cap) < len(capToFunc) {
		capF = capToFunc[options.Cap]
	}
	rd.dasher.SetStroke(
		fixed.Int26_6(options.LineWidth*64), miterLimit, capF, nil,
		rasterx.RoundGap, join, nil, 0,
	)
	if options.Color != nil {
		rd.dasher.Scanner.SetColor(options.Color)
	}
}

func (rd *Renderer) Start(a fixed.Point26_6) {
	rd.dasher.Start(a)
}

func (rd *Renderer) Line(b fixed.Point26_6) {
	rd.dasher.Line(b)
}

func (rd *Renderer) Stop(closeLoop bool) {
	rd.dasher.Stop(closeLoop)
}

// Stroke rasterizes the current path.
func (rd *Renderer) Stroke() {
	rd.dasher.Draw()
}

// RasterPolylines uses a ScannerGV instance to render the
// polylines into an image, scaled to fit it.
func RasterPolylines(lines []svgpolyline.Polyline, opts Options) *image.RGBA {
	w, h := opts.Width, opts.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	bounds, ok := svgpolyline.Bounds(lines)
	if !ok || w <= 0 || h <= 0 {
		return img
	}
	stroke := opts.Stroke
	if stroke.Color == nil {
		stroke = svgdraw.DefaultStroke
	}

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	renderer := NewRenderer(w, h, scanner)
	renderer.SetStrokeOptions(stroke)
	svgdraw.Draw(renderer, lines, svgdraw.FitTo(bounds, float64(w), float64(h), opts.Margin))
	renderer.Stroke()
	return img
}

// RasterSVGToImage parses the SVG document and
// renders its polylines into an image.
func RasterSVGToImage(svg io.Reader, opts Options) (*image.RGBA, error) {
	lines, err := svgpolyline.ParseReader(svg, opts.Parse)
	if err != nil {
		return nil, err
	}
	return RasterPolylines(lines, opts), nil
}
