package svgraster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/svg2polylines/svgdraw"
	"github.com/benoitkugler/svg2polylines/svgpolyline"
)

func toPngBytes(m image.Image) ([]byte, error) {
	var b bytes.Buffer
	err := png.Encode(&b, m)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func saveToPngFile(filePath string, m image.Image) error {
	b, err := toPngBytes(m)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filePath, b, os.ModePerm)
}

func renderFile(t *testing.T, filename string) {
	f, err := os.Open(filename)
	if err != nil {
		t.Fatalf("can't open svg source: %s", err)
	}
	defer f.Close()
	img, err := RasterSVGToImage(f, Options{Width: 200, Height: 200, Margin: 10, Background: color.White})
	if err != nil {
		t.Fatalf("can't raster image: %s", err)
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	err = saveToPngFile(fmt.Sprintf("testdata_out/%s.png", name), img)
	if err != nil {
		t.Fatalf("can't saved rasterized image: %s", err)
	}
}

func TestRasterFiles(t *testing.T) {
	for _, p := range []string{"lines.svg", "curves.svg"} {
		renderFile(t, filepath.Join("..", "svgpolyline", "testdata", p))
	}
}

func TestRasterHorizontalLine(t *testing.T) {
	lines := []svgpolyline.Polyline{{{0, 0}, {10, 0}}}
	img := RasterPolylines(lines, Options{
		Width: 20, Height: 20, Margin: 5,
		Stroke:     svgdraw.StrokeOptions{LineWidth: 2, Cap: svgdraw.ButtCap, Join: svgdraw.Round, Color: color.Black},
		Background: color.White,
	})
	// the line goes from (5,10) to (15,10)
	if c := img.RGBAAt(10, 9); c.R > 10 {
		t.Errorf("expected a black pixel, got %v", c)
	}
	if c := img.RGBAAt(10, 10); c.R > 10 {
		t.Errorf("expected a black pixel, got %v", c)
	}
	for _, p := range []image.Point{{0, 0}, {10, 2}, {10, 17}, {19, 19}} {
		if c := img.RGBAAt(p.X, p.Y); c != (color.RGBA{255, 255, 255, 255}) {
			t.Errorf("expected a white pixel at %v, got %v", p, c)
		}
	}
}

func TestRasterEmpty(t *testing.T) {
	img := RasterPolylines(nil, Options{Width: 4, Height: 3})
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
	for _, b := range img.Pix {
		if b != 0 {
			t.Fatal("expected a transparent image")
		}
	}

	if _, err := RasterSVGToImage(strings.NewReader("<svg><path"), Options{Width: 4, Height: 4}); err == nil {
		t.Error("expected an error for an invalid document")
	}
}

func TestRasterDefaultStroke(t *testing.T) {
	lines := []svgpolyline.Polyline{{{0, 0}, {10, 10}, {0, 10}, {0, 0}}}
	img := RasterPolylines(lines, Options{Width: 50, Height: 50, Margin: 5})
	painted := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Error("nothing has been drawn")
	}
}
