package main

import (
	"fmt"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/svg2polylines/svgdraw"
	"github.com/benoitkugler/svg2polylines/svgpdf"
	"github.com/benoitkugler/svg2polylines/svgpolyline"
	"github.com/benoitkugler/svg2polylines/svgraster"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRenderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <file.svg|->",
		Short: "Render the polylines of an SVG document as PNG or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, v, args[0])
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file, whose extension selects the format (default: standard output)")
	cmd.Flags().StringP("format", "f", "", "Output format: png or pdf (default: from the output extension, or png)")
	cmd.Flags().Int("width", 512, "Image width, in pixels (png) or points (pdf)")
	cmd.Flags().Int("height", 512, "Image height, in pixels (png) or points (pdf)")
	cmd.Flags().Float64("margin", 8, "Margin around the drawing")
	cmd.Flags().Float64("line-width", 1, "Stroke width")

	_ = v.BindPFlag("render.width", cmd.Flags().Lookup("width"))
	_ = v.BindPFlag("render.height", cmd.Flags().Lookup("height"))
	_ = v.BindPFlag("render.margin", cmd.Flags().Lookup("margin"))
	_ = v.BindPFlag("render.line_width", cmd.Flags().Lookup("line-width"))
	return cmd
}

func renderFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if format == "" {
			format = "png"
		}
	}
	if format != "png" && format != "pdf" {
		return "", fmt.Errorf("unsupported output format %q", format)
	}
	return format, nil
}

func runRender(cmd *cobra.Command, v *viper.Viper, input string) error {
	output, _ := cmd.Flags().GetString("output")
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := renderFormat(formatFlag, output)
	if err != nil {
		return err
	}
	width, height := v.GetInt("render.width"), v.GetInt("render.height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	stroke := svgdraw.DefaultStroke
	stroke.LineWidth = v.GetFloat64("render.line_width")

	in, err := openInput(cmd, input)
	if err != nil {
		return err
	}
	defer in.Close()

	logger := newLogger(v, cmd.ErrOrStderr())
	lines, err := svgpolyline.ParseReader(in, parseOptions(v, logger))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", input, err)
	}

	out, err := openOutput(cmd, output, true)
	if err != nil {
		return err
	}

	margin := v.GetFloat64("render.margin")
	switch format {
	case "png":
		img := svgraster.RasterPolylines(lines, svgraster.Options{
			Width: width, Height: height, Margin: margin, Stroke: stroke,
		})
		err = png.Encode(out, img)
	case "pdf":
		err = svgpdf.RenderPolylinesToPDF(lines, out, svgpdf.Options{
			Width: float64(width), Height: float64(height), Margin: margin, Stroke: stroke,
		})
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}
	logger.Info("rendered", "format", format, "polylines", len(lines))
	return nil
}
