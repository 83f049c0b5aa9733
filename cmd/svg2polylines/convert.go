package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/benoitkugler/svg2polylines/svgpolyline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConvertCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file.svg|->",
		Short: "Print the polylines of an SVG document",
		Long: "Parse an SVG document and print its polylines, either as JSON " +
			"(an array of arrays of {x, y} points) or as text, one polyline per line.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, v, args[0])
		},
	}
	cmd.Flags().StringP("format", "f", "json", "Output format: json or text")
	cmd.Flags().StringP("output", "o", "", "Output file (default: standard output)")
	_ = v.BindPFlag("convert.format", cmd.Flags().Lookup("format"))
	return cmd
}

func runConvert(cmd *cobra.Command, v *viper.Viper, input string) error {
	format := v.GetString("convert.format")
	if format != "json" && format != "text" {
		return fmt.Errorf("unknown format %q", format)
	}
	output, _ := cmd.Flags().GetString("output")

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
	logger.Info("document parsed", "polylines", len(lines))

	out, err := openOutput(cmd, output, false)
	if err != nil {
		return err
	}
	if format == "json" {
		err = writeJSON(out, lines)
	} else {
		err = writeText(out, lines)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeJSON(w io.Writer, lines []svgpolyline.Polyline) error {
	if lines == nil {
		lines = []svgpolyline.Polyline{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(lines)
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func writeText(w io.Writer, lines []svgpolyline.Polyline) error {
	for _, line := range lines {
		chunks := make([]string, len(line))
		for i, p := range line {
			chunks[i] = formatFloat(p.X) + "," + formatFloat(p.Y)
		}
		if _, err := fmt.Fprintln(w, strings.Join(chunks, " ")); err != nil {
			return err
		}
	}
	return nil
}
