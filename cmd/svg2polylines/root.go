package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/benoitkugler/svg2polylines/svgpolyline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// newRootCmd builds the command tree, with its own configuration,
// read from the flags and the SVG2POLYLINES_* environment variables.
func newRootCmd() *cobra.Command {
	v := viper.New()
	rootCmd := &cobra.Command{
		Use:   "svg2polylines",
		Short: "Convert SVG path data to polylines",
		Long: "svg2polylines reads the `d` attributes of SVG documents and converts them to polylines. " +
			"Only straight lines are supported: a path is truncated at its first curve.",
		SilenceUsage: true,
	}
	v.SetEnvPrefix("SVG2POLYLINES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")
	rootCmd.PersistentFlags().Float64("tolerance", 0.15, "Tolerance for curve flattening (reserved, curves are not supported)")
	rootCmd.PersistentFlags().Bool("resolve-relative", false, "Resolve relative path commands against the current point")

	_ = v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("tolerance", rootCmd.PersistentFlags().Lookup("tolerance"))
	_ = v.BindPFlag("resolve_relative", rootCmd.PersistentFlags().Lookup("resolve-relative"))

	rootCmd.AddCommand(newConvertCmd(v), newRenderCmd(v), newTokensCmd(v))
	return rootCmd
}

func newLogger(v *viper.Viper, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case v.GetBool("debug"):
		level = slog.LevelDebug
	case v.GetBool("verbose"):
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseOptions(v *viper.Viper, logger *slog.Logger) svgpolyline.Options {
	return svgpolyline.Options{
		Tolerance:       v.GetFloat64("tolerance"),
		ResolveRelative: v.GetBool("resolve_relative"),
		Logger:          logger,
	}
}

// openInput returns the named file, or the standard input for "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}

// openOutput returns the named file, or the standard output for "" and "-".
// Binary content is never written to a terminal.
func openOutput(cmd *cobra.Command, name string, binary bool) (io.WriteCloser, error) {
	if name == "" || name == "-" {
		out := cmd.OutOrStdout()
		if f, ok := out.(*os.File); ok && binary && term.IsTerminal(int(f.Fd())) {
			return nil, fmt.Errorf("refusing to write binary output to a terminal, use --output")
		}
		return nopWriteCloser{out}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
