package main

import (
	"fmt"
	"io"

	"github.com/benoitkugler/svg2polylines/svgpath"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTokensCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <path-data>",
		Short: "Print the segments of SVG path data, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk := svgpath.NewTokenizer(args[0])
			tk.ResolveRelative = v.GetBool("resolve_relative")
			out := cmd.OutOrStdout()
			for {
				seg, err := tk.Next()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(out, svgpath.Path{seg})
			}
		},
	}
}
