package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/ecvis/pkg/ecvis"
)

func (a *app) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the named curve presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := ecvis.Presets()
			return a.render(cmd, presets, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "KEY\tCURVE\tP\tDESCRIPTION")
				for _, p := range presets {
					mark := ""
					if p.Key == ecvis.DefaultPresetKey {
						mark = " (default)"
					}
					fmt.Fprintf(tw, "%s%s\t%v\t%d\t%s\n", p.Key, mark, p.Params, p.P, p.Description)
				}
				tw.Flush()
			})
		},
	}
}
