package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mahdiidarabi/ecvis/pkg/ecvis"
)

type pathStep struct {
	K       int                `json:"k"`
	Point   ecvis.Point[int64] `json:"point"`
	OnCurve bool               `json:"on_curve"`
}

func (a *app) pathCmd() *cobra.Command {
	var (
		curve  curveFlags
		gx, gy int64
	)

	cmd := &cobra.Command{
		Use:   "path <k>",
		Short: "Print G, 2G, ..., kG by repeated addition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid scalar %q", args[0])
			}
			c, err := curve.modularCurve(cmd, a.cfg)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("gx") {
				gx = a.cfg.Signer.GX
			}
			if !cmd.Flags().Changed("gy") {
				gy = a.cfg.Signer.GY
			}
			g := c.Point(gx, gy)

			path, err := c.ScalarMultiplyPath(k, g)
			if err != nil {
				return err
			}
			a.logger.Debug("path computed", zap.Int("k", k), zap.Stringer("g", g))

			steps := make([]pathStep, len(path))
			for i, p := range path {
				steps[i] = pathStep{K: i + 1, Point: p, OnCurve: c.IsOnCurve(p)}
			}

			return a.render(cmd, steps, func(w io.Writer) {
				fmt.Fprintf(w, "Curve: %v over Z_%d, G = %v\n", c.Params(), c.Modulus(), g)
				if !c.IsOnCurve(g) {
					fmt.Fprintln(w, "Warning: G is not on the curve")
				}
				for _, s := range steps {
					fmt.Fprintf(w, "  %3dG = %-10v %s\n", s.K, s.Point, onCurveMark(s.OnCurve))
				}
			})
		},
	}

	curve.register(cmd)
	pointFlags(cmd, "g", "Base point", &gx, &gy)
	return cmd
}
