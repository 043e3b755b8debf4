package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mahdiidarabi/ecvis/pkg/ecvis"
)

type pointsOutput struct {
	Params       ecvis.CurveParams    `json:"params"`
	P            int64                `json:"p"`
	Discriminant int64                `json:"discriminant"`
	Singular     bool                 `json:"singular"`
	Order        int64                `json:"order"`
	HasseBound   [2]int64             `json:"hasse_bound"`
	Points       []ecvis.Point[int64] `json:"points"`
}

func (a *app) pointsCmd() *cobra.Command {
	var (
		curve   curveFlags
		workers int
	)

	cmd := &cobra.Command{
		Use:   "points",
		Short: "List every affine point of a curve over Z_p",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := curve.modularCurve(cmd, a.cfg)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}

			start := time.Now()
			points, err := c.PointsParallel(cmd.Context(), ecvis.EnumerateConfig{NumWorkers: workers})
			if err != nil {
				return errors.Wrap(err, "enumeration failed")
			}
			a.logger.Info("points enumerated",
				zap.Stringer("curve", c.Params()),
				zap.Int64("p", c.Modulus()),
				zap.Int("count", len(points)),
				zap.Duration("elapsed", time.Since(start)),
			)

			lo, hi := c.HasseBound()
			out := pointsOutput{
				Params:       c.Params(),
				P:            c.Modulus(),
				Discriminant: c.Discriminant(),
				Singular:     c.IsSingular(),
				Order:        int64(len(points)) + 1,
				HasseBound:   [2]int64{lo, hi},
				Points:       points,
			}

			return a.render(cmd, out, func(w io.Writer) {
				fmt.Fprintf(w, "Curve: %v over Z_%d\n", out.Params, out.P)
				fmt.Fprintf(w, "Discriminant: %d", out.Discriminant)
				if out.Singular {
					fmt.Fprint(w, " (singular, not an elliptic curve)")
				}
				fmt.Fprintln(w)
				fmt.Fprintf(w, "Points: %d finite + O = %d (Hasse bound [%d, %d])\n",
					len(points), out.Order, lo, hi)
				printPoints(w, points)
			})
		},
	}

	curve.register(cmd)
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of parallel workers (0 = auto-detect based on CPU cores)")
	return cmd
}
