package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mahdiidarabi/ecvis/pkg/ecvis"
)

func (a *app) sampleCmd() *cobra.Command {
	var (
		curve    curveFlags
		window   ecvis.SampleConfig
		segments bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample a curve over the reals",
		Long: `Sample evaluates y = ±sqrt(x³ + ax + b) at x = x-min, x-min + step, ...
up to x-max. With --segments the upper branch is grouped into polylines that
a plotter can draw without jumping across gaps.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := curve.realCurve(cmd, a.cfg)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("x-min") {
				window.XMin = a.cfg.Sample.XMin
			}
			if !flags.Changed("x-max") {
				window.XMax = a.cfg.Sample.XMax
			}
			if !flags.Changed("step") {
				window.Step = a.cfg.Sample.Step
			}
			log := a.logger.With(
				zap.Stringer("curve", c.Params()),
				zap.Float64("x_min", window.XMin),
				zap.Float64("x_max", window.XMax),
				zap.Float64("step", window.Step),
			)

			if segments {
				segs, err := c.Segments(window.XMin, window.XMax, window.Step, a.cfg.SegmentConfig())
				if err != nil {
					return err
				}
				log.Info("curve segmented", zap.Int("segments", len(segs)))
				return a.render(cmd, segs, func(w io.Writer) {
					for i, seg := range segs {
						fmt.Fprintf(w, "Segment %d: %d points per branch\n", i+1, len(seg.Upper))
						for _, p := range seg.Upper {
							fmt.Fprintf(w, "  %v\n", p)
						}
					}
				})
			}

			points, err := c.SamplePoints(window.XMin, window.XMax, window.Step)
			if err != nil {
				return err
			}
			log.Info("curve sampled", zap.Int("points", len(points)))
			return a.render(cmd, points, func(w io.Writer) {
				fmt.Fprintf(w, "Curve: %v over R\n", c.Params())
				for _, p := range points {
					fmt.Fprintf(w, "  %v\n", p)
				}
			})
		},
	}

	curve.register(cmd)
	flags := cmd.Flags()
	flags.Float64Var(&window.XMin, "x-min", 0, "Left end of the sampling window")
	flags.Float64Var(&window.XMax, "x-max", 0, "Right end of the sampling window")
	flags.Float64Var(&window.Step, "step", 0, "Distance between sampled x values")
	flags.BoolVar(&segments, "segments", false, "Group samples into continuous segments")
	return cmd
}
