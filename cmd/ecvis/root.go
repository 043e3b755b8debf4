package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mahdiidarabi/ecvis/internal/config"
	"github.com/mahdiidarabi/ecvis/internal/logging"
	"github.com/mahdiidarabi/ecvis/pkg/ecvis"
)

// app carries state shared by every subcommand once the root command has
// loaded configuration.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	jsonOut    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "ecvis",
		Short: "Elliptic-curve arithmetic explorer",
		Long: `ecvis enumerates and samples short-Weierstrass curves y² = x³ + ax + b
over Z_p and the reals, animates scalar multiplication and walks through a
toy ECDSA signature.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to a YAML or JSON config file")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format (console or json)")
	flags.BoolVar(&a.jsonOut, "json", false, "Print results as JSON")

	root.AddCommand(
		a.pointsCmd(),
		a.sampleCmd(),
		a.pathCmd(),
		a.signCmd(),
		a.verifyCmd(),
		a.recoverCmd(),
		a.presetsCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, format := cfg.Log.Level, cfg.Log.Format
	if a.logLevel != "" {
		level = a.logLevel
	}
	if a.logFormat != "" {
		format = a.logFormat
	}

	logger, err := logging.New(cmd.ErrOrStderr(), level, logging.Format(format))
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}
	a.logger = logger.Named(cmd.Name())
	return nil
}

// render writes v as indented JSON when --json is set and calls text otherwise.
func (a *app) render(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if a.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "failed to encode output")
	}
	text(w)
	return nil
}

// curveFlags selects a curve by preset or explicit coefficients. Unset flags
// fall back to the loaded configuration.
type curveFlags struct {
	preset   string
	a, b, p  int64
	validate bool
}

func (f *curveFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.preset, "preset", "", "Named preset (see 'ecvis presets')")
	flags.Int64Var(&f.a, "a", 0, "Curve coefficient a")
	flags.Int64Var(&f.b, "b", 0, "Curve coefficient b")
	flags.Int64Var(&f.p, "p", 0, "Field modulus p")
	flags.BoolVar(&f.validate, "validate", false, "Reject singular curves")
}

func (f *curveFlags) resolve(cmd *cobra.Command, cfg *config.Config) (ecvis.CurveParams, int64, []ecvis.CurveOption, error) {
	params, p := cfg.CurveParams()
	opts := cfg.CurveOptions()

	flags := cmd.Flags()
	if flags.Changed("preset") {
		preset, err := ecvis.LookupPreset(f.preset)
		if err != nil {
			return params, p, nil, err
		}
		params, p = preset.Params, preset.P
	}
	if flags.Changed("a") {
		params.A = f.a
	}
	if flags.Changed("b") {
		params.B = f.b
	}
	if flags.Changed("p") {
		p = f.p
	}
	if f.validate && len(opts) == 0 {
		opts = append(opts, ecvis.WithDiscriminantCheck())
	}
	return params, p, opts, nil
}

func (f *curveFlags) modularCurve(cmd *cobra.Command, cfg *config.Config) (*ecvis.ModularCurve, error) {
	params, p, opts, err := f.resolve(cmd, cfg)
	if err != nil {
		return nil, err
	}
	curve, err := ecvis.NewModularCurve(params, p, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid curve %v over Z_%d", params, p)
	}
	return curve, nil
}

func (f *curveFlags) realCurve(cmd *cobra.Command, cfg *config.Config) (*ecvis.RealCurve, error) {
	params, _, opts, err := f.resolve(cmd, cfg)
	if err != nil {
		return nil, err
	}
	curve, err := ecvis.NewRealCurve(params, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid curve %v over R", params)
	}
	return curve, nil
}

// pointFlags registers --<name>x and --<name>y.
func pointFlags(cmd *cobra.Command, name, usage string, x, y *int64) {
	cmd.Flags().Int64Var(x, name+"x", 0, usage+" x coordinate")
	cmd.Flags().Int64Var(y, name+"y", 0, usage+" y coordinate")
}

func onCurveMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func printPoints(w io.Writer, points []ecvis.Point[int64]) {
	for i, p := range points {
		fmt.Fprintf(w, "  %3d  %v\n", i+1, p)
	}
}
