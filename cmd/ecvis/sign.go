package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mahdiidarabi/ecvis/pkg/ecvis"
)

type signOutput struct {
	Trace     *ecvis.SignatureTrace     `json:"trace"`
	Reference *ecvis.ReferenceSignature `json:"reference,omitempty"`
}

// signerFlags are the toy signer inputs shared by sign and verify.
type signerFlags struct {
	gx, gy int64
	d, z   int64
	k, n   int64
	msg    string
}

func (f *signerFlags) register(cmd *cobra.Command) {
	pointFlags(cmd, "g", "Base point", &f.gx, &f.gy)
	flags := cmd.Flags()
	flags.Int64Var(&f.d, "d", 0, "Private key d")
	flags.Int64Var(&f.z, "z", 0, "Message hash z")
	flags.Int64Var(&f.n, "n", 0, "Toy group order n")
	flags.StringVar(&f.msg, "message", "", "Hash this message into z (SHA-256 mod n)")
}

// params overlays the flags that were set on the configured defaults.
func (f *signerFlags) params(cmd *cobra.Command, base ecvis.SignParams) ecvis.SignParams {
	flags := cmd.Flags()
	gx, gy := base.G.X(), base.G.Y()
	if flags.Changed("gx") {
		gx = f.gx
	}
	if flags.Changed("gy") {
		gy = f.gy
	}
	base.G = ecvis.NewPoint(gx, gy)
	if flags.Changed("d") {
		base.D = f.d
	}
	if flags.Changed("z") {
		base.Z = f.z
	}
	if flags.Changed("k") {
		base.K = f.k
	}
	if flags.Changed("n") {
		base.N = f.n
	}
	if flags.Changed("message") && base.N >= 2 {
		base.Z = ecvis.HashMessage([]byte(f.msg), base.N)
	}
	return base
}

func (a *app) signCmd() *cobra.Command {
	var (
		curve     curveFlags
		signer    signerFlags
		reference bool
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Walk through a toy ECDSA signature stage by stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := curve.modularCurve(cmd, a.cfg)
			if err != nil {
				return err
			}
			params := signer.params(cmd, a.cfg.SignParams())
			params.G = c.Point(params.G.X(), params.G.Y())

			trace, err := ecvis.Sign(c, params)
			if err != nil {
				return errors.Wrap(err, "signing failed")
			}
			log := a.logger.With(zap.Stringer("signature", trace.Signature))
			if !trace.BaseOnCurve {
				log.Warn("base point is not on the curve", zap.Stringer("g", params.G))
			} else if !trace.OrderMatches {
				log.Warn("n is not the order of G; the signature will not verify", zap.Int64("n", params.N))
			}

			out := signOutput{Trace: trace}
			if reference {
				msg := signer.msg
				if msg == "" {
					msg = fmt.Sprintf("%d", params.Z)
				}
				ref, err := ecvis.ReferenceSign(params.D, []byte(msg))
				if err != nil {
					return errors.Wrap(err, "reference signing failed")
				}
				out.Reference = ref
				log.Info("reference signature computed", zap.Bool("verified", ref.Verified))
			}

			return a.render(cmd, out, func(w io.Writer) {
				for _, stage := range ecvis.Stages() {
					fmt.Fprintln(w, trace.Describe(stage))
				}
				if out.Reference != nil {
					fmt.Fprintln(w)
					fmt.Fprintln(w, "secp256k1 reference:")
					fmt.Fprintf(w, "  z = %x\n", out.Reference.Z)
					fmt.Fprintf(w, "  r = %x\n", out.Reference.R)
					fmt.Fprintf(w, "  s = %x\n", out.Reference.S)
					fmt.Fprintf(w, "  verified: %v\n", out.Reference.Verified)
				}
			})
		},
	}

	curve.register(cmd)
	signer.register(cmd)
	cmd.Flags().Int64Var(&signer.k, "k", 0, "Nonce k")
	cmd.Flags().BoolVar(&reference, "reference", false, "Also sign with the real secp256k1 curve")
	return cmd
}
