package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mahdiidarabi/ecvis/pkg/ecvis"
)

type verifyOutput struct {
	PublicKey ecvis.Point[int64] `json:"public_key"`
	Z         int64              `json:"z"`
	Signature ecvis.Signature    `json:"signature"`
	Valid     bool               `json:"valid"`
}

func (a *app) verifyCmd() *cobra.Command {
	var (
		curve  curveFlags
		signer signerFlags
		qx, qy int64
		r, s   int64
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a toy ECDSA signature",
		Long: `Verify checks (r, s) against the public key Q. Q is taken from --qx/--qy
when given and computed as dG otherwise. Verification only succeeds when n
is the order of G.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := curve.modularCurve(cmd, a.cfg)
			if err != nil {
				return err
			}
			params := signer.params(cmd, a.cfg.SignParams())
			g := c.Point(params.G.X(), params.G.Y())

			var q ecvis.Point[int64]
			if cmd.Flags().Changed("qx") || cmd.Flags().Changed("qy") {
				q = c.Point(qx, qy)
			} else if q, err = ecvis.PublicKey(c, g, params.D); err != nil {
				return err
			}

			sig := ecvis.Signature{R: r, S: s}
			valid, err := ecvis.Verify(c, g, q, params.Z, sig, params.N)
			if err != nil {
				return err
			}
			a.logger.Info("signature checked", zap.Stringer("signature", sig), zap.Bool("valid", valid))

			out := verifyOutput{PublicKey: q, Z: params.Z, Signature: sig, Valid: valid}
			return a.render(cmd, out, func(w io.Writer) {
				fmt.Fprintf(w, "Q = %v, z = %d, signature = %v\n", q, params.Z, sig)
				if valid {
					fmt.Fprintln(w, "✓ Signature is valid")
				} else {
					fmt.Fprintln(w, "✗ Signature is invalid")
				}
			})
		},
	}

	curve.register(cmd)
	signer.register(cmd)
	pointFlags(cmd, "q", "Public key", &qx, &qy)
	cmd.Flags().Int64Var(&r, "r", 0, "Signature component r")
	cmd.Flags().Int64Var(&s, "s", 0, "Signature component s")
	_ = cmd.MarkFlagRequired("r")
	_ = cmd.MarkFlagRequired("s")
	return cmd
}
