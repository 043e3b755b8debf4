package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/ecvis/pkg/ecvis"
)

func (a *app) recoverCmd() *cobra.Command {
	var (
		curve          curveFlags
		signaturesFile string
		format         string
		n              int64
		gx, gy, qx, qy int64
		knownA, knownB int64
		aRange, bRange string
		maxPairs       int
		numWorkers     int
	)

	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Recover a toy private key from signatures with related nonces",
		Long: `Recover reads toy signatures (JSON or CSV) whose nonces satisfy
k2 = a·k1 + b (mod n). With --known-a/--known-b the relationship is used
directly; otherwise common patterns are tried first and then the
--a-range/--b-range grid, checking every candidate against Q = dG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("n") {
				n = a.cfg.Signer.N
			}
			if !flags.Changed("gx") {
				gx = a.cfg.Signer.GX
			}
			if !flags.Changed("gy") {
				gy = a.cfg.Signer.GY
			}
			if !flags.Changed("workers") {
				numWorkers = a.cfg.Workers
			}

			// Set up parser based on format
			var parser ecvis.SignatureParser
			switch format {
			case "json":
				parser = &ecvis.JSONParser{N: n}
			case "csv":
				parser = &ecvis.CSVParser{N: n}
			default:
				return errors.Errorf("unknown format %q, want json or csv", format)
			}

			client := ecvis.NewClient().WithParser(parser).WithLogger(a.logger)
			hasKey := flags.Changed("qx") || flags.Changed("qy")

			var c *ecvis.ModularCurve
			if hasKey || !flags.Changed("known-a") && !flags.Changed("known-b") {
				var err error
				if c, err = curve.modularCurve(cmd, a.cfg); err != nil {
					return err
				}
			}

			var (
				result *ecvis.RecoveryResult
				err    error
			)
			if flags.Changed("known-a") || flags.Changed("known-b") {
				// Known relationship
				if hasKey {
					client = client.WithPublicKey(c, c.Point(gx, gy), c.Point(qx, qy))
				}
				rel := ecvis.AffineRelationship{A: knownA, B: knownB}
				result, err = client.RecoverKeyWithKnownRelationship(cmd.Context(), signaturesFile, rel, n)
			} else {
				if !hasKey {
					return errors.New("brute-force search needs the public key (--qx, --qy)")
				}
				aMin, aMax, perr := parseRange(aRange)
				if perr != nil {
					return errors.Wrap(perr, "error parsing a-range")
				}
				bMin, bMax, perr := parseRange(bRange)
				if perr != nil {
					return errors.Wrap(perr, "error parsing b-range")
				}

				strategy := ecvis.NewSmartBruteForceStrategy(c, c.Point(gx, gy), c.Point(qx, qy), n).
					WithRangeConfig(ecvis.RangeConfig{
						ARange:     [2]int64{aMin, aMax},
						BRange:     [2]int64{bMin, bMax},
						MaxPairs:   maxPairs,
						NumWorkers: numWorkers,
						SkipZeroA:  true,
					}).
					WithLogger(a.logger)
				result, err = client.WithStrategy(strategy).RecoverKey(cmd.Context(), signaturesFile)
			}
			if err != nil {
				return errors.Wrap(err, "key recovery failed")
			}

			return a.render(cmd, result, func(w io.Writer) {
				fmt.Fprintf(w, "[+] Recovered private key from signatures %d and %d:\n", result.SignaturePair[0], result.SignaturePair[1])
				fmt.Fprintf(w, "    Private key: %d\n", result.PrivateKey)
				fmt.Fprintf(w, "    Relationship: k2 = %d*k1 + %d\n", result.Relationship.A, result.Relationship.B)
				fmt.Fprintf(w, "    Pattern: %s\n", result.Pattern)
				if result.Verified {
					fmt.Fprintln(w, "    ✓ Verified against public key!")
				}
			})
		},
	}

	curve.register(cmd)
	flags := cmd.Flags()
	flags.StringVar(&signaturesFile, "signatures", "", "Path to signatures file (JSON or CSV)")
	flags.StringVar(&format, "format", "json", "Signature file format (json or csv)")
	flags.Int64Var(&n, "n", 0, "Toy group order n")
	pointFlags(cmd, "g", "Base point", &gx, &gy)
	pointFlags(cmd, "q", "Public key", &qx, &qy)
	flags.Int64Var(&knownA, "known-a", 1, "Known affine coefficient a (k2 = a*k1 + b)")
	flags.Int64Var(&knownB, "known-b", 0, "Known affine offset b (k2 = a*k1 + b)")
	flags.StringVar(&aRange, "a-range", "-32,32", "Range for a values in brute-force (format: min,max)")
	flags.StringVar(&bRange, "b-range", "-32,32", "Range for b values in brute-force (format: min,max)")
	flags.IntVar(&maxPairs, "max-pairs", 100, "Maximum signature pairs to test in brute-force")
	flags.IntVar(&numWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect based on CPU cores)")
	_ = cmd.MarkFlagRequired("signatures")
	return cmd
}

func parseRange(s string) (int64, int64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("invalid range format: %s", s)
	}

	min, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, err
	}

	max, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, err
	}

	if min > max {
		return 0, 0, errors.Errorf("invalid range %s: min exceeds max", s)
	}
	return min, max, nil
}
