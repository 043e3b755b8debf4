// Package ecvis is the arithmetic engine behind an elliptic-curve
// visualizer. It works on short-Weierstrass curves y² = x³ + ax + b over a
// prime field Z_p and over the real numbers.
//
// The engine is deliberately small-scale: coordinates are machine integers
// (p < 2^31) or float64, and nothing is constant-time. It is a teaching aid,
// not a cryptographic library.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/ecvis/pkg/ecvis"
//
//	curve, err := ecvis.NewModularCurve(ecvis.CurveParams{A: -1, B: 1}, 17)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Every finite point, ordered by x then y
//	points := curve.Points()
//
//	// G, 2G, ..., 7G for an animation
//	path, err := curve.ScalarMultiplyPath(7, ecvis.NewPoint[int64](5, 1))
//
// # Real curves
//
//	real, _ := ecvis.NewRealCurve(ecvis.CurveParams{A: -3, B: 41})
//	seq, _ := real.Sample(-10, 10, 0.1)
//	for p := range seq {
//	    fmt.Println(p)
//	}
//
// # Toy ECDSA
//
// Sign replays the four stages of ECDSA signing (R = kG, r = R.x mod n,
// s = k⁻¹(z + r·d) mod n, signature) and keeps every intermediate value:
//
//	trace, err := ecvis.Sign(ecvis.NewExampleCurve(), ecvis.DefaultSignParams())
//	for _, stage := range ecvis.Stages() {
//	    fmt.Println(trace.Describe(stage))
//	}
//
// The toy order n is independent of the field modulus p and of the real
// order of G. This mirrors the walkthrough; Sign reports whether n happens
// to match in SignatureTrace.OrderMatches.
//
// # Errors
//
// Failures wrap sentinel errors and can be tested with errors.Is:
// ErrNoInverse, ErrInverseUndefined, ErrInvalidCurve, ErrInvalidModulus,
// ErrInvalidScalar, ErrInvalidRange, ErrDegenerateNonce, ErrNotOnCurve and
// ErrKeyNotFound.
package ecvis
