package ecvis

import "fmt"

// ExampleParams and ExampleModulus define the curve y² = x³ - x + 1 over Z_17
// that the signing walkthrough runs on.
var (
	ExampleParams        = CurveParams{A: -1, B: 1}
	ExampleModulus int64 = 17
)

// SignParams are the inputs of the toy signer.
//
// N is a stand-in group order used only to reduce r and s. It is chosen
// independently of the curve and need not be the order of G; Sign reports the
// mismatch in SignatureTrace.OrderMatches instead of rejecting it.
type SignParams struct {
	G Point[int64] `json:"g"` // Base point
	D int64        `json:"d"` // Private key
	Z int64        `json:"z"` // Hashed message
	K int64        `json:"k"` // Nonce
	N int64        `json:"n"` // Toy group order
}

// DefaultSignParams returns the walkthrough values: G=(5,1), d=3, z=8, k=2, n=19.
// Use them with NewExampleCurve.
func DefaultSignParams() SignParams {
	return SignParams{
		G: NewPoint[int64](5, 1),
		D: 3,
		Z: 8,
		K: 2,
		N: 19,
	}
}

// NewExampleCurve returns the curve the default walkthrough runs on.
func NewExampleCurve() *ModularCurve {
	c, err := NewModularCurve(ExampleParams, ExampleModulus)
	if err != nil {
		panic(err) // constant inputs
	}
	return c
}

// Stage is a step of the signing walkthrough. Stages only move forward and
// StageSignature is terminal.
type Stage int

const (
	StageComputeR Stage = iota + 1
	StageComputeRxModN
	StageComputeS
	StageSignature
)

// Stages lists every stage in order.
func Stages() []Stage {
	return []Stage{StageComputeR, StageComputeRxModN, StageComputeS, StageSignature}
}

func (s Stage) String() string {
	switch s {
	case StageComputeR:
		return "ComputeR"
	case StageComputeRxModN:
		return "ComputeR_x_modN"
	case StageComputeS:
		return "ComputeS"
	case StageSignature:
		return "Signature"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Next returns the following stage; the terminal stage returns itself.
func (s Stage) Next() Stage {
	if s >= StageSignature {
		return StageSignature
	}
	if s < StageComputeR {
		return StageComputeR
	}
	return s + 1
}

// IsTerminal reports whether s is the last stage.
func (s Stage) IsTerminal() bool {
	return s == StageSignature
}

// SignatureTrace holds every intermediate value of a signing run. Nothing is
// overwritten, so a caller can display any stage at any time.
type SignatureTrace struct {
	Params SignParams `json:"params"`

	// Stage 1: R = kG and the path G, 2G, ..., kG
	Path []Point[int64] `json:"path"`
	R    Point[int64]   `json:"r_point"`

	// Stage 2: r = R.x mod n
	RModN int64 `json:"r"`

	// Stage 3: s = k⁻¹(z + r·d) mod n
	KInv int64 `json:"k_inv"`
	S    int64 `json:"s"`

	// Stage 4
	Signature Signature `json:"signature"`

	// BaseOnCurve reports whether G satisfies the curve equation.
	BaseOnCurve bool `json:"base_on_curve"`

	// OrderMatches reports whether n equals the order of G. It is false for
	// the default walkthrough values.
	OrderMatches bool `json:"order_matches"`
}

// Sign runs all four stages eagerly. Point arithmetic happens in the curve's
// field Z_p, while r and s are reduced mod params.N.
func Sign(curve *ModularCurve, params SignParams) (*SignatureTrace, error) {
	n := params.N
	if n < 2 || n > MaxModulus {
		return nil, errorf("Sign", "%w: n=%d", ErrInvalidModulus, n)
	}
	if params.K < 1 || params.K > MaxPathLength {
		return nil, errorf("Sign", "%w: nonce k=%d, need 1 <= k <= %d", ErrInvalidScalar, params.K, MaxPathLength)
	}

	path, err := curve.ScalarMultiplyPath(int(params.K), params.G)
	if err != nil {
		return nil, err
	}
	R := path[len(path)-1]
	if R.IsInfinity() {
		return nil, errorf("Sign", "%w: k=%d", ErrDegenerateNonce, params.K)
	}

	r := Mod(R.X(), n)

	kInv, err := ModInverse(params.K, n)
	if err != nil {
		return nil, inverseUndefined("Sign", err)
	}
	s := MulMod(kInv, AddMod(params.Z, MulMod(r, params.D, n), n), n)

	trace := &SignatureTrace{
		Params:      params,
		Path:        path,
		R:           R,
		RModN:       r,
		KInv:        kInv,
		S:           s,
		Signature:   Signature{R: r, S: s},
		BaseOnCurve: curve.IsOnCurve(params.G),
	}
	if trace.BaseOnCurve {
		if order, err := curve.PointOrder(params.G); err == nil {
			trace.OrderMatches = order == n
		}
	}

	return trace, nil
}

// Describe returns the caption for a stage.
func (t *SignatureTrace) Describe(stage Stage) string {
	switch stage {
	case StageComputeR:
		return fmt.Sprintf("Step 1: Compute R = kG = %d·%v = %v", t.Params.K, t.Params.G, t.R)
	case StageComputeRxModN:
		return fmt.Sprintf("r = R.x mod n = %d mod %d = %d", t.R.X(), t.Params.N, t.RModN)
	case StageComputeS:
		return fmt.Sprintf("s = k⁻¹(z + r·d) mod n = %d·(%d + %d·%d) mod %d = %d",
			t.KInv, t.Params.Z, t.RModN, t.Params.D, t.Params.N, t.S)
	case StageSignature:
		return fmt.Sprintf("Signature = %v", t.Signature)
	default:
		return ""
	}
}

// PublicKey returns Q = dG.
func PublicKey(curve *ModularCurve, g Point[int64], d int64) (Point[int64], error) {
	return curve.ScalarMult(d, g)
}

// Verify checks a toy signature: with w = s⁻¹, u1 = zw and u2 = rw, it
// accepts when (u1·G + u2·Q).x ≡ r (mod n). Only meaningful when n is the
// order of G.
func Verify(curve *ModularCurve, g, q Point[int64], z int64, sig Signature, n int64) (bool, error) {
	if n < 2 || n > MaxModulus {
		return false, errorf("Verify", "%w: n=%d", ErrInvalidModulus, n)
	}
	if sig.R < 1 || sig.R >= n || sig.S < 1 || sig.S >= n {
		return false, nil
	}

	w, err := ModInverse(sig.S, n)
	if err != nil {
		return false, inverseUndefined("Verify", err)
	}
	u1 := MulMod(z, w, n)
	u2 := MulMod(sig.R, w, n)

	p1, err := curve.ScalarMult(u1, g)
	if err != nil {
		return false, err
	}
	p2, err := curve.ScalarMult(u2, q)
	if err != nil {
		return false, err
	}
	x, err := curve.Add(p1, p2)
	if err != nil {
		return false, err
	}
	if x.IsInfinity() {
		return false, nil
	}

	return Mod(x.X(), n) == sig.R, nil
}
