package ecvis

import "fmt"

// CurveParams holds the Weierstrass coefficients of y² = x³ + ax + b.
type CurveParams struct {
	A int64 `json:"a" yaml:"a" mapstructure:"a"`
	B int64 `json:"b" yaml:"b" mapstructure:"b"`
}

func (p CurveParams) String() string {
	return fmt.Sprintf("y² = x³ + %dx + %d", p.A, p.B)
}

// CurveOption configures curve construction.
type CurveOption func(*curveOptions)

type curveOptions struct {
	checkDiscriminant bool
}

// WithDiscriminantCheck rejects singular curves with ErrInvalidCurve.
// Without it the engine accepts any (a, b), as the visualizer always has.
func WithDiscriminantCheck() CurveOption {
	return func(o *curveOptions) {
		o.checkDiscriminant = true
	}
}

// Curve implements the group law of y² = x³ + ax + b over a Field.
// It holds no mutable state and is safe for concurrent use.
type Curve[E Element] struct {
	field  Field[E]
	params CurveParams
	a, b   E
}

func newCurve[E Element](field Field[E], params CurveParams, opts []CurveOption) (*Curve[E], error) {
	var o curveOptions
	for _, opt := range opts {
		opt(&o)
	}

	c := &Curve[E]{
		field:  field,
		params: params,
		a:      field.FromInt(params.A),
		b:      field.FromInt(params.B),
	}

	if o.checkDiscriminant && field.IsZero(c.discriminantCore()) {
		return nil, errorf("NewCurve", "%w: 4a³ + 27b² = 0 over %s for a=%d, b=%d",
			ErrInvalidCurve, field.Name(), params.A, params.B)
	}

	return c, nil
}

// Field returns the numeric domain of the curve.
func (c *Curve[E]) Field() Field[E] { return c.field }

// Params returns the coefficients the curve was built from.
func (c *Curve[E]) Params() CurveParams { return c.params }

// discriminantCore returns 4a³ + 27b².
func (c *Curve[E]) discriminantCore() E {
	f := c.field
	a3 := f.Mul(f.Mul(c.a, c.a), c.a)
	b2 := f.Mul(c.b, c.b)
	return f.Add(f.Mul(f.FromInt(4), a3), f.Mul(f.FromInt(27), b2))
}

// Discriminant returns Δ = -16(4a³ + 27b²) in the curve's field.
func (c *Curve[E]) Discriminant() E {
	f := c.field
	return f.Mul(f.FromInt(-16), c.discriminantCore())
}

// IsSingular reports whether Δ vanishes.
func (c *Curve[E]) IsSingular() bool {
	return c.field.IsZero(c.discriminantCore())
}

// Evaluate returns the right-hand side x³ + ax + b.
func (c *Curve[E]) Evaluate(x E) E {
	f := c.field
	x = f.Reduce(x)
	x3 := f.Mul(f.Mul(x, x), x)
	return f.Add(f.Add(x3, f.Mul(c.a, x)), c.b)
}

// IsOnCurve reports whether p satisfies the curve equation. The point at
// infinity is always on the curve.
func (c *Curve[E]) IsOnCurve(p Point[E]) bool {
	x, y, ok := p.Coords()
	if !ok {
		return true
	}
	f := c.field
	return f.Equal(f.Mul(y, y), c.Evaluate(x))
}

// Verification is the per-point check shown next to a hovered point.
type Verification[E Element] struct {
	LHS     E    `json:"lhs"` // y²
	RHS     E    `json:"rhs"` // x³ + ax + b
	OnCurve bool `json:"on_curve"`
}

// Verify reports both sides of the curve equation for a finite point.
func (c *Curve[E]) Verify(p Point[E]) Verification[E] {
	if p.IsInfinity() {
		return Verification[E]{OnCurve: true}
	}
	f := c.field
	lhs := f.Reduce(f.Mul(p.y, p.y))
	rhs := c.Evaluate(p.x)
	return Verification[E]{LHS: lhs, RHS: rhs, OnCurve: f.Equal(lhs, rhs)}
}

// Equal compares two points, field-aware for finite points.
func (c *Curve[E]) Equal(p, q Point[E]) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	f := c.field
	return f.Equal(p.x, q.x) && f.Equal(p.y, q.y)
}

// Neg returns -p = (x, -y).
func (c *Curve[E]) Neg(p Point[E]) Point[E] {
	if p.IsInfinity() {
		return p
	}
	return NewPoint(c.field.Reduce(p.x), c.field.Neg(p.y))
}

// Double returns 2p. A vertical tangent (y = 0) gives the point at infinity.
func (c *Curve[E]) Double(p Point[E]) (Point[E], error) {
	if p.IsInfinity() {
		return p, nil
	}
	f := c.field
	x, y := f.Reduce(p.x), f.Reduce(p.y)
	if f.IsZero(y) {
		return Infinity[E](), nil
	}

	// s = (3x² + a) / 2y
	num := f.Add(f.Mul(f.FromInt(3), f.Mul(x, x)), c.a)
	den := f.Mul(f.FromInt(2), y)
	inv, err := f.Inv(den)
	if err != nil {
		return Point[E]{}, inverseUndefined("Double", err)
	}
	s := f.Mul(num, inv)

	return c.line(s, x, y, x), nil
}

// Add returns p + q. Equal points are doubled; points sharing x but not y
// are treated as inverses and sum to the point at infinity.
func (c *Curve[E]) Add(p, q Point[E]) (Point[E], error) {
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}

	f := c.field
	px, py := f.Reduce(p.x), f.Reduce(p.y)
	qx, qy := f.Reduce(q.x), f.Reduce(q.y)

	if f.Equal(px, qx) {
		if f.Equal(py, qy) {
			return c.Double(p)
		}
		return Infinity[E](), nil
	}

	// s = (qy - py) / (qx - px)
	inv, err := f.Inv(f.Sub(qx, px))
	if err != nil {
		return Point[E]{}, inverseUndefined("Add", err)
	}
	s := f.Mul(f.Sub(qy, py), inv)

	return c.line(s, px, py, qx), nil
}

// line finishes a chord or tangent step with slope s through (px, py):
// x' = s² - px - qx, y' = -py + s(px - x').
func (c *Curve[E]) line(s, px, py, qx E) Point[E] {
	f := c.field
	x := f.Sub(f.Sub(f.Mul(s, s), px), qx)
	y := f.Add(f.Neg(py), f.Mul(s, f.Sub(px, x)))
	return NewPoint(x, y)
}

// Sum folds Add over points starting from the identity.
func (c *Curve[E]) Sum(points ...Point[E]) (Point[E], error) {
	acc := Infinity[E]()
	for _, p := range points {
		var err error
		if acc, err = c.Add(acc, p); err != nil {
			return Point[E]{}, err
		}
	}
	return acc, nil
}
