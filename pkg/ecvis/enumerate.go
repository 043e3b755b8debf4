package ecvis

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ModularCurve is a curve over Z_p with integer coordinates.
type ModularCurve struct {
	*Curve[int64]
	p int64
}

// NewModularCurve builds the curve y² = x³ + ax + b over Z_p.
// p is treated as prime but primality is not checked.
func NewModularCurve(params CurveParams, p int64, opts ...CurveOption) (*ModularCurve, error) {
	field, err := NewModField(p)
	if err != nil {
		return nil, err
	}

	c, err := newCurve[int64](field, params, opts)
	if err != nil {
		return nil, err
	}

	return &ModularCurve{Curve: c, p: p}, nil
}

// Modulus returns p.
func (c *ModularCurve) Modulus() int64 { return c.p }

// Point returns (x mod p, y mod p).
func (c *ModularCurve) Point(x, y int64) Point[int64] {
	return NewPoint(Mod(x, c.p), Mod(y, c.p))
}

// row returns every y in [0, p) with y² ≡ x³ + ax + b, in ascending order.
func (c *ModularCurve) row(x int64) []Point[int64] {
	rhs := c.Evaluate(x)

	var points []Point[int64]
	for y := int64(0); y < c.p; y++ {
		if MulMod(y, y, c.p) == rhs {
			points = append(points, NewPoint(x, y))
		}
	}
	return points
}

// Points enumerates all finite points of the curve by scanning [0, p)².
// The result is ordered by x, then y. The point at infinity is not included.
func (c *ModularCurve) Points() []Point[int64] {
	var points []Point[int64]
	for x := int64(0); x < c.p; x++ {
		points = append(points, c.row(x)...)
	}
	return points
}

// PointsParallel returns the same points as Points, scanning rows on a pool
// of workers. It stops early when ctx is cancelled.
func (c *ModularCurve) PointsParallel(ctx context.Context, config EnumerateConfig) ([]Point[int64], error) {
	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := make([][]Point[int64], c.p)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for x := int64(0); x < c.p; x++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[x] = c.row(x)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var points []Point[int64]
	for _, row := range rows {
		points = append(points, row...)
	}
	return points, nil
}

// Order returns #E(F_p), the number of finite points plus the point at
// infinity. It counts square roots through a table of squares in O(p).
func (c *ModularCurve) Order() int64 {
	roots := make([]int64, c.p)
	for y := int64(0); y < c.p; y++ {
		roots[MulMod(y, y, c.p)]++
	}

	order := int64(1)
	for x := int64(0); x < c.p; x++ {
		order += roots[c.Evaluate(x)]
	}
	return order
}

// HasseBound returns the interval [p + 1 - 2√p, p + 1 + 2√p] that contains
// the group order of every non-singular curve over F_p.
func (c *ModularCurve) HasseBound() (lo, hi int64) {
	w := 2 * math.Sqrt(float64(c.p))
	return int64(math.Ceil(float64(c.p+1) - w)), int64(math.Floor(float64(c.p+1) + w))
}

// PointOrder returns the smallest k >= 1 with kP = O.
func (c *ModularCurve) PointOrder(p Point[int64]) (int64, error) {
	if !c.IsOnCurve(p) {
		return 0, errorf("PointOrder", "%w: %v", ErrNotOnCurve, p)
	}

	_, hi := c.HasseBound()
	acc := p
	for k := int64(1); k <= hi+1; k++ {
		if acc.IsInfinity() {
			return k, nil
		}
		next, err := c.Add(acc, p)
		if err != nil {
			return 0, err
		}
		acc = next
	}

	return 0, errorf("PointOrder", "no order found for %v within %d steps", p, hi+1)
}
