package ecvis

import (
	"iter"
	"math"
)

// MaxSamples caps the number of x positions a single sampling call visits.
const MaxSamples = 10_000_000

// RealCurve is a curve over the real numbers, evaluated in float64.
type RealCurve struct {
	*Curve[float64]
}

// NewRealCurve builds the curve y² = x³ + ax + b over the reals.
func NewRealCurve(params CurveParams, opts ...CurveOption) (*RealCurve, error) {
	c, err := newCurve[float64](RealField{}, params, opts)
	if err != nil {
		return nil, err
	}
	return &RealCurve{Curve: c}, nil
}

// sampleCount validates the bounds and returns how many x positions lie in
// [xMin, xMax] on the grid xMin + i*step.
func sampleCount(xMin, xMax, step float64) (int, error) {
	for _, v := range []float64{xMin, xMax, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, errorf("Sample", "%w: non-finite bound %v", ErrInvalidRange, v)
		}
	}
	if step <= 0 {
		return 0, errorf("Sample", "%w: step %v must be positive", ErrInvalidRange, step)
	}
	if xMin > xMax {
		return 0, errorf("Sample", "%w: xMin %v > xMax %v", ErrInvalidRange, xMin, xMax)
	}

	// The epsilon keeps xMax on the grid despite rounding in the division.
	n := math.Floor((xMax-xMin)/step+1e-9) + 1
	if n > MaxSamples {
		return 0, errorf("Sample", "%w: %v samples exceeds %d", ErrInvalidRange, n, MaxSamples)
	}
	return int(n), nil
}

// upper returns √(x³ + ax + b) and false when the right-hand side is negative.
func (c *RealCurve) upper(x float64) (float64, bool) {
	rhs := c.Evaluate(x)
	if rhs < 0 || math.IsNaN(rhs) {
		return 0, false
	}
	return math.Sqrt(rhs), true
}

// Sample yields the real points of the curve for x stepping from xMin to
// xMax. Where x³ + ax + b < 0 nothing is emitted; where it is positive both
// (x, √rhs) and (x, -√rhs) are emitted, upper first; where it is zero the
// single point (x, 0) is emitted.
//
// The sequence is lazy and can be ranged over any number of times.
func (c *RealCurve) Sample(xMin, xMax, step float64) (iter.Seq[Point[float64]], error) {
	n, err := sampleCount(xMin, xMax, step)
	if err != nil {
		return nil, err
	}

	return func(yield func(Point[float64]) bool) {
		for i := 0; i < n; i++ {
			x := xMin + float64(i)*step
			y, ok := c.upper(x)
			if !ok {
				continue
			}
			if !yield(NewPoint(x, y)) {
				return
			}
			if y == 0 {
				continue
			}
			if !yield(NewPoint(x, -y)) {
				return
			}
		}
	}, nil
}

// SamplePoints collects Sample into a slice.
func (c *RealCurve) SamplePoints(xMin, xMax, step float64) ([]Point[float64], error) {
	seq, err := c.Sample(xMin, xMax, step)
	if err != nil {
		return nil, err
	}

	var points []Point[float64]
	for p := range seq {
		points = append(points, p)
	}
	return points, nil
}
