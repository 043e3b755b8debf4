package ecvis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealCurve_Sample(t *testing.T) {
	c, err := NewRealCurve(ExampleParams)
	require.NoError(t, err)

	points, err := c.SamplePoints(-2, 2, 1)
	require.NoError(t, err)

	// x = -2 has a negative right-hand side and is skipped.
	want := []Point[float64]{
		NewPoint(-1.0, 1.0), NewPoint(-1.0, -1.0),
		NewPoint(0.0, 1.0), NewPoint(0.0, -1.0),
		NewPoint(1.0, 1.0), NewPoint(1.0, -1.0),
		NewPoint(2.0, math.Sqrt(7)), NewPoint(2.0, -math.Sqrt(7)),
	}
	assert.Equal(t, want, points)
}

func TestRealCurve_SampleRoots(t *testing.T) {
	// (x - 1)(x - 2)(x + 3)
	c, err := NewRealCurve(CurveParams{A: -7, B: 6})
	require.NoError(t, err)

	points, err := c.SamplePoints(1, 2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []Point[float64]{NewPoint(1.0, 0.0), NewPoint(2.0, 0.0)}, points,
		"roots yield a single point each")

	points, err = c.SamplePoints(-3, -3, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point[float64]{NewPoint(-3.0, 0.0)}, points)
}

func TestRealCurve_SampleIsLazy(t *testing.T) {
	c, err := NewRealCurve(CurveParams{A: -3, B: 41})
	require.NoError(t, err)

	seq, err := c.Sample(-10, 10, 0.1)
	require.NoError(t, err)

	var first []Point[float64]
	for p := range seq {
		first = append(first, p)
		if len(first) == 3 {
			break
		}
	}
	require.Len(t, first, 3)
	assert.Equal(t, first[0].X(), first[1].X())
	assert.Equal(t, first[0].Y(), -first[1].Y())
	assert.Greater(t, first[0].X(), -4.0, "real root is near x = -3.8")

	all, err := c.SamplePoints(-10, 10, 0.1)
	require.NoError(t, err)
	assert.Equal(t, first, all[:3], "the sequence can be ranged again")
	for _, p := range all {
		assert.InDelta(t, p.Y()*p.Y(), c.Evaluate(p.X()), 1e-9)
	}
}

func TestRealCurve_SampleErrors(t *testing.T) {
	c, err := NewRealCurve(ExampleParams)
	require.NoError(t, err)

	tests := []struct {
		name             string
		xMin, xMax, step float64
	}{
		{"zero step", -1, 1, 0},
		{"negative step", -1, 1, -0.1},
		{"inverted bounds", 1, -1, 0.1},
		{"NaN bound", math.NaN(), 1, 0.1},
		{"infinite bound", -1, math.Inf(1), 0.1},
		{"too many samples", 0, 1, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Sample(tt.xMin, tt.xMax, tt.step)
			assert.ErrorIs(t, err, ErrInvalidRange)

			_, err = c.Segments(tt.xMin, tt.xMax, tt.step, DefaultSegmentConfig())
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestSampleCount(t *testing.T) {
	n, err := sampleCount(-10, 10, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 201, n)

	n, err = sampleCount(0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
