package ecvis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarMultiplyPath_Walkthrough(t *testing.T) {
	c := NewExampleCurve()

	path, err := c.ScalarMultiplyPath(7, NewPoint[int64](5, 1))
	require.NoError(t, err)

	want := []Point[int64]{
		NewPoint[int64](5, 1),
		NewPoint[int64](16, 0),
		NewPoint[int64](5, 16),
		Infinity[int64](),
		NewPoint[int64](5, 1),
		NewPoint[int64](16, 0),
		NewPoint[int64](5, 16),
	}
	assert.Equal(t, want, path)

	again, err := c.ScalarMultiplyPath(7, NewPoint[int64](5, 1))
	require.NoError(t, err)
	assert.Equal(t, path, again, "path is deterministic")
}

func TestScalarMultiplyPath_OnCurve(t *testing.T) {
	c := NewExampleCurve()
	g := NewPoint[int64](0, 1)

	path, err := c.ScalarMultiplyPath(14, g)
	require.NoError(t, err)
	require.Len(t, path, 14)

	assert.Equal(t, NewPoint[int64](13, 14), path[1])
	assert.Equal(t, NewPoint[int64](12, 0), path[6])
	assert.True(t, path[13].IsInfinity(), "(0, 1) has order 14")
	for i := 0; i < 13; i++ {
		assert.False(t, path[i].IsInfinity(), "%dG", i+1)
	}

	// Entry k-1 equals double-and-add kG.
	for k := 1; k <= 14; k++ {
		kg, err := c.ScalarMult(int64(k), g)
		require.NoError(t, err)
		assert.True(t, c.Equal(path[k-1], kg), "k=%d", k)
	}
}

func TestScalarMultiplyPath_Errors(t *testing.T) {
	c := NewExampleCurve()

	_, err := c.ScalarMultiplyPath(0, NewPoint[int64](5, 1))
	assert.ErrorIs(t, err, ErrInvalidScalar)

	_, err = c.ScalarMultiplyPath(MaxPathLength+1, NewPoint[int64](5, 1))
	assert.ErrorIs(t, err, ErrInvalidScalar)

	composite, err := NewModularCurve(ExampleParams, 15)
	require.NoError(t, err)
	_, err = composite.ScalarMultiplyPath(3, NewPoint[int64](1, 5))
	assert.ErrorIs(t, err, ErrInverseUndefined)
}

func TestScalarMult(t *testing.T) {
	c := NewExampleCurve()
	g := NewPoint[int64](3, 5)

	zero, err := c.ScalarMult(0, g)
	require.NoError(t, err)
	assert.True(t, zero.IsInfinity())

	got, err := c.ScalarMult(5, g)
	require.NoError(t, err)
	assert.Equal(t, NewPoint[int64](13, 14), got)

	// (3, 5) has order 7, so 100G = 2G.
	got, err = c.ScalarMult(100, g)
	require.NoError(t, err)
	assert.Equal(t, NewPoint[int64](13, 3), got)

	_, err = c.ScalarMult(-1, g)
	assert.ErrorIs(t, err, ErrInvalidScalar)
}
