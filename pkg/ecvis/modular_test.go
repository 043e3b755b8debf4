package ecvis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	assert.Equal(t, int64(16), Mod(-1, 17))
	assert.Equal(t, int64(0), Mod(34, 17))
	assert.Equal(t, int64(3), Mod(-14, 17))
	assert.Equal(t, int64(6), SubMod(2, 13, 17))
	assert.Equal(t, int64(1), AddMod(-1, 2, 17))
	assert.Equal(t, int64(1), MulMod(MaxModulus-1, MaxModulus-1, MaxModulus))
}

func TestModInverse(t *testing.T) {
	tests := []struct {
		value, m, want int64
	}{
		{3, 7, 5},
		{10, 17, 12},
		{2, 19, 10},
		{-1, 17, 16},
		{1, 2, 1},
	}

	for _, tt := range tests {
		got, err := ModInverse(tt.value, tt.m)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "inverse of %d mod %d", tt.value, tt.m)
		assert.Equal(t, int64(1), MulMod(tt.value, got, tt.m))
	}
}

func TestModInverse_Errors(t *testing.T) {
	_, err := ModInverse(0, 17)
	assert.ErrorIs(t, err, ErrNoInverse)

	_, err = ModInverse(34, 17)
	assert.ErrorIs(t, err, ErrNoInverse)

	_, err = ModInverse(6, 15)
	assert.ErrorIs(t, err, ErrNoInverse)

	_, err = ModInverse(3, 0)
	assert.ErrorIs(t, err, ErrInvalidModulus)

	var arithErr *ArithmeticError
	require.True(t, errors.As(err, &arithErr))
	assert.Equal(t, "ModInverse", arithErr.Op)
}

// The extended Euclid and the linear scan must agree everywhere, including
// on composite moduli where some values have no inverse.
func TestModInverse_MatchesScan(t *testing.T) {
	for _, m := range []int64{2, 7, 15, 17, 19, 47} {
		for v := int64(-m); v <= 2*m; v++ {
			fast, errFast := ModInverse(v, m)
			slow, errSlow := ModInverseScan(v, m)
			if errSlow != nil {
				assert.ErrorIs(t, errFast, ErrNoInverse, "v=%d m=%d", v, m)
				assert.ErrorIs(t, errSlow, ErrNoInverse)
				continue
			}
			require.NoError(t, errFast, "v=%d m=%d", v, m)
			assert.Equal(t, slow, fast, "v=%d m=%d", v, m)
		}
	}
}

func TestNewModField(t *testing.T) {
	_, err := NewModField(1)
	assert.ErrorIs(t, err, ErrInvalidModulus)

	_, err = NewModField(MaxModulus + 1)
	assert.ErrorIs(t, err, ErrInvalidModulus)

	f, err := NewModField(17)
	require.NoError(t, err)
	assert.Equal(t, "Z_17", f.Name())
	assert.True(t, f.Equal(-1, 16))
	assert.True(t, f.IsZero(34))
	assert.Equal(t, int64(16), f.FromInt(-1))
}

func TestRealField_Inv(t *testing.T) {
	var f RealField

	inv, err := f.Inv(4)
	require.NoError(t, err)
	assert.Equal(t, 0.25, inv)

	_, err = f.Inv(0)
	assert.ErrorIs(t, err, ErrNoInverse)
}
