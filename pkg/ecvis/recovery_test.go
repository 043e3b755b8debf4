package ecvis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sig(z, r, s int64) MessageSignature {
	return MessageSignature{Z: z, Signature: Signature{R: r, S: s}}
}

func TestRecoverPrivateKey(t *testing.T) {
	tests := []struct {
		name       string
		sig1, sig2 MessageSignature
		rel        AffineRelationship
	}{
		{"same nonce", sig(1, 3, 3), sig(2, 3, 4), AffineRelationship{A: 1, B: 0}},
		{"same nonce k=2", sig(5, 6, 1), sig(4, 6, 4), AffineRelationship{A: 1, B: 0}},
		{"counter", sig(1, 3, 3), sig(2, 6, 3), AffineRelationship{A: 1, B: 1}},
		{"affine", sig(1, 6, 6), sig(1, 6, 1), AffineRelationship{A: 2, B: 1}},
		{"affine negative offset", sig(1, 6, 6), sig(1, 6, 1), AffineRelationship{A: 2, B: -6}},
	}

	c := NewExampleCurve()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := RecoverPrivateKey(tt.sig1, tt.sig2, tt.rel, subgroupN)
			require.NoError(t, err)
			assert.Equal(t, int64(3), d)

			ok, err := VerifyRecoveredKey(c, subgroupG, subgroupQ, d)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestRecoverPrivateKey_DegenerateDenominator(t *testing.T) {
	s := sig(1, 3, 3)
	_, err := RecoverPrivateKey(s, s, AffineRelationship{A: 1, B: 0}, subgroupN)
	assert.ErrorIs(t, err, ErrInverseUndefined)
	assert.ErrorIs(t, err, ErrNoInverse)

	_, err = RecoverPrivateKey(s, s, AffineRelationship{A: 1, B: 0}, 1)
	assert.ErrorIs(t, err, ErrInvalidModulus)
}

func TestVerifyRecoveredKey(t *testing.T) {
	c := NewExampleCurve()

	ok, err := VerifyRecoveredKey(c, subgroupG, subgroupQ, 10)
	require.NoError(t, err)
	assert.True(t, ok, "keys are equivalent mod the order of G")

	ok, err = VerifyRecoveredKey(c, subgroupG, subgroupQ, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = VerifyRecoveredKey(c, subgroupG, subgroupQ, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashMessage(t *testing.T) {
	z := HashMessage([]byte("hello"), 19)
	assert.Equal(t, z, HashMessage([]byte("hello"), 19))
	assert.GreaterOrEqual(t, z, int64(0))
	assert.Less(t, z, int64(19))

	assert.Equal(t, int64(0), HashMessage([]byte("anything"), 1))
}
