package ecvis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceSign(t *testing.T) {
	ref, err := ReferenceSign(3, []byte("8"))
	require.NoError(t, err)

	assert.True(t, ref.Verified)
	assert.Len(t, ref.PublicKey, 33)
	assert.Positive(t, ref.R.Sign())
	assert.Positive(t, ref.S.Sign())
	assert.Negative(t, ref.R.Cmp(ReferenceOrder()))
	assert.Negative(t, ref.S.Cmp(ReferenceOrder()))

	again, err := ReferenceSign(3, []byte("8"))
	require.NoError(t, err)
	assert.Equal(t, ref.R, again.R, "RFC 6979 nonces are deterministic")
	assert.Equal(t, ref.S, again.S)

	_, err = ReferenceSign(0, []byte("8"))
	assert.Error(t, err)
}

func TestReferenceOrder(t *testing.T) {
	assert.Equal(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", ReferenceOrder().Text(16))
	assert.Equal(t, CurveParams{A: 0, B: 7}, ReferenceCoefficients())
}
