package ecvis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	return NewClient().WithPublicKey(NewExampleCurve(), subgroupG, subgroupQ)
}

func TestClient_RecoverKeyWithKnownRelationship(t *testing.T) {
	tests := []struct {
		file string
		rel  AffineRelationship
	}{
		{"testdata/signatures_same_nonce.json", AffineRelationship{A: 1, B: 0}},
		{"testdata/signatures_counter.json", AffineRelationship{A: 1, B: 1}},
		{"testdata/signatures_affine.json", AffineRelationship{A: 2, B: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := newTestClient().RecoverKeyWithKnownRelationship(context.Background(), tt.file, tt.rel, subgroupN)
			require.NoError(t, err)
			assert.Equal(t, int64(3), result.PrivateKey)
			assert.Equal(t, tt.rel, result.Relationship)
			assert.True(t, result.Verified)
		})
	}
}

func TestClient_RecoverKeyWithKnownRelationship_Unverified(t *testing.T) {
	// Without a public key the first recovered candidate is returned as is.
	result, err := NewClient().RecoverKeyWithKnownRelationship(context.Background(),
		"testdata/signatures_counter.json", AffineRelationship{A: 1, B: 1}, subgroupN)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.PrivateKey)
	assert.False(t, result.Verified)
}

func TestClient_RecoverKeyWithKnownRelationship_WrongRelationship(t *testing.T) {
	_, err := newTestClient().RecoverKeyWithKnownRelationship(context.Background(),
		"testdata/signatures_counter.json", AffineRelationship{A: 1, B: 0}, subgroupN)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestClient_RecoverKey_CSV(t *testing.T) {
	strategy := NewSmartBruteForceStrategy(NewExampleCurve(), subgroupG, subgroupQ, subgroupN)
	client := NewClient().
		WithParser(&CSVParser{N: subgroupN}).
		WithStrategy(strategy)

	result, err := client.RecoverKey(context.Background(), "testdata/signatures_counter.csv")
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.PrivateKey)
	assert.True(t, result.Verified)
}

func TestClient_RecoverKey_NoStrategy(t *testing.T) {
	_, err := NewClient().RecoverKey(context.Background(), "testdata/signatures_counter.json")
	assert.Error(t, err)
}

func TestClient_LoadSignatures_Missing(t *testing.T) {
	_, err := NewClient().LoadSignatures("testdata/missing.json")
	assert.Error(t, err)
}
