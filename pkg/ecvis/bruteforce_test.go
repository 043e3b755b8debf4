package ecvis

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestStrategy(t *testing.T) *SmartBruteForceStrategy {
	return NewSmartBruteForceStrategy(NewExampleCurve(), subgroupG, subgroupQ, subgroupN).
		WithLogger(zaptest.NewLogger(t))
}

func TestSmartBruteForce_SameNonce(t *testing.T) {
	result, err := newTestStrategy(t).Search(context.Background(),
		[]MessageSignature{sig(1, 3, 3), sig(2, 3, 4)})
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.PrivateKey)
	assert.Equal(t, "same_nonce_reuse", result.Pattern)
	assert.Equal(t, [2]int{0, 1}, result.SignaturePair)
	assert.True(t, result.Verified)
}

func TestSmartBruteForce_CommonPattern(t *testing.T) {
	result, err := newTestStrategy(t).Search(context.Background(),
		[]MessageSignature{sig(1, 3, 3), sig(2, 6, 3)})
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.PrivateKey)
	assert.True(t, result.Verified)
	assert.NotContains(t, result.Pattern, "brute_force")
}

func TestSmartBruteForce_CustomPattern(t *testing.T) {
	strategy := newTestStrategy(t).WithPatternConfig(PatternConfig{
		CustomPatterns: []Pattern{{A: 2, B: 1, Name: "double_plus_one"}},
	})

	// The second signature is unrelated noise; the pair (0, 2) is k, 2k+1.
	result, err := strategy.Search(context.Background(),
		[]MessageSignature{sig(1, 6, 6), sig(3, 2, 5), sig(1, 6, 1)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.PrivateKey)
	assert.True(t, result.Verified)
}

func TestSmartBruteForce_RangeSearch(t *testing.T) {
	strategy := newTestStrategy(t).
		WithPatternConfig(PatternConfig{}).
		WithRangeConfig(RangeConfig{
			ARange:     [2]int64{1, 3},
			BRange:     [2]int64{-3, 3},
			MaxPairs:   10,
			NumWorkers: 4,
			SkipZeroA:  true,
		})

	result, err := strategy.Search(context.Background(),
		[]MessageSignature{sig(1, 3, 3), sig(2, 6, 3)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.PrivateKey)
	assert.True(t, strings.HasPrefix(result.Pattern, "brute_force_"), result.Pattern)
}

func TestSmartBruteForce_NotFound(t *testing.T) {
	// (0, 1) has order 14 and is not a multiple of G, so no key verifies.
	strategy := NewSmartBruteForceStrategy(NewExampleCurve(), subgroupG, NewPoint[int64](0, 1), subgroupN).
		WithRangeConfig(RangeConfig{ARange: [2]int64{1, 2}, BRange: [2]int64{0, 1}, NumWorkers: 2})

	_, err := strategy.Search(context.Background(), []MessageSignature{sig(1, 3, 3), sig(2, 6, 3)})
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSmartBruteForce_Errors(t *testing.T) {
	strategy := newTestStrategy(t)

	_, err := strategy.Search(context.Background(), []MessageSignature{sig(1, 3, 3)})
	assert.ErrorIs(t, err, ErrKeyNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = strategy.Search(ctx, []MessageSignature{sig(1, 3, 3), sig(2, 6, 3)})
	assert.ErrorIs(t, err, context.Canceled)

	strategy.N = 1
	_, err = strategy.Search(context.Background(), []MessageSignature{sig(1, 3, 3), sig(2, 6, 3)})
	assert.ErrorIs(t, err, ErrInvalidModulus)
}

func TestSmartBruteForce_Name(t *testing.T) {
	var strategy RecoveryStrategy = newTestStrategy(t)
	assert.Equal(t, "SmartBruteForce", strategy.Name())
}
