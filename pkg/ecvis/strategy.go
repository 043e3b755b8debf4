package ecvis

import "context"

// RecoveryStrategy searches a set of toy signatures for a nonce relationship
// that reveals the private key.
type RecoveryStrategy interface {
	// Search returns the recovered key, or an error wrapping ErrKeyNotFound.
	// The context can be used for cancellation.
	Search(ctx context.Context, signatures []MessageSignature) (*RecoveryResult, error)

	// Name returns a human-readable name for this strategy.
	Name() string
}

// Pattern represents a specific affine pattern to test.
type Pattern struct {
	A        int64
	B        int64
	Name     string // Human-readable description
	Priority int    // Lower priority = tested first
}

// RangeConfig configures the search range for brute-force operations.
// Values are reduced mod n before use, so ranges wider than n add nothing.
type RangeConfig struct {
	// ARange defines the range for a values [Min, Max] (inclusive)
	ARange [2]int64

	// BRange defines the range for b values [Min, Max] (inclusive)
	BRange [2]int64

	// MaxPairs limits the number of signature pairs to test
	MaxPairs int

	// NumWorkers controls parallelization (0 = auto-detect)
	NumWorkers int

	// SkipZeroA skips a=0 (k2 would not depend on k1)
	SkipZeroA bool
}

// DefaultRangeConfig returns a range large enough for the toy group orders
// used in the visualizer.
func DefaultRangeConfig() RangeConfig {
	return RangeConfig{
		ARange:     [2]int64{-32, 32},
		BRange:     [2]int64{-32, 32},
		MaxPairs:   100,
		NumWorkers: 0,
		SkipZeroA:  true,
	}
}

// PatternConfig configures custom patterns to test.
type PatternConfig struct {
	// CustomPatterns are additional patterns to test before brute-force
	CustomPatterns []Pattern

	// IncludeCommonPatterns includes built-in common patterns
	IncludeCommonPatterns bool
}

// DefaultPatternConfig returns a configuration with common patterns enabled.
func DefaultPatternConfig() PatternConfig {
	return PatternConfig{
		CustomPatterns:        []Pattern{},
		IncludeCommonPatterns: true,
	}
}

// EnumerateConfig configures PointsParallel.
type EnumerateConfig struct {
	// NumWorkers controls parallelization (0 = auto-detect)
	NumWorkers int
}

// SegmentConfig configures how sampled points are split into polylines.
type SegmentConfig struct {
	// Scale converts curve units to plot units (pixels per unit)
	Scale float64

	// Threshold is the largest plot-unit gap still drawn as one line.
	// Zero means one curve unit, i.e. Scale.
	Threshold float64
}

// DefaultSegmentConfig measures distances in curve units and breaks lines at
// gaps longer than one unit.
func DefaultSegmentConfig() SegmentConfig {
	return SegmentConfig{Scale: 1, Threshold: 1}
}

// SampleConfig describes a real-domain sampling window.
type SampleConfig struct {
	XMin float64 `json:"x_min" mapstructure:"x_min"`
	XMax float64 `json:"x_max" mapstructure:"x_max"`
	Step float64 `json:"step" mapstructure:"step"`
}

// DefaultSampleConfig is the window the chart plots: x in [-10, 10] by 0.1.
func DefaultSampleConfig() SampleConfig {
	return SampleConfig{XMin: -10, XMax: 10, Step: 0.1}
}
