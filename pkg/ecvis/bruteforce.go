package ecvis

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SmartBruteForceStrategy implements a multi-phase search over toy
// signatures: same-nonce reuse, common patterns, custom patterns, then a
// parallel sweep of the configured (a, b) range. Every candidate key is
// checked against the public key Q = d·G.
type SmartBruteForceStrategy struct {
	Curve *ModularCurve
	G     Point[int64] // Base point
	Q     Point[int64] // Public key
	N     int64        // Toy group order

	RangeConfig   RangeConfig
	PatternConfig PatternConfig

	logger *zap.Logger
}

// NewSmartBruteForceStrategy creates a new smart brute-force strategy with default settings.
func NewSmartBruteForceStrategy(curve *ModularCurve, g, q Point[int64], n int64) *SmartBruteForceStrategy {
	return &SmartBruteForceStrategy{
		Curve:         curve,
		G:             g,
		Q:             q,
		N:             n,
		RangeConfig:   DefaultRangeConfig(),
		PatternConfig: DefaultPatternConfig(),
		logger:        zap.NewNop(),
	}
}

// WithRangeConfig sets the range configuration for the strategy.
func (s *SmartBruteForceStrategy) WithRangeConfig(config RangeConfig) *SmartBruteForceStrategy {
	s.RangeConfig = config
	return s
}

// WithPatternConfig sets the pattern configuration for the strategy.
func (s *SmartBruteForceStrategy) WithPatternConfig(config PatternConfig) *SmartBruteForceStrategy {
	s.PatternConfig = config
	return s
}

// WithLogger sets the logger used to report search progress.
func (s *SmartBruteForceStrategy) WithLogger(logger *zap.Logger) *SmartBruteForceStrategy {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger
	return s
}

// Name returns the name of this strategy.
func (s *SmartBruteForceStrategy) Name() string {
	return "SmartBruteForce"
}

// Search implements the RecoveryStrategy interface.
func (s *SmartBruteForceStrategy) Search(ctx context.Context, signatures []MessageSignature) (*RecoveryResult, error) {
	if len(signatures) < 2 {
		return nil, errorf("Search", "%w: need at least 2 signatures, got %d", ErrKeyNotFound, len(signatures))
	}
	if s.N < 2 || s.N > MaxModulus {
		return nil, errorf("Search", "%w: n=%d", ErrInvalidModulus, s.N)
	}

	log := s.logger.With(zap.Int("signatures", len(signatures)), zap.Int64("n", s.N))
	log.Info("starting key recovery")

	// Phase 0: Check for same nonce reuse (fastest)
	if result := s.checkSameNonceReuse(signatures); result != nil {
		log.Info("found same nonce reuse", zap.Ints("pair", result.SignaturePair[:]))
		return result, nil
	}
	log.Debug("no same nonce reuse found")

	// Phase 1: Try common patterns
	if s.PatternConfig.IncludeCommonPatterns {
		if result := s.tryPatterns(ctx, signatures, commonPatterns()); result != nil {
			log.Info("found common pattern", zap.String("pattern", result.Pattern))
			return result, nil
		}
		log.Debug("no common patterns matched")
	}

	// Phase 2: Try custom patterns
	if len(s.PatternConfig.CustomPatterns) > 0 {
		if result := s.tryPatterns(ctx, signatures, s.PatternConfig.CustomPatterns); result != nil {
			log.Info("found custom pattern", zap.String("pattern", result.Pattern))
			return result, nil
		}
		log.Debug("no custom patterns matched", zap.Int("patterns", len(s.PatternConfig.CustomPatterns)))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 3: Range search (brute-force)
	result, err := s.rangeSearch(ctx, signatures)
	if err != nil {
		return nil, err
	}
	if result == nil {
		log.Info("all phases completed, key not found")
		return nil, errorf("Search", "%w: a in %v, b in %v", ErrKeyNotFound, s.RangeConfig.ARange, s.RangeConfig.BRange)
	}

	log.Info("found key by range search", zap.String("pattern", result.Pattern))
	return result, nil
}

// checkSameNonceReuse checks for identical r values (same nonce reuse).
func (s *SmartBruteForceStrategy) checkSameNonceReuse(signatures []MessageSignature) *RecoveryResult {
	for i := 0; i < len(signatures); i++ {
		for j := i + 1; j < len(signatures); j++ {
			if signatures[i].R != signatures[j].R {
				continue
			}
			if result := s.tryPair(signatures, i, j, AffineRelationship{A: 1, B: 0}, "same_nonce_reuse"); result != nil {
				return result
			}
		}
	}
	return nil
}

// tryPatterns tries each (a, b) pattern across all signature pairs.
func (s *SmartBruteForceStrategy) tryPatterns(ctx context.Context, signatures []MessageSignature, patterns []Pattern) *RecoveryResult {
	for _, pattern := range patterns {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		rel := AffineRelationship{A: pattern.A, B: pattern.B}
		for i := 0; i < len(signatures); i++ {
			for j := i + 1; j < len(signatures); j++ {
				if result := s.tryPair(signatures, i, j, rel, pattern.Name); result != nil {
					return result
				}
			}
		}
	}
	return nil
}

// tryPair recovers a candidate key from one pair and keeps it only if it
// matches the public key.
func (s *SmartBruteForceStrategy) tryPair(signatures []MessageSignature, i, j int, rel AffineRelationship, pattern string) *RecoveryResult {
	priv, err := RecoverPrivateKey(signatures[i], signatures[j], rel, s.N)
	if err != nil || priv <= 0 {
		return nil
	}

	verified, err := VerifyRecoveredKey(s.Curve, s.G, s.Q, priv)
	if err != nil || !verified {
		return nil
	}

	return &RecoveryResult{
		PrivateKey:    priv,
		Relationship:  rel,
		SignaturePair: [2]int{i, j},
		Verified:      true,
		Pattern:       pattern,
	}
}

// rangeSearch sweeps the configured (a, b) range, one task per (pair, a).
func (s *SmartBruteForceStrategy) rangeSearch(ctx context.Context, signatures []MessageSignature) (*RecoveryResult, error) {
	cfg := s.RangeConfig
	numWorkers := cfg.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	maxPairs := cfg.MaxPairs
	if maxPairs <= 0 {
		maxPairs = DefaultRangeConfig().MaxPairs
	}

	s.logger.Debug("range search",
		zap.Int64s("a_range", cfg.ARange[:]),
		zap.Int64s("b_range", cfg.BRange[:]),
		zap.Int("workers", numWorkers),
	)

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		tested int64
		found  *RecoveryResult
		once   sync.Once
	)

	g, gctx := errgroup.WithContext(searchCtx)
	g.SetLimit(numWorkers)

	pairCount := 0
pairs:
	for i := 0; i < len(signatures); i++ {
		for j := i + 1; j < len(signatures); j++ {
			if pairCount >= maxPairs {
				break pairs
			}
			pairCount++

			for a := cfg.ARange[0]; a <= cfg.ARange[1]; a++ {
				if cfg.SkipZeroA && a == 0 {
					continue
				}
				if gctx.Err() != nil {
					break pairs
				}
				g.Go(func() error {
					for b := cfg.BRange[0]; b <= cfg.BRange[1]; b++ {
						if gctx.Err() != nil {
							return nil
						}
						atomic.AddInt64(&tested, 1)

						name := fmt.Sprintf("brute_force_a%d_b%d", a, b)
						if result := s.tryPair(signatures, i, j, AffineRelationship{A: a, B: b}, name); result != nil {
							once.Do(func() {
								found = result
								cancel()
							})
							return nil
						}
					}
					return nil
				})
			}
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("range search finished", zap.Int64("combinations", atomic.LoadInt64(&tested)))

	if found != nil {
		return found, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, nil
}

// commonPatterns returns the nonce relationships tried before brute force.
func commonPatterns() []Pattern {
	return []Pattern{
		{A: 1, B: 0, Name: "same_nonce", Priority: 1},
		{A: 1, B: 1, Name: "counter_+1", Priority: 2},
		{A: 1, B: -1, Name: "counter_-1", Priority: 2},
		{A: 1, B: 2, Name: "counter_+2", Priority: 3},
		{A: 1, B: -2, Name: "counter_-2", Priority: 3},
		{A: 2, B: 0, Name: "multiply_2", Priority: 5},
		{A: 2, B: 1, Name: "multiply_2_+1", Priority: 5},
		{A: 3, B: 0, Name: "multiply_3", Priority: 5},
		{A: -1, B: 0, Name: "negate", Priority: 6},
	}
}
