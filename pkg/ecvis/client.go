package ecvis

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Client ties a signature source to a recovery strategy.
type Client struct {
	parser   SignatureParser
	strategy RecoveryStrategy
	logger   *zap.Logger

	// Public key used to check candidates from known relationships.
	curve *ModularCurve
	g, q  Point[int64]
}

// NewClient creates a client that reads JSON signatures and has no
// strategy until WithStrategy is called.
func NewClient() *Client {
	return &Client{
		parser: &JSONParser{},
		logger: zap.NewNop(),
	}
}

// WithParser sets the signature parser.
func (c *Client) WithParser(parser SignatureParser) *Client {
	c.parser = parser
	return c
}

// WithStrategy sets the strategy used by RecoverKey.
func (c *Client) WithStrategy(strategy RecoveryStrategy) *Client {
	c.strategy = strategy
	return c
}

// WithLogger sets the logger.
func (c *Client) WithLogger(logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
	return c
}

// WithPublicKey makes RecoverKeyWithKnownRelationship keep only keys with
// d·G = Q.
func (c *Client) WithPublicKey(curve *ModularCurve, g, q Point[int64]) *Client {
	c.curve, c.g, c.q = curve, g, q
	return c
}

// LoadSignatures parses the signatures in source.
func (c *Client) LoadSignatures(source string) ([]MessageSignature, error) {
	signatures, err := c.parser.ParseSignatures(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signatures: %w", err)
	}
	c.logger.Debug("loaded signatures", zap.String("source", source), zap.Int("count", len(signatures)))
	return signatures, nil
}

// RecoverKey loads signatures from source and runs the configured strategy.
func (c *Client) RecoverKey(ctx context.Context, source string) (*RecoveryResult, error) {
	if c.strategy == nil {
		return nil, fmt.Errorf("no recovery strategy configured")
	}

	signatures, err := c.LoadSignatures(source)
	if err != nil {
		return nil, err
	}

	c.logger.Info("recovering key", zap.String("strategy", c.strategy.Name()))
	return c.strategy.Search(ctx, signatures)
}

// RecoverKeyWithKnownRelationship recovers d from the first signature pair
// that yields a key under k2 = a·k1 + b (mod n). With a public key set,
// the key must also verify.
func (c *Client) RecoverKeyWithKnownRelationship(ctx context.Context, source string, rel AffineRelationship, n int64) (*RecoveryResult, error) {
	signatures, err := c.LoadSignatures(source)
	if err != nil {
		return nil, err
	}
	if len(signatures) < 2 {
		return nil, errorf("RecoverKeyWithKnownRelationship", "%w: need at least 2 signatures, got %d", ErrKeyNotFound, len(signatures))
	}

	var lastErr error
	for i := 0; i < len(signatures); i++ {
		for j := i + 1; j < len(signatures); j++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			priv, err := RecoverPrivateKey(signatures[i], signatures[j], rel, n)
			if err != nil {
				lastErr = err
				continue
			}

			result := &RecoveryResult{
				PrivateKey:    priv,
				Relationship:  rel,
				SignaturePair: [2]int{i, j},
				Pattern:       fmt.Sprintf("known_a%d_b%d", rel.A, rel.B),
			}
			if c.curve == nil {
				return result, nil
			}

			verified, err := VerifyRecoveredKey(c.curve, c.g, c.q, priv)
			if err != nil {
				lastErr = err
				continue
			}
			if verified {
				result.Verified = true
				return result, nil
			}
		}
	}

	if lastErr != nil {
		return nil, errorf("RecoverKeyWithKnownRelationship", "%w: %w", ErrKeyNotFound, lastErr)
	}
	return nil, errorf("RecoverKeyWithKnownRelationship", "%w: no pair verified", ErrKeyNotFound)
}
