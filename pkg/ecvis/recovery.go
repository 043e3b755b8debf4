package ecvis

import (
	"crypto/sha256"
	"math/big"
)

// RecoverPrivateKey recovers d from two toy signatures whose nonces satisfy
// k2 = a·k1 + b (mod n):
//
//	d = (a·s2·z1 - s1·z2 + b·s1·s2) / (r2·s1 - a·r1·s2) mod n
//
// A zero or non-invertible denominator returns an error wrapping
// ErrInverseUndefined.
func RecoverPrivateKey(sig1, sig2 MessageSignature, rel AffineRelationship, n int64) (int64, error) {
	if n < 2 || n > MaxModulus {
		return 0, errorf("RecoverPrivateKey", "%w: n=%d", ErrInvalidModulus, n)
	}

	a, b := Mod(rel.A, n), Mod(rel.B, n)

	// Numerator: a*s2*z1 - s1*z2 + b*s1*s2
	numerator := MulMod(MulMod(a, sig2.S, n), sig1.Z, n)
	numerator = SubMod(numerator, MulMod(sig1.S, sig2.Z, n), n)
	numerator = AddMod(numerator, MulMod(MulMod(b, sig1.S, n), sig2.S, n), n)

	// Denominator: r2*s1 - a*r1*s2
	denominator := SubMod(MulMod(sig2.R, sig1.S, n), MulMod(MulMod(a, sig1.R, n), sig2.S, n), n)

	inv, err := ModInverse(denominator, n)
	if err != nil {
		return 0, inverseUndefined("RecoverPrivateKey", err)
	}

	return MulMod(inv, numerator, n), nil
}

// HashMessage hashes a message using SHA-256 and returns it as an integer mod n.
func HashMessage(message []byte, n int64) int64 {
	h := sha256.Sum256(message)
	z := new(big.Int).SetBytes(h[:])
	z.Mod(z, big.NewInt(n))
	return z.Int64()
}

// VerifyRecoveredKey reports whether d·G equals the public key Q.
func VerifyRecoveredKey(curve *ModularCurve, g, q Point[int64], d int64) (bool, error) {
	if d <= 0 {
		return false, nil
	}
	candidate, err := curve.ScalarMult(d, g)
	if err != nil {
		return false, err
	}
	return curve.Equal(candidate, q), nil
}
