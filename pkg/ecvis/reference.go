package ecvis

import (
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// ReferenceSignature is a full-size secp256k1 ECDSA signature, shown next to
// the toy signature so the two computations can be compared.
type ReferenceSignature struct {
	R         *big.Int // r component of the signature
	S         *big.Int // s component of the signature
	Z         *big.Int // SHA-256 of the message
	PublicKey []byte   // Compressed public key (33 bytes)
	Verified  bool     // Whether the signature verified against PublicKey
}

// ReferenceCoefficients returns a and b of the real secp256k1 curve, which the
// "secp256k1" preset keeps while shrinking p.
func ReferenceCoefficients() CurveParams {
	params := secp256k1.S256().Params()
	return CurveParams{A: 0, B: params.B.Int64()}
}

// ReferenceOrder returns the group order n of secp256k1.
func ReferenceOrder() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

// ReferenceSign signs SHA-256(message) with private key d on the real
// secp256k1 curve. The nonce is derived per RFC 6979 by the library.
func ReferenceSign(d int64, message []byte) (*ReferenceSignature, error) {
	if d <= 0 {
		return nil, errors.New("private key must be positive")
	}

	// Convert private key to 32-byte array (pad if needed)
	privKeyBytes := make([]byte, 32)
	big.NewInt(d).FillBytes(privKeyBytes)
	privKey := secp256k1.PrivKeyFromBytes(privKeyBytes)

	hash := sha256.Sum256(message)

	// Compact form: one recovery byte, then 32-byte r and 32-byte s.
	compact := ecdsa.SignCompact(privKey, hash[:], true)
	rBytes, sBytes := compact[1:33], compact[33:65]

	var rMod, sMod secp256k1.ModNScalar
	rMod.SetByteSlice(rBytes)
	sMod.SetByteSlice(sBytes)
	sig := ecdsa.NewSignature(&rMod, &sMod)
	pubKey := privKey.PubKey()

	return &ReferenceSignature{
		R:         new(big.Int).SetBytes(rBytes),
		S:         new(big.Int).SetBytes(sBytes),
		Z:         new(big.Int).SetBytes(hash[:]),
		PublicKey: pubKey.SerializeCompressed(),
		Verified:  sig.Verify(hash[:], pubKey),
	}, nil
}
