package ecvis

import "fmt"

// Signature is a toy ECDSA signature (r, s) relative to the toy order n.
type Signature struct {
	R int64 `json:"r"`
	S int64 `json:"s"`
}

func (s Signature) String() string {
	return fmt.Sprintf("(%d, %d)", s.R, s.S)
}

// MessageSignature is a signature together with the hashed message it signs.
type MessageSignature struct {
	Z int64 `json:"z"` // Message hash (mod n)
	Signature
}

// AffineRelationship represents the relationship between two nonces.
// k2 = a*k1 + b (mod n)
type AffineRelationship struct {
	A int64 `json:"a"` // Affine coefficient
	B int64 `json:"b"` // Affine offset
}

// RecoveryResult contains the result of a key recovery operation.
type RecoveryResult struct {
	PrivateKey    int64              `json:"private_key"`    // Recovered private key
	Relationship  AffineRelationship `json:"relationship"`   // The affine relationship found (k2 = a*k1 + b)
	SignaturePair [2]int             `json:"signature_pair"` // Indices of the signature pair used
	Verified      bool               `json:"verified"`       // Whether d·G matched the public key
	Pattern       string             `json:"pattern"`        // Human-readable pattern description
}
