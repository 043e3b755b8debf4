package ecvis

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInverse indicates a value has no multiplicative inverse modulo m
	// (it shares a factor with m, which includes zero).
	ErrNoInverse = errors.New("ecvis: no modular inverse")

	// ErrInverseUndefined indicates point arithmetic or signing needed an
	// inverse that does not exist. It always wraps ErrNoInverse.
	ErrInverseUndefined = errors.New("ecvis: inverse undefined")

	// ErrInvalidCurve indicates a singular curve (4a³ + 27b² ≡ 0).
	ErrInvalidCurve = errors.New("ecvis: singular curve")

	// ErrInvalidModulus indicates a modulus outside [2, MaxModulus]
	ErrInvalidModulus = errors.New("ecvis: invalid modulus")

	// ErrInvalidScalar indicates a scalar outside the accepted range
	ErrInvalidScalar = errors.New("ecvis: invalid scalar")

	// ErrInvalidRange indicates unusable sampling bounds or step
	ErrInvalidRange = errors.New("ecvis: invalid range")

	// ErrDegenerateNonce indicates kG is the point at infinity, so r is undefined
	ErrDegenerateNonce = errors.New("ecvis: nonce yields point at infinity")

	// ErrNotOnCurve indicates a point does not satisfy the curve equation
	ErrNotOnCurve = errors.New("ecvis: point not on curve")

	// ErrKeyNotFound indicates key recovery found no matching relationship
	ErrKeyNotFound = errors.New("ecvis: private key not found")
)

// ArithmeticError wraps an underlying error with the operation that failed.
type ArithmeticError struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("ecvis.%s: %v", e.Op, e.Err)
}

func (e *ArithmeticError) Unwrap() error {
	return e.Err
}

// errorf creates a new ArithmeticError
func errorf(op string, format string, args ...interface{}) error {
	return &ArithmeticError{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}

// inverseUndefined re-labels a failed inverse for the calling context while
// keeping ErrNoInverse reachable through errors.Is.
func inverseUndefined(op string, err error) error {
	return errorf(op, "%w: %w", ErrInverseUndefined, err)
}
