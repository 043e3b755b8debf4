package ecvis

import (
	"fmt"
	"math"
)

// Element is a coordinate type: int64 for Z_p, float64 for the reals.
type Element interface {
	~int64 | ~float64
}

// Field is the numeric domain the group law runs over. Swapping the field is
// the only difference between the modular and the real curve, so both share
// one implementation of Add and Double.
type Field[E Element] interface {
	// Reduce maps a value into canonical form (identity for the reals).
	Reduce(x E) E

	Add(x, y E) E
	Sub(x, y E) E
	Mul(x, y E) E
	Neg(x E) E

	// Inv returns the multiplicative inverse or an error wrapping ErrNoInverse.
	Inv(x E) (E, error)

	// Equal compares two values in the field (mod-aware for Z_p).
	Equal(x, y E) bool
	IsZero(x E) bool

	// FromInt lifts an integer coefficient into the field.
	FromInt(v int64) E

	// Name returns a short human-readable name of the domain.
	Name() string
}

// ModField is the prime field Z_p. Primality of P is not checked.
type ModField struct {
	P int64
}

// NewModField validates the modulus and returns the field.
func NewModField(p int64) (ModField, error) {
	if p < 2 || p > MaxModulus {
		return ModField{}, errorf("NewModField", "%w: %d not in [2, %d]", ErrInvalidModulus, p, MaxModulus)
	}
	return ModField{P: p}, nil
}

func (f ModField) Reduce(x int64) int64  { return Mod(x, f.P) }
func (f ModField) Add(x, y int64) int64  { return AddMod(x, y, f.P) }
func (f ModField) Sub(x, y int64) int64  { return SubMod(x, y, f.P) }
func (f ModField) Mul(x, y int64) int64  { return MulMod(x, y, f.P) }
func (f ModField) Neg(x int64) int64     { return SubMod(0, x, f.P) }
func (f ModField) Equal(x, y int64) bool { return Mod(x, f.P) == Mod(y, f.P) }
func (f ModField) IsZero(x int64) bool   { return Mod(x, f.P) == 0 }
func (f ModField) FromInt(v int64) int64 { return Mod(v, f.P) }
func (f ModField) Name() string          { return fmt.Sprintf("Z_%d", f.P) }

func (f ModField) Inv(x int64) (int64, error) {
	return ModInverse(x, f.P)
}

// RealField is float64 arithmetic with no reduction.
type RealField struct{}

func (RealField) Reduce(x float64) float64 { return x }
func (RealField) Add(x, y float64) float64 { return x + y }
func (RealField) Sub(x, y float64) float64 { return x - y }
func (RealField) Mul(x, y float64) float64 { return x * y }
func (RealField) Neg(x float64) float64    { return -x }
func (RealField) Equal(x, y float64) bool  { return x == y }
func (RealField) IsZero(x float64) bool    { return x == 0 }
func (RealField) FromInt(v int64) float64  { return float64(v) }
func (RealField) Name() string             { return "R" }

func (RealField) Inv(x float64) (float64, error) {
	if x == 0 || math.IsNaN(x) {
		return 0, errorf("RealField.Inv", "%w: %v", ErrNoInverse, x)
	}
	return 1 / x, nil
}
