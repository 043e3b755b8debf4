package ecvis

// MaxModulus is the largest supported modulus. Keeping p below 2^31 lets
// every product of two reduced values fit in an int64.
const MaxModulus int64 = 1<<31 - 1

// Mod returns value reduced into [0, m). Negative values are handled.
func Mod(value, m int64) int64 {
	return ((value % m) + m) % m
}

// AddMod returns (x + y) mod m for any int64 inputs.
func AddMod(x, y, m int64) int64 {
	return Mod(Mod(x, m)+Mod(y, m), m)
}

// SubMod returns (x - y) mod m for any int64 inputs.
func SubMod(x, y, m int64) int64 {
	return Mod(Mod(x, m)-Mod(y, m), m)
}

// MulMod returns (x * y) mod m. Operands are reduced first so the product
// cannot overflow when m <= MaxModulus.
func MulMod(x, y, m int64) int64 {
	return Mod(Mod(x, m)*Mod(y, m), m)
}

// ModInverse finds i in [1, m) with value*i ≡ 1 (mod m) using the extended
// Euclidean algorithm.
//
// Returns an error wrapping ErrNoInverse when gcd(value, m) != 1, and
// ErrInvalidModulus when m is not positive.
func ModInverse(value, m int64) (int64, error) {
	if m <= 0 {
		return 0, errorf("ModInverse", "%w: %d", ErrInvalidModulus, m)
	}

	v := Mod(value, m)
	if v == 0 || m == 1 {
		return 0, errorf("ModInverse", "%w: %d mod %d", ErrNoInverse, value, m)
	}

	oldR, r := v, m
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}

	if oldR != 1 {
		return 0, errorf("ModInverse", "%w: gcd(%d, %d) = %d", ErrNoInverse, value, m, oldR)
	}

	return Mod(oldS, m), nil
}

// ModInverseScan is the linear-search inverse: it tries i = 1..m-1 in order.
// It is O(m) and only meant for the small moduli shown in the visualizer;
// results agree with ModInverse for every input.
func ModInverseScan(value, m int64) (int64, error) {
	if m <= 0 {
		return 0, errorf("ModInverseScan", "%w: %d", ErrInvalidModulus, m)
	}

	v := Mod(value, m)
	for i := int64(1); i < m; i++ {
		if MulMod(v, i, m) == 1 {
			return i, nil
		}
	}

	return 0, errorf("ModInverseScan", "%w: %d mod %d", ErrNoInverse, value, m)
}
