package ecvis

// MaxPathLength caps k in ScalarMultiplyPath; the path is meant for
// animation, not for large scalars.
const MaxPathLength = 1 << 20

// ScalarMultiplyPath returns G, 2G, ..., kG computed by repeated addition of
// G, so every intermediate multiple is available for animation. Entry i
// (0-based) is (i+1)G.
//
// k must be at least 1. Any failure from Add is returned with no partial path.
func (c *Curve[E]) ScalarMultiplyPath(k int, g Point[E]) ([]Point[E], error) {
	if k < 1 || k > MaxPathLength {
		return nil, errorf("ScalarMultiplyPath", "%w: k=%d, need 1 <= k <= %d", ErrInvalidScalar, k, MaxPathLength)
	}

	path := make([]Point[E], 0, k)
	path = append(path, g)

	current := g
	for i := 1; i < k; i++ {
		next, err := c.Add(current, g)
		if err != nil {
			return nil, errorf("ScalarMultiplyPath", "step %d: %w", i+1, err)
		}
		path = append(path, next)
		current = next
	}

	return path, nil
}

// ScalarMult returns kG by double-and-add, without the intermediate path.
// k = 0 yields the point at infinity. For points on the curve the result
// equals the last entry of ScalarMultiplyPath.
func (c *Curve[E]) ScalarMult(k int64, g Point[E]) (Point[E], error) {
	if k < 0 {
		return Point[E]{}, errorf("ScalarMult", "%w: k=%d, need k >= 0", ErrInvalidScalar, k)
	}

	result := Infinity[E]()
	addend := g
	for k > 0 {
		var err error
		if k&1 == 1 {
			if result, err = c.Add(result, addend); err != nil {
				return Point[E]{}, err
			}
		}
		k >>= 1
		if k > 0 {
			if addend, err = c.Double(addend); err != nil {
				return Point[E]{}, err
			}
		}
	}

	return result, nil
}
