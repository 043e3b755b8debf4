package ecvis

import (
	"encoding/json"
	"fmt"
)

// Point is an affine curve point or the point at infinity.
//
// The zero value is the point at infinity, so a finite point at (0, 0) is
// never confused with the identity.
type Point[E Element] struct {
	x, y   E
	finite bool
}

// NewPoint returns the finite point (x, y).
func NewPoint[E Element](x, y E) Point[E] {
	return Point[E]{x: x, y: y, finite: true}
}

// Infinity returns the point at infinity.
func Infinity[E Element]() Point[E] {
	return Point[E]{}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point[E]) IsInfinity() bool {
	return !p.finite
}

// X returns the x coordinate; zero for the point at infinity.
func (p Point[E]) X() E { return p.x }

// Y returns the y coordinate; zero for the point at infinity.
func (p Point[E]) Y() E { return p.y }

// Coords returns the coordinates and false for the point at infinity.
func (p Point[E]) Coords() (x, y E, ok bool) {
	return p.x, p.y, p.finite
}

func (p Point[E]) String() string {
	if !p.finite {
		return "O"
	}
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

type pointJSON[E Element] struct {
	X        *E   `json:"x,omitempty"`
	Y        *E   `json:"y,omitempty"`
	Infinity bool `json:"infinity,omitempty"`
}

// MarshalJSON encodes a finite point as {"x":..,"y":..} and the point at
// infinity as {"infinity":true}.
func (p Point[E]) MarshalJSON() ([]byte, error) {
	if !p.finite {
		return json.Marshal(pointJSON[E]{Infinity: true})
	}
	x, y := p.x, p.y
	return json.Marshal(pointJSON[E]{X: &x, Y: &y})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (p *Point[E]) UnmarshalJSON(data []byte) error {
	var raw pointJSON[E]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Infinity {
		*p = Infinity[E]()
		return nil
	}
	if raw.X == nil || raw.Y == nil {
		return fmt.Errorf("point requires both x and y or infinity")
	}
	*p = NewPoint(*raw.X, *raw.Y)
	return nil
}
