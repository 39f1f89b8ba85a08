package geometry

import "github.com/chewxy/math32"

// Scalar is the single precision component type shared by every vector in
// this package.
type Scalar float32

func (s Scalar) IsNaN() bool {
	return math32.IsNaN(float32(s))
}

// IsFinite reports whether s is neither NaN nor an infinity.
func (s Scalar) IsFinite() bool {
	return !math32.IsNaN(float32(s)) && !math32.IsInf(float32(s), 0)
}

func (s Scalar) Abs() Scalar {
	return Scalar(math32.Abs(float32(s)))
}
