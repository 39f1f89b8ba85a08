package geometry

import "fmt"

// Vector3 is a point or direction in three dimensional space. It is a plain
// value; no operation in this package mutates its receiver or arguments.
type Vector3 struct {
	X, Y, Z Scalar
}

func NewVector3(x, y, z Scalar) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// DotProduct returns v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z, summed left to right.
//
// Each product is converted explicitly so the compiler never fuses it into
// a multiply-add; results match plain float32 arithmetic on every target.
func DotProduct(v1, v2 Vector3) Scalar {
	return Scalar(v1.X*v2.X) + Scalar(v1.Y*v2.Y) + Scalar(v1.Z*v2.Z)
}

// CrossProduct returns the right-handed cross product v1 x v2. Operand order
// matters: CrossProduct(a, b) is the exact negation of CrossProduct(b, a).
func CrossProduct(v1, v2 Vector3) Vector3 {
	return Vector3{
		X: Scalar(v1.Y*v2.Z) - Scalar(v1.Z*v2.Y), // y1 * z2 - z1 * y2
		Y: Scalar(v1.Z*v2.X) - Scalar(v1.X*v2.Z), // z1 * x2 - x1 * z2
		Z: Scalar(v1.X*v2.Y) - Scalar(v1.Y*v2.X), // x1 * y2 - y1 * x2
	}
}

func (v Vector3) Dot(o Vector3) Scalar {
	return DotProduct(v, o)
}

func (v Vector3) Cross(o Vector3) Vector3 {
	return CrossProduct(v, o)
}

func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// IsZero treats -0 as zero.
func (v Vector3) IsZero() bool {
	return (v.X == 0) && (v.Y == 0) && (v.Z == 0)
}

func (v Vector3) Equals(b Vector3) bool {
	return (v.X == b.X) && (v.Y == b.Y) && (v.Z == b.Z)
}

func (v Vector3) NotEquals(b Vector3) bool {
	return (v.X != b.X) || (v.Y != b.Y) || (v.Z != b.Z)
}

// ApproxEquals compares component-wise with an absolute tolerance. A NaN
// component is never approximately equal to anything.
func (v Vector3) ApproxEquals(b Vector3, tolerance Scalar) bool {
	return (v.X-b.X).Abs() <= tolerance &&
		(v.Y-b.Y).Abs() <= tolerance &&
		(v.Z-b.Z).Abs() <= tolerance
}

func (v Vector3) HasNaN() bool {
	return v.X.IsNaN() || v.Y.IsNaN() || v.Z.IsNaN()
}

func (v Vector3) IsFinite() bool {
	return v.X.IsFinite() && v.Y.IsFinite() && v.Z.IsFinite()
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
