package geometry

import "github.com/chewxy/math32"

const (
	Epsilon = 1.19209e-07 // defined by clang for x86
)

var (
	Infinity = Scalar(math32.Inf(1))

	Zero  = Vector3{}
	UnitX = Vector3{X: 1}
	UnitY = Vector3{Y: 1}
	UnitZ = Vector3{Z: 1}
)
