package mat

import (
	"github.com/chewxy/math32"
)

// Perspective returns a symmetric-frustum projection. After the transform
// w equals -z of the input point.
//
// near == far gives Inf cells.
func Perspective(fov, aspect, near, far float32) Mat4 {
	q := 1 / math32.Tan(fov/2)
	a := q / aspect
	b := (near + far) / (near - far)
	c := (2 * near * far) / (near - far)
	return Mat4{
		a, 0, 0, 0,
		0, q, 0, 0,
		0, 0, b, -1,
		0, 0, c, 0,
	}
}
