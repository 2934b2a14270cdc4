package mat

import (
	"github.com/chewxy/math32"
)

// Translation returns the identity matrix with t written into row 3.
func Translation(t Vec3) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		t[0], t[1], t[2], 1,
	}
}

func Translate(x, y, z float32) Mat4 {
	return Translation(Vec3{x, y, z})
}

func ScaleMatrix(s Vec3) Mat4 {
	return Identity().
		WithValue(0, 0, s[0]).
		WithValue(1, 1, s[1]).
		WithValue(2, 2, s[2])
}

// Rotate returns a rotation of ang radians around the unit axis (x, y, z).
func Rotate(x, y, z, ang float32) Mat4 {
	s, c := math32.Sincos(ang)
	t := 1 - c

	return Mat4{
		c + x*x*t, y*x*t + z*s, z*x*t - y*s, 0,
		x*y*t - z*s, c + y*y*t, z*y*t + x*s, 0,
		x*z*t + y*s, y*z*t - x*s, c + z*z*t, 0,
		0, 0, 0, 1,
	}
}

// LookAt returns a right-handed view matrix placing eye at the origin and
// looking towards center.
//
// up must not be parallel to center-eye. In that case the side vector is
// zero and the result is all NaN.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)

	return Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}
