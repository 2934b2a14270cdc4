// Package mat provides float32 4x4 matrices and 3-vectors for a camera and
// transform pipeline.
//
// Mat4 is stored flat. Cell (row, col) is at index 4*row+col and row 3
// carries the translation, which is the layout glUniformMatrix4fv expects
// with transpose disabled.
//
// None of the functions validate their input. Degenerate arguments (a zero
// vector passed to Normalized, near == far in a projection, an up vector
// parallel to the view direction in LookAt) produce NaN or Inf cells
// following IEEE-754 rules.
package mat

import (
	"github.com/chewxy/math32"
)

type Mat4 [16]float32

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the cell at (row, col).
func (m Mat4) At(row, col int) float32 {
	return m[4*row+col]
}

// Set overwrites the cell at (row, col) in place.
func (m *Mat4) Set(row, col int, v float32) {
	m[4*row+col] = v
}

// WithValue returns a copy of m with the cell at (row, col) replaced.
func (m Mat4) WithValue(row, col int, v float32) Mat4 {
	m.Set(row, col, v)
	return m
}

func (m Mat4) Add(a Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

func (m Mat4) Sub(a Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] - a[i]
	}
	return out
}

// Mul returns the product m*a where out(r, c) = sum_i m(r, i)*a(i, c).
// Points are row vectors, so Translation(t).Mul(m) applies t before m.
func (m Mat4) Mul(a Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[4*r+k] * a[4*k+c]
			}
			out[4*r+c] = sum
		}
	}
	return out
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = m[4*c+r]
		}
	}
	return out
}

// Scale multiplies rows 0, 1 and 2 of m by s[0], s[1] and s[2].
// Row 3 is kept. The result equals ScaleMatrix(s).Mul(m).
func (m Mat4) Scale(s Vec3) Mat4 {
	m.ScaleInPlace(s)
	return m
}

func (m *Mat4) ScaleInPlace(s Vec3) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			m[4*r+c] *= s[r]
		}
	}
}

// Translated returns Translation(t).Mul(m), the multiply form: the
// translation is applied to points before m. It is not Translation(t).Add(m).
func (m Mat4) Translated(t Vec3) Mat4 {
	return Translation(t).Mul(m)
}

func (m *Mat4) TranslateInPlace(t Vec3) {
	*m = m.Translated(t)
}

// TransformW multiplies the row vector [x y z 1] by m and returns the
// homogeneous result without dividing by w.
func (m Mat4) TransformW(a Vec3) [4]float32 {
	var out [4]float32
	for c := 0; c < 4; c++ {
		out[c] = a[0]*m[c] + a[1]*m[4+c] + a[2]*m[8+c] + m[12+c]
	}
	return out
}

// Transform is TransformW followed by the perspective divide.
func (m Mat4) Transform(a Vec3) Vec3 {
	h := m.TransformW(a)
	return Vec3{h[0] / h[3], h[1] / h[3], h[2] / h[3]}
}

// Equal reports whether every cell differs by at most eps.
func (m Mat4) Equal(a Mat4, eps float32) bool {
	for i := range m {
		if !(math32.Abs(m[i]-a[i]) <= eps) {
			return false
		}
	}
	return true
}
