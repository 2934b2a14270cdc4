package mat

import (
	"github.com/chewxy/math32"
)

type Vec3 [3]float32

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

func (v Vec3) NormSq() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float32 {
	return math32.Sqrt(v.NormSq())
}

// Normalized returns v divided by its length.
// A zero vector gives NaN components.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	return Vec3{v[0] / n, v[1] / n, v[2] / n}
}

func (v *Vec3) Normalize() {
	*v = v.Normalized()
}

func (v Vec3) Mul(a float32) Vec3 {
	return Vec3{v[0] * a, v[1] * a, v[2] * a}
}

func (v Vec3) Sub(a Vec3) Vec3 {
	return Vec3{v[0] - a[0], v[1] - a[1], v[2] - a[2]}
}

func (v Vec3) Add(a Vec3) Vec3 {
	return Vec3{v[0] + a[0], v[1] + a[1], v[2] + a[2]}
}

func (v Vec3) Dot(a Vec3) float32 {
	return v[0]*a[0] + v[1]*a[1] + v[2]*a[2]
}

func (v Vec3) Cross(a Vec3) Vec3 {
	return Vec3{
		v[1]*a[2] - v[2]*a[1],
		v[2]*a[0] - v[0]*a[2],
		v[0]*a[1] - v[1]*a[0],
	}
}

// CrossNormSq returns |v x a|^2 without computing the cross product.
func (v Vec3) CrossNormSq(a Vec3) float32 {
	d := v.Dot(a)
	return v.NormSq()*a.NormSq() - d*d
}

func (v Vec3) Equal(a Vec3, eps float32) bool {
	for i := range v {
		if !(math32.Abs(v[i]-a[i]) <= eps) {
			return false
		}
	}
	return true
}
