package pick

import (
	"github.com/seqsense/viewmath/mat"
)

// ClipFilter tests points against the clip volume of a view and projection.
type ClipFilter mat.Mat4

func NewClipFilter(view, projection mat.Mat4) ClipFilter {
	return ClipFilter(view.Mul(projection))
}

// Inside reports whether p is in front of the eye and within the
// [-1, 1] cube after the perspective divide.
func (f ClipFilter) Inside(p mat.Vec3) bool {
	h := mat.Mat4(f).TransformW(p)
	w := h[3]
	if !(w > 0) {
		return false
	}
	for _, v := range h[:3] {
		if v < -w || w < v {
			return false
		}
	}
	return true
}

func (f ClipFilter) Outside(p mat.Vec3) bool {
	return !f.Inside(p)
}
