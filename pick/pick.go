// Package pick selects points of a point cloud under a screen position.
package pick

import (
	"fmt"

	pcmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/viewmath"
	"github.com/seqsense/viewmath/camera"
	"github.com/seqsense/viewmath/mat"
)

type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// Vec3Iterator is the forward iterator returned by
// (*pc.PointCloud).Vec3Iterator.
type Vec3Iterator interface {
	IsValid() bool
	Incr()
	Vec3() pcmat.Vec3
}

// Ray unprojects the pixel (x, y) of a width x height viewport. y grows
// downwards. origin is on the near plane and dir is normalized.
func Ray(view, projection mat.Mat4, x, y, width, height int) (origin, dir mat.Vec3) {
	inv := mat.FromPCGol(view.Mul(projection).PCGol().Inv())

	nx := float32(x)*2/float32(width) - 1
	ny := 1 - float32(y)*2/float32(height)
	near := inv.Transform(mat.NewVec3(nx, ny, -1))
	far := inv.Transform(mat.NewVec3(nx, ny, 1))
	return near, far.Sub(near).Normalized()
}

// Select returns the point closest to the ray through (x, y) within radius.
// Points outside the clip volume are skipped. In perspective mode nearer
// points win ties.
func Select(it Vec3Iterator, kind Projection, view, projection mat.Mat4, x, y, width, height int, radius float32) (mat.Vec3, bool) {
	origin, dir := Ray(view, projection, x, y, width, height)
	clip := NewClipFilter(view, projection)
	rSq := radius * radius

	var selected mat.Vec3
	var ok bool

	switch kind {
	case Perspective:
		eye := mat.FromPCGol(view.PCGol().InvAffine()).Transform(mat.Vec3{})
		dir = origin.Sub(eye).Normalized()
		vMin := float32(1000 * 1000)
		for ; it.IsValid(); it.Incr() {
			p := mat.Vec3FromPCGol(it.Vec3())
			if clip.Outside(p) {
				continue
			}
			pRel := eye.Sub(p)
			dot := pRel.Dot(dir)
			if dot >= 0 {
				continue
			}
			distSq := pRel.NormSq()
			dSq := distSq - dot*dot
			v := dSq + distSq/10000
			if dSq < rSq && v < vMin {
				vMin = v
				selected, ok = p, true
			}
		}
	case Orthographic:
		dSqMin := rSq
		for ; it.IsValid(); it.Incr() {
			p := mat.Vec3FromPCGol(it.Vec3())
			if clip.Outside(p) {
				continue
			}
			dSq := dir.CrossNormSq(p.Sub(origin))
			if dSq < dSqMin {
				dSqMin = dSq
				selected, ok = p, true
			}
		}
	}
	return selected, ok
}

// SelectCloud runs Select over pp with the camera's view and the cached
// projection matching kind.
func SelectCloud(pp *pc.PointCloud, cam *camera.Camera, kind Projection, x, y, width, height int, radius float32) (mat.Vec3, bool, error) {
	it, err := pp.Vec3Iterator()
	if err != nil {
		return mat.Vec3{}, false, fmt.Errorf("iterating point cloud: %w", err)
	}

	projection := cam.LastPerspective()
	if kind == Orthographic {
		projection = cam.LastOrthographic()
	}
	p, ok := Select(it, kind, cam.View(), projection, x, y, width, height, radius)
	viewmath.Component("pick").Debug("select",
		"projection", kind, "x", x, "y", y, "found", ok, "point", p)
	return p, ok, nil
}
