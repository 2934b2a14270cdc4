// Package camera holds the lens parameters of a render loop together with
// the projection matrices derived from them.
//
// Projections are cached. They are computed in New and afterwards only
// when UpdateAspectRatio, UpdatePerspective or UpdateOrthographic is
// called. Changing the lens or the drawing buffer size without calling
// one of them leaves the old matrices in place.
package camera

import (
	"github.com/seqsense/viewmath"
	"github.com/seqsense/viewmath/mat"
)

// Orthographic depth range passed to mat.Orthographic as (far, near).
const (
	orthoFar  = -1
	orthoNear = 1
)

// Camera is not safe for concurrent use.
type Camera struct {
	fov         float32
	far         float32
	near        float32
	aspectRatio float32

	view             mat.Mat4
	lastPerspective  mat.Mat4
	lastOrthographic mat.Mat4
}

// New creates a camera with an identity view. fov is in radians and
// drawSize is the drawing buffer size in pixels. A zero height gives an
// Inf or NaN aspect ratio.
func New(fov, far, near float32, drawSize [2]int) *Camera {
	c := &Camera{
		fov:         fov,
		far:         far,
		near:        near,
		aspectRatio: aspectRatio(drawSize),
		view:        mat.Identity(),
	}
	c.lastPerspective = mat.Perspective(c.fov, c.aspectRatio, c.near, c.far)
	c.lastOrthographic = mat.Orthographic(drawSize[0], drawSize[1], orthoFar, orthoNear)
	return c
}

func aspectRatio(drawSize [2]int) float32 {
	return float32(drawSize[0]) / float32(drawSize[1])
}

// UpdateAspectRatio is called on drawing buffer resize. It refreshes both
// cached projections.
func (c *Camera) UpdateAspectRatio(drawSize [2]int) {
	c.aspectRatio = aspectRatio(drawSize)
	viewmath.Component("camera").Debug("aspect ratio updated",
		"width", drawSize[0], "height", drawSize[1], "aspect", c.aspectRatio)
	c.UpdatePerspective()
	c.UpdateOrthographic(drawSize)
}

// UpdatePerspective recomputes the perspective projection from the current
// lens and aspect ratio.
func (c *Camera) UpdatePerspective() {
	c.lastPerspective = mat.Perspective(c.fov, c.aspectRatio, c.near, c.far)
	viewmath.Component("camera").Debug("perspective updated",
		"fov", c.fov, "aspect", c.aspectRatio, "near", c.near, "far", c.far)
}

// UpdateOrthographic recomputes the orthographic projection for drawSize.
// The aspect ratio is not changed.
func (c *Camera) UpdateOrthographic(drawSize [2]int) {
	c.lastOrthographic = mat.Orthographic(drawSize[0], drawSize[1], orthoFar, orthoNear)
	viewmath.Component("camera").Debug("orthographic updated",
		"width", drawSize[0], "height", drawSize[1])
}

// SetView replaces the view matrix.
func (c *Camera) SetView(v mat.Mat4) {
	c.view = v
}

// SetFov, SetNear and SetFar change the lens only. Call UpdatePerspective
// to apply them.
func (c *Camera) SetFov(fov float32)   { c.fov = fov }
func (c *Camera) SetNear(near float32) { c.near = near }
func (c *Camera) SetFar(far float32)   { c.far = far }

func (c *Camera) View() mat.Mat4 {
	return c.view
}

func (c *Camera) Fov() float32 {
	return c.fov
}

func (c *Camera) Far() float32 {
	return c.far
}

func (c *Camera) Near() float32 {
	return c.near
}

func (c *Camera) AspectRatio() float32 {
	return c.aspectRatio
}

func (c *Camera) LastPerspective() mat.Mat4 {
	return c.lastPerspective
}

func (c *Camera) LastOrthographic() mat.Mat4 {
	return c.lastOrthographic
}
