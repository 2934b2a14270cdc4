// Package glview uploads camera matrices to a linked WebGL program.
//
// The upload itself is only built for GOOS=js. Matrices and the uniform
// names are available everywhere.
package glview

import (
	pcmat "github.com/seqsense/pcgol/mat"

	"github.com/seqsense/viewmath/camera"
	"github.com/seqsense/viewmath/pick"
)

// Uniforms names the mat4 uniforms of a vertex shader.
type Uniforms struct {
	Projection string
	ModelView  string
}

var DefaultUniforms = Uniforms{
	Projection: "uProjectionMatrix",
	ModelView:  "uModelViewMatrix",
}

// Matrices returns the cached projection selected by kind and the camera
// view, in the form UniformMatrix4fv takes with transpose disabled.
func Matrices(cam *camera.Camera, kind pick.Projection) (projection, modelView pcmat.Mat4) {
	p := cam.LastPerspective()
	if kind == pick.Orthographic {
		p = cam.LastOrthographic()
	}
	return p.PCGol(), cam.View().PCGol()
}
