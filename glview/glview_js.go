package glview

import (
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/viewmath"
	"github.com/seqsense/viewmath/camera"
	"github.com/seqsense/viewmath/pick"
)

type Binding struct {
	gl         *webgl.WebGL
	program    webgl.Program
	projection webgl.Location
	modelView  webgl.Location
}

// Bind looks up the uniform locations of program.
func Bind(gl *webgl.WebGL, program webgl.Program, names Uniforms) *Binding {
	return &Binding{
		gl:         gl,
		program:    program,
		projection: gl.GetUniformLocation(program, names.Projection),
		modelView:  gl.GetUniformLocation(program, names.ModelView),
	}
}

// Upload makes the program current and writes the camera matrices.
// Caches are used as they are; call Resize or the camera update methods
// first when the lens or drawing buffer changed.
func (b *Binding) Upload(cam *camera.Camera, kind pick.Projection) {
	projection, modelView := Matrices(cam, kind)
	b.gl.UseProgram(b.program)
	b.gl.UniformMatrix4fv(b.projection, false, projection)
	b.gl.UniformMatrix4fv(b.modelView, false, modelView)
}

// Resize sets the viewport and refreshes both camera projections.
func (b *Binding) Resize(cam *camera.Camera, width, height int) {
	b.gl.Viewport(0, 0, width, height)
	cam.UpdateAspectRatio([2]int{width, height})
	viewmath.Component("glview").Debug("resized", "width", width, "height", height)
}
