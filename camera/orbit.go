package camera

import (
	"math"

	"github.com/seqsense/viewmath/mat"
	"github.com/seqsense/viewmath/scalar"
)

const (
	defaultDistance = 100.0
	defaultPitch    = math.Pi / 4
	defaultHeight   = 1.5

	maxDistance = 1000.0
)

// Orbit is a view around a point on the ground plane (z up).
// Pitch 0 looks straight down, pi/2 looks at the horizon.
type Orbit struct {
	X, Y       float64
	Yaw, Pitch float64
	Distance   float64
	Height     float64
}

func NewOrbit() *Orbit {
	return &Orbit{
		Distance: defaultDistance,
		Pitch:    defaultPitch,
		Height:   defaultHeight,
	}
}

func (o *Orbit) Reset() {
	o.Distance = defaultDistance
	o.Pitch = defaultPitch
}

// FPS switches to a first person view at the orbit center.
func (o *Orbit) FPS() {
	o.Distance = 0
	o.Pitch = math.Pi / 2
}

func (o *Orbit) SnapYaw() {
	o.Yaw = math.Round(o.Yaw/(math.Pi/2)) * (math.Pi / 2)
}

func (o *Orbit) SnapPitch() {
	o.Pitch = math.Round(o.Pitch/(math.Pi/2)) * (math.Pi / 2)
}

// Zoom changes the distance proportionally to the current distance.
func (o *Orbit) Zoom(delta float64) {
	o.Distance += delta * (o.Distance*0.05 + 0.1)
	o.Distance = scalar.Clamp(o.Distance, 0, maxDistance)
}

// Move translates the center in the yaw-rotated frame. dy is forward.
func (o *Orbit) Move(dx, dy, dyaw float64) {
	s, c := math.Sincos(o.Yaw)
	o.X += c*dy + s*dx
	o.Y += s*dy - c*dx
	o.Yaw += dyaw
	o.Yaw = math.Remainder(o.Yaw, 2*math.Pi)
}

func (o *Orbit) Rotate(dyaw, dpitch float64) {
	o.Yaw = math.Remainder(o.Yaw+dyaw, 2*math.Pi)
	o.Pitch = scalar.Clamp(o.Pitch+dpitch, 0, math.Pi)
}

// Matrix returns the view matrix. The world is shifted by (X, Y, -Height),
// turned by yaw and pitch and then pushed Distance along -z, so the point
// (-X, -Y, Height) ends up Distance in front of the eye.
func (o *Orbit) Matrix() mat.Mat4 {
	return mat.Translate(float32(o.X), float32(o.Y), -float32(o.Height)).
		Mul(mat.Rotate(0, 0, 1, -float32(o.Yaw))).
		Mul(mat.Rotate(1, 0, 0, -float32(o.Pitch))).
		Mul(mat.Translate(0, 0, -float32(o.Distance)))
}

// Apply writes the orbit view into c.
func (o *Orbit) Apply(c *Camera) {
	c.SetView(o.Matrix())
}
