package pick

import (
	"testing"

	"github.com/seqsense/viewmath/mat"
)

func TestClipFilter(t *testing.T) {
	testCases := map[string]struct {
		view, projection mat.Mat4
		p                mat.Vec3
		expected         bool
	}{
		"PerspectiveCenter": {
			view: mat.Translate(0, 0, -10), projection: mat.Perspective(1.57, 1, 1, 100),
			p: mat.NewVec3(0, 0, 0), expected: true,
		},
		"PerspectiveBehind": {
			view: mat.Translate(0, 0, -10), projection: mat.Perspective(1.57, 1, 1, 100),
			p: mat.NewVec3(0, 0, 20), expected: false,
		},
		"PerspectiveTooNear": {
			view: mat.Translate(0, 0, -10), projection: mat.Perspective(1.57, 1, 1, 100),
			p: mat.NewVec3(0, 0, 9.5), expected: false,
		},
		"PerspectiveBeyondFar": {
			view: mat.Translate(0, 0, -10), projection: mat.Perspective(1.57, 1, 1, 100),
			p: mat.NewVec3(0, 0, -200), expected: false,
		},
		"PerspectiveSide": {
			view: mat.Translate(0, 0, -10), projection: mat.Perspective(1.57, 1, 1, 100),
			p: mat.NewVec3(20, 0, 0), expected: false,
		},
		"OrthographicInside": {
			view: mat.Identity(), projection: mat.Orthographic(800, 600, -1, 1),
			p: mat.NewVec3(799, 1, 0.5), expected: true,
		},
		"OrthographicLeft": {
			view: mat.Identity(), projection: mat.Orthographic(800, 600, -1, 1),
			p: mat.NewVec3(-1, 1, 0), expected: false,
		},
		"OrthographicDepth": {
			view: mat.Identity(), projection: mat.Orthographic(800, 600, -1, 1),
			p: mat.NewVec3(400, 300, 2), expected: false,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			f := NewClipFilter(tt.view, tt.projection)
			if res := f.Inside(tt.p); res != tt.expected {
				t.Errorf("Inside(%v) is expected to be %v", tt.p, tt.expected)
			}
			if res := f.Outside(tt.p); res != !tt.expected {
				t.Errorf("Outside(%v) is expected to be %v", tt.p, !tt.expected)
			}
		})
	}
}
