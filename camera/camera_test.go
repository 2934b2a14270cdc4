package camera

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/seqsense/viewmath"
	"github.com/seqsense/viewmath/mat"
)

func TestNew(t *testing.T) {
	c := New(math.Pi/2, 100, 0.1, [2]int{800, 400})

	if c.Fov() != math.Pi/2 || c.Far() != 100 || c.Near() != 0.1 {
		t.Errorf("Lens not stored: fov=%f far=%f near=%f", c.Fov(), c.Far(), c.Near())
	}
	if c.AspectRatio() != 2 {
		t.Errorf("Aspect ratio expected to be 2, got %f", c.AspectRatio())
	}
	if c.View() != mat.Identity() {
		t.Errorf("View expected to be identity, got %v", c.View())
	}
	if expected := mat.Perspective(math.Pi/2, 2, 0.1, 100); c.LastPerspective() != expected {
		t.Errorf("Perspective expected to be %v, got %v", expected, c.LastPerspective())
	}
	if expected := mat.Orthographic(800, 400, -1, 1); c.LastOrthographic() != expected {
		t.Errorf("Orthographic expected to be %v, got %v", expected, c.LastOrthographic())
	}
}

func TestNewZeroHeight(t *testing.T) {
	c := New(1, 100, 0.1, [2]int{800, 0})
	if !math.IsInf(float64(c.AspectRatio()), 1) {
		t.Errorf("Aspect ratio expected to be +Inf, got %f", c.AspectRatio())
	}
}

func TestUpdateAspectRatio(t *testing.T) {
	c := New(1, 100, 0.1, [2]int{640, 480})
	persp0, ortho0 := c.LastPerspective(), c.LastOrthographic()

	// stale until updated
	c.SetFov(0.5)
	if c.LastPerspective() != persp0 || c.LastOrthographic() != ortho0 {
		t.Fatal("Caches must not change before an update call")
	}

	c.UpdateAspectRatio([2]int{1000, 500})

	if c.AspectRatio() != 2 {
		t.Errorf("Aspect ratio expected to be 2, got %f", c.AspectRatio())
	}
	if expected := mat.Perspective(0.5, 2, 0.1, 100); c.LastPerspective() != expected {
		t.Errorf("Perspective expected to be %v, got %v", expected, c.LastPerspective())
	}
	if expected := mat.Orthographic(1000, 500, -1, 1); c.LastOrthographic() != expected {
		t.Errorf("Orthographic expected to be %v, got %v", expected, c.LastOrthographic())
	}
}

func TestUpdatePerspective(t *testing.T) {
	c := New(1, 100, 0.1, [2]int{640, 480})
	ortho0 := c.LastOrthographic()

	c.SetNear(1)
	c.SetFar(10)
	c.UpdatePerspective()

	if expected := mat.Perspective(1, 640.0/480.0, 1, 10); !c.LastPerspective().Equal(expected, 1e-6) {
		t.Errorf("Perspective expected to be %v, got %v", expected, c.LastPerspective())
	}
	if c.LastOrthographic() != ortho0 {
		t.Error("UpdatePerspective must not touch the orthographic cache")
	}
}

func TestUpdateOrthographic(t *testing.T) {
	c := New(1, 100, 0.1, [2]int{640, 480})
	persp0, aspect0 := c.LastPerspective(), c.AspectRatio()

	c.UpdateOrthographic([2]int{200, 100})

	if expected := mat.Orthographic(200, 100, -1, 1); c.LastOrthographic() != expected {
		t.Errorf("Orthographic expected to be %v, got %v", expected, c.LastOrthographic())
	}
	if c.LastPerspective() != persp0 {
		t.Error("UpdateOrthographic must not touch the perspective cache")
	}
	if c.AspectRatio() != aspect0 {
		t.Error("UpdateOrthographic must not touch the aspect ratio")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := New(1, 100, 0.1, [2]int{640, 480})
	p := c.LastPerspective()
	p[0] = 42
	if c.LastPerspective()[0] == 42 {
		t.Error("LastPerspective must return a copy")
	}

	v := mat.Translate(1, 2, 3)
	c.SetView(v)
	if c.View() != v {
		t.Errorf("View expected to be %v, got %v", v, c.View())
	}
}

func TestUpdateLogging(t *testing.T) {
	orig := viewmath.Logger()
	t.Cleanup(func() { viewmath.SetLogger(orig) })

	var buf bytes.Buffer
	viewmath.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	c := New(1, 100, 0.1, [2]int{640, 480})
	c.UpdateAspectRatio([2]int{320, 240})

	out := buf.String()
	for _, msg := range []string{"component=camera", "aspect ratio updated", "perspective updated", "orthographic updated"} {
		if !strings.Contains(out, msg) {
			t.Errorf("Expected %q in log output: %s", msg, out)
		}
	}
}
