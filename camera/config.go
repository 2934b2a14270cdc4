package camera

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seqsense/viewmath"
	"github.com/seqsense/viewmath/mat"
)

var ErrEmptyConfig = errors.New("empty camera config")

// Config is the YAML form of a camera.
//
//	fov_deg: 45
//	near: 0.1
//	far: 1000
//	width: 640
//	height: 480
//	look_at:
//	  eye: [0, -10, 5]
//	  center: [0, 0, 0]
//	  up: [0, 0, 1]
//
// Values are taken as given; a zero height or near == far produce the same
// Inf and NaN cells as calling New directly.
type Config struct {
	Fov    float32       `yaml:"fov"`
	FovDeg float32       `yaml:"fov_deg"`
	Near   float32       `yaml:"near"`
	Far    float32       `yaml:"far"`
	Width  int           `yaml:"width"`
	Height int           `yaml:"height"`
	LookAt *LookAtConfig `yaml:"look_at,omitempty"`
}

type LookAtConfig struct {
	Eye    mat.Vec3 `yaml:"eye"`
	Center mat.Vec3 `yaml:"center"`
	Up     mat.Vec3 `yaml:"up"`
}

// LoadConfig decodes a single YAML document. Unknown keys are rejected.
func LoadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	c := &Config{}
	if err := dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyConfig
		}
		return nil, fmt.Errorf("decoding camera config: %w", err)
	}
	viewmath.Component("camera").Debug("config loaded",
		"fov", c.FovRadians(), "near", c.Near, "far", c.Far,
		"width", c.Width, "height", c.Height)
	return c, nil
}

func ReadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening camera config: %w", err)
	}
	defer f.Close()

	c, err := LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// FovRadians returns Fov, or FovDeg converted to radians when Fov is zero.
func (c *Config) FovRadians() float32 {
	if c.Fov != 0 {
		return c.Fov
	}
	return c.FovDeg * math.Pi / 180
}

func (c *Config) DrawSize() [2]int {
	return [2]int{c.Width, c.Height}
}

// Camera builds a camera from the config. The view is set from LookAt when
// present.
func (c *Config) Camera() *Camera {
	cam := New(c.FovRadians(), c.Far, c.Near, c.DrawSize())
	if c.LookAt != nil {
		cam.SetView(mat.LookAt(c.LookAt.Eye, c.LookAt.Center, c.LookAt.Up))
	}
	return cam
}
