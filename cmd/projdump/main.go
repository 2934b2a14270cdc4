// Command projdump prints the matrices of a camera described by a YAML
// config.
//
//	projdump [camera.yaml]
//
// DEBUG=1 enables debug logging to stderr. ORTHO_ONLY=1 prints only the
// orthographic projection.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seqsense/viewmath"
	"github.com/seqsense/viewmath/camera"
	"github.com/seqsense/viewmath/mat"
)

type rows [4][4]float32

type dump struct {
	Aspect       float32 `yaml:"aspect,omitempty"`
	View         *rows   `yaml:"view,omitempty,flow"`
	Perspective  *rows   `yaml:"perspective,omitempty,flow"`
	Orthographic *rows   `yaml:"orthographic,flow"`
}

func toRows(m mat.Mat4) *rows {
	var r rows
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m.At(i, j)
		}
	}
	return &r
}

func run(w io.Writer, path string, orthoOnly bool) error {
	cfg, err := camera.ReadConfig(path)
	if err != nil {
		return err
	}
	cam := cfg.Camera()

	d := dump{Orthographic: toRows(cam.LastOrthographic())}
	if !orthoOnly {
		d.Aspect = cam.AspectRatio()
		d.View = toRows(cam.View())
		d.Perspective = toRows(cam.LastPerspective())
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&d); err != nil {
		return fmt.Errorf("encoding matrices: %w", err)
	}
	return enc.Close()
}

func main() {
	if os.Getenv("DEBUG") != "" {
		viewmath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	path := "camera.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if err := run(os.Stdout, path, os.Getenv("ORTHO_ONLY") != ""); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
