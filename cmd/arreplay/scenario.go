package main

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/gogpu/arimage"
	"github.com/gogpu/arimage/overlay"
)

// Scenario is a scripted sequence of tracking frames.
//
//	camera:
//	  view: [1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1]
//	frames:
//	  - color_correction: [1, 1, 1, 0.466]
//	    targets:
//	      - image: group1-red.png
//	        index: 1
//	        extent_x: 0.2
//	        position: [0, 0, -1]
//	        rotation: [0, 0, 0, 1]
type Scenario struct {
	Camera Camera  `yaml:"camera"`
	Frames []Frame `yaml:"frames"`
}

// Camera holds column-major view and projection matrices. Empty
// matrices are the identity.
type Camera struct {
	View       []float32 `yaml:"view,flow"`
	Projection []float32 `yaml:"projection,flow"`
}

// Frame lists the images tracked in one camera frame.
type Frame struct {
	ColorCorrection []float32 `yaml:"color_correction,flow"`
	Targets         []Target  `yaml:"targets"`
}

// Target is one tracked image and its anchor pose. A target without a
// position has no anchor and is skipped during replay.
type Target struct {
	Image    string    `yaml:"image"`
	Index    int       `yaml:"index"`
	ExtentX  float32   `yaml:"extent_x"`
	ExtentZ  float32   `yaml:"extent_z"`
	Position []float64 `yaml:"position,flow"`
	// Rotation is a quaternion x, y, z, w. It is normalized on use.
	Rotation []float64 `yaml:"rotation,flow"`
}

var defaultColorCorrection = [4]float32{1, 1, 1, 1}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates a YAML scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if err := checkMatrix("camera view", s.Camera.View); err != nil {
		return err
	}
	if err := checkMatrix("camera projection", s.Camera.Projection); err != nil {
		return err
	}
	for i, f := range s.Frames {
		if n := len(f.ColorCorrection); n != 0 && n != 4 {
			return fmt.Errorf("scenario: frame %d: color_correction needs 4 values, got %d", i, n)
		}
		for j, t := range f.Targets {
			if t.Image == "" {
				return fmt.Errorf("scenario: frame %d target %d: image is required", i, j)
			}
			if n := len(t.Position); n != 0 && n != 3 {
				return fmt.Errorf("scenario: frame %d target %d: position needs 3 values, got %d", i, j, n)
			}
			if n := len(t.Rotation); n != 0 && n != 4 {
				return fmt.Errorf("scenario: frame %d target %d: rotation needs 4 values, got %d", i, j, n)
			}
			if len(t.Rotation) == 4 && t.Rotation[0] == 0 && t.Rotation[1] == 0 && t.Rotation[2] == 0 && t.Rotation[3] == 0 {
				return fmt.Errorf("scenario: frame %d target %d: rotation is a zero quaternion", i, j)
			}
		}
	}
	return nil
}

func checkMatrix(name string, m []float32) error {
	if n := len(m); n != 0 && n != 16 {
		return fmt.Errorf("scenario: %s needs 16 values, got %d", name, n)
	}
	return nil
}

func matrix(m []float32) arimage.Mat4 {
	if len(m) == 0 {
		return arimage.Identity()
	}
	var out arimage.Mat4
	copy(out[:], m)
	return out
}

// OverlayFrame converts frame i into dispatcher input.
func (s *Scenario) OverlayFrame(i int) overlay.Frame {
	f := s.Frames[i]
	out := overlay.Frame{
		View:            matrix(s.Camera.View),
		Projection:      matrix(s.Camera.Projection),
		ColorCorrection: defaultColorCorrection,
		Targets:         make([]overlay.Target, 0, len(f.Targets)),
	}
	if len(f.ColorCorrection) == 4 {
		copy(out.ColorCorrection[:], f.ColorCorrection)
	}
	for _, t := range f.Targets {
		ot := overlay.Target{
			Image: arimage.TrackedImage{
				Name:    t.Image,
				Index:   t.Index,
				ExtentX: t.ExtentX,
				ExtentZ: t.ExtentZ,
			},
		}
		if len(t.Position) == 3 {
			q := [4]float64{0, 0, 0, 1}
			if len(t.Rotation) == 4 {
				copy(q[:], t.Rotation)
			}
			ot.Anchor = arimage.StaticAnchor(arimage.NewPose(
				t.Position[0], t.Position[1], t.Position[2],
				q[0], q[1], q[2], q[3]))
		}
		out.Targets = append(out.Targets, ot)
	}
	return out
}
