package arimage

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestModelMatrixIsPoseMatrix(t *testing.T) {
	p := NewPose(0.1, 0.2, -0.5, 0, 0.3826834, 0, 0.9238795)
	if got, want := ModelMatrix(p), p.Matrix(); got != want {
		t.Errorf("ModelMatrix() = %v, want %v", got, want)
	}
}

// Anchor at (1, 2, 3) rotated 90 degrees about Y, image 0.2 m wide.
// R = Ry(90) * Rz(45), t = (1, 2, 3) + Ry(90) * (-0.1, 0, 0) = (1, 2, 3.1).
func TestDescriptorMatrixReference(t *testing.T) {
	pose := Pose{
		Translation: r3.Vec{X: 1, Y: 2, Z: 3},
		Rotation:    r3.NewRotation(math.Pi/2, r3.Vec{Y: 1}),
	}
	const h = float32(math.Sqrt2 / 2)
	want := Mat4{
		0, h, -h, 0,
		0, h, h, 0,
		1, 0, 0, 0,
		1, 2, 3.1, 1,
	}

	got := DescriptorMatrix(pose, 0.2)
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("DescriptorMatrix() =\n%v\nwant\n%v", got, want)
	}
}

func TestDescriptorMatrixCompositionOrder(t *testing.T) {
	pose := Pose{
		Translation: r3.Vec{X: -0.4, Y: 0.1, Z: -1.5},
		Rotation:    r3.NewRotation(1.3, r3.Vec{X: 0.2, Y: 1, Z: -0.4}),
	}
	const extent = 0.35

	got := DescriptorMatrix(pose, extent)

	ordered := pose.Matrix().Mul(Translate(-0.5*extent, 0, 0)).Mul(RotateZ(math.Pi / 4))
	if !got.ApproxEqual(ordered, 1e-5) {
		t.Errorf("DescriptorMatrix() = %v, want pose*T*Rz = %v", got, ordered)
	}

	swapped := pose.Matrix().Mul(RotateZ(math.Pi / 4)).Mul(Translate(-0.5*extent, 0, 0))
	if got.ApproxEqual(swapped, 1e-5) {
		t.Error("DescriptorMatrix() should differ from pose*Rz*T")
	}
}

func TestDescriptorMatrixZeroExtent(t *testing.T) {
	pose := TranslationPose(1, 0, 0)
	got := DescriptorMatrix(pose, 0)
	want := Translate(1, 0, 0).Mul(RotateZ(math.Pi / 4))
	if !got.ApproxEqual(want, 1e-6) {
		t.Errorf("DescriptorMatrix(extent 0) = %v, want %v", got, want)
	}
}

func TestTransformsAreDeterministic(t *testing.T) {
	pose := NewPose(0.5, -0.25, -2, 0.1, 0.2, 0.3, 0.927)
	if a, b := DescriptorMatrix(pose, 0.3), DescriptorMatrix(pose, 0.3); a != b {
		t.Errorf("DescriptorMatrix not bit-identical across calls: %v vs %v", a, b)
	}
	if a, b := ModelMatrix(pose), ModelMatrix(pose); a != b {
		t.Errorf("ModelMatrix not bit-identical across calls: %v vs %v", a, b)
	}
}
