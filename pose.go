package arimage

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Pose is a rigid transform: a rotation followed by a translation, mapping
// an object's local frame into world space. Anchors report their pose in
// this form.
//
// The zero Pose is the identity: a zero rotation quaternion is treated as
// no rotation.
type Pose struct {
	Translation r3.Vec
	Rotation    r3.Rotation
}

// IdentityPose returns the pose that leaves points unchanged.
func IdentityPose() Pose {
	return Pose{Rotation: r3.Rotation{Real: 1}}
}

// TranslationPose returns a pose that only translates.
func TranslationPose(x, y, z float64) Pose {
	return Pose{Translation: r3.Vec{X: x, Y: y, Z: z}, Rotation: r3.Rotation{Real: 1}}
}

// RotationPose returns a pose that rotates by angle radians about axis.
func RotationPose(angle float64, axis r3.Vec) Pose {
	return Pose{Rotation: r3.NewRotation(angle, axis)}
}

// NewPose builds a pose from a translation and a rotation quaternion given
// as (x, y, z, w), the component order used by tracking runtimes. The
// quaternion is normalized so the pose never scales. A zero quaternion
// means no rotation.
func NewPose(tx, ty, tz, qx, qy, qz, qw float64) Pose {
	q := quat.Number{Real: qw, Imag: qx, Jmag: qy, Kmag: qz}
	if n := quat.Abs(q); n != 0 {
		q = quat.Scale(1/n, q)
	}
	return Pose{
		Translation: r3.Vec{X: tx, Y: ty, Z: tz},
		Rotation:    r3.Rotation(q),
	}
}

// rotation returns the pose rotation with the zero value mapped to identity.
func (p Pose) rotation() r3.Rotation {
	if p.Rotation == (r3.Rotation{}) {
		return r3.Rotation{Real: 1}
	}
	return p.Rotation
}

// Compose returns the pose obtained by applying rhs in p's local frame,
// i.e. p * rhs. The result maps a point first through rhs and then
// through p.
func (p Pose) Compose(rhs Pose) Pose {
	q := p.rotation()
	return Pose{
		Translation: r3.Add(p.Translation, q.Rotate(rhs.Translation)),
		Rotation:    r3.Rotation(quat.Mul(quat.Number(q), quat.Number(rhs.rotation()))),
	}
}

// Transform maps a point from the pose's local frame into world space.
func (p Pose) Transform(v r3.Vec) r3.Vec {
	return r3.Add(p.rotation().Rotate(v), p.Translation)
}

// Matrix converts the pose to a column-major transform matrix.
// No scale is baked in.
func (p Pose) Matrix() Mat4 {
	r := p.rotation().Mat()
	var m Mat4
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			m[col*4+row] = float32(r.At(row, col))
		}
	}
	m[12] = float32(p.Translation.X)
	m[13] = float32(p.Translation.Y)
	m[14] = float32(p.Translation.Z)
	m[15] = 1
	return m
}
