package arimage

import "math"

// Mat4 is a 4x4 transformation matrix stored in column-major order,
// the layout expected by GPU uniform buffers:
//
//	| m[0]  m[4]  m[8]   m[12] |
//	| m[1]  m[5]  m[9]   m[13] |
//	| m[2]  m[6]  m[10]  m[14] |
//	| m[3]  m[7]  m[11]  m[15] |
//
// A point p is transformed as M * p, so in A.Mul(B) the transform B is
// applied first.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate creates a translation matrix.
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// ScaleUniform creates a matrix scaling all three axes by s.
func ScaleUniform(s float32) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = s, s, s
	return m
}

// RotateZ creates a rotation about the Z axis (angle in radians,
// counter-clockwise when looking down -Z).
func RotateZ(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	s, c := float32(sin), float32(cos)
	m := Identity()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// Mul returns m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * n[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// Apply transforms the point (x, y, z, 1) and returns its first three
// components.
func (m Mat4) Apply(x, y, z float32) (float32, float32, float32) {
	return m[0]*x + m[4]*y + m[8]*z + m[12],
		m[1]*x + m[5]*y + m[9]*z + m[13],
		m[2]*x + m[6]*y + m[10]*z + m[14]
}

// Translation returns the translation column.
func (m Mat4) Translation() (x, y, z float32) {
	return m[12], m[13], m[14]
}

// ApproxEqual reports whether every element of m and n differs by at most eps.
func (m Mat4) ApproxEqual(n Mat4, eps float32) bool {
	for i := range m {
		d := m[i] - n[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}
