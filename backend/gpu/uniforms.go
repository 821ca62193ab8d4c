package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/arimage"
)

// Uniform block layout, matching Uniforms in object.wgsl.
const (
	uniformSize = 192

	// uniformStride is the distance between ring slots. It equals the
	// minimum uniform buffer offset alignment guaranteed by WebGPU.
	uniformStride = 256

	offModelView       = 0
	offMVP             = 64
	offLight           = 128
	offColorCorrection = 144
	offTint            = 160
	offMaterial        = 176
)

// lightIntensity is the w component of the light vector.
const lightIntensity = 1.0

// objectUniforms is the per-draw uniform block.
type objectUniforms struct {
	modelView       arimage.Mat4
	mvp             arimage.Mat4
	light           [4]float32
	colorCorrection [4]float32
	tint            [4]float32
	material        [4]float32
}

// makeUniforms computes the uniform block for one draw. light is the
// world-space direction towards the light; it is rotated into view space.
func makeUniforms(p arimage.DrawParams, m arimage.Material, light [3]float32) objectUniforms {
	modelView := p.View.Mul(p.ScaledModel())
	lx, ly, lz := viewDirection(p.View, light)
	return objectUniforms{
		modelView:       modelView,
		mvp:             p.Projection.Mul(modelView),
		light:           [4]float32{lx, ly, lz, lightIntensity},
		colorCorrection: p.ColorCorrection,
		tint:            p.Tint.Float32(),
		material:        [4]float32{m.Ambient, m.Diffuse, m.Specular, m.SpecularPower},
	}
}

// viewDirection rotates the direction d by the upper 3x3 of view and
// normalizes the result. A zero result is returned unchanged.
func viewDirection(view arimage.Mat4, d [3]float32) (x, y, z float32) {
	x = view[0]*d[0] + view[4]*d[1] + view[8]*d[2]
	y = view[1]*d[0] + view[5]*d[1] + view[9]*d[2]
	z = view[2]*d[0] + view[6]*d[1] + view[10]*d[2]
	n := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	if n == 0 {
		return x, y, z
	}
	return x / n, y / n, z / n
}

// bytes packs the block in little-endian std140 order.
func (u *objectUniforms) bytes() []byte {
	buf := make([]byte, uniformSize)
	putFloats(buf[offModelView:], u.modelView[:])
	putFloats(buf[offMVP:], u.mvp[:])
	putFloats(buf[offLight:], u.light[:])
	putFloats(buf[offColorCorrection:], u.colorCorrection[:])
	putFloats(buf[offTint:], u.tint[:])
	putFloats(buf[offMaterial:], u.material[:])
	return buf
}

func putFloats(dst []byte, v []float32) {
	for i, f := range v {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(f))
	}
}
