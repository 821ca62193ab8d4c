package arimage

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Descriptor placement relative to the tracked image, in the anchor's
// local frame.
const (
	// DescriptorOffsetFactor is multiplied by the image's X extent to get
	// the descriptor's offset along local X.
	DescriptorOffsetFactor = -0.5

	// DescriptorAngle is the descriptor's rotation about local Z, in radians.
	DescriptorAngle = math.Pi / 4
)

// ModelMatrix returns the transform for the main overlay: the anchor pose
// converted directly to a matrix. Scale is applied later by the renderer.
func ModelMatrix(anchor Pose) Mat4 {
	return anchor.Matrix()
}

// DescriptorMatrix returns the transform for the descriptor overlay. It
// composes, left to right, the anchor pose, a translation of
// DescriptorOffsetFactor*extentX along local X, and a DescriptorAngle
// rotation about local Z:
//
//	anchor * Translate(-0.5*extentX, 0, 0) * RotateZ(pi/4)
func DescriptorMatrix(anchor Pose, extentX float32) Mat4 {
	return anchor.
		Compose(TranslationPose(DescriptorOffsetFactor*float64(extentX), 0, 0)).
		Compose(RotationPose(DescriptorAngle, r3.Vec{Z: 1})).
		Matrix()
}
