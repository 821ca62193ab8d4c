// Package texture decodes texture files into RGBA pixel buffers.
//
// PNG, JPEG and WebP are supported. Images larger than the maximum
// dimension are scaled down with a Catmull-Rom filter, preserving aspect
// ratio, before upload.
package texture
