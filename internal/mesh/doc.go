// Package mesh loads Wavefront OBJ models into indexed triangle meshes
// ready for upload to a vertex buffer.
//
// Supported statements are v, vt, vn and f. Faces may use any of the
// v, v/vt, v//vn and v/vt/vn forms with positive or negative indices.
// Polygons are fan-triangulated. Other statements (o, g, s, usemtl,
// mtllib) are ignored.
//
// Texture coordinates are flipped vertically so that (0, 0) is the
// top-left texel, matching how textures are uploaded.
package mesh
