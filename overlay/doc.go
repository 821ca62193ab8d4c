// Package overlay decides, per frame, which renderers draw the overlay for
// a tracked image and where.
//
// A tracked image name such as "group1-red.png" yields two keys:
//
//	complete key  "group1-red"  (name without the image suffix)
//	color key     "red"         (complete key after the first '-')
//
// When the color key has a model, the model is drawn at the anchor and
// the descriptor for the complete key is drawn beside the image. Otherwise
// the fallback overlay is drawn at the anchor. A missing descriptor is
// logged at debug level and skipped; it never fails a frame.
//
// Plan is pure and can be inspected in tests. Draw and DrawFrame execute
// plans and must run on the thread that owns the GPU context.
package overlay
