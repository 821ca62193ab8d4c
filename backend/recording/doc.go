// Package recording provides a headless backend that records draw calls
// instead of executing them.
//
// Each draw is captured as a typed Command so that frames can be
// inspected in tests or replayed by tools. The backend registers itself
// as "recording" on import:
//
//	import _ "github.com/gogpu/arimage/backend/recording"
//
//	b := backend.Get("recording")
//
// By default NewRenderer only checks that the asset files exist. With
// WithValidation it also parses the model and decodes the texture, which
// catches broken assets without a GPU.
package recording
