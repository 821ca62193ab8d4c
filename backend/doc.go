// Package backend provides a pluggable renderer backend abstraction.
//
// A backend turns model and texture files into arimage.Renderer values.
// Backends register themselves from init() functions and are selected
// at runtime, following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/arimage/backend/gpu"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	b := backend.Get("recording")
//	if err := b.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
// InitDefault tries backends in priority order and returns the first one
// that initializes, so a machine without a GPU falls back to recording.
//
// # Available Backends
//
//   - "gpu": wgpu HAL renderer (backend/gpu)
//   - "recording": headless renderer that records draw commands (backend/recording)
package backend
