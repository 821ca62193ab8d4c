package backend

import (
	"errors"

	"github.com/gogpu/arimage"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when renderers are requested before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend names known to the registry.
const (
	NameGPU       = "gpu"
	NameRecording = "recording"
)

// Backend creates renderers for overlay assets.
//
// Backends are registered via Register() and selected via Get() or
// Default(). Renderers returned by NewRenderer are owned by the caller
// and remain valid until Close.
type Backend interface {
	// Name returns the backend identifier (e.g., "gpu", "recording").
	Name() string

	// Init acquires the backend's device resources.
	// It must be called before NewRenderer.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	arimage.Factory
}
