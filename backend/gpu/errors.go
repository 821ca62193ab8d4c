package gpu

import (
	"errors"

	"github.com/gogpu/arimage/backend"
)

// Backend errors.
var (
	// ErrNotInitialized is returned when renderers are requested before Init.
	ErrNotInitialized = backend.ErrNotInitialized

	// ErrNoRenderPass is returned by Draw outside BeginFrame/EndFrame.
	ErrNoRenderPass = errors.New("gpu: no render pass")

	// ErrTooManyDraws is returned when a renderer is drawn more times in
	// one frame than it has uniform slots.
	ErrTooManyDraws = errors.New("gpu: too many draws for renderer in one frame")

	// ErrRendererDestroyed is returned by Draw after Destroy.
	ErrRendererDestroyed = errors.New("gpu: renderer destroyed")

	// ErrNoAdapter is returned when the HAL backend exposes no adapters.
	ErrNoAdapter = errors.New("gpu: no GPU adapters found")
)
