package gpu

import (
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/arimage"
	"github.com/gogpu/arimage/backend"

	// Register every HAL backend available on this platform.
	_ "github.com/gogpu/wgpu/hal/allbackends"
)

func init() {
	backend.Register(backend.NameGPU, func() backend.Backend {
		return New()
	})
	arimage.OnSetLogger(hal.SetLogger)
}
