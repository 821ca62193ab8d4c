package gpu

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DefaultMaxDrawsPerFrame is the default number of uniform slots per renderer.
const DefaultMaxDrawsPerFrame = 8

// DefaultLightDirection is the world-space direction towards the light.
var DefaultLightDirection = [3]float32{0.250, 0.866, 0.433}

// Option configures a Backend.
type Option func(*options)

type options struct {
	halBackend   hal.Backend
	provider     gpucontext.DeviceProvider
	spirv        bool
	maxDraws     int
	colorFormat  gputypes.TextureFormat
	depthFormat  gputypes.TextureFormat
	sampleCount  uint32
	light        [3]float32
	maxTexture   int
	meshCacheLen int
}

func defaultOptions() options {
	return options{
		maxDraws:     DefaultMaxDrawsPerFrame,
		colorFormat:  gputypes.TextureFormatBGRA8Unorm,
		depthFormat:  gputypes.TextureFormatDepth24Plus,
		sampleCount:  1,
		light:        DefaultLightDirection,
		maxTexture:   4096,
		meshCacheLen: 32,
	}
}

// WithHALBackend opens the device on b instead of hal.SelectBestBackend().
func WithHALBackend(b hal.Backend) Option {
	return func(o *options) {
		o.halBackend = b
	}
}

// WithDeviceProvider shares the host application's device. The provider
// must also implement HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue. The color target uses the provider's surface
// format unless it reports none.
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithSPIRV compiles the shader to SPIR-V with naga before creating the
// shader module, for drivers without WGSL support.
func WithSPIRV(on bool) Option {
	return func(o *options) {
		o.spirv = on
	}
}

// WithMaxDrawsPerFrame sets the number of uniform slots per renderer.
// Values below 1 are ignored.
func WithMaxDrawsPerFrame(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDraws = n
		}
	}
}

// WithColorFormat sets the color target format of the pipeline.
func WithColorFormat(f gputypes.TextureFormat) Option {
	return func(o *options) {
		o.colorFormat = f
	}
}

// WithDepthFormat sets the depth attachment format of the pipeline.
func WithDepthFormat(f gputypes.TextureFormat) Option {
	return func(o *options) {
		o.depthFormat = f
	}
}

// WithSampleCount sets the MSAA sample count of the render pass.
func WithSampleCount(n uint32) Option {
	return func(o *options) {
		if n > 0 {
			o.sampleCount = n
		}
	}
}

// WithLightDirection sets the world-space direction towards the light.
func WithLightDirection(x, y, z float32) Option {
	return func(o *options) {
		o.light = [3]float32{x, y, z}
	}
}

// WithMaxTextureSize sets the largest texture edge uploaded without scaling.
func WithMaxTextureSize(n int) Option {
	return func(o *options) {
		o.maxTexture = n
	}
}
