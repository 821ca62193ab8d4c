package gpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/arimage"
	"github.com/gogpu/arimage/backend"
	"github.com/gogpu/arimage/internal/cache"
	"github.com/gogpu/arimage/internal/mesh"
	"github.com/gogpu/arimage/internal/texture"
)

// Backend renders overlay objects on a HAL device.
type Backend struct {
	opts options

	mu          sync.Mutex
	initialized bool

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	// externalDevice is true when the device belongs to a provider.
	externalDevice bool
	adapterName    string

	pipe      *objectPipeline
	white     *gpuTexture
	meshes    *cache.Cache[string, *mesh.Mesh]
	renderers map[*Renderer]struct{}

	pass  hal.RenderPassEncoder
	frame uint64
}

var _ backend.Backend = (*Backend)(nil)

// New creates a GPU backend. No device work happens until Init.
func New(opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{
		opts:      o,
		renderers: make(map[*Renderer]struct{}),
	}
}

// Name returns "gpu".
func (b *Backend) Name() string { return backend.NameGPU }

// Init acquires a device and creates the shared pipeline. Calling Init on
// an initialized backend is a no-op.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	var err error
	if b.opts.provider != nil {
		err = b.useProvider()
	} else {
		err = b.openDevice()
	}
	if err != nil {
		b.release()
		return err
	}

	b.pipe, err = newObjectPipeline(b.device, &b.opts)
	if err != nil {
		b.release()
		return fmt.Errorf("gpu: %w", err)
	}
	b.white, err = uploadTexture(b.device, b.queue, texture.White(), "default_white")
	if err != nil {
		b.release()
		return err
	}
	b.meshes = cache.New[string, *mesh.Mesh](b.opts.meshCacheLen, nil)

	b.initialized = true
	arimage.Logger().Info("gpu: initialized",
		"adapter", b.adapterName,
		"shared", b.externalDevice,
		"format", b.opts.colorFormat,
		"maxDraws", b.opts.maxDraws)
	return nil
}

// useProvider borrows the device and queue of the configured provider.
func (b *Backend) useProvider() error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := b.opts.provider.(halProvider)
	if !ok {
		return fmt.Errorf("gpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("gpu: provider HalQueue is not hal.Queue")
	}

	b.device = device
	b.queue = queue
	b.externalDevice = true
	if f := b.opts.provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		b.opts.colorFormat = f
	}
	b.adapterName = b.opts.provider.AdapterInfo().Name
	return nil
}

// openDevice creates a standalone device on the configured HAL backend,
// preferring discrete or integrated GPUs.
func (b *Backend) openDevice() error {
	halBackend := b.opts.halBackend
	if halBackend == nil {
		var err error
		halBackend, err = hal.SelectBestBackend()
		if err != nil {
			return fmt.Errorf("gpu: %w", err)
		}
	}

	instance, err := halBackend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("gpu: create instance: %w", err)
	}
	b.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return ErrNoAdapter
	}
	selected := &adapters[0]
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("gpu: open device: %w", err)
	}
	b.device = openDev.Device
	b.queue = openDev.Queue
	b.adapterName = selected.Info.Name
	return nil
}

// Close destroys every live renderer and the shared resources. A device
// borrowed from a provider is left open.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.renderers)
	b.release()
	if n > 0 {
		arimage.Logger().Info("gpu: closed", "renderers", n)
	}
}

// release frees everything Init created. Caller holds b.mu.
func (b *Backend) release() {
	for r := range b.renderers {
		r.release()
	}
	clear(b.renderers)
	if b.meshes != nil {
		b.meshes.Clear()
		b.meshes = nil
	}
	if b.device != nil {
		b.white.destroy(b.device)
		if b.pipe != nil {
			b.pipe.destroy()
		}
	}
	b.white = nil
	b.pipe = nil

	if !b.externalDevice && b.device != nil {
		b.device.Destroy()
	}
	if b.instance != nil {
		b.instance.Destroy()
	}
	b.device = nil
	b.queue = nil
	b.instance = nil
	b.externalDevice = false
	b.pass = nil
	b.initialized = false
}

// BeginFrame starts recording into pass. Renderer draws are only valid
// between BeginFrame and EndFrame. Each call starts a new frame and
// frees every renderer's uniform slots.
func (b *Backend) BeginFrame(pass hal.RenderPassEncoder) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return ErrNotInitialized
	}
	if pass == nil {
		return ErrNoRenderPass
	}
	b.pass = pass
	b.frame++
	return nil
}

// EndFrame stops recording. The caller still owns and ends the pass.
func (b *Backend) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pass = nil
}

// Frame returns the number of frames begun since Init.
func (b *Backend) Frame() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame
}

// NewRenderer uploads the model at modelPath and the texture at
// texturePath. An empty texturePath selects a 1x1 white texture.
// Models are cached by path, so renderers created from the same file
// parse it once.
func (b *Backend) NewRenderer(modelPath, texturePath string, m arimage.Material) (arimage.Renderer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return nil, ErrNotInitialized
	}

	msh, err := b.meshes.Load(modelPath, func() (*mesh.Mesh, error) {
		return mesh.Load(modelPath)
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}

	r := &Renderer{
		b:        b,
		label:    modelPath,
		material: m,
		slots:    b.opts.maxDraws,
	}
	if err := r.create(msh, texturePath); err != nil {
		r.release()
		return nil, err
	}
	b.renderers[r] = struct{}{}

	arimage.Logger().Debug("gpu: renderer created",
		"model", modelPath,
		"texture", texturePath,
		"triangles", msh.Triangles())
	return r, nil
}

// Renderers returns the number of live renderers.
func (b *Backend) Renderers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.renderers)
}
