package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/arimage"
	"github.com/gogpu/arimage/internal/mesh"
	"github.com/gogpu/arimage/internal/texture"
)

// Renderer draws one textured model. It owns its vertex, index and
// uniform buffers and, unless it uses the default texture, its texture.
type Renderer struct {
	b        *Backend
	label    string
	material arimage.Material

	vertices   hal.Buffer
	indices    hal.Buffer
	indexCount uint32
	uniforms   hal.Buffer
	tex        *gpuTexture // nil: shared white texture
	group      hal.BindGroup

	slots int
	frame uint64 // frame the slot counter belongs to
	next  int

	destroyed bool
}

// create allocates the GPU resources. Caller holds b.mu.
func (r *Renderer) create(msh *mesh.Mesh, texturePath string) error {
	device, queue := r.b.device, r.b.queue

	var err error
	r.vertices, err = newBuffer(device, queue, r.label+"_vertices",
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst, msh.VertexBytes())
	if err != nil {
		return err
	}
	r.indices, err = newBuffer(device, queue, r.label+"_indices",
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst, msh.IndexBytes())
	if err != nil {
		return err
	}
	r.indexCount = uint32(len(msh.Indices))

	r.uniforms, err = device.CreateBuffer(&hal.BufferDescriptor{
		Label: r.label + "_uniforms",
		Size:  uint64(r.slots) * uniformStride,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("gpu: create uniform buffer: %w", err)
	}

	view := r.b.white.view
	if texturePath != "" {
		img, err := texture.Load(texturePath, r.b.opts.maxTexture)
		if err != nil {
			return fmt.Errorf("gpu: %w", err)
		}
		r.tex, err = uploadTexture(device, queue, img, texturePath)
		if err != nil {
			return err
		}
		view = r.tex.view
	}

	r.group, err = device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  r.label + "_bind_group",
		Layout: r.b.pipe.groupLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: r.uniforms.NativeHandle(),
				Offset: 0,
				Size:   uniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{TextureView: view.NativeHandle()}},
			{Binding: 2, Resource: gputypes.SamplerBinding{Sampler: r.b.pipe.sampler.NativeHandle()}},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: create bind group: %w", err)
	}
	return nil
}

// newBuffer creates a buffer of len(data) bytes, rounded up to a multiple
// of 4, and fills it.
func newBuffer(device hal.Device, queue hal.Queue, label string, usage gputypes.BufferUsage, data []byte) (hal.Buffer, error) {
	size := (uint64(len(data)) + 3) &^ 3
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create %s: %w", label, err)
	}
	if err := queue.WriteBuffer(buf, 0, data); err != nil {
		device.DestroyBuffer(buf)
		return nil, fmt.Errorf("gpu: write %s: %w", label, err)
	}
	return buf, nil
}

// Draw writes the next uniform slot and records an indexed draw into the
// current render pass.
func (r *Renderer) Draw(p arimage.DrawParams) error {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	if r.destroyed {
		return ErrRendererDestroyed
	}
	if b.pass == nil {
		return ErrNoRenderPass
	}
	if r.frame != b.frame {
		r.frame = b.frame
		r.next = 0
	}
	if r.next >= r.slots {
		return fmt.Errorf("%w: %s (%d slots)", ErrTooManyDraws, r.label, r.slots)
	}

	offset := uint64(r.next) * uniformStride
	u := makeUniforms(p, r.material, b.opts.light)
	if err := b.queue.WriteBuffer(r.uniforms, offset, u.bytes()); err != nil {
		return fmt.Errorf("gpu: write uniforms: %w", err)
	}
	r.next++

	pass := b.pass
	pass.SetPipeline(b.pipe.pipeline)
	pass.SetBindGroup(0, r.group, []uint32{uint32(offset)})
	pass.SetVertexBuffer(0, r.vertices, 0)
	pass.SetIndexBuffer(r.indices, gputypes.IndexFormatUint32, 0)
	pass.DrawIndexed(r.indexCount, 1, 0, 0, 0)
	return nil
}

// Destroy releases the renderer's GPU resources. Later draws return
// ErrRendererDestroyed. Destroy is idempotent.
func (r *Renderer) Destroy() {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	r.release()
	delete(r.b.renderers, r)
}

// release frees the resources. Caller holds b.mu.
func (r *Renderer) release() {
	if r.destroyed {
		return
	}
	r.destroyed = true
	device := r.b.device
	if device == nil {
		return
	}
	if r.group != nil {
		device.DestroyBindGroup(r.group)
		r.group = nil
	}
	r.tex.destroy(device)
	r.tex = nil
	for _, buf := range []hal.Buffer{r.uniforms, r.indices, r.vertices} {
		if buf != nil {
			device.DestroyBuffer(buf)
		}
	}
	r.uniforms, r.indices, r.vertices = nil, nil, nil
}
