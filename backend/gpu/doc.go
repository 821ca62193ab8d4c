// Package gpu renders overlay objects with the wgpu hardware abstraction
// layer.
//
// The backend registers itself as "gpu" on import. It either opens its
// own device or shares the host application's device through a
// gpucontext.DeviceProvider:
//
//	b := gpu.New(gpu.WithDeviceProvider(app))
//	if err := b.Init(); err != nil {
//		return err
//	}
//	defer b.Close()
//
// Renderers record into a render pass owned by the host. Each frame is
// bracketed by BeginFrame and EndFrame:
//
//	b.BeginFrame(pass)
//	err := dispatcher.DrawFrame(frame)
//	b.EndFrame()
//
// Every renderer owns a ring of uniform slots indexed with dynamic
// offsets, so one renderer can be drawn several times per frame (for
// example when two tracked images share a model). The ring size is set
// with WithMaxDrawsPerFrame.
//
// All methods must be called from the thread that owns the GPU device.
package gpu
