package registry

import (
	"errors"
	"maps"
	"slices"

	"github.com/gogpu/arimage"
)

// Registry maps asset keys to renderers. It is immutable once Build
// returns and safe for concurrent reads until Destroy.
type Registry struct {
	models      map[string]arimage.Renderer
	descriptors map[string]arimage.Renderer
	fallback    arimage.Renderer
	results     []Result
}

// Model returns the renderer for a model key.
func (r *Registry) Model(key string) (arimage.Renderer, bool) {
	m, ok := r.models[key]
	return m, ok
}

// Descriptor returns the renderer for a descriptor key.
func (r *Registry) Descriptor(key string) (arimage.Renderer, bool) {
	d, ok := r.descriptors[key]
	return d, ok
}

// Fallback returns the fallback renderer. It is never nil for a
// registry returned by Build.
func (r *Registry) Fallback() arimage.Renderer {
	return r.fallback
}

// ModelKeys returns the model keys in sorted order.
func (r *Registry) ModelKeys() []string {
	return slices.Sorted(maps.Keys(r.models))
}

// DescriptorKeys returns the descriptor keys in sorted order.
func (r *Registry) DescriptorKeys() []string {
	return slices.Sorted(maps.Keys(r.descriptors))
}

// Results returns one entry per candidate file in scan order, followed
// by the fallback.
func (r *Registry) Results() []Result {
	return slices.Clone(r.results)
}

// Failures returns the results that carry an error.
func (r *Registry) Failures() []Result {
	var out []Result
	for _, res := range r.results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Err joins every non-fatal failure recorded during Build.
// It returns nil when every candidate was built.
func (r *Registry) Err() error {
	var errs []error
	for _, res := range r.results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errors.Join(errs...)
}

// Destroy releases every renderer owned by the registry. The registry
// is empty afterwards. Calling Destroy more than once is safe.
func (r *Registry) Destroy() {
	for _, m := range r.models {
		destroy(m)
	}
	for _, d := range r.descriptors {
		destroy(d)
	}
	destroy(r.fallback)
	r.models = nil
	r.descriptors = nil
	r.fallback = nil
	arimage.Logger().Info("registry: destroyed")
}

func destroy(r arimage.Renderer) {
	if d, ok := r.(arimage.Destroyer); ok {
		d.Destroy()
	}
}
