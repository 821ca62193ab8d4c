package registry

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gogpu/arimage"
	"github.com/gogpu/arimage/asset"
)

// Build scans dir and creates a renderer for every model file, every
// descriptor texture and the fallback overlay.
//
// A model or descriptor that cannot be built, or a category whose scan
// fails, is recorded in Results and skipped. Failure to build the
// fallback is fatal: every renderer already created is destroyed and
// the *AssetBuildError is returned. Cancellation of ctx is checked
// between files and likewise releases everything built so far.
//
// When two files map to the same key the later one replaces the earlier,
// which is destroyed.
func Build(ctx context.Context, dir string, f arimage.Factory, opts ...Option) (*Registry, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &builder{
		dir:     dir,
		factory: f,
		opts:    o,
		reg: &Registry{
			models:      make(map[string]arimage.Renderer),
			descriptors: make(map[string]arimage.Renderer),
		},
	}

	if err := b.scanModels(ctx); err != nil {
		b.reg.Destroy()
		return nil, err
	}
	if err := b.scanDescriptors(ctx); err != nil {
		b.reg.Destroy()
		return nil, err
	}
	if err := b.buildFallback(); err != nil {
		b.reg.Destroy()
		return nil, err
	}

	arimage.Logger().Info("registry: built",
		"dir", dir,
		"models", len(b.reg.models),
		"descriptors", len(b.reg.descriptors),
		"failures", len(b.reg.Failures()))
	return b.reg, nil
}

type builder struct {
	dir     string
	factory arimage.Factory
	opts    options
	reg     *Registry
}

func (b *builder) scanModels(ctx context.Context) error {
	l := b.opts.layout
	for path, err := range asset.Scan(b.dir, asset.HasExt(l.ModelExt)) {
		if err != nil {
			b.scanFailed(KindModel, err)
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		key := asset.Key(path, l.ModelExt)
		tex := asset.Sibling(path, l.ModelExt, l.TextureExt)
		if !isFile(tex) {
			tex = ""
		}
		b.add(b.reg.models, KindModel, key, path, tex)
	}
	return nil
}

func (b *builder) scanDescriptors(ctx context.Context) error {
	l := b.opts.layout
	plane := filepath.Join(b.dir, l.PlaneModel)
	for path, err := range asset.Scan(b.dir, asset.HasExt(l.DescriptorExt)) {
		if err != nil {
			b.scanFailed(KindDescriptor, err)
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		key := asset.Key(path, l.DescriptorExt)
		b.add(b.reg.descriptors, KindDescriptor, key, plane, path)
	}
	return nil
}

func (b *builder) buildFallback() error {
	l := b.opts.layout
	model := filepath.Join(b.dir, l.FallbackModel)
	tex := filepath.Join(b.dir, l.FallbackTexture)
	key := asset.Key(l.FallbackModel, l.ModelExt)

	r, err := b.factory.NewRenderer(model, tex, b.opts.material)
	if err == nil && r == nil {
		err = errNilRenderer
	}
	if err != nil {
		return &AssetBuildError{Kind: KindFallback, Key: key, Model: model, Texture: tex, Err: err}
	}
	b.reg.fallback = r
	b.reg.results = append(b.reg.results, Result{Kind: KindFallback, Key: key, Model: model, Texture: tex})
	return nil
}

func (b *builder) add(m map[string]arimage.Renderer, kind Kind, key, model, tex string) {
	log := arimage.Logger()
	res := Result{Kind: kind, Key: key, Model: model, Texture: tex}

	r, err := b.factory.NewRenderer(model, tex, b.opts.material)
	if err == nil && r == nil {
		err = errNilRenderer
	}
	if err != nil {
		res.Err = &AssetBuildError{Kind: kind, Key: key, Model: model, Texture: tex, Err: err}
		b.reg.results = append(b.reg.results, res)
		log.Warn("registry: skipping asset", "kind", kind.String(), "key", key, "err", err)
		return
	}

	if prev, ok := m[key]; ok {
		destroy(prev)
		b.markReplaced(kind, key)
		log.Debug("registry: key replaced", "kind", kind.String(), "key", key, "model", model)
	}
	m[key] = r
	b.reg.results = append(b.reg.results, res)
	log.Debug("registry: loaded", "kind", kind.String(), "key", key, "model", model, "texture", tex)
}

// markReplaced flags the live result for kind and key as replaced.
func (b *builder) markReplaced(kind Kind, key string) {
	for i := len(b.reg.results) - 1; i >= 0; i-- {
		r := &b.reg.results[i]
		if r.Kind == kind && r.Key == key && r.Err == nil && !r.Replaced {
			r.Replaced = true
			return
		}
	}
}

func (b *builder) scanFailed(kind Kind, err error) {
	b.reg.results = append(b.reg.results, Result{Kind: kind, Err: err})
	arimage.Logger().Warn("registry: scan failed", "kind", kind.String(), "dir", b.dir, "err", err)
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
