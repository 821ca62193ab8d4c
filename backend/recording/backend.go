package recording

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/gogpu/arimage"
	"github.com/gogpu/arimage/backend"
	"github.com/gogpu/arimage/internal/cache"
	"github.com/gogpu/arimage/internal/mesh"
	"github.com/gogpu/arimage/internal/texture"
)

// ErrRendererDestroyed is returned by Draw after Destroy.
var ErrRendererDestroyed = errors.New("recording: renderer destroyed")

func init() {
	backend.Register(backend.NameRecording, func() backend.Backend {
		return New()
	})
}

// Option configures a Backend.
type Option func(*Backend)

// WithValidation makes NewRenderer parse the model and decode the
// texture instead of only checking that the files exist.
func WithValidation(on bool) Option {
	return func(b *Backend) {
		b.validate = on
	}
}

// WithRecording shares rec between backends.
func WithRecording(rec *Recording) Option {
	return func(b *Backend) {
		b.rec = rec
	}
}

// Backend creates renderers that append to a shared Recording.
type Backend struct {
	rec      *Recording
	validate bool
	meshes   *cache.Cache[string, *mesh.Mesh]

	mu          sync.Mutex
	initialized bool
}

// New creates a recording backend.
func New(opts ...Option) *Backend {
	b := &Backend{rec: &Recording{}}
	for _, opt := range opts {
		opt(b)
	}
	b.meshes = cache.New[string, *mesh.Mesh](64, nil)
	return b
}

// Name returns "recording".
func (b *Backend) Name() string { return backend.NameRecording }

// Init marks the backend ready. It never fails.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialized = true
	return nil
}

// Close drops cached models. Recorded commands stay readable.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialized = false
	b.meshes.Clear()
}

// Recording returns the command list shared by this backend's renderers.
func (b *Backend) Recording() *Recording { return b.rec }

// NewRenderer checks the asset files and returns a renderer labelled by
// their base names. An empty texturePath selects the default texture.
func (b *Backend) NewRenderer(modelPath, texturePath string, m arimage.Material) (arimage.Renderer, error) {
	b.mu.Lock()
	ok := b.initialized
	b.mu.Unlock()
	if !ok {
		return nil, backend.ErrNotInitialized
	}

	r := &Renderer{
		label:    filepath.Base(modelPath),
		model:    modelPath,
		texture:  texturePath,
		material: m,
		rec:      b.rec,
	}
	if texturePath != "" {
		r.label += "+" + filepath.Base(texturePath)
	}

	if !b.validate {
		if err := statFile(modelPath); err != nil {
			return nil, err
		}
		if texturePath != "" {
			if err := statFile(texturePath); err != nil {
				return nil, err
			}
		}
		return r, nil
	}

	msh, err := b.meshes.Load(modelPath, func() (*mesh.Mesh, error) {
		return mesh.Load(modelPath)
	})
	if err != nil {
		return nil, err
	}
	r.triangles = msh.Triangles()
	if texturePath != "" {
		img, err := texture.Load(texturePath, texture.DefaultMaxSize)
		if err != nil {
			return nil, err
		}
		r.texW, r.texH = img.Bounds().Dx(), img.Bounds().Dy()
	} else {
		r.texW, r.texH = 1, 1
	}
	arimage.Logger().Debug("recording: validated", "label", r.label, "triangles", r.triangles)
	return r, nil
}

func statFile(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("recording: %w", err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("recording: %s is not a regular file", path)
	}
	return nil
}

// Renderer records its draws into the backend's Recording.
type Renderer struct {
	label     string
	model     string
	texture   string
	material  arimage.Material
	rec       *Recording
	destroyed atomic.Bool

	// set by validation
	triangles  int
	texW, texH int
}

// Label returns the model and texture base names, e.g. "red.obj+red.png".
func (r *Renderer) Label() string { return r.label }

// ModelPath returns the model file the renderer was created from.
func (r *Renderer) ModelPath() string { return r.model }

// TexturePath returns the texture file, or "" for the default texture.
func (r *Renderer) TexturePath() string { return r.texture }

// Material returns the creation-time material.
func (r *Renderer) Material() arimage.Material { return r.material }

// Triangles returns the model's triangle count. It is 0 unless the
// backend validates assets.
func (r *Renderer) Triangles() int { return r.triangles }

// TextureSize returns the decoded texture size. It is 0x0 unless the
// backend validates assets.
func (r *Renderer) TextureSize() (w, h int) { return r.texW, r.texH }

// Draw appends a Command.
func (r *Renderer) Draw(p arimage.DrawParams) error {
	if r.destroyed.Load() {
		return ErrRendererDestroyed
	}
	r.rec.append(Command{
		Label:           r.label,
		Model:           p.Model,
		Scale:           p.Scale,
		View:            p.View,
		Projection:      p.Projection,
		ColorCorrection: p.ColorCorrection,
		Tint:            p.Tint,
		Material:        r.material,
	})
	return nil
}

// Destroy marks the renderer unusable.
func (r *Renderer) Destroy() {
	r.destroyed.Store(true)
}
