package overlay

import (
	"errors"
	"fmt"

	"github.com/gogpu/arimage"
)

// Source resolves asset keys to renderers. *registry.Registry implements it.
type Source interface {
	Model(key string) (arimage.Renderer, bool)
	Descriptor(key string) (arimage.Renderer, bool)
	Fallback() arimage.Renderer
}

// Role identifies the purpose of a draw call.
type Role int

const (
	RoleModel Role = iota
	RoleDescriptor
	RoleFallback
)

func (r Role) String() string {
	switch r {
	case RoleModel:
		return "model"
	case RoleDescriptor:
		return "descriptor"
	case RoleFallback:
		return "fallback"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Call is one planned draw.
type Call struct {
	Role     Role
	Key      string
	Renderer arimage.Renderer
	Model    arimage.Mat4
	Scale    float32
	Tint     arimage.RGBA
}

// Plan lists the draws for one tracked image in execution order.
type Plan struct {
	CompleteKey string
	ColorKey    string
	Calls       []Call
	// Miss is set when a model was found but the descriptor for the
	// complete key was not.
	Miss bool
}

// Target is a tracked image paired with its anchor. A nil Anchor means
// the image has no resolved pose this frame.
type Target struct {
	Image  arimage.TrackedImage
	Anchor arimage.Anchor
}

// Frame carries the per-frame camera state and the images to draw.
type Frame struct {
	View            arimage.Mat4
	Projection      arimage.Mat4
	ColorCorrection [4]float32
	Targets         []Target
}

// Dispatcher turns tracked images into draw calls against a Source.
// It holds no per-frame state.
type Dispatcher struct {
	src  Source
	opts options
}

// New returns a Dispatcher reading renderers from src.
func New(src Source, opts ...Option) *Dispatcher {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Dispatcher{src: src, opts: o}
}

// Plan resolves the renderers, transforms and tint for img at anchor.
// anchor must not be nil.
func (d *Dispatcher) Plan(img arimage.TrackedImage, anchor arimage.Anchor) Plan {
	pose := anchor.Pose()
	tint := arimage.TintFor(img.Index)
	model := arimage.ModelMatrix(pose)

	p := Plan{CompleteKey: completeKey(img.Name, d.opts.suffix)}
	p.ColorKey = colorKey(p.CompleteKey, d.opts.delim)

	r, ok := d.src.Model(p.ColorKey)
	if !ok {
		p.Calls = []Call{{
			Role:     RoleFallback,
			Key:      p.ColorKey,
			Renderer: d.src.Fallback(),
			Model:    model,
			Scale:    d.opts.modelScale,
			Tint:     tint,
		}}
		return p
	}

	p.Calls = append(p.Calls, Call{
		Role:     RoleModel,
		Key:      p.ColorKey,
		Renderer: r,
		Model:    model,
		Scale:    d.opts.modelScale,
		Tint:     tint,
	})
	desc, ok := d.src.Descriptor(p.CompleteKey)
	if !ok {
		p.Miss = true
		return p
	}
	p.Calls = append(p.Calls, Call{
		Role:     RoleDescriptor,
		Key:      p.CompleteKey,
		Renderer: desc,
		Model:    arimage.DescriptorMatrix(pose, img.ExtentX),
		Scale:    d.opts.descriptorScale,
		Tint:     tint,
	})
	return p
}

// Draw draws the overlay for img. The model is drawn before the
// descriptor. The first renderer error stops the image and is returned.
// A nil anchor returns ErrNoAnchor and draws nothing.
func (d *Dispatcher) Draw(view, proj arimage.Mat4, img arimage.TrackedImage, anchor arimage.Anchor, cc [4]float32) error {
	if anchor == nil {
		return fmt.Errorf("overlay: %s: %w", img.Name, ErrNoAnchor)
	}
	p := d.Plan(img, anchor)
	if p.Miss {
		arimage.Logger().Debug("overlay: descriptor not found",
			"image", img.Name, "key", p.CompleteKey)
	}
	for _, c := range p.Calls {
		if c.Renderer == nil {
			return fmt.Errorf("overlay: %s %q: %w", c.Role, c.Key, ErrNoRenderer)
		}
		err := c.Renderer.Draw(arimage.DrawParams{
			Model:           c.Model,
			Scale:           c.Scale,
			View:            view,
			Projection:      proj,
			ColorCorrection: cc,
			Tint:            c.Tint,
		})
		if err != nil {
			return fmt.Errorf("overlay: draw %s %q for %s: %w", c.Role, c.Key, img.Name, err)
		}
	}
	return nil
}

// DrawFrame draws every target that has an anchor. A failing target does
// not stop the others; all errors are joined.
func (d *Dispatcher) DrawFrame(f Frame) error {
	var errs []error
	for _, t := range f.Targets {
		if t.Anchor == nil {
			continue
		}
		if err := d.Draw(f.View, f.Projection, t.Image, t.Anchor, f.ColorCorrection); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ErrNoAnchor is returned by Draw for an image without an anchor.
var ErrNoAnchor = errors.New("overlay: no anchor")

// ErrNoRenderer is returned when a plan resolves to a nil renderer, which
// only happens with a Source that has no fallback.
var ErrNoRenderer = errors.New("overlay: no renderer")
