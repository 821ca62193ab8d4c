package registry

import "github.com/gogpu/arimage"

// Layout names the files Build looks for in an asset directory.
type Layout struct {
	// ModelExt selects model files. Each model's key is its stem.
	ModelExt string
	// TextureExt is appended to a model's stem to find its texture.
	TextureExt string
	// DescriptorExt selects descriptor textures.
	DescriptorExt string
	// PlaneModel is the model every descriptor texture is drawn on.
	PlaneModel string
	// FallbackModel and FallbackTexture form the overlay drawn for
	// images that have no model of their own.
	FallbackModel   string
	FallbackTexture string
}

// DefaultLayout returns the standard asset layout.
func DefaultLayout() Layout {
	return Layout{
		ModelExt:        ".obj",
		TextureExt:      ".png",
		DescriptorExt:   ".webp",
		PlaneModel:      "plane.obj",
		FallbackModel:   "andy.obj",
		FallbackTexture: "andy.png",
	}
}

// Option configures Build.
type Option func(*options)

type options struct {
	layout   Layout
	material arimage.Material
}

func defaultOptions() options {
	return options{
		layout:   DefaultLayout(),
		material: arimage.DefaultMaterial,
	}
}

// WithLayout replaces the default asset layout.
func WithLayout(l Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithMaterial sets the material every renderer is created with.
func WithMaterial(m arimage.Material) Option {
	return func(o *options) {
		o.material = m
	}
}
