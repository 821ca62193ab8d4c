package arimage

// Renderer draws one textured 3-D object. A Renderer owns the GPU
// resources (buffers, textures) backing that object and is not shared
// between registry entries.
//
// Renderers that hold releasable resources also implement Destroyer.
type Renderer interface {
	// Draw renders the object once with the given parameters.
	// Returns an error if the draw could not be recorded.
	Draw(p DrawParams) error
}

// Destroyer is implemented by renderers that own releasable resources.
type Destroyer interface {
	Destroy()
}

// Factory constructs renderers from a model file and a texture file.
// An empty texturePath selects the backend's default texture.
// The material is applied once, at creation.
type Factory interface {
	NewRenderer(modelPath, texturePath string, m Material) (Renderer, error)
}

// FactoryFunc adapts an ordinary function to the Factory interface.
type FactoryFunc func(modelPath, texturePath string, m Material) (Renderer, error)

// NewRenderer calls f(modelPath, texturePath, m).
func (f FactoryFunc) NewRenderer(modelPath, texturePath string, m Material) (Renderer, error) {
	return f(modelPath, texturePath, m)
}

// Material holds the lighting coefficients of a renderer.
type Material struct {
	Ambient       float32
	Diffuse       float32
	Specular      float32
	SpecularPower float32
}

// DefaultMaterial is the material every overlay renderer is created with.
var DefaultMaterial = Material{
	Ambient:       0.0,
	Diffuse:       3.5,
	Specular:      1.0,
	SpecularPower: 6.0,
}

// DrawParams carries everything a renderer needs for one draw.
type DrawParams struct {
	// Model places the object in world space.
	Model Mat4
	// Scale is a uniform scale factor applied before Model.
	Scale float32
	// View and Projection come from the camera for the current frame.
	View       Mat4
	Projection Mat4
	// ColorCorrection is the per-frame light estimate (RGB scale, A = pixel intensity).
	ColorCorrection [4]float32
	// Tint is added to the shaded color.
	Tint RGBA
}

// ScaledModel returns Model * ScaleUniform(Scale).
func (p DrawParams) ScaledModel() Mat4 {
	return p.Model.Mul(ScaleUniform(p.Scale))
}
