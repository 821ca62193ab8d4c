package overlay

// Fixed overlay scales, applied by the renderer on top of the model matrix.
const (
	ModelScale      float32 = 0.4
	DescriptorScale float32 = 0.2
)

// Option configures a Dispatcher.
type Option func(*options)

type options struct {
	suffix          string
	delim           string
	modelScale      float32
	descriptorScale float32
}

func defaultOptions() options {
	return options{
		suffix:          DefaultImageSuffix,
		delim:           DefaultDelimiter,
		modelScale:      ModelScale,
		descriptorScale: DescriptorScale,
	}
}

// WithImageSuffix sets the suffix stripped from tracked image names.
func WithImageSuffix(s string) Option {
	return func(o *options) {
		o.suffix = s
	}
}

// WithDelimiter sets the separator between the group and color parts of
// a complete key. An empty delimiter makes the color key the complete key.
func WithDelimiter(d string) Option {
	return func(o *options) {
		o.delim = d
	}
}

// WithScales overrides the model and descriptor scales.
func WithScales(model, descriptor float32) Option {
	return func(o *options) {
		o.modelScale = model
		o.descriptorScale = descriptor
	}
}
