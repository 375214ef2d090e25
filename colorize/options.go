package colorize

import "github.com/mmuldo/palettize/colorspace"

// Options controls a single Colorize call. Values outside their documented
// ranges are clamped, never rejected.
type Options struct {
	// Strength blends from the original chroma (0) to the palette's (1).
	Strength float64
	// Saturation in [0,2]; 1 leaves colors unchanged.
	Saturation float64
	// Contrast in [0,2]; 1 leaves colors unchanged.
	Contrast float64
	// Brightness in [-100,100], added to every channel in 1/255 steps.
	Brightness float64
	// PreserveEdges weakens the blend on pixels that sit on a luminance edge.
	PreserveEdges bool
	// EdgeThreshold is clamped to >= 0 but edge detection always compares
	// against edgeLuminanceDelta.
	EdgeThreshold float64
}

// Option adjusts Options.
type Option func(*Options)

// DefaultOptions returns full strength with no pre-adjustment.
func DefaultOptions() Options {
	return Options{
		Strength:      1,
		Saturation:    1,
		Contrast:      1,
		Brightness:    0,
		PreserveEdges: false,
		EdgeThreshold: 0.1,
	}
}

// WithOptions replaces every field at once.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithStrength sets the blend strength, clamped to [0,1].
func WithStrength(v float64) Option {
	return func(o *Options) { o.Strength = v }
}

// WithSaturation sets the saturation factor, clamped to [0,2].
func WithSaturation(v float64) Option {
	return func(o *Options) { o.Saturation = v }
}

// WithContrast sets the contrast factor, clamped to [0,2].
func WithContrast(v float64) Option {
	return func(o *Options) { o.Contrast = v }
}

// WithBrightness sets the brightness offset, clamped to [-100,100].
func WithBrightness(v float64) Option {
	return func(o *Options) { o.Brightness = v }
}

// WithPreserveEdges enables weaker blending on edge pixels.
func WithPreserveEdges(v bool) Option {
	return func(o *Options) { o.PreserveEdges = v }
}

// WithEdgeThreshold sets EdgeThreshold, clamped to >= 0.
func WithEdgeThreshold(v float64) Option {
	return func(o *Options) { o.EdgeThreshold = v }
}

// Clamped returns o with every field forced into its valid range.
func (o Options) Clamped() Options {
	o.Strength = colorspace.Clamp(o.Strength, 0, 1)
	o.Saturation = colorspace.Clamp(o.Saturation, 0, 2)
	o.Contrast = colorspace.Clamp(o.Contrast, 0, 2)
	o.Brightness = colorspace.Clamp(o.Brightness, -100, 100)
	o.EdgeThreshold = max(0, o.EdgeThreshold)
	return o
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o.Clamped()
}
