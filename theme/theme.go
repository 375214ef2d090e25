package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/mmuldo/palettize/colorize"
	"github.com/mmuldo/palettize/palette"
)

// Theme is a named palette together with the colorize options it is
// usually applied with.
type Theme struct {
	Name    string
	Palette palette.Palette
	Options colorize.Options
}

// option setters keyed by normalized config key
var setters = map[string]func(*colorize.Options, interface{}) error{
	"strength":      floatSetter(func(o *colorize.Options, v float64) { o.Strength = v }),
	"saturation":    floatSetter(func(o *colorize.Options, v float64) { o.Saturation = v }),
	"contrast":      floatSetter(func(o *colorize.Options, v float64) { o.Contrast = v }),
	"brightness":    floatSetter(func(o *colorize.Options, v float64) { o.Brightness = v }),
	"edgethreshold": floatSetter(func(o *colorize.Options, v float64) { o.EdgeThreshold = v }),
	"preserveedges": func(o *colorize.Options, v interface{}) error {
		b, e := cast.ToBoolE(v)
		if e != nil {
			return e
		}
		o.PreserveEdges = b
		return nil
	},
}

func floatSetter(set func(*colorize.Options, float64)) func(*colorize.Options, interface{}) error {
	return func(o *colorize.Options, v interface{}) error {
		f, e := cast.ToFloat64E(v)
		if e != nil {
			return e
		}
		set(o, f)
		return nil
	}
}

//**exported functions**//

// Create builds a theme from hex colors and a loosely typed option map,
// typically read from a config file. Keys missing from opts keep their
// defaults; key matching ignores case, dashes and underscores.
func Create(name string, hexes []string, opts map[string]interface{}) (*Theme, error) {
	p, e := palette.New(hexes)
	if e != nil {
		return nil, fmt.Errorf("theme %q: %w", name, e)
	}

	o := colorize.DefaultOptions()
	// sorted for a deterministic first error
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		set, ok := setters[normalize(k)]
		if !ok {
			return nil, fmt.Errorf("theme %q: unknown option %q", name, k)
		}
		if e := set(&o, opts[k]); e != nil {
			return nil, fmt.Errorf("theme %q: option %q: %w", name, k, e)
		}
	}

	return &Theme{Name: name, Palette: p, Options: o.Clamped()}, nil
}

// Colorizer returns a colorizer for the theme's palette.
func (t *Theme) Colorizer() *colorize.Colorizer {
	return colorize.NewWithPalette(t.Palette)
}

// ColorizeOptions returns the theme's options as the first of an option
// list, so that later entries override individual fields.
func (t *Theme) ColorizeOptions(overrides ...colorize.Option) []colorize.Option {
	return append([]colorize.Option{colorize.WithOptions(t.Options)}, overrides...)
}

//**helper functions**//

func normalize(k string) string {
	return strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(k))
}
