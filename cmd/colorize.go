package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mmuldo/palettize/colorize"
	pimage "github.com/mmuldo/palettize/image"
)

var maxSize int

// colorizeCmd represents the colorize command
var colorizeCmd = &cobra.Command{
	Use:   "colorize INPUT OUTPUT",
	Short: "Recolors an image toward a palette",
	Long: `Recolors INPUT toward the palette and writes OUTPUT.

Options given as flags override the theme's options one by one; anything not
set keeps the theme's value or its default. OUTPUT is written as JPEG for
.jpg/.jpeg and as PNG otherwise.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		t, e := loadTheme(cmd)
		if e != nil {
			log.Fatal(e)
		}

		i, e := pimage.Load(args[0])
		if e != nil {
			log.Fatal(e)
		}
		i = pimage.Fit(i, maxSize)

		o, e := t.Colorizer().Colorize(i, t.ColorizeOptions(flagOptions(cmd.Flags())...)...)
		if e != nil {
			log.Fatal(e)
		}

		if e = pimage.Save(args[1], o); e != nil {
			log.Fatal(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(colorizeCmd)

	addOptionFlags(colorizeCmd.Flags())
	colorizeCmd.Flags().IntVar(&maxSize, "max-size", 0, "scale the input down so neither side exceeds this many pixels")
}

func addOptionFlags(f *pflag.FlagSet) {
	f.Float64P("strength", "s", 1, "blend strength toward the palette, 0 to 1")
	f.Float64("saturation", 1, "saturation factor applied first, 0 to 2")
	f.Float64("contrast", 1, "contrast factor applied first, 0 to 2")
	f.Float64P("brightness", "b", 0, "brightness offset applied first, -100 to 100")
	f.BoolP("preserve-edges", "e", false, "blend less on luminance edges")
	f.Float64("edge-threshold", 0.1, "edge threshold (accepted for compatibility, edges use a fixed threshold)")
}

// flagOptions returns an option for every flag the user set explicitly.
func flagOptions(f *pflag.FlagSet) []colorize.Option {
	var opts []colorize.Option
	float := func(name string, with func(float64) colorize.Option) {
		if !f.Changed(name) {
			return
		}
		if v, err := f.GetFloat64(name); err == nil {
			opts = append(opts, with(v))
		}
	}
	float("strength", colorize.WithStrength)
	float("saturation", colorize.WithSaturation)
	float("contrast", colorize.WithContrast)
	float("brightness", colorize.WithBrightness)
	float("edge-threshold", colorize.WithEdgeThreshold)
	if f.Changed("preserve-edges") {
		if v, err := f.GetBool("preserve-edges"); err == nil {
			opts = append(opts, colorize.WithPreserveEdges(v))
		}
	}
	return opts
}
