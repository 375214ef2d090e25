// Package colorize recolors images toward a palette while keeping each
// pixel's perceptual lightness.
//
// Every pixel is converted to CIELAB, given the a/b chroma the palette
// assigns to its lightness, and blended toward it by a strength factor:
//
//	c, err := colorize.New([]string{"#2e3440", "#88c0d0", "#eceff4"})
//	if err != nil {
//		return err
//	}
//	out, err := c.Colorize(img, colorize.WithStrength(0.8), colorize.WithPreserveEdges(true))
package colorize

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/mmuldo/palettize/colorspace"
	"github.com/mmuldo/palettize/palette"
)

const (
	// edgeLuminanceDelta is the neighbour luminance difference above which
	// a pixel counts as an edge.
	edgeLuminanceDelta = 0.1
	// edgeStrengthFactor scales the blend strength on edge pixels.
	edgeStrengthFactor = 0.3
)

var errNilImage = errors.New("colorize: nil image")

// Colorizer maps images onto a fixed palette. It is immutable and safe for
// concurrent use.
type Colorizer struct {
	pal palette.Palette
}

// New builds a Colorizer from #rrggbb colors. An empty list yields a
// Colorizer that only applies the brightness, saturation and contrast
// adjustments.
func New(hexes []string) (*Colorizer, error) {
	p, err := palette.New(hexes)
	if err != nil {
		return nil, fmt.Errorf("colorize: %w", err)
	}
	return NewWithPalette(p), nil
}

// NewWithPalette wraps an already sorted palette.
func NewWithPalette(p palette.Palette) *Colorizer {
	lo, hi := p.Bounds()
	Logger().Debug("colorize: palette ready",
		slog.Int("size", len(p)),
		slog.Float64("minL", lo),
		slog.Float64("maxL", hi),
	)
	return &Colorizer{pal: p}
}

// Palette returns the lightness-sorted palette.
func (c *Colorizer) Palette() palette.Palette {
	return c.pal
}

// Colorize returns a new image of the same bounds with every pixel shifted
// toward the palette. Alpha is copied unchanged. src is never modified.
func (c *Colorizer) Colorize(src *image.NRGBA, opts ...Option) (*image.NRGBA, error) {
	if src == nil {
		return nil, errNilImage
	}
	w, h := src.Rect.Dx(), src.Rect.Dy()
	if w > 0 && h > 0 {
		if src.Stride < 4*w || len(src.Pix) < (h-1)*src.Stride+4*w {
			return nil, fmt.Errorf("colorize: pixel buffer of %d bytes (stride %d) does not cover %dx%d image",
				len(src.Pix), src.Stride, w, h)
		}
	}

	o := resolve(opts)
	Logger().Debug("colorize: start",
		slog.Int("width", w),
		slog.Int("height", h),
		slog.Float64("strength", o.Strength),
		slog.Float64("saturation", o.Saturation),
		slog.Float64("contrast", o.Contrast),
		slog.Float64("brightness", o.Brightness),
		slog.Bool("preserveEdges", o.PreserveEdges),
	)

	dst := image.NewNRGBA(src.Rect)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := y*src.Stride + 4*x
			di := y*dst.Stride + 4*x
			s := src.Pix[si : si+4 : si+4]

			strength := o.Strength
			if o.PreserveEdges && isEdge(src, w, h, x, y) {
				strength *= edgeStrengthFactor
			}

			rgb := c.pixel(colorspace.FromBytes(s[0], s[1], s[2]), o, strength)
			d := dst.Pix[di : di+4 : di+4]
			d[0], d[1], d[2] = rgb.Bytes()
			d[3] = s[3]
		}
	}
	return dst, nil
}

// pixel runs the adjustment and blend pipeline for one color.
func (c *Colorizer) pixel(rgb colorspace.RGB, o Options, strength float64) colorspace.RGB {
	lab := colorspace.RGBToLab(adjust(rgb, o))
	return colorspace.LabToRGB(blend(lab, c.pal.Target(lab), strength))
}

// adjust applies brightness, saturation and contrast in that order.
func adjust(rgb colorspace.RGB, o Options) colorspace.RGB {
	rgb = brighten(rgb, o.Brightness)
	if o.Saturation != 1 {
		rgb = saturate(rgb, o.Saturation)
	}
	if o.Contrast != 1 {
		rgb = contrast(rgb, o.Contrast)
	}
	return rgb
}

func brighten(rgb colorspace.RGB, brightness float64) colorspace.RGB {
	d := brightness / 255
	return colorspace.RGB{
		R: colorspace.Clamp01(rgb.R + d),
		G: colorspace.Clamp01(rgb.G + d),
		B: colorspace.Clamp01(rgb.B + d),
	}
}

func saturate(rgb colorspace.RGB, factor float64) colorspace.RGB {
	y := colorspace.Luminance(rgb.R, rgb.G, rgb.B)
	return colorspace.RGB{
		R: colorspace.Clamp01(y + (rgb.R-y)*factor),
		G: colorspace.Clamp01(y + (rgb.G-y)*factor),
		B: colorspace.Clamp01(y + (rgb.B-y)*factor),
	}
}

func contrast(rgb colorspace.RGB, amount float64) colorspace.RGB {
	f := 259 * (amount*127.5 + 255) / (255 * (259 - amount*127.5))
	ch := func(v float64) float64 {
		return colorspace.Clamp(f*(v*255-128)+128, 0, 255) / 255
	}
	return colorspace.RGB{R: ch(rgb.R), G: ch(rgb.G), B: ch(rgb.B)}
}

// blend keeps lab's lightness and moves its chroma toward target.
func blend(lab, target colorspace.Lab, strength float64) colorspace.Lab {
	return colorspace.Lab{
		L: lab.L,
		A: lab.A + (target.A-lab.A)*strength,
		B: lab.B + (target.B-lab.B)*strength,
	}
}

// isEdge reports whether the pixel at (x, y) differs in luminance from one
// of its four neighbours by more than edgeLuminanceDelta. It reads the
// unadjusted source bytes. Border pixels are never edges.
func isEdge(src *image.NRGBA, w, h, x, y int) bool {
	if x <= 0 || x >= w-1 || y <= 0 || y >= h-1 {
		return false
	}
	luma := func(x, y int) float64 {
		i := y*src.Stride + 4*x
		p := src.Pix[i : i+3 : i+3]
		return colorspace.Luminance(float64(p[0])/255, float64(p[1])/255, float64(p[2])/255)
	}
	center := luma(x, y)
	var diff float64
	for _, n := range [...]float64{
		luma(x, y-1),
		luma(x, y+1),
		luma(x-1, y),
		luma(x+1, y),
	} {
		diff = math.Max(diff, math.Abs(n-center))
	}
	return diff > edgeLuminanceDelta
}
