package colorspace

import "math"

// Rec. 709 luminance weights.
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)

// Luminance returns the weighted luminance of gamma-encoded channels.
func Luminance(r, g, b float64) float64 {
	return LumaR*r + LumaG*g + LumaB*b
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Clamp clamps v to [lo,hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Quantize clamps v to [0,1] and rounds it to the nearest byte.
func Quantize(v float64) uint8 {
	return uint8(math.Round(Clamp01(v) * 255))
}

// FromBytes builds an RGB color from 8-bit channels.
func FromBytes(r, g, b uint8) RGB {
	return RGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// Bytes quantizes c to 8-bit channels.
func (c RGB) Bytes() (r, g, b uint8) {
	return Quantize(c.R), Quantize(c.G), Quantize(c.B)
}
