// Package colorspace converts colors between sRGB, linear RGB, CIEXYZ and
// CIELAB, all relative to the D65 white point.
package colorspace

import "math"

const (
	gammaThreshold   = 0.04045
	gammaFactor      = 1.055
	gammaExponent    = 2.4
	linearFactor     = 12.92
	linearOffset     = 0.055
	inverseThreshold = 0.0031308

	labDelta        = 6.0 / 29.0
	labDeltaCubed   = labDelta * labDelta * labDelta
	labDeltaFactor  = 1 / (3 * labDelta * labDelta)
	labScaleL       = 116.0
	labScaleA       = 500.0
	labScaleB       = 200.0
	labOffsetL      = 16.0
	labOffsetScaled = labOffsetL / labScaleL
)

// D65 reference white, Y normalized to 1.
var D65 = XYZ{X: 0.95047, Y: 1.0, Z: 1.08883}

var (
	rgbToXYZ = [3][3]float64{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyzToRGB = [3][3]float64{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

// RGB is a gamma-encoded sRGB color with channels in [0,1].
type RGB struct {
	R, G, B float64
}

// LinearRGB is a gamma-decoded RGB color. Channels are not clamped.
type LinearRGB struct {
	R, G, B float64
}

// XYZ holds CIE 1931 tristimulus values scaled by 100.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE 1976 L*a*b* color. L is in [0,100].
type Lab struct {
	L, A, B float64
}

// SRGBToLinear decodes one gamma-encoded channel.
func SRGBToLinear(v float64) float64 {
	if v > gammaThreshold {
		return math.Pow((v+linearOffset)/gammaFactor, gammaExponent)
	}
	return v / linearFactor
}

// LinearToSRGB encodes one linear channel.
func LinearToSRGB(v float64) float64 {
	if v > inverseThreshold {
		return gammaFactor*math.Pow(v, 1/gammaExponent) - linearOffset
	}
	return linearFactor * v
}

// Linear decodes c into linear light.
func (c RGB) Linear() LinearRGB {
	return LinearRGB{SRGBToLinear(c.R), SRGBToLinear(c.G), SRGBToLinear(c.B)}
}

// SRGB encodes c without clamping.
func (c LinearRGB) SRGB() RGB {
	return RGB{LinearToSRGB(c.R), LinearToSRGB(c.G), LinearToSRGB(c.B)}
}

// LinearToXYZ applies the sRGB to XYZ matrix and scales the result by 100.
func LinearToXYZ(c LinearRGB) XYZ {
	m := &rgbToXYZ
	return XYZ{
		X: (c.R*m[0][0] + c.G*m[0][1] + c.B*m[0][2]) * 100,
		Y: (c.R*m[1][0] + c.G*m[1][1] + c.B*m[1][2]) * 100,
		Z: (c.R*m[2][0] + c.G*m[2][1] + c.B*m[2][2]) * 100,
	}
}

// XYZToLinear is the inverse of LinearToXYZ.
func XYZToLinear(c XYZ) LinearRGB {
	m := &xyzToRGB
	x, y, z := c.X/100, c.Y/100, c.Z/100
	return LinearRGB{
		R: x*m[0][0] + y*m[0][1] + z*m[0][2],
		G: x*m[1][0] + y*m[1][1] + z*m[1][2],
		B: x*m[2][0] + y*m[2][1] + z*m[2][2],
	}
}

// RGBToXYZ converts an sRGB color to XYZ.
func RGBToXYZ(c RGB) XYZ {
	return LinearToXYZ(c.Linear())
}

// XYZToRGB converts XYZ to sRGB, clamping each channel to [0,1].
func XYZToRGB(c XYZ) RGB {
	s := XYZToLinear(c).SRGB()
	return RGB{Clamp01(s.R), Clamp01(s.G), Clamp01(s.B)}
}

func labF(t float64) float64 {
	if t > labDeltaCubed {
		return math.Cbrt(t)
	}
	return labDeltaFactor*t + labOffsetScaled
}

func labFInverse(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return (t - labOffsetScaled) / labDeltaFactor
}

// XYZToLab converts XYZ to Lab. The resulting L is never negative.
func XYZToLab(c XYZ) Lab {
	fx := labF(c.X / (D65.X * 100))
	fy := labF(c.Y / (D65.Y * 100))
	fz := labF(c.Z / (D65.Z * 100))
	return Lab{
		L: math.Max(0, labScaleL*fy-labOffsetL),
		A: labScaleA * (fx - fy),
		B: labScaleB * (fy - fz),
	}
}

// LabToXYZ converts Lab to XYZ.
func LabToXYZ(c Lab) XYZ {
	fy := (c.L + labOffsetL) / labScaleL
	fx := fy + c.A/labScaleA
	fz := fy - c.B/labScaleB
	return XYZ{
		X: labFInverse(fx) * D65.X * 100,
		Y: labFInverse(fy) * D65.Y * 100,
		Z: labFInverse(fz) * D65.Z * 100,
	}
}

// RGBToLab converts an sRGB color to Lab.
func RGBToLab(c RGB) Lab {
	return XYZToLab(RGBToXYZ(c))
}

// LabToRGB converts a Lab color to clamped sRGB.
func LabToRGB(c Lab) RGB {
	return XYZToRGB(LabToXYZ(c))
}
