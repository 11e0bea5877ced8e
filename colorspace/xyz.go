package colorspace

import "math"

// XYZ holds CIE 1931 tristimulus values on the [0,1] scale: the D65 white
// point has Y = 1. White is the matching reference white, and every
// constant in this package assumes that scale. Mixing it with the
// [0,100] convention silently produces wrong L*a*b* values.
type XYZ struct {
	X, Y, Z float64
}

// White is the D65 reference white on the [0,1] scale.
var White = XYZ{X: 0.950489, Y: 1.0, Z: 1.08884}

// http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
var (
	rgbToXYZ = [3][3]float64{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}
	xyzToRGB = [3][3]float64{
		{3.2406, -1.5372, -0.4986},
		{-0.9689, 1.8758, 0.0415},
		{0.0557, -0.2040, 1.0570},
	}
)

func mul(m *[3][3]float64, v [3]float64) (out [3]float64) {
	for i := range m {
		for k := range v {
			out[i] += m[i][k] * v[k]
		}
	}
	return out
}

// linearize undoes the sRGB transfer function for a channel in [0,1].
func linearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// compand applies the sRGB transfer function to a linear channel.
func compand(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// XYZ converts an sRGB color to CIE XYZ.
func (c RGB) XYZ() XYZ {
	lin := [3]float64{
		linearize(float64(c.R) / 255),
		linearize(float64(c.G) / 255),
		linearize(float64(c.B) / 255),
	}
	v := mul(&rgbToXYZ, lin)
	return XYZ{v[0], v[1], v[2]}
}

// RGB converts back to sRGB. Out-of-gamut channels are clamped to [0,255].
func (c XYZ) RGB() RGB {
	v := mul(&xyzToRGB, [3]float64{c.X, c.Y, c.Z})
	return RGB{channel(v[0]), channel(v[1]), channel(v[2])}
}

func channel(lin float64) uint8 {
	v := math.Round(compand(lin) * 255)
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
