package colorspace

import "math"

const (
	labDelta  = 6.0 / 29.0
	labDelta2 = labDelta * labDelta
	labDelta3 = labDelta2 * labDelta
)

// Lab is a CIE L*a*b* color relative to the D65 White. L is in [0,100] for
// in-gamut colors; a and b are unbounded.
type Lab struct {
	L, A, B float64
}

func labF(t float64) float64 {
	if t > labDelta3 {
		return math.Cbrt(t)
	}
	return t/(3*labDelta2) + 4.0/29.0
}

func labFInv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta2 * (t - 4.0/29.0)
}

// Lab converts XYZ to CIE L*a*b*.
func (c XYZ) Lab() Lab {
	fx := labF(c.X / White.X)
	fy := labF(c.Y / White.Y)
	fz := labF(c.Z / White.Z)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// Lab converts an sRGB color to CIE L*a*b* by way of XYZ.
func (c RGB) Lab() Lab {
	return c.XYZ().Lab()
}

// XYZ converts CIE L*a*b* back to XYZ.
func (c Lab) XYZ() XYZ {
	l := (c.L + 16) / 116
	return XYZ{
		X: White.X * labFInv(l+c.A/500),
		Y: White.Y * labFInv(l),
		Z: White.Z * labFInv(l-c.B/200),
	}
}

// RGB converts CIE L*a*b* to the nearest sRGB color.
func (c Lab) RGB() RGB {
	return c.XYZ().RGB()
}

// Chroma is the distance from the neutral axis, hypot(a, b).
func (c Lab) Chroma() float64 {
	return math.Hypot(c.A, c.B)
}
