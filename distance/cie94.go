package distance

import (
	"math"

	"github.com/mmuldo/codi/colorspace"
)

// CIE94 weighting for graphic arts, with kL = kC = kH = 1.
const (
	cie94K1 = 0.045
	cie94K2 = 0.015
)

// CIE94 is the squared CIE 1994 color difference, computed in L*a*b*.
// The first color is the reference: its chroma scales the C and H terms,
// so the metric is not symmetric.
type CIE94 struct{}

func (CIE94) Name() string { return "CIE94" }
func (CIE94) Key() string  { return "cie94" }

func (CIE94) Distance(c1, c2 colorspace.RGB) float64 {
	return cie94(c1.Lab(), c2.Lab())
}

func cie94(lab1, lab2 colorspace.Lab) float64 {
	c1, c2 := lab1.Chroma(), lab2.Chroma()

	dL := lab1.L - lab2.L
	dC := c1 - c2
	dH := hueDelta(lab1.A-lab2.A, lab1.B-lab2.B, dC)

	sC := 1 + cie94K1*c1
	sH := 1 + cie94K2*c1

	return dL*dL + (dC/sC)*(dC/sC) + (dH/sH)*(dH/sH)
}

// hueDelta is sqrt(da² + db² - dC²). For colors of nearly the same hue the
// radicand is zero in exact arithmetic, and rounding can push it below zero,
// so it is clamped. See https://github.com/zschuessler/DeltaE/issues/9.
func hueDelta(da, db, dC float64) float64 {
	return math.Sqrt(math.Max(0, da*da+db*db-dC*dC))
}
