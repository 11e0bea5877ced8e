package distance

import (
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"github.com/mmuldo/codi/colorspace"
)

var (
	rgb2Xyz = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		nil,
		nil,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
	klch    = &deltae.KLChDefault
)

// CIEDE2000 is the CIE 2000 color difference (ΔE00, not squared). It is a
// reference figure for reports; it is not one of the search metrics.
func CIEDE2000(c1, c2 colorspace.RGB) float64 {
	return deltae.CIE2000(referenceLab(c1), referenceLab(c2), klch)
}

func referenceLab(c colorspace.RGB) chromath.Lab {
	xyz := rgb2Xyz.Convert(chromath.RGB{float64(c.R), float64(c.G), float64(c.B)})
	return lab2Xyz.Invert(xyz)
}
