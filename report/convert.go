package report

import (
	"fmt"
	"io"

	"github.com/mmuldo/codi/colorspace"
)

// WriteConversion writes c in every color space along with the color
// recovered from its L*a*b* value.
func WriteConversion(w io.Writer, c colorspace.RGB, s *Swatch) error {
	xyz := c.XYZ()
	lab := xyz.Lab()
	back := lab.RGB()

	return writeGrid(w, [][]string{
		{"sRGB", c.Hex(), s.Block(c)},
		{"XYZ", fmt.Sprintf("%.4f %.4f %.4f", xyz.X, xyz.Y, xyz.Z), ""},
		{"L*a*b*", fmt.Sprintf("%.4f %.4f %.4f", lab.L, lab.A, lab.B), ""},
		{"round trip", back.Hex(), s.Block(back)},
	})
}
