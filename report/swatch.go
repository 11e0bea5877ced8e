package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mmuldo/codi/colorspace"
)

const block = "  "

// Swatch paints color blocks for one output. Blocks stay blank when the
// output is not a terminal or color is disabled.
type Swatch struct {
	r *lipgloss.Renderer
}

// NewSwatch returns a Swatch for w.
func NewSwatch(w io.Writer, color bool) *Swatch {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Swatch{r}
}

// Block returns a two-cell block painted with c.
func (s *Swatch) Block(c colorspace.RGB) string {
	if s == nil || s.r.ColorProfile() == termenv.Ascii {
		return block
	}
	return s.r.NewStyle().Background(lipgloss.Color(c.Hex())).Render(block)
}
