package report

import (
	"io"
	"strconv"

	"github.com/mmuldo/codi/colorspace"
	"github.com/mmuldo/codi/distance"
)

// Reference labels the CIEDE2000 row of a Comparison.
const Reference = "CIEDE2000 (reference)"

// Measure is one metric's distance between two colors.
type Measure struct {
	Metric string
	Value  float64
}

// Comparison holds the distances between two colors under several metrics,
// followed by the CIEDE2000 reference difference.
type Comparison struct {
	A, B     colorspace.RGB
	Measures []Measure
}

// Compare measures a against b with every metric.
func Compare(a, b colorspace.RGB, metrics []distance.Metric) *Comparison {
	c := &Comparison{A: a, B: b}
	for _, m := range metrics {
		c.Measures = append(c.Measures, Measure{m.Name(), m.Distance(a, b)})
	}
	c.Measures = append(c.Measures, Measure{Reference, distance.CIEDE2000(a, b)})
	return c
}

// WriteTable writes c as a bordered table.
func (c *Comparison) WriteTable(w io.Writer, s *Swatch) error {
	rows := [][]string{
		{"Algorithm", "Distance", ""},
		{"> First color", c.A.Hex(), s.Block(c.A)},
		{"> Second color", c.B.Hex(), s.Block(c.B)},
	}
	for _, m := range c.Measures {
		rows = append(rows, []string{m.Metric, strconv.FormatFloat(m.Value, 'f', 4, 64), ""})
	}
	return writeGrid(w, rows)
}
