// Package report turns nearest-color searches into printable results.
package report

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mmuldo/codi/colorspace"
	"github.com/mmuldo/codi/distance"
	"github.com/mmuldo/codi/palette"
)

// Unknown stands in for the name of a color that is not in the palette.
const Unknown = "unknown"

// Row is the closest palette entry found by one metric.
type Row struct {
	Metric   string
	Entry    palette.Entry
	Distance float64
}

// Report holds a target color, its exact palette name if any, and one Row
// per metric in the order the metrics were given.
type Report struct {
	Target colorspace.RGB
	Exact  string
	Rows   []Row
}

// Build searches p for target with every metric. Searches run
// concurrently; p is read-only so they share it freely.
func Build(p *palette.Palette, target colorspace.RGB, metrics []distance.Metric) (*Report, error) {
	r := &Report{
		Target: target,
		Rows:   make([]Row, len(metrics)),
	}
	if name, ok := p.Exact(target); ok {
		r.Exact = name
	}

	var g errgroup.Group
	for i, m := range metrics {
		i, m := i, m
		g.Go(func() error {
			e, err := p.Closest(m, target)
			if err != nil {
				return fmt.Errorf("%s: %w", m.Name(), err)
			}
			r.Rows[i] = Row{
				Metric:   m.Name(),
				Entry:    e,
				Distance: m.Distance(target, e.Color),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return r, nil
}

// ExactName is the exact palette name of the target, or Unknown.
func (r *Report) ExactName() string {
	if r.Exact == "" {
		return Unknown
	}
	return r.Exact
}
