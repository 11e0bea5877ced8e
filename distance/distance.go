// Package distance measures how far apart two sRGB colors are.
//
// Every Metric returns a finite, non-negative value for any pair of colors,
// and zero exactly when the colors are equal. Smaller means closer.
package distance

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mmuldo/codi/colorspace"
)

// ErrUnknownMetric is returned by Lookup for a key no metric answers to.
var ErrUnknownMetric = errors.New("unknown metric")

// Metric is a color difference formula.
type Metric interface {
	// Distance between two colors.
	Distance(c1, c2 colorspace.RGB) float64
	// Name is the display name used in reports.
	Name() string
	// Key identifies the metric on the command line and in config files.
	Key() string
}

var all = [...]Metric{Euclidean{}, EuclideanImproved{}, CIE94{}}

// All returns every metric in report order.
func All() []Metric {
	return append([]Metric(nil), all[:]...)
}

// Keys returns the keys of All, in order.
func Keys() []string {
	keys := make([]string, len(all))
	for i, m := range all {
		keys[i] = m.Key()
	}
	return keys
}

var aliases = map[string]string{
	"redmean": EuclideanImproved{}.Key(),
}

// Lookup finds a metric by key, case-insensitively. "redmean" is accepted
// for the improved Euclidean metric.
func Lookup(key string) (Metric, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if alias, ok := aliases[k]; ok {
		k = alias
	}
	for _, m := range all {
		if m.Key() == k {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w %q, want one of %s", ErrUnknownMetric, key, strings.Join(Keys(), ", "))
}

// Closest returns the index of the candidate nearest to target under m.
// When several candidates share the minimum the earliest one wins. The
// second result is false only when candidates is empty.
func Closest(m Metric, target colorspace.RGB, candidates []colorspace.RGB) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for i, c := range candidates {
		d := m.Distance(target, c)
		if math.IsNaN(d) {
			d = math.Inf(1)
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}
