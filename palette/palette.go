// Package palette holds catalogs of named colors and searches them.
//
// A Palette never changes after it is built, so one Palette may be searched
// from any number of goroutines.
package palette

import (
	"errors"
	"fmt"

	"github.com/mmuldo/codi/colorspace"
	"github.com/mmuldo/codi/distance"
)

var (
	// ErrEmpty is returned when searching a palette with no entries.
	ErrEmpty = errors.New("palette is empty")
	// ErrEmptyName is returned for an entry without a name.
	ErrEmptyName = errors.New("empty color name")
	// ErrDuplicateName is returned when two entries share a name.
	ErrDuplicateName = errors.New("duplicate color name")
)

// Entry is a named color.
type Entry struct {
	Name  string
	Color colorspace.RGB
}

// Palette is an ordered, read-only list of uniquely named colors.
type Palette struct {
	entries []Entry
	names   []string
	colors  []colorspace.RGB
}

// New builds a palette that keeps the given order.
func New(entries ...Entry) (*Palette, error) {
	p := &Palette{
		entries: make([]Entry, len(entries)),
		names:   make([]string, len(entries)),
		colors:  make([]colorspace.RGB, len(entries)),
	}
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}
		if j, ok := seen[e.Name]; ok {
			return nil, fmt.Errorf("%w %q at entries %d and %d", ErrDuplicateName, e.Name, j, i)
		}
		seen[e.Name] = i
		p.entries[i], p.names[i], p.colors[i] = e, e.Name, e.Color
	}
	return p, nil
}

// Len is the number of entries.
func (p *Palette) Len() int { return len(p.entries) }

// At returns the i'th entry.
func (p *Palette) At(i int) Entry { return p.entries[i] }

// Entries returns a copy of the entries.
func (p *Palette) Entries() []Entry { return append([]Entry(nil), p.entries...) }

// Names returns a copy of the entry names, in palette order.
func (p *Palette) Names() []string { return append([]string(nil), p.names...) }

// Colors returns a copy of the entry colors, in palette order.
func (p *Palette) Colors() []colorspace.RGB { return append([]colorspace.RGB(nil), p.colors...) }

// Closest returns the entry nearest to target under m; ties go to the entry
// that comes first. It fails with ErrEmpty only if the palette has no entries.
func (p *Palette) Closest(m distance.Metric, target colorspace.RGB) (Entry, error) {
	i, ok := distance.Closest(m, target, p.colors)
	if !ok {
		return Entry{}, ErrEmpty
	}
	return p.entries[i], nil
}

// Exact returns the name of the first entry whose color equals target.
func (p *Palette) Exact(target colorspace.RGB) (string, bool) {
	for i, c := range p.colors {
		if c == target {
			return p.names[i], true
		}
	}
	return "", false
}
