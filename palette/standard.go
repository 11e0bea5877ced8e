package palette

import (
	"strings"

	"golang.org/x/image/colornames"

	"github.com/mmuldo/codi/colorspace"
)

// StandardLen is the number of colors in the Standard palette.
const StandardLen = 138

// aliases share their color with an earlier spelling and are left out.
var aliases = map[string]bool{
	"aqua":    true, // cyan
	"fuchsia": true, // magenta
}

var standard = mustStandard()

func mustStandard() *Palette {
	entries := make([]Entry, 0, StandardLen)
	for _, name := range colornames.Names {
		if aliases[name] || strings.Contains(name, "grey") {
			continue
		}
		entries = append(entries, Entry{
			Name:  name,
			Color: colorspace.FromColor(colornames.Map[name]),
		})
	}
	p, err := New(entries...)
	if err != nil {
		panic(err)
	}
	if p.Len() != StandardLen {
		panic("palette: unexpected number of standard colors")
	}
	return p
}

// Standard is the catalog of named HTML colors, in alphabetical order. Each
// color appears once: "cyan", "magenta" and the "gray" spellings stand in
// for their aliases.
func Standard() *Palette { return standard }
