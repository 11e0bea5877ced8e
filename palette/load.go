package palette

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mmuldo/codi/colorspace"
)

// Load reads a palette with one "name hex" pair per line, such as
// "coral #FF7F50". Blank lines and lines starting with "//" are skipped.
func Load(r io.Reader) (*Palette, error) {
	var entries []Entry

	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want \"name hex\", got %q", n, line)
		}
		c, err := colorspace.ParseHex(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		entries = append(entries, Entry{Name: fields[0], Color: c})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return New(entries...)
}

// LoadFile loads a palette given a file path.
func LoadFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}
