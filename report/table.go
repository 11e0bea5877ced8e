package report

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmuldo/codi/palette"
)

// WriteTable writes r as a bordered table: a header, the target color, and
// one line per metric.
func (r *Report) WriteTable(w io.Writer, s *Swatch) error {
	rows := [][]string{
		{"Algorithm", "HTML color", "Hex", ""},
		{"> Original color", r.ExactName(), r.Target.Hex(), s.Block(r.Target)},
	}
	for _, row := range r.Rows {
		rows = append(rows, []string{row.Metric, row.Entry.Name, row.Entry.Color.Hex(), s.Block(row.Entry.Color)})
	}
	return writeGrid(w, rows)
}

// WriteList writes every entry of p, one per line.
func WriteList(w io.Writer, p *palette.Palette, s *Swatch) error {
	rows := make([][]string, 0, p.Len())
	for _, e := range p.Entries() {
		rows = append(rows, []string{e.Name, e.Color.Hex(), s.Block(e.Color)})
	}
	return writeGrid(w, rows)
}

// writeGrid draws rows in an ASCII grid. Widths are measured in terminal
// cells, so cells may carry escape sequences.
func writeGrid(w io.Writer, rows [][]string) error {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			if n := lipgloss.Width(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var sep strings.Builder
	sep.WriteByte('+')
	for _, n := range widths {
		sep.WriteString(strings.Repeat("-", n+2))
		sep.WriteByte('+')
	}
	sep.WriteByte('\n')

	bw := bufio.NewWriter(w)
	bw.WriteString(sep.String())
	for _, row := range rows {
		bw.WriteByte('|')
		for i, n := range widths {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			bw.WriteByte(' ')
			bw.WriteString(cell)
			bw.WriteString(strings.Repeat(" ", n-lipgloss.Width(cell)+1))
			bw.WriteByte('|')
		}
		bw.WriteByte('\n')
		bw.WriteString(sep.String())
	}
	return bw.Flush()
}
