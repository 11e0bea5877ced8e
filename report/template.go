package report

import (
	"io"

	"github.com/flosch/pongo2"
)

// Context exposes r to templates:
//
//	target   the target color as "#RRGGBB"
//	exact    its exact palette name, or "unknown"
//	rows     list of {algorithm, name, hex, distance}
func (r *Report) Context() pongo2.Context {
	rows := make([]map[string]interface{}, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = map[string]interface{}{
			"algorithm": row.Metric,
			"name":      row.Entry.Name,
			"hex":       row.Entry.Color.Hex(),
			"distance":  row.Distance,
		}
	}

	c := pongo2.Context{
		"target": r.Target.Hex(),
		"exact":  r.Exact,
		"rows":   rows,
	}
	setDefaults(c)
	return c
}

func setDefaults(c pongo2.Context) {
	if exact, _ := c["exact"].(string); exact == "" {
		c["exact"] = Unknown
	}
}

// Render executes the template text tpl against r and writes the result to w.
func (r *Report) Render(w io.Writer, tpl string) error {
	t, err := pongo2.FromString(tpl)
	if err != nil {
		return err
	}
	return r.execute(w, t)
}

// RenderFile is like Render with the template read from path.
func (r *Report) RenderFile(w io.Writer, path string) error {
	t, err := pongo2.FromFile(path)
	if err != nil {
		return err
	}
	return r.execute(w, t)
}

func (r *Report) execute(w io.Writer, t *pongo2.Template) error {
	o, err := t.Execute(r.Context())
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, o)
	return err
}
