package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmuldo/codi/colorspace"
	"github.com/mmuldo/codi/distance"
	"github.com/mmuldo/codi/palette"
)

func init() {
	homedir.DisableCache = true
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes codi with args in a fresh home directory.
func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	if home == "" {
		home = t.TempDir()
	}
	t.Setenv("HOME", home)
	viper.Reset()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

const ff55ffTable = `+--------------------+------------+---------+----+
| Algorithm          | HTML color | Hex     |    |
+--------------------+------------+---------+----+
| > Original color   | unknown    | #FF55FF |    |
+--------------------+------------+---------+----+
| Euclidean          | violet     | #EE82EE |    |
+--------------------+------------+---------+----+
| Euclidean Improved | violet     | #EE82EE |    |
+--------------------+------------+---------+----+
| CIE94              | magenta    | #FF00FF |    |
+--------------------+------------+---------+----+
`

func TestClosest(t *testing.T) {
	out, err := run(t, "", "--no-color", "#FF55FF")
	require.NoError(t, err)
	assert.Equal(t, ff55ffTable, out)
}

func TestClosest_exactMatch(t *testing.T) {
	out, err := run(t, "", "ff7f50")
	require.NoError(t, err)
	assert.Regexp(t, `> Original color +\| coral +\| #FF7F50`, out)
	assert.Equal(t, 4, strings.Count(out, "coral"))
}

func TestClosest_metric(t *testing.T) {
	out, err := run(t, "", "-m", "cie94", "#FF55FF")
	require.NoError(t, err)
	assert.Contains(t, out, "| CIE94 ")
	assert.NotContains(t, out, "Euclidean")

	out, err = run(t, "", "--metric", "redmean", "#FF55FF")
	require.NoError(t, err)
	assert.Contains(t, out, "| Euclidean Improved | violet ")
	assert.NotContains(t, out, "CIE94")

	_, err = run(t, "", "-m", "nope", "#FF55FF")
	assert.ErrorIs(t, err, distance.ErrUnknownMetric)
}

func TestClosest_badInput(t *testing.T) {
	_, err := run(t, "", "12345")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `cannot parse argument "12345"`)
	assert.ErrorIs(t, err, colorspace.ErrHexLength)

	_, err = run(t, "", "#00000g")
	assert.ErrorIs(t, err, colorspace.ErrHexDigit)

	_, err = run(t, "")
	assert.EqualError(t, err, "missing color argument")

	_, err = run(t, "", "--not-exist-option")
	assert.ErrorContains(t, err, "unknown flag: --not-exist-option")

	_, err = run(t, "", "000000", "ffffff")
	assert.Error(t, err)
}

func TestClosest_template(t *testing.T) {
	out, err := run(t, "", "-t", "{{ exact }}:{% for row in rows %} {{ row.name }}{% endfor %}", "#FF55FF")
	require.NoError(t, err)
	assert.Equal(t, "unknown: violet violet magenta", out)

	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "closest.tpl"), []byte("{{ target }} is {{ exact }}"), 0o644))
	out, err = run(t, home, "--template-file", "~/closest.tpl", "ff7f50")
	require.NoError(t, err)
	assert.Equal(t, "#FF7F50 is coral", out)
}

func TestClosest_catalog(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "mine.txt"), []byte("dark #101010\nlight #EFEFEF\n"), 0o644))

	out, err := run(t, home, "-c", "~/mine.txt", "-t", "{% for row in rows %}{{ row.name }} {% endfor %}", "#202020")
	require.NoError(t, err)
	assert.Equal(t, "dark dark dark ", out)

	require.NoError(t, os.WriteFile(filepath.Join(home, "empty.txt"), nil, 0o644))
	_, err = run(t, home, "-c", "~/empty.txt", "#202020")
	assert.ErrorIs(t, err, palette.ErrEmpty)

	_, err = run(t, home, "-c", "~/missing.txt", "#202020")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".codi.yaml"), []byte("metric: euclidean\nno-color: true\n"), 0o644))

	out, err := run(t, home, "#FF55FF")
	require.NoError(t, err)
	assert.Contains(t, out, "| Euclidean ")
	assert.NotContains(t, out, "CIE94")

	out, err = run(t, home, "-m", "all", "#FF55FF")
	require.NoError(t, err)
	assert.Equal(t, ff55ffTable, out, "flags win over the config file")

	t.Setenv("CODI_METRIC", "cie94")
	out, err = run(t, home, "#FF55FF")
	require.NoError(t, err)
	assert.Contains(t, out, "| CIE94 ")
	assert.NotContains(t, out, "Euclidean")
}

func TestConfig_explicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metric: cie94\n"), 0o644))

	out, err := run(t, "", "--config", path, "#FF55FF")
	require.NoError(t, err)
	assert.Contains(t, out, "| CIE94 ")

	_, err = run(t, "", "--config", filepath.Join(dir, "missing.yaml"), "#FF55FF")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := run(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, 2*palette.StandardLen+1, strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, "+"))
	assert.Contains(t, out, "| aliceblue ")
	assert.Contains(t, out, "| coral                | #FF7F50 |")

	all, err := run(t, "", "--all-html")
	require.NoError(t, err)
	assert.Equal(t, out, all)

	_, err = run(t, "", "list", "extra")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, err := run(t, "", "compare", "#FF55FF", "ee82ee")
	require.NoError(t, err)
	assert.Contains(t, out, "| Euclidean             | 2603.0000  |")
	assert.Contains(t, out, "| CIEDE2000 (reference) |")

	_, err = run(t, "", "compare", "#FF55FF")
	assert.Error(t, err)

	_, err = run(t, "", "compare", "#FF55FF", "xyz")
	assert.ErrorIs(t, err, colorspace.ErrHexLength)
}

func TestConvert(t *testing.T) {
	out, err := run(t, "", "convert", "#00a0f0")
	require.NoError(t, err)
	assert.Contains(t, out, "| sRGB       | #00A0F0 ")
	assert.Contains(t, out, "| L*a*b*     | 62.8714 -6.0924 -49.6120 ")
	assert.Contains(t, out, "| round trip | #00A0F0 ")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "codi version "+Version+"\n", out)
}
