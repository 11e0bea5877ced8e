package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/codi/colorspace"
	"github.com/mmuldo/codi/distance"
	"github.com/mmuldo/codi/report"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <color> <color>",
	Short: "Measures the distance between two colors",
	Long: `Measures the distance between two hex colors with every metric, along
with the CIEDE2000 difference for reference. CIE94 is not symmetric: the
first color is the reference.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cs [2]colorspace.RGB
		for i, arg := range args {
			c, err := colorspace.ParseHex(arg)
			if err != nil {
				return fmt.Errorf("cannot parse argument %q: %w", arg, err)
			}
			cs[i] = c
		}

		c := report.Compare(cs[0], cs[1], distance.All())
		return c.WriteTable(cmd.OutOrStdout(), swatch(cmd))
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
