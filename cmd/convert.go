package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/codi/colorspace"
	"github.com/mmuldo/codi/report"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Shows a color in XYZ and L*a*b*",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := colorspace.ParseHex(args[0])
		if err != nil {
			return fmt.Errorf("cannot parse argument %q: %w", args[0], err)
		}
		return report.WriteConversion(cmd.OutOrStdout(), c, swatch(cmd))
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
