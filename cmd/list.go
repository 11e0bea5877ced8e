package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mmuldo/codi/report"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists every named color",
	Long: `Lists every named color of the catalog in search order, the same as
codi --all-html.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPalette()
		if err != nil {
			return err
		}
		return report.WriteList(cmd.OutOrStdout(), p, swatch(cmd))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
