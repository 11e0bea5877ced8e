/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/codi/colorspace"
	"github.com/mmuldo/codi/distance"
	"github.com/mmuldo/codi/palette"
	"github.com/mmuldo/codi/report"
)

// Version is set at build time with -ldflags "-X github.com/mmuldo/codi/cmd.Version=...".
var Version = "0.3.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "codi [color]",
	Short: "Find the closest named HTML color",
	Long: `Find the named HTML color closest to a hex color such as "#FF55FF" or
"ff7f50". Every distance metric is tried by default; --metric picks one.

Keys can also be set in $HOME/.codi.yaml or as CODI_* environment
variables: metric, catalog, template, template-file, no-color.`,
	Example: `  codi "#81818d"
  codi -m cie94 ff55ff
  codi --all-html`,
	Version:           Version,
	Args:              cobra.MaximumNArgs(1),
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	RunE:              runClosest,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "codi: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("codi: ")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.codi.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log which config file is used")
	rootCmd.PersistentFlags().StringP("catalog", "c", "", "file of \"name hex\" lines to search instead of the HTML colors")
	rootCmd.PersistentFlags().Bool("no-color", false, "never paint color swatches")

	rootCmd.Flags().StringP("metric", "m", "all",
		"distance metric: all, "+strings.Join(distance.Keys(), ", ")+" (or redmean)")
	rootCmd.Flags().StringP("template", "t", "", "pongo2 template to print the result with instead of a table")
	rootCmd.Flags().String("template-file", "", "file holding a pongo2 template")
	rootCmd.Flags().Bool("all-html", false, "list every named color and exit")
}

// initConfig reads in config file and ENV variables if set.
func initConfig(cmd *cobra.Command, args []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return err
		}

		// Search config in home directory with name ".codi" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".codi")
	}

	viper.SetEnvPrefix("codi")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		if verbose {
			log.Println("using config file:", viper.ConfigFileUsed())
		}
	case errors.As(err, &notFound) && cfgFile == "":
	default:
		return err
	}

	return nil
}

func runClosest(cmd *cobra.Command, args []string) error {
	p, err := loadPalette()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if viper.GetBool("all-html") {
		return report.WriteList(out, p, swatch(cmd))
	}
	if len(args) == 0 {
		return errors.New("missing color argument")
	}

	target, err := colorspace.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("cannot parse argument %q: %w", args[0], err)
	}
	ms, err := metrics()
	if err != nil {
		return err
	}

	r, err := report.Build(p, target, ms)
	if err != nil {
		return err
	}

	if path := viper.GetString("template-file"); path != "" {
		if path, err = expand(path); err != nil {
			return err
		}
		return r.RenderFile(out, path)
	}
	if tpl := viper.GetString("template"); tpl != "" {
		return r.Render(out, tpl)
	}
	return r.WriteTable(out, swatch(cmd))
}

// loadPalette returns the catalog named by the "catalog" key, or the
// standard HTML colors.
func loadPalette() (*palette.Palette, error) {
	path := viper.GetString("catalog")
	if path == "" {
		return palette.Standard(), nil
	}

	path, err := expand(path)
	if err != nil {
		return nil, err
	}
	return palette.LoadFile(path)
}

func metrics() ([]distance.Metric, error) {
	key := viper.GetString("metric")
	if key == "" || strings.EqualFold(key, "all") {
		return distance.All(), nil
	}

	m, err := distance.Lookup(key)
	if err != nil {
		return nil, err
	}
	return []distance.Metric{m}, nil
}

func swatch(cmd *cobra.Command) *report.Swatch {
	return report.NewSwatch(cmd.OutOrStdout(), !viper.GetBool("no-color"))
}

// expand resolves a leading "~" and makes path absolute.
func expand(path string) (string, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(path)
}
