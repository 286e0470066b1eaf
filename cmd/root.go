package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/doccatalog/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "doccatalog",
	Short: "Serve a category-filterable catalog of downloadable documents",
	Long: `doccatalog renders a page of document cards filtered by category
(articles, environmental impact assessments, reports, regulations),
each with a download link into the static assets folder. It also
exposes the catalog as JSON and can verify that every linked file exists.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
