package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderPage bool

var renderCmd = &cobra.Command{
	Use:   "render [category]",
	Short: "Print the rendered cards for a category",
	Long:  `Renders the cards container for a category (the configured default when omitted) and prints it to stdout. With --page the full HTML page is printed instead.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		renderer, err := newRenderer(cfg)
		if err != nil {
			return err
		}

		category := cfg.DefaultCategory
		if len(args) == 1 {
			category = args[0]
		}

		out := cmd.OutOrStdout()
		if renderPage {
			return renderer.Page(out, category)
		}
		html, err := renderer.Cards(category)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, html)
		return err
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderPage, "page", false, "print the full page instead of the cards container")
	rootCmd.AddCommand(renderCmd)
}
