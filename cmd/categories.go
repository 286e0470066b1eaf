package cmd

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := cfg.Catalog()
		if err != nil {
			return err
		}

		table := tablewriter.NewTable(cmd.OutOrStdout())
		table.Header("ID", "Label", "Folder", "Documents")
		for _, c := range cat.Categories() {
			if err := table.Append(c.ID, c.Label, c.Folder, strconv.Itoa(len(c.Documents))); err != nil {
				return err
			}
		}
		return table.Render()
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
