package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/doccatalog/internal/assets"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that every linked document exists in the static directory",
	Long:  `Resolves each catalog link against static_dir and reports missing files and PDFs that no document references. Exits non-zero when files are missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := cfg.Catalog()
		if err != nil {
			return err
		}

		rep, err := assets.Verify(cat, cfg.StaticDir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, m := range rep.Missing {
			fmt.Fprintf(out, "missing  [%s] %s\n", m.Category, m.Path)
		}
		for _, o := range rep.Orphans {
			fmt.Fprintf(out, "orphan   %s\n", o)
		}
		fmt.Fprintf(out, "%d documents checked, %d missing, %d orphaned\n", rep.Checked, len(rep.Missing), len(rep.Orphans))

		if !rep.OK() {
			return fmt.Errorf("%d linked documents not found under %s", len(rep.Missing), cfg.StaticDir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
