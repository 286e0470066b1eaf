package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/doccatalog/internal/config"
)

var (
	initInteractive bool
	initForce       bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a doccatalog configuration file",
	Long:  `Writes the default configuration to the --config path. With --interactive, a wizard asks for the port, default category and static directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}

		if initInteractive {
			_, err := config.RunWizard(cfgFile)
			return err
		}

		if err := config.DefaultConfig().Save(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", cfgFile)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "run the interactive wizard")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
