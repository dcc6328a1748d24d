package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/catalogview/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize catalogview configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the catalog sources and viewer settings and writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
