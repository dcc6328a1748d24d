package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/catalogview/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "catalogview",
	Short: "Browse a merged movie and series catalog",
	Long: `catalogview fetches a movies resource and a series resource, merges them
into one sorted, de-duplicated catalog and lets you browse it with live
search, category filters and a light/dark theme, in the browser (serve),
in the terminal (browse), as a one-shot listing (list) or from an AI agent
over MCP (mcp).`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
