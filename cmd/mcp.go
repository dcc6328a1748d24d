package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/catalogview/internal/app"
	mcpserver "github.com/ziadkadry99/catalogview/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing catalog search tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Stdout carries the protocol.
		log.SetOutput(os.Stderr)

		holder := app.NewCatalogHolder()
		holder.Start(context.Background(), newLoader(cfg).LoadCatalog)

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "catalogview MCP server started on stdio (movies=%s, series=%s)\n", cfg.MoviesSource, cfg.SeriesSource)

		srv := mcpserver.NewServer(holder)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
