package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/catalogview/internal/app"
	"github.com/ziadkadry99/catalogview/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog in the terminal",
	Long:  `Opens a full-screen terminal viewer with live search, category tabs and the theme toggle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, store, err := openPrefs(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Log lines would tear the alternate screen.
		if !verbose {
			log.SetOutput(io.Discard)
			defer log.SetOutput(os.Stderr)
		}

		holder := app.NewCatalogHolder()
		holder.Start(ctx, newLoader(cfg).LoadCatalog)

		err = tui.Run(ctx, tui.Options{
			Title:  cfg.Title,
			Holder: holder,
			Prefs:  store,
			Theme:  tui.DetectTheme(ctx, store),
		})
		if err != nil {
			return err
		}
		if _, ready, loadErr := holder.Snapshot(); ready && loadErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: catalog load failed: %v\n", loadErr)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
