package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/catalogview/internal/app"
	"github.com/ziadkadry99/catalogview/internal/catalog"
	"github.com/ziadkadry99/catalogview/internal/loader"
	"github.com/ziadkadry99/catalogview/internal/progress"
	"github.com/ziadkadry99/catalogview/internal/view"
)

var (
	listSearch string
	listType   string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog, optionally filtered",
	Long:  `Loads the catalog once and prints the items matching --search and --type followed by the summary line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.ParseCategory(listType)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		reporter := progress.NewReporter()
		reporter.Start(2)
		ld := newLoader(cfg, loader.WithProgress(func(resource string) {
			reporter.Update("Loaded " + resource)
		}))
		items, loadErr := ld.LoadCatalog(ctx)
		reporter.Finish()

		c := app.NewController(nil, app.ThemeLight, nil)
		if loadErr != nil {
			c.Failed(loadErr)
		} else {
			c.Loaded(items)
		}
		c.SetCategory(cat)
		c.SetSearch(listSearch)

		if listJSON {
			if loadErr != nil {
				return fmt.Errorf("%s: %w", view.SummaryError, loadErr)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(c.Visible())
		}

		fmt.Fprint(cmd.OutOrStdout(), c.View().List.Text())
		if loadErr != nil {
			return fmt.Errorf("%s: %w", view.SummaryError, loadErr)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "case-insensitive title substring")
	listCmd.Flags().StringVarP(&listType, "type", "t", "all", "category: all, movie or series")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print matching items as JSON")
	rootCmd.AddCommand(listCmd)
}
