package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/ziadkadry99/catalogview/internal/catalog"
	"github.com/ziadkadry99/catalogview/internal/config"
	"github.com/ziadkadry99/catalogview/internal/db"
	"github.com/ziadkadry99/catalogview/internal/loader"
	"github.com/ziadkadry99/catalogview/internal/prefs"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `catalogview init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "config: movies=%s series=%s locale=%s\n", cfg.MoviesSource, cfg.SeriesSource, cfg.LocaleTag())
	}
	return cfg, nil
}

// newLoader builds the resource loader described by cfg.
func newLoader(cfg *config.Config, opts ...loader.Option) *loader.Loader {
	base := []loader.Option{
		loader.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		loader.WithCatalogOptions(catalog.WithLocale(cfg.LocaleTag())),
	}
	return loader.New(cfg.MoviesSource, cfg.SeriesSource, append(base, opts...)...)
}

// openPrefs opens the preference database. The caller closes the DB.
func openPrefs(cfg *config.Config) (*db.DB, *prefs.Store, error) {
	database, err := db.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return database, prefs.NewStore(database), nil
}
