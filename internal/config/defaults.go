package config

import "time"

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".catalogview.yml"

// DefaultConfig returns a Config with sensible defaults: the two resources
// are expected next to the binary.
func DefaultConfig() *Config {
	return &Config{
		MoviesSource:   "movies.json",
		SeriesSource:   "series.json",
		Database:       ".catalogview/catalogview.db",
		Port:           8080,
		Locale:         "und",
		Title:          "Movie & Series Catalog",
		RequestTimeout: 30 * time.Second,
	}
}
