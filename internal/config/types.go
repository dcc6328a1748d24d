package config

import "time"

// Config is the top-level catalogview configuration, corresponding to .catalogview.yml.
type Config struct {
	MoviesSource    string        `yaml:"movies_source" koanf:"movies_source"`
	SeriesSource    string        `yaml:"series_source" koanf:"series_source"`
	Database        string        `yaml:"database" koanf:"database"`
	Port            int           `yaml:"port" koanf:"port"`
	Locale          string        `yaml:"locale" koanf:"locale"`
	Title           string        `yaml:"title" koanf:"title"`
	Intro           string        `yaml:"intro" koanf:"intro"`
	RequestTimeout  time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
