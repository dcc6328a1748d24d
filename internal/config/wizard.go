package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// sourcePresets are the data source layouts offered by the wizard.
var sourcePresets = []struct {
	Label  string
	Movies string
	Series string
}{
	{Label: "local files (movies.json, series.json next to the binary)", Movies: "movies.json", Series: "series.json"},
	{Label: "remote site (enter a base URL)"},
	{Label: "custom (enter each source)"},
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to catalogview! Let's configure your catalog.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Where the data lives.
	labels := make([]string, len(sourcePresets))
	for i, p := range sourcePresets {
		labels[i] = p.Label
	}
	sourcePrompt := promptui.Select{
		Label: "Where are movies.json and series.json?",
		Items: labels,
	}
	idx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}

	switch idx {
	case 0:
		cfg.MoviesSource = sourcePresets[0].Movies
		cfg.SeriesSource = sourcePresets[0].Series
	case 1:
		basePrompt := promptui.Prompt{
			Label:    "Base URL",
			Validate: validateURL,
		}
		base, err := basePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("base url: %w", err)
		}
		base = strings.TrimRight(strings.TrimSpace(base), "/")
		cfg.MoviesSource = base + "/movies.json"
		cfg.SeriesSource = base + "/series.json"
	default:
		moviesPrompt := promptui.Prompt{Label: "Movies source (URL or path)", Default: cfg.MoviesSource, Validate: validateNonEmpty}
		if cfg.MoviesSource, err = moviesPrompt.Run(); err != nil {
			return nil, fmt.Errorf("movies source: %w", err)
		}
		seriesPrompt := promptui.Prompt{Label: "Series source (URL or path)", Default: cfg.SeriesSource, Validate: validateNonEmpty}
		if cfg.SeriesSource, err = seriesPrompt.Run(); err != nil {
			return nil, fmt.Errorf("series source: %w", err)
		}
	}

	// 2. Page title.
	titlePrompt := promptui.Prompt{
		Label:   "Page title",
		Default: cfg.Title,
	}
	if cfg.Title, err = titlePrompt.Run(); err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 3. Port for `catalogview serve`.
	portPrompt := promptui.Prompt{
		Label:    "Port for the web viewer",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

func validateURL(s string) error {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return fmt.Errorf("must start with http:// or https://")
	}
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
