package catalog

import (
	"fmt"
	"strings"
)

// Type identifies the kind of catalog entry.
type Type string

const (
	TypeMovie  Type = "movie"
	TypeSeries Type = "series"
)

// Category narrows the visible items by type. CategoryAll disables the filter.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryMovie  Category = Category(TypeMovie)
	CategorySeries Category = Category(TypeSeries)
)

// Categories lists the category buttons in display order.
var Categories = []Category{CategoryAll, CategoryMovie, CategorySeries}

// ParseCategory converts a user-supplied value into a Category.
// The empty string maps to CategoryAll.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case "", CategoryAll:
		return CategoryAll, nil
	case CategoryMovie, CategorySeries:
		return c, nil
	default:
		return "", fmt.Errorf("invalid category %q: must be one of all, movie, series", s)
	}
}

// Label returns the button label for the category.
func (c Category) Label() string {
	switch c {
	case CategoryMovie:
		return "Movies"
	case CategorySeries:
		return "Series"
	default:
		return "All"
	}
}

// Item is one normalized catalog entry.
type Item struct {
	// Title is the raw source string and the catalog's unique key.
	Title        string `json:"title"`
	Type         Type   `json:"type"`
	DisplayTitle string `json:"display_title"`
	// SeasonInfo is only ever set for series.
	SeasonInfo string `json:"season_info,omitempty"`
}

// ParseSeriesTitle splits a raw series title on the first "|" into a display
// title and season info, both trimmed. A title without "|" is returned as is
// with empty season info.
func ParseSeriesTitle(raw string) (displayTitle, seasonInfo string) {
	name, season, found := strings.Cut(raw, "|")
	if !found {
		return raw, ""
	}
	return strings.TrimSpace(name), strings.TrimSpace(season)
}

// Icon returns the marker shown next to an item of the given type.
func (t Type) Icon() string {
	if t == TypeMovie {
		return "🎬"
	}
	return "📺"
}
