package catalog

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrMalformedPayload is returned when a resource decodes as JSON but lacks
// the array field it must carry.
var ErrMalformedPayload = errors.New("malformed catalog payload")

// MoviesPayload is the movies resource: {"Title": [...]}.
type MoviesPayload struct {
	Title []string `json:"Title"`
}

// SeriesPayload is the series resource: {"Series": [...]}.
type SeriesPayload struct {
	Series []string `json:"Series"`
}

// Validate reports ErrMalformedPayload when the Title field was absent or null.
func (p MoviesPayload) Validate() error {
	if p.Title == nil {
		return fmt.Errorf("movies: missing Title array: %w", ErrMalformedPayload)
	}
	return nil
}

// Validate reports ErrMalformedPayload when the Series field was absent or null.
func (p SeriesPayload) Validate() error {
	if p.Series == nil {
		return fmt.Errorf("series: missing Series array: %w", ErrMalformedPayload)
	}
	return nil
}

type normalizeOptions struct {
	tag language.Tag
}

// Option configures Normalize.
type Option func(*normalizeOptions)

// WithLocale sets the collation locale used to order display titles.
// The default is the root locale (language.Und).
func WithLocale(tag language.Tag) Option {
	return func(o *normalizeOptions) { o.tag = tag }
}

// Normalize merges both payloads into the catalog: movies and series are
// mapped to items, stably sorted by display title under locale-aware
// collation, and de-duplicated by raw title keeping the first item in sorted
// order.
func Normalize(movies MoviesPayload, series SeriesPayload, opts ...Option) []Item {
	o := normalizeOptions{tag: language.Und}
	for _, opt := range opts {
		opt(&o)
	}

	items := make([]Item, 0, len(movies.Title)+len(series.Series))
	for _, title := range movies.Title {
		items = append(items, Item{Title: title, Type: TypeMovie, DisplayTitle: title})
	}
	for _, title := range series.Series {
		display, season := ParseSeriesTitle(title)
		items = append(items, Item{Title: title, Type: TypeSeries, DisplayTitle: display, SeasonInfo: season})
	}

	col := collate.New(o.tag)
	sort.SliceStable(items, func(i, j int) bool {
		return col.CompareString(items[i].DisplayTitle, items[j].DisplayTitle) < 0
	})

	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, it := range items {
		if _, dup := seen[it.Title]; dup {
			continue
		}
		seen[it.Title] = struct{}{}
		out = append(out, it)
	}
	return out
}
