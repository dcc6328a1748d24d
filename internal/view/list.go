// Package view turns catalog subsets into a renderer-independent view model
// and serializes it as an HTML node tree.
package view

import (
	"fmt"
	"time"

	"github.com/ziadkadry99/catalogview/internal/catalog"
)

// Summary and placeholder texts.
const (
	SummaryNoItems = "No items found"
	SummaryError   = "Error loading data"
	SummaryLoading = "Loading..."

	NoResultsMessage = "🔍 No items found matching your search."
	NoResultsHint    = "Try adjusting your search or filters."
	ErrorMessage     = "Error loading data. Please try again later."
	ErrorHint        = "Check that the movies and series sources are reachable."
)

// rowStagger is the animation delay added per row.
const rowStagger = 50 * time.Millisecond

// PlaceholderKind distinguishes the single-node list states.
type PlaceholderKind string

const (
	PlaceholderNoResults PlaceholderKind = "no-results"
	PlaceholderError     PlaceholderKind = "error"
	PlaceholderLoading   PlaceholderKind = "loading"
)

// Placeholder is the single node shown instead of rows.
type Placeholder struct {
	Kind  PlaceholderKind
	Lines []string
}

// Row is the visual representation of one item.
type Row struct {
	Type       catalog.Type
	Icon       string
	Letter     string
	Color      string
	Title      string
	SeasonInfo string
	TypeLabel  string
	Delay      time.Duration
}

// Classes returns the CSS classes of the row element.
func (r Row) Classes() string {
	return fmt.Sprintf("item %s-item", r.Type)
}

// ListView is a complete rendering of the visible list and its counters.
// Exactly one of Rows or Placeholder is set.
type ListView struct {
	Rows        []Row
	Placeholder *Placeholder
	Summary     string
	Count       int
}

// Summary describes a visible subset against the full catalog.
func Summary(visible, total int) string {
	switch {
	case visible == 0:
		return SummaryNoItems
	case visible == total:
		return fmt.Sprintf("Showing all %d items", total)
	default:
		return fmt.Sprintf("Showing %d of %d items", visible, total)
	}
}

// NewRow builds the row for an item at the given list position.
func NewRow(it catalog.Item, index int) Row {
	title := it.DisplayTitle
	if it.Type == catalog.TypeMovie {
		title = it.Title
	}
	row := Row{
		Type:      it.Type,
		Icon:      it.Type.Icon(),
		Letter:    catalog.Initial(title),
		Color:     catalog.ColorFor(title),
		Title:     title,
		TypeLabel: string(it.Type),
		Delay:     time.Duration(index) * rowStagger,
	}
	if it.Type == catalog.TypeSeries {
		row.SeasonInfo = it.SeasonInfo
	}
	return row
}

// BuildList renders the visible subset. total is the full catalog and only
// provides the count denominator.
func BuildList(visible, total []catalog.Item) ListView {
	if len(visible) == 0 {
		return ListView{
			Placeholder: &Placeholder{Kind: PlaceholderNoResults, Lines: []string{NoResultsMessage, NoResultsHint}},
			Summary:     SummaryNoItems,
		}
	}

	rows := make([]Row, len(visible))
	for i, it := range visible {
		rows[i] = NewRow(it, i)
	}
	return ListView{
		Rows:    rows,
		Summary: Summary(len(visible), len(total)),
		Count:   len(visible),
	}
}

// BuildError renders the terminal load-failure state.
func BuildError() ListView {
	return ListView{
		Placeholder: &Placeholder{Kind: PlaceholderError, Lines: []string{ErrorMessage, ErrorHint}},
		Summary:     SummaryError,
	}
}

// BuildLoading renders the state before the catalog has loaded.
func BuildLoading() ListView {
	return ListView{
		Placeholder: &Placeholder{Kind: PlaceholderLoading, Lines: []string{SummaryLoading}},
		Summary:     SummaryLoading,
	}
}
