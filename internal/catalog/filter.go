package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the subsequence of items matching the category and the
// search query, preserving catalog order. The category is applied first; the
// query is trimmed and case folded. Series match on display title or season
// info, movies on the raw title.
func Filter(items []Item, query string, category Category) []Item {
	fold := cases.Fold()
	term := fold.String(strings.TrimSpace(query))

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if category != "" && category != CategoryAll && Type(category) != it.Type {
			continue
		}
		if term != "" && !matches(fold, it, term) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matches(fold cases.Caser, it Item, term string) bool {
	if it.Type == TypeSeries {
		if strings.Contains(fold.String(it.DisplayTitle), term) {
			return true
		}
		return it.SeasonInfo != "" && strings.Contains(fold.String(it.SeasonInfo), term)
	}
	return strings.Contains(fold.String(it.Title), term)
}

// CountByType tallies items per type.
func CountByType(items []Item) map[Type]int {
	counts := map[Type]int{TypeMovie: 0, TypeSeries: 0}
	for _, it := range items {
		counts[it.Type]++
	}
	return counts
}
