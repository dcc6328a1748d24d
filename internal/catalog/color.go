package catalog

import (
	"unicode"
	"unicode/utf8"
)

// Palette is the fixed, ordered set of poster placeholder colors.
var Palette = [10]string{
	"#e74c3c",
	"#3498db",
	"#2ecc71",
	"#f39c12",
	"#9b59b6",
	"#1abc9c",
	"#d35400",
	"#c0392b",
	"#16a085",
	"#8e44ad",
}

// ColorFor picks the poster color for a display title from its upper-cased
// first character. Titles sharing a first letter, in any case, get the same
// color. An empty title gets the first palette entry.
func ColorFor(title string) string {
	r, _ := utf8.DecodeRuneInString(title)
	if r == utf8.RuneError {
		return Palette[0]
	}
	return Palette[int(unicode.ToUpper(r))%len(Palette)]
}

// Initial returns the upper-cased first character of a title, or "" for an
// empty title.
func Initial(title string) string {
	r, _ := utf8.DecodeRuneInString(title)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
