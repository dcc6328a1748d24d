package app

import "strings"

// Theme is the rendering mode.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light"/"dark" and the persisted "light-mode"/"dark-mode"
// spellings. ok is false for anything else.
func ParseTheme(s string) (Theme, bool) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "-mode") {
	case "light":
		return ThemeLight, true
	case "dark":
		return ThemeDark, true
	}
	return "", false
}

// Class returns the body class, which is also the persisted value.
func (t Theme) Class() string {
	return string(t) + "-mode"
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ResolveTheme picks the initial theme: a valid saved preference wins, then
// the host's dark color-scheme hint, then light.
func ResolveTheme(saved string, prefersDark bool) Theme {
	if t, ok := ParseTheme(saved); ok {
		return t
	}
	if prefersDark {
		return ThemeDark
	}
	return ThemeLight
}
