package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/catalogview/internal/app"
)

// styles holds the lipgloss styles for one theme.
type styles struct {
	app         lipgloss.Style
	title       lipgloss.Style
	searchBox   lipgloss.Style
	hint        lipgloss.Style
	tab         lipgloss.Style
	activeTab   lipgloss.Style
	count       lipgloss.Style
	summary     lipgloss.Style
	badge       lipgloss.Style
	rowTitle    lipgloss.Style
	seasonInfo  lipgloss.Style
	movieLabel  lipgloss.Style
	seriesLabel lipgloss.Style
	placeholder lipgloss.Style
	errorText   lipgloss.Style
}

type palette struct {
	fg, muted, border, accent, surface, movie, series, danger lipgloss.Color
}

var (
	lightPalette = palette{
		fg:      "#2c3e50",
		muted:   "#7f8c8d",
		border:  "#bdc3c7",
		accent:  "#3498db",
		surface: "#ecf0f1",
		movie:   "#e67e22",
		series:  "#9b59b6",
		danger:  "#c0392b",
	}
	darkPalette = palette{
		fg:      "#ecf0f1",
		muted:   "#95a5a6",
		border:  "#34495e",
		accent:  "#5dade2",
		surface: "#2c3e50",
		movie:   "#f0b27a",
		series:  "#c39bd3",
		danger:  "#e74c3c",
	}
)

func newStyles(theme app.Theme) styles {
	p := lightPalette
	if theme == app.ThemeDark {
		p = darkPalette
	}

	return styles{
		app:         lipgloss.NewStyle().Padding(1, 2).Foreground(p.fg),
		title:       lipgloss.NewStyle().Bold(true).Foreground(p.accent).MarginBottom(1),
		searchBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		hint:        lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		tab:         lipgloss.NewStyle().Padding(0, 2).Foreground(p.muted),
		activeTab:   lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(p.fg).Background(p.surface).Underline(true),
		count:       lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		summary:     lipgloss.NewStyle().Foreground(p.muted),
		badge:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Width(3).Align(lipgloss.Center),
		rowTitle:    lipgloss.NewStyle().Foreground(p.fg),
		seasonInfo:  lipgloss.NewStyle().Foreground(p.muted),
		movieLabel:  lipgloss.NewStyle().Foreground(p.movie),
		seriesLabel: lipgloss.NewStyle().Foreground(p.series),
		placeholder: lipgloss.NewStyle().Foreground(p.muted).PaddingLeft(2),
		errorText:   lipgloss.NewStyle().Foreground(p.danger).PaddingLeft(2),
	}
}
