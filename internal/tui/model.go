// Package tui is the terminal front end: a Bubble Tea program over the same
// controller the web session uses.
package tui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/catalogview/internal/app"
	"github.com/ziadkadry99/catalogview/internal/catalog"
	"github.com/ziadkadry99/catalogview/internal/view"
)

// Options configures the terminal viewer.
type Options struct {
	Title  string
	Holder *app.CatalogHolder
	Prefs  app.PreferenceStore
	Theme  app.Theme
}

// catalogMsg carries the resolved catalog load.
type catalogMsg struct {
	items []catalog.Item
	err   error
}

// Model is the Bubble Tea model. It owns the session's controller.
type Model struct {
	ctx     context.Context
	opts    Options
	ctrl    *app.Controller
	current app.View
	styles  styles

	input   textinput.Model
	spinner spinner.Model

	width  int
	height int
	status string
}

// New creates the model in the loading state.
func New(ctx context.Context, opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search movies and series..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 156
	ti.Width = 40
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	theme := opts.Theme
	if theme == "" {
		theme = app.ThemeLight
	}

	m := &Model{
		ctx:     ctx,
		opts:    opts,
		input:   ti,
		spinner: s,
		styles:  newStyles(theme),
	}
	m.ctrl = app.NewController(opts.Prefs, theme, m.render)
	m.current = m.ctrl.View()
	return m
}

// DetectTheme resolves the initial theme from the saved preference and the
// terminal background.
func DetectTheme(ctx context.Context, prefs app.PreferenceStore) app.Theme {
	var saved string
	if prefs != nil {
		v, err := prefs.Theme(ctx)
		if err != nil {
			log.Printf("tui: reading theme preference: %v", err)
		}
		saved = v
	}
	return app.ResolveTheme(saved, lipgloss.HasDarkBackground())
}

// Run starts the program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal viewer: %w", err)
	}
	return nil
}

// render is the controller's render callback.
func (m *Model) render(v app.View) {
	if v.Theme != m.current.Theme {
		m.styles = newStyles(v.Theme)
	}
	m.current = v
}

func waitForCatalog(ctx context.Context, h *app.CatalogHolder) tea.Cmd {
	return func() tea.Msg {
		items, err := h.Wait(ctx)
		return catalogMsg{items: items, err: err}
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.opts.Holder != nil {
		cmds = append(cmds, waitForCatalog(m.ctx, m.opts.Holder))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogMsg:
		if msg.err != nil {
			m.ctrl.Failed(msg.err)
		} else {
			m.ctrl.Loaded(msg.items)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.current.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.input.SetValue("")
		m.ctrl.ClearSearch()
		m.input.Focus()
		return nil
	case "tab":
		m.ctrl.SetCategory(nextCategory(m.current.Active, 1))
		return nil
	case "shift+tab":
		m.ctrl.SetCategory(nextCategory(m.current.Active, -1))
		return nil
	case "alt+1", "alt+2", "alt+3":
		idx := int(msg.Runes[0] - '1')
		m.ctrl.SetCategory(catalog.Categories[idx])
		return nil
	case "ctrl+t":
		m.status = ""
		if err := m.ctrl.ToggleTheme(m.ctx); err != nil {
			m.status = "Theme applied but could not be saved"
			log.Printf("tui: %v", err)
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.current.Search {
		m.ctrl.SetSearch(m.input.Value())
	}
	return cmd
}

func nextCategory(active catalog.Category, step int) catalog.Category {
	n := len(catalog.Categories)
	for i, c := range catalog.Categories {
		if c == active {
			return catalog.Categories[((i+step)%n+n)%n]
		}
	}
	return catalog.CategoryAll
}

func (m *Model) View() string {
	st := m.styles
	var b strings.Builder

	title := m.opts.Title
	if title == "" {
		title = "Movie & Series Catalog"
	}
	b.WriteString(st.title.Render(title))
	b.WriteString("\n")

	search := st.searchBox.Render(m.input.View())
	if m.current.ClearVisible {
		search = lipgloss.JoinHorizontal(lipgloss.Center, search, " ", st.hint.Render("esc to clear"))
	}
	b.WriteString(search)
	b.WriteString("\n")

	tabs := make([]string, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		if c == m.current.Active {
			tabs = append(tabs, st.activeTab.Render(c.Label()))
		} else {
			tabs = append(tabs, st.tab.Render(c.Label()))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	lv := m.current.List
	b.WriteString(st.count.Render(fmt.Sprint(lv.Count)))
	b.WriteString("  ")
	b.WriteString(st.summary.Render(lv.Summary))
	b.WriteString("\n\n")

	b.WriteString(m.listView(lv))

	footer := "tab: category • ctrl+t: theme • ctrl+c: quit"
	if m.status != "" {
		footer = m.status
	}
	b.WriteString("\n")
	b.WriteString(st.hint.Render(footer))

	return st.app.Render(b.String())
}

// maxRows is how many rows fit on screen, or all of them when the size is
// unknown.
func (m *Model) maxRows(total int) int {
	if m.height <= 0 {
		return total
	}
	n := m.height - 14
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	return n
}

func (m *Model) listView(lv view.ListView) string {
	st := m.styles
	var b strings.Builder

	if p := lv.Placeholder; p != nil {
		style := st.placeholder
		if p.Kind == view.PlaceholderError {
			style = st.errorText
		}
		for i, line := range p.Lines {
			if i == 0 && p.Kind == view.PlaceholderLoading {
				line = m.spinner.View() + " " + line
			}
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
		return b.String()
	}

	shown := m.maxRows(len(lv.Rows))
	for _, r := range lv.Rows[:shown] {
		b.WriteString(m.rowView(r))
		b.WriteString("\n")
	}
	if hidden := len(lv.Rows) - shown; hidden > 0 {
		b.WriteString(st.hint.Render(fmt.Sprintf("… %d more", hidden)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) rowView(r view.Row) string {
	st := m.styles
	badge := st.badge.Background(lipgloss.Color(r.Color)).Render(r.Letter)

	label := st.movieLabel
	if r.Type == catalog.TypeSeries {
		label = st.seriesLabel
	}

	parts := []string{badge, " ", st.rowTitle.Render(r.Title)}
	if r.SeasonInfo != "" {
		parts = append(parts, " ", st.seasonInfo.Render(r.SeasonInfo))
	}
	parts = append(parts, "  ", label.Render(r.Icon+" "+r.TypeLabel))
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
