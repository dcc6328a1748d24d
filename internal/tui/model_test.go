package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ziadkadry99/catalogview/internal/app"
	"github.com/ziadkadry99/catalogview/internal/catalog"
	"github.com/ziadkadry99/catalogview/internal/view"
)

type memPrefs struct {
	value string
	err   error
}

func (m *memPrefs) Theme(ctx context.Context) (string, error) { return m.value, nil }

func (m *memPrefs) SetTheme(ctx context.Context, value string) error {
	if m.err != nil {
		return m.err
	}
	m.value = value
	return nil
}

func scenario() []catalog.Item {
	return catalog.Normalize(
		catalog.MoviesPayload{Title: []string{"Alpha", "Gamma"}},
		catalog.SeriesPayload{Series: []string{"Beta | S1"}},
	)
}

func loadedModel(t *testing.T, prefs app.PreferenceStore) *Model {
	t.Helper()
	m := New(context.Background(), Options{Title: "Test", Prefs: prefs, Theme: app.ThemeLight})
	m.Update(catalogMsg{items: scenario()})
	return m
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestLoadingState(t *testing.T) {
	m := New(context.Background(), Options{})
	if !m.current.Loading {
		t.Fatal("expected loading state before the catalog arrives")
	}
	if !strings.Contains(m.View(), view.SummaryLoading) {
		t.Error("expected loading text in view")
	}
}

func TestLoadedShowsAllItems(t *testing.T) {
	m := loadedModel(t, nil)

	out := m.View()
	for _, want := range []string{"Alpha", "Beta", "S1", "Gamma", "Showing all 3 items"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view", want)
		}
	}
	if strings.Contains(out, "esc to clear") {
		t.Error("clear hint should be hidden with empty search")
	}
}

func TestLoadFailureShowsError(t *testing.T) {
	m := New(context.Background(), Options{})
	m.Update(catalogMsg{err: errors.New("HTTP error! Status: 404")})

	if m.current.List.Placeholder == nil || m.current.List.Placeholder.Kind != view.PlaceholderError {
		t.Fatalf("expected error placeholder, got %+v", m.current.List)
	}
	if !strings.Contains(m.View(), view.ErrorMessage) {
		t.Error("expected error message in view")
	}

	typeText(m, "al")
	if m.current.List.Placeholder == nil || m.current.List.Placeholder.Kind != view.PlaceholderError {
		t.Error("error state should persist while typing")
	}
}

func TestTypingFiltersLive(t *testing.T) {
	m := loadedModel(t, nil)

	typeText(m, "GA")
	if m.current.Search != "GA" {
		t.Fatalf("search = %q, want GA", m.current.Search)
	}
	if len(m.current.List.Rows) != 1 || m.current.List.Rows[0].Title != "Gamma" {
		t.Errorf("unexpected rows: %+v", m.current.List.Rows)
	}
	if !m.current.ClearVisible || !strings.Contains(m.View(), "esc to clear") {
		t.Error("clear hint should be visible")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.current.Search != "" || m.input.Value() != "" || m.current.ClearVisible {
		t.Errorf("esc should clear the search: %+v", m.current)
	}
	if len(m.current.List.Rows) != 3 {
		t.Errorf("expected full list after clear, got %d rows", len(m.current.List.Rows))
	}
	if !m.input.Focused() {
		t.Error("search input should keep focus after clear")
	}
}

func TestLettersAndDigitsGoToSearch(t *testing.T) {
	m := loadedModel(t, nil)

	typeText(m, "q1")
	if m.current.Search != "q1" {
		t.Errorf("search = %q, want q1", m.current.Search)
	}
	if m.current.Active != catalog.CategoryAll {
		t.Errorf("category changed to %q", m.current.Active)
	}
}

func TestCategorySwitching(t *testing.T) {
	m := loadedModel(t, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.current.Active != catalog.CategoryMovie || len(m.current.List.Rows) != 2 {
		t.Errorf("tab: active %q, %d rows", m.current.Active, len(m.current.List.Rows))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.current.Active != catalog.CategorySeries {
		t.Errorf("tab: active %q", m.current.Active)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.current.Active != catalog.CategoryAll {
		t.Errorf("tab should wrap to all, got %q", m.current.Active)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.current.Active != catalog.CategorySeries {
		t.Errorf("shift+tab should wrap to series, got %q", m.current.Active)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true})
	if m.current.Active != catalog.CategoryMovie {
		t.Errorf("alt+2: active %q", m.current.Active)
	}
	if m.current.Search != "" {
		t.Errorf("alt+2 should not type into search, got %q", m.current.Search)
	}
}

func TestThemeToggle(t *testing.T) {
	prefs := &memPrefs{}
	m := loadedModel(t, prefs)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.current.Theme != app.ThemeDark || prefs.value != "dark-mode" {
		t.Errorf("theme %q, persisted %q", m.current.Theme, prefs.value)
	}

	prefs.err = errors.New("disk full")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.current.Theme != app.ThemeLight {
		t.Error("theme should apply even when saving fails")
	}
	if !strings.Contains(m.View(), "could not be saved") {
		t.Error("expected save failure in footer")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := loadedModel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestRowsTruncateToWindow(t *testing.T) {
	m := loadedModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 15})

	if !strings.Contains(m.View(), "… 2 more") {
		t.Error("expected truncation marker for a short window")
	}
}

func TestWaitForCatalog(t *testing.T) {
	h := app.NewCatalogHolder()
	h.Set(scenario(), nil)

	msg := waitForCatalog(context.Background(), h)()
	cm, ok := msg.(catalogMsg)
	if !ok || cm.err != nil || len(cm.items) != 3 {
		t.Errorf("unexpected message: %+v", msg)
	}
}
