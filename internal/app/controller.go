// Package app holds the viewer's session state and the controllers that
// mutate it. A Controller is owned by a single goroutine.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ziadkadry99/catalogview/internal/catalog"
	"github.com/ziadkadry99/catalogview/internal/view"
)

// PreferenceStore persists the theme preference.
type PreferenceStore interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, value string) error
}

// Phase is the catalog load state of a session.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseFailed
)

// State is the session's mutable state. Catalog is immutable once set.
type State struct {
	Catalog  []catalog.Item
	Search   string
	Category catalog.Category
	Theme    Theme
	Phase    Phase
	LoadErr  error
}

// View is what a front end needs to redraw after any state change.
type View struct {
	List         view.ListView
	Search       string
	ClearVisible bool
	Active       catalog.Category
	Theme        Theme
	FocusSearch  bool
	Loading      bool
}

// Controller owns a State and re-renders through its callback after every
// mutation.
type Controller struct {
	state  State
	prefs  PreferenceStore
	render func(View)
}

// NewController creates a controller in the loading phase.
// prefs and render may be nil.
func NewController(prefs PreferenceStore, theme Theme, render func(View)) *Controller {
	return &Controller{
		state: State{
			Category: catalog.CategoryAll,
			Theme:    theme,
			Phase:    PhaseLoading,
		},
		prefs:  prefs,
		render: render,
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Loaded installs the catalog and performs the initial render.
func (c *Controller) Loaded(items []catalog.Item) {
	c.state.Catalog = items
	c.state.Phase = PhaseReady
	c.state.LoadErr = nil
	c.emit(false)
}

// Failed records a terminal load error and renders the error state.
func (c *Controller) Failed(err error) {
	c.state.Catalog = nil
	c.state.Phase = PhaseFailed
	c.state.LoadErr = err
	c.emit(false)
}

// SetSearch updates the search text and re-renders.
func (c *Controller) SetSearch(text string) {
	c.state.Search = text
	c.emit(false)
}

// ClearSearch empties the search text, re-renders, and asks the front end to
// focus the search input.
func (c *Controller) ClearSearch() {
	c.state.Search = ""
	c.emit(true)
}

// SetCategory selects the active category and re-renders.
func (c *Controller) SetCategory(cat catalog.Category) {
	if cat == "" {
		cat = catalog.CategoryAll
	}
	c.state.Category = cat
	c.emit(false)
}

// ToggleTheme flips the theme, persists it and re-renders. The theme is
// applied even if persisting fails.
func (c *Controller) ToggleTheme(ctx context.Context) error {
	c.state.Theme = c.state.Theme.Toggle()
	c.emit(false)
	if c.prefs == nil {
		return nil
	}
	if err := c.prefs.SetTheme(ctx, c.state.Theme.Class()); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// Visible returns the items matching the current search and category.
func (c *Controller) Visible() []catalog.Item {
	return catalog.Filter(c.state.Catalog, c.state.Search, c.state.Category)
}

// View computes the current view without rendering it.
func (c *Controller) View() View {
	return c.buildView(false)
}

func (c *Controller) buildView(focus bool) View {
	v := View{
		Search:       c.state.Search,
		ClearVisible: strings.TrimSpace(c.state.Search) != "",
		Active:       c.state.Category,
		Theme:        c.state.Theme,
		FocusSearch:  focus,
	}
	switch c.state.Phase {
	case PhaseLoading:
		v.List = view.BuildLoading()
		v.Loading = true
	case PhaseFailed:
		v.List = view.BuildError()
	default:
		v.List = view.BuildList(c.Visible(), c.state.Catalog)
	}
	return v
}

func (c *Controller) emit(focus bool) {
	if c.render != nil {
		c.render(c.buildView(focus))
	}
}
