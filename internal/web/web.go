// Package web serves the catalog viewer page and its live session.
package web

import (
	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/catalogview/internal/app"
)

// Options configures the page chrome.
type Options struct {
	Title     string
	IntroHTML string
}

// Web provides the viewer page, JSON API and WebSocket session.
type Web struct {
	holder *app.CatalogHolder
	prefs  app.PreferenceStore
	opts   Options
}

// New creates a Web. prefs may be nil, in which case theme changes are not
// persisted.
func New(holder *app.CatalogHolder, prefs app.PreferenceStore, opts Options) *Web {
	if opts.Title == "" {
		opts.Title = "Catalog"
	}
	return &Web{holder: holder, prefs: prefs, opts: opts}
}

// RegisterRoutes mounts all viewer routes onto the given router.
func (wb *Web) RegisterRoutes(r chi.Router) {
	r.Get("/", wb.handlePage)
	r.Get("/api/items", wb.handleItems)
	r.Post("/api/theme", wb.handleTheme)
	r.Get("/ws/session", wb.handleSession)
	r.Handle("/assets/*", assetHandler())
}
