package web

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/ziadkadry99/catalogview/internal/app"
	"github.com/ziadkadry99/catalogview/internal/catalog"
	"github.com/ziadkadry99/catalogview/internal/view"
)

// colorSchemeHint is the client hint carrying the browser's color scheme.
const colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// itemsResponse is the JSON response for the items endpoint.
type itemsResponse struct {
	Items   []catalog.Item `json:"items"`
	Count   int            `json:"count"`
	Total   int            `json:"total"`
	Summary string         `json:"summary"`
}

// themeResponse is the JSON response for the theme endpoint.
type themeResponse struct {
	Theme app.Theme `json:"theme"`
	Class string    `json:"class"`
}

// resolveTheme reads the persisted theme, falling back to the request's
// color-scheme hint.
func (wb *Web) resolveTheme(r *http.Request) app.Theme {
	var saved string
	if wb.prefs != nil {
		v, err := wb.prefs.Theme(r.Context())
		if err != nil {
			log.Printf("web: reading theme preference: %v", err)
		}
		saved = v
	}
	return app.ResolveTheme(saved, strings.EqualFold(r.Header.Get(colorSchemeHint), "dark"))
}

// newController builds a controller for one request or session, seeded with
// the catalog if it has resolved.
func (wb *Web) newController(r *http.Request, render func(app.View)) *app.Controller {
	c := app.NewController(wb.prefs, wb.resolveTheme(r), render)
	wb.holder.Apply(c)
	return c
}

func (wb *Web) handlePage(w http.ResponseWriter, r *http.Request) {
	c := wb.newController(r, nil)

	q := r.URL.Query()
	if cat, err := catalog.ParseCategory(q.Get("type")); err == nil {
		c.SetCategory(cat)
	}
	c.SetSearch(q.Get("q"))
	v := c.View()

	page := view.Page{
		Title:        wb.opts.Title,
		ThemeClass:   v.Theme.Class(),
		IntroHTML:    wb.opts.IntroHTML,
		Search:       v.Search,
		Active:       v.Active,
		ClearVisible: v.ClearVisible,
		Loading:      v.Loading,
		List:         v.List,
		AssetPrefix:  assetPrefix,
	}

	w.Header().Set("Accept-CH", colorSchemeHint)
	w.Header().Set("Vary", colorSchemeHint)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.Render(w, view.PageNode(page)); err != nil {
		log.Printf("web: rendering page: %v", err)
	}
}

func (wb *Web) handleItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cat, err := catalog.ParseCategory(q.Get("type"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	items, ready, loadErr := wb.holder.Snapshot()
	switch {
	case !ready:
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": view.SummaryLoading})
		return
	case loadErr != nil:
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": view.SummaryError})
		return
	}

	visible := catalog.Filter(items, q.Get("q"), cat)
	writeJSON(w, http.StatusOK, itemsResponse{
		Items:   visible,
		Count:   len(visible),
		Total:   len(items),
		Summary: view.Summary(len(visible), len(items)),
	})
}

func (wb *Web) handleTheme(w http.ResponseWriter, r *http.Request) {
	c := app.NewController(wb.prefs, wb.resolveTheme(r), nil)
	if err := c.ToggleTheme(r.Context()); err != nil {
		log.Printf("web: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	theme := c.State().Theme

	if !strings.Contains(r.Header.Get("Accept"), "application/json") {
		target := "/"
		if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" && !strings.HasPrefix(ref.Path, "//") {
			target = ref.RequestURI()
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: theme, Class: theme.Class()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
