package view

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ziadkadry99/catalogview/internal/catalog"
)

// Page is everything needed to render the full viewer document.
type Page struct {
	Title        string
	ThemeClass   string
	IntroHTML    string
	Search       string
	Active       catalog.Category
	ClearVisible bool
	Loading      bool
	List         ListView
	AssetPrefix  string
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a, Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func appendAll(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c != nil {
			parent.AppendChild(c)
		}
	}
	return parent
}

// RowNode builds the <li> element for one row.
func RowNode(r Row) *html.Node {
	li := element(atom.Li,
		attr("class", r.Classes()),
		attr("style", fmt.Sprintf("animation-delay: %.2fs", r.Delay.Seconds())),
	)

	poster := element(atom.Div, attr("class", "poster"), attr("style", "background-color: "+r.Color+";"))
	appendAll(poster, appendAll(element(atom.Span, attr("class", "poster-letter")), text(r.Letter)))

	content := element(atom.Div, attr("class", "item-content"))
	appendAll(content,
		appendAll(element(atom.Span, attr("class", "item-icon")), text(r.Icon)),
		appendAll(element(atom.Div, attr("class", "item-title")), text(r.Title)),
	)
	if r.SeasonInfo != "" {
		appendAll(content, appendAll(element(atom.Span, attr("class", "series-info")), text(r.SeasonInfo)))
	}

	label := appendAll(element(atom.Span, attr("class", fmt.Sprintf("type-label %s-label", r.Type))), text(r.TypeLabel))
	return appendAll(li, poster, content, label)
}

// PlaceholderNode builds the single <li> shown for an empty, failed or
// loading list.
func PlaceholderNode(p Placeholder) *html.Node {
	li := element(atom.Li, attr("id", "no-results"), attr("class", "placeholder placeholder-"+string(p.Kind)))
	for i, line := range p.Lines {
		para := element(atom.P)
		if i > 0 && p.Kind == PlaceholderError {
			para.Attr = append(para.Attr, attr("class", "error-details"))
		}
		appendAll(li, appendAll(para, text(line)))
	}
	return li
}

// ListChildren returns the nodes that replace the list's contents.
func ListChildren(lv ListView) []*html.Node {
	if lv.Placeholder != nil {
		return []*html.Node{PlaceholderNode(*lv.Placeholder)}
	}
	nodes := make([]*html.Node, len(lv.Rows))
	for i, r := range lv.Rows {
		nodes[i] = RowNode(r)
	}
	return nodes
}

// ListNode builds the <ul id="movie-list"> element.
func ListNode(lv ListView) *html.Node {
	return appendAll(element(atom.Ul, attr("id", "movie-list")), ListChildren(lv)...)
}

// RenderFragment serializes the list contents without the surrounding <ul>.
func RenderFragment(lv ListView) (string, error) {
	var b strings.Builder
	for _, n := range ListChildren(lv) {
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("rendering list: %w", err)
		}
	}
	return b.String(), nil
}

func filterURL(search string, c catalog.Category) string {
	q := url.Values{}
	if search != "" {
		q.Set("q", search)
	}
	if c != catalog.CategoryAll {
		q.Set("type", string(c))
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

func headerNode(p Page) *html.Node {
	header := element(atom.Header)
	appendAll(header, appendAll(element(atom.H1), text(p.Title)))

	toggle := element(atom.Form, attr("method", "post"), attr("action", "/api/theme"), attr("class", "theme-form"))
	appendAll(toggle, appendAll(
		element(atom.Button, attr("id", "theme-toggle"), attr("type", "submit"), attr("aria-label", "Toggle theme")),
		text("🌓"),
	))
	appendAll(header, toggle)

	if p.IntroHTML != "" {
		intro := element(atom.Div, attr("class", "intro"))
		ctx := element(atom.Div)
		nodes, err := html.ParseFragment(strings.NewReader(p.IntroHTML), ctx)
		if err == nil {
			appendAll(intro, nodes...)
			appendAll(header, intro)
		}
	}
	return header
}

func controlsNode(p Page) *html.Node {
	form := element(atom.Form, attr("id", "controls"), attr("method", "get"), attr("action", "/"))

	box := element(atom.Div, attr("class", "search-box"))
	appendAll(box, element(atom.Input,
		attr("id", "search-input"),
		attr("type", "search"),
		attr("name", "q"),
		attr("placeholder", "Search movies and series..."),
		attr("autocomplete", "off"),
		attr("value", p.Search),
	))
	clearClass := "clear-search"
	if !p.ClearVisible {
		clearClass += " hidden"
	}
	appendAll(box, appendAll(
		element(atom.A, attr("id", "clear-search"), attr("class", clearClass), attr("href", filterURL("", p.Active)), attr("aria-label", "Clear search")),
		text("✕"),
	))
	appendAll(form, box)

	filters := element(atom.Div, attr("class", "filters"))
	for _, c := range catalog.Categories {
		class := "filter-btn"
		if c == p.Active {
			class += " active"
		}
		appendAll(filters, appendAll(
			element(atom.Button, attr("class", class), attr("type", "submit"), attr("name", "type"), attr("value", string(c)), attr("data-filter", string(c))),
			text(c.Label()),
		))
	}
	return appendAll(form, filters)
}

func statsNode(lv ListView) *html.Node {
	stats := element(atom.Div, attr("class", "stats"))
	return appendAll(stats,
		appendAll(element(atom.Span, attr("id", "item-count")), text(fmt.Sprint(lv.Count))),
		appendAll(element(atom.Span, attr("id", "search-stats")), text(lv.Summary)),
	)
}

func loaderNode(loading bool) *html.Node {
	display := "none"
	if loading {
		display = "flex"
	}
	l := element(atom.Div, attr("id", "loader"), attr("style", "display: "+display))
	return appendAll(l, element(atom.Div, attr("class", "spinner")))
}

// PageNode builds the full HTML document.
func PageNode(p Page) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	head := element(atom.Head)
	appendAll(head,
		element(atom.Meta, attr("charset", "utf-8")),
		element(atom.Meta, attr("name", "viewport"), attr("content", "width=device-width, initial-scale=1")),
		appendAll(element(atom.Title), text(p.Title)),
		element(atom.Link, attr("rel", "stylesheet"), attr("href", p.AssetPrefix+"/style.css")),
	)

	content := element(atom.Main)
	appendAll(content, controlsNode(p), statsNode(p.List), loaderNode(p.Loading), ListNode(p.List))

	body := element(atom.Body, attr("class", p.ThemeClass))
	appendAll(body, headerNode(p), content,
		element(atom.Script, attr("src", p.AssetPrefix+"/app.js"), attr("defer", "")),
	)

	root := element(atom.Html, attr("lang", "en"))
	appendAll(root, head, body)
	doc.AppendChild(root)
	return doc
}

// Render serializes a node tree.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}
