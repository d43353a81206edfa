package view

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - House Harmony"
	}
	return "House Harmony"
}

// Base wraps page content in the HTML document shell. The body is boosted so
// links and forms are swapped in place by htmx.
func Base(title string, flashes FlashData, content g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []g.Node{
			h.Script(h.Src(htmxSrc)),
			h.Script(h.Src("https://cdn.tailwindcss.com")),
		},
		Body: []g.Node{
			hx.Boost("true"),
			h.Class("bg-gray-50 min-h-screen"),
			Toasts(flashes),
			h.Main(content),
		},
	})
}

// Toasts renders the transient notifications.
func Toasts(flashes FlashData) g.Node {
	if flashes.Empty() {
		return nil
	}
	return h.Div(
		h.ID("toasts"),
		h.Class("fixed top-4 right-4 space-y-2 z-50"),
		g.Map(flashes.Messages, func(f Flash) g.Node {
			if f.Level == FlashError {
				return h.Div(h.Class("toast toast-error rounded bg-red-600 text-white px-4 py-2 shadow"), g.Attr("role", "alert"), g.Text(f.Text))
			}
			return h.Div(h.Class("toast toast-success rounded bg-green-600 text-white px-4 py-2 shadow"), g.Attr("role", "status"), g.Text(f.Text))
		}),
	)
}
