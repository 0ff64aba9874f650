package views

import "github.com/a-h/templ"

type navLink struct {
	page  string
	label string
	href  string
}

var navLinks = []navLink{
	{page: "schedule", label: "Schedule", href: "/schedule"},
	{page: "standings", label: "Standings", href: "/standings"},
	{page: "stats", label: "Stats", href: "/stats"},
	{page: "rankings", label: "Rankings", href: "/rankings"},
}

// Layout wraps body in the shared page chrome. active names the highlighted nav entry.
func Layout(title, active string, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(` | CFB Dashboard</title><link rel="stylesheet" href="/static/app.css"></head><body>`)
		h.raw(`<header><h1>CFB Dashboard</h1><nav>`)
		for _, link := range navLinks {
			h.raw(`<a`)
			h.url("href", link.href)
			if link.page == active {
				h.attr("class", "active")
			}
			h.raw(`>`)
			h.text(link.label)
			h.raw(`</a>`)
		}
		h.raw(`</nav></header><main>`)
		h.component(body)
		h.raw(`</main></body></html>`)
	})
}

// ErrorPage renders a failed request with its request ID for correlation.
func ErrorPage(status int, message, requestID string) templ.Component {
	body := component(func(h *htmlWriter) {
		h.raw(`<section class="error"><h2>`)
		h.int(status)
		h.raw(`</h2><p>`)
		h.text(message)
		h.raw(`</p>`)
		if requestID != "" {
			h.raw(`<p class="muted">Request ID: <code>`)
			h.text(requestID)
			h.raw(`</code></p>`)
		}
		h.raw(`</section>`)
	})
	return Layout("Error", "", body)
}

func seasonForm(action string, year, week int, seasonType string, withWeek bool, extra func(h *htmlWriter)) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<form class="season" method="get"`)
		h.url("action", action)
		h.raw(`><label>Year <input type="number" name="year"`)
		h.attr("value", itoa(year))
		h.raw(`></label>`)
		if withWeek {
			h.raw(`<label>Week <input type="number" min="0" name="week"`)
			if week > 0 {
				h.attr("value", itoa(week))
			}
			h.raw(`></label>`)
		}
		h.raw(`<label>Season <select name="seasonType">`)
		for _, opt := range []string{"regular", "postseason", "both"} {
			h.raw(`<option`)
			h.attr("value", opt)
			if opt == seasonType {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(opt)
			h.raw(`</option>`)
		}
		h.raw(`</select></label>`)
		if extra != nil {
			extra(h)
		}
		h.raw(`<button type="submit">Go</button></form>`)
	})
}

func logoImg(h *htmlWriter, logo *string, alt string) {
	if logo == nil {
		h.raw(`<span class="logo placeholder"></span>`)
		return
	}
	h.raw(`<img class="logo" loading="lazy"`)
	h.url("src", *logo)
	h.attr("alt", alt)
	h.raw(`>`)
}
