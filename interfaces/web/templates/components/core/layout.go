package core

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"hostpro/interfaces/web/templates/components/ui"
	"hostpro/interfaces/web/templates/markup"
)

// MainID is the element HTMX navigation swaps page bodies into.
const MainID = "main"

// Layout renders a full HTML document around body.
func Layout(page PageView, body templ.Component) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<!DOCTYPE html><html lang="en"`)
		m.Attr("class", markup.If(page.Dark, "dark"))
		m.Raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.Raw(`<meta http-equiv="Accept-CH" content="Sec-CH-Prefers-Color-Scheme">`)
		m.Raw(`<title>`)
		m.Text(pageTitle(page.Title))
		m.Raw(`</title>`)
		m.Raw(`<link rel="stylesheet" href="/assets/app.css">`)
		m.Raw(`<script src="https://unpkg.com/htmx.org@2.0.4" defer></script>`)
		m.Raw(`<script src="https://unpkg.com/htmx-ext-sse@2.2.2/sse.js" defer></script>`)
		m.Raw(`<script src="/assets/app.js" defer></script>`)
		m.Raw(`</head><body hx-boost="true"`)
		m.Attr("hx-target", "#"+MainID)
		m.Raw(` hx-select="#main" hx-swap="outerHTML">`)

		m.Render(ctx, Navbar(page))
		m.Render(ctx, Main(page, body))
		m.Render(ctx, Footer(page))
		m.Render(ctx, ui.ToastRegion(page.Toasts))

		m.Raw(`</body></html>`)
	})
}

// Main renders the swappable page body, with the sidebar on dashboard pages.
func Main(page PageView, body templ.Component) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<main`)
		m.Attr("id", MainID)
		m.Attr("class", markup.Classes("main", markup.If(page.Dashboard, "main-dashboard")))
		m.Attr("data-title", pageTitle(page.Title))
		m.Raw(`>`)
		if page.Dashboard {
			m.Render(ctx, Sidebar(page))
			m.Raw(`<section class="dashboard-content">`)
			m.Render(ctx, body)
			m.Raw(`</section>`)
		} else {
			m.Render(ctx, body)
		}
		m.Raw(`</main>`)
	})
}

// Navbar renders the top navigation with theme toggle and auth controls.
func Navbar(page PageView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<nav class="navbar"><a href="/" class="brand">HostPro</a><ul class="nav-links">`)
		for _, item := range page.Nav {
			m.Raw(`<li><a`)
			m.URLAttr("href", item.Path)
			m.Attr("class", isActive(item.Active))
			m.Attr("aria-current", isSelected(item.Active))
			m.Raw(`>`)
			m.Text(item.Title)
			m.Raw(`</a></li>`)
		}
		m.Raw(`</ul><div class="nav-actions">`)

		m.Raw(`<form method="post" action="/theme/toggle" class="inline"><input type="hidden" name="return"`)
		m.Attr("value", page.CurrentPath)
		m.Raw(`><button type="submit" id="theme-toggle" class="icon-button"`)
		if page.Dark {
			m.Raw(` aria-label="Switch to light mode" data-theme="dark">&#9728;`)
		} else {
			m.Raw(` aria-label="Switch to dark mode" data-theme="light">&#9790;`)
		}
		m.Raw(`</button></form>`)

		if page.Authenticated {
			m.Raw(`<a href="/dashboard" class="btn btn-secondary">Dashboard</a>`)
			m.Raw(`<form method="post" action="/logout" class="inline"><button type="submit" class="btn btn-link logout">Logout</button></form>`)
		} else {
			m.Raw(`<a href="/login" class="btn btn-link">Login</a><a href="/register" class="btn btn-primary">Get Started</a>`)
		}
		m.Raw(`</div></nav>`)
	})
}

// Sidebar renders the dashboard navigation.
func Sidebar(page PageView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<aside class="sidebar"><ul>`)
		for _, item := range page.Sidebar {
			m.Raw(`<li><a`)
			m.URLAttr("href", item.Path)
			m.Attr("class", isActive(item.Active))
			m.Attr("aria-current", isSelected(item.Active))
			m.Raw(`>`)
			m.Text(item.Title)
			m.Raw(`</a></li>`)
		}
		m.Raw(`</ul></aside>`)
	})
}

// Footer renders the site footer.
func Footer(page PageView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<footer class="footer"><div class="footer-links">`)
		for _, item := range page.Nav {
			m.Raw(`<a`)
			m.URLAttr("href", item.Path)
			m.Raw(`>`)
			m.Text(item.Title)
			m.Raw(`</a>`)
		}
		m.Raw(`</div><p>&copy; `)
		m.Text(strconv.Itoa(page.Year))
		m.Raw(` HostPro. All rights reserved.</p></footer>`)
	})
}

func pageTitle(title string) string {
	if title == "" {
		return "HostPro"
	}
	return title + " | HostPro"
}
