package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"hostpro/interfaces/web/templates/components/ui"
	"hostpro/interfaces/web/templates/markup"
)

// DomainResultsID is the element the search form swaps results into.
const DomainResultsID = "domain-results"

// DomainSearch renders the search form and, after a search, its results.
func DomainSearch(v DomainSearchView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Render(ctx, ui.SectionHeader("Find your perfect domain", "Search across popular extensions and register in seconds."))

		m.Raw(`<form method="post" action="/domain-search" class="card domain-form" hx-post="/domain-search"`)
		m.Attr("hx-target", "#"+DomainResultsID)
		m.Raw(` hx-select="#domain-results" hx-swap="outerHTML" hx-indicator="#domain-spinner">`)
		m.Raw(`<div class="search-row"><input type="search" name="q" class="input" placeholder="Enter your domain name" required`)
		m.Attr("value", v.Query)
		m.Raw(`><button type="submit" class="btn btn-primary">Search</button>`)
		m.Raw(`<span id="domain-spinner" class="htmx-indicator muted">Searching...</span></div>`)

		m.Raw(`<fieldset class="tld-options"><legend>Extensions</legend>`)
		for _, tld := range v.TLDs {
			m.Raw(`<label class="tld"><input type="checkbox" name="tld"`)
			m.Attr("value", tld.Name)
			m.BoolAttr("checked", tld.Selected)
			m.Raw(`> `)
			m.Text(tld.Extension)
			m.Raw(` <span class="muted">`)
			m.Text(tld.Price)
			m.Raw(`</span></label>`)
		}
		m.Raw(`</fieldset></form>`)

		m.Render(ctx, DomainResults(v))

		if len(v.Features) > 0 {
			m.Raw(`<section class="card"><h2>Every domain includes</h2><ul>`)
			for _, f := range v.Features {
				m.Raw(`<li>`)
				m.Text(f)
				m.Raw(`</li>`)
			}
			m.Raw(`</ul></section>`)
		}
	})
}

// DomainResults renders the result list partial.
func DomainResults(v DomainSearchView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<section`)
		m.Attr("id", DomainResultsID)
		m.Raw(` class="domain-results">`)
		m.Render(ctx, ui.Alert("error", v.Error))

		if v.Searched && v.Error == "" {
			m.Raw(`<h2>Results for `)
			m.Text(v.Query)
			m.Raw(`</h2><p class="muted summary">`)
			m.Text(strconv.Itoa(v.Available) + " of " + strconv.Itoa(len(v.Results)) + " available")
			m.Raw(`</p><ul class="results">`)
			for _, r := range v.Results {
				m.Raw(`<li`)
				m.Attr("class", markup.Classes("card result", markup.If(r.Available, "available"), markup.If(!r.Available, "taken")))
				m.Attr("data-domain", r.Domain)
				m.Raw(`><strong>`)
				m.Text(r.Domain)
				m.Raw(`</strong>`)
				if r.Popular {
					m.Raw(` <span class="badge badge-yellow">Popular</span>`)
				}
				if r.Available {
					m.Raw(` <span class="badge badge-green">Available</span> <span class="price-tag">`)
					m.Text(r.Price)
					m.Raw(`/yr</span>`)
					m.Render(ctx, ui.ActionButton("Add to cart", "domain.add", r.Domain, "btn-primary"))
					if len(r.Features) > 0 {
						m.Raw(`<ul class="result-features muted">`)
						for _, f := range r.Features {
							m.Raw(`<li>`)
							m.Text(f)
							m.Raw(`</li>`)
						}
						m.Raw(`</ul>`)
					}
				} else {
					m.Raw(` <span class="badge badge-red">Taken</span>`)
				}
				m.Raw(`</li>`)
			}
			m.Raw(`</ul>`)

			if len(v.Suggestions) > 0 {
				m.Raw(`<h3>You might also like</h3><ul class="suggestions">`)
				for _, s := range v.Suggestions {
					m.Raw(`<li>`)
					m.Text(s)
					m.Raw(`</li>`)
				}
				m.Raw(`</ul>`)
			}
		}
		m.Raw(`</section>`)
	})
}
