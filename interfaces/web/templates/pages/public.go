package pages

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"hostpro/interfaces/web/templates/components/ui"
	"hostpro/interfaces/web/templates/markup"
)

// Home renders the landing page.
func Home(v HomeView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<section class="hero"><h1>Fast, reliable hosting for every project</h1>`)
		m.Raw(`<p class="subtitle">Launch your website in minutes with 99.9% uptime, free SSL and 24/7 expert support.</p>`)
		m.Raw(`<div class="hero-actions"><a href="/hosting-plans" class="btn btn-primary">View Plans</a><a href="/domain-search" class="btn btn-secondary">Find a Domain</a></div></section>`)

		m.Raw(`<section class="features grid">`)
		for _, f := range v.Features {
			m.Raw(`<article class="card feature"><h3>`)
			m.Text(f.Title)
			m.Raw(`</h3><p class="muted">`)
			m.Text(f.Description)
			m.Raw(`</p></article>`)
		}
		m.Raw(`</section>`)

		m.Raw(`<section class="plans"><h2>Choose your plan</h2><div class="grid">`)
		for _, p := range v.Plans {
			m.Render(ctx, PlanCard(p))
		}
		m.Raw(`</div></section>`)

		m.Raw(`<section class="testimonials"><h2>What our customers say</h2><div class="grid">`)
		for _, t := range v.Testimonials {
			m.Raw(`<blockquote class="card testimonial"><p>`)
			m.Text(t.Content)
			m.Raw(`</p><footer><strong>`)
			m.Text(t.Name)
			m.Raw(`</strong> <span class="muted">`)
			m.Text(t.Company)
			m.Raw(`</span> <span class="rating"`)
			m.Attr("aria-label", strings.Repeat("★", t.Rating))
			m.Raw(`>`)
			m.Text(strings.Repeat("★", t.Rating))
			m.Raw(`</span></footer></blockquote>`)
		}
		m.Raw(`</div></section>`)

		if len(v.Clients) > 0 {
			m.Raw(`<section class="clients"><p class="muted">Trusted by teams at</p><ul class="client-list">`)
			for _, c := range v.Clients {
				m.Raw(`<li>`)
				m.Text(c)
				m.Raw(`</li>`)
			}
			m.Raw(`</ul></section>`)
		}
	})
}

// PlanCard renders one priced plan.
func PlanCard(p PlanCardView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<article`)
		m.Attr("class", markup.Classes("card plan", markup.If(p.Popular, "popular")))
		m.Attr("data-plan", p.Name)
		m.Raw(`>`)
		if p.Popular {
			m.Raw(`<span class="badge badge-green">Most Popular</span>`)
		}
		m.Raw(`<h3>`)
		m.Text(p.Name)
		m.Raw(`</h3><p class="muted">`)
		m.Text(p.Description)
		m.Raw(`</p><p><span class="price">`)
		m.Text(p.Price)
		m.Raw(`</span><span class="muted">/`)
		m.Text(p.Period)
		m.Raw(`</span></p>`)
		if p.Savings != "" {
			m.Raw(`<p class="savings">`)
			m.Text(p.Savings)
			m.Raw(`</p>`)
		}
		m.Raw(`<ul class="highlights">`)
		for _, h := range p.Highlights {
			m.Raw(`<li>`)
			m.Text(h)
			m.Raw(`</li>`)
		}
		m.Raw(`</ul><a href="/register" class="btn btn-primary">Get Started</a></article>`)
	})
}

// HostingPlans renders the plans page with the billing cycle switch and
// comparison table.
func HostingPlans(v PlansView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Render(ctx, ui.SectionHeader("Hosting Plans", "Simple, transparent pricing. No hidden fees."))

		m.Raw(`<div class="cycle-switch" role="tablist">`)
		for _, c := range []struct{ value, label string }{{"monthly", "Monthly"}, {"yearly", "Yearly"}} {
			m.Raw(`<a role="tab"`)
			m.URLAttr("href", "/hosting-plans?cycle="+c.value)
			m.Attr("class", markup.Classes("btn", markup.If(v.Cycle == c.value, "btn-primary")))
			m.Attr("aria-selected", boolString(v.Cycle == c.value))
			m.Raw(`>`)
			m.Text(c.label)
			m.Raw(`</a>`)
		}
		m.Raw(`</div>`)

		m.Raw(`<div class="grid plans">`)
		for _, p := range v.Plans {
			m.Render(ctx, PlanCard(p))
		}
		m.Raw(`</div>`)

		m.Raw(`<section class="comparison"><h2>Compare plans</h2><table><thead><tr><th>Feature</th>`)
		for _, name := range v.PlanNames {
			m.Raw(`<th>`)
			m.Text(name)
			m.Raw(`</th>`)
		}
		m.Raw(`</tr></thead><tbody>`)
		for _, row := range v.Comparison {
			m.Raw(`<tr><td>`)
			m.Text(row.Label)
			m.Raw(`</td>`)
			for _, value := range row.Values {
				m.Raw(`<td>`)
				m.Text(value)
				m.Raw(`</td>`)
			}
			m.Raw(`</tr>`)
		}
		m.Raw(`</tbody></table></section>`)
	})
}

// About renders the company page.
func About(v AboutView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Render(ctx, ui.SectionHeader("About HostPro", "Powering websites since 2010."))

		m.Raw(`<section class="grid stats">`)
		for _, s := range v.Stats {
			m.Raw(`<div class="card stat"><p class="price">`)
			m.Text(s.Number)
			m.Raw(`</p><p class="muted">`)
			m.Text(s.Label)
			m.Raw(`</p></div>`)
		}
		m.Raw(`</section>`)

		m.Raw(`<section><h2>Our values</h2><div class="grid">`)
		for _, val := range v.Values {
			m.Raw(`<article class="card"><h3>`)
			m.Text(val.Title)
			m.Raw(`</h3><p class="muted">`)
			m.Text(val.Description)
			m.Raw(`</p></article>`)
		}
		m.Raw(`</div></section>`)

		m.Raw(`<section><h2>Leadership</h2><div class="grid team">`)
		for _, member := range v.Team {
			m.Raw(`<article class="card member"><img`)
			m.URLAttr("src", member.Image)
			m.Attr("alt", member.Name)
			m.Raw(` loading="lazy"><h3>`)
			m.Text(member.Name)
			m.Raw(`</h3><p class="role">`)
			m.Text(member.Role)
			m.Raw(`</p><p class="muted">`)
			m.Text(member.Bio)
			m.Raw(`</p></article>`)
		}
		m.Raw(`</div></section>`)

		m.Raw(`<section><h2>Our journey</h2><ol class="timeline">`)
		for _, ms := range v.Milestones {
			m.Raw(`<li><span class="year">`)
			m.Text(ms.Year)
			m.Raw(`</span><h3>`)
			m.Text(ms.Title)
			m.Raw(`</h3><p class="muted">`)
			m.Text(ms.Description)
			m.Raw(`</p></li>`)
		}
		m.Raw(`</ol></section>`)
	})
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
