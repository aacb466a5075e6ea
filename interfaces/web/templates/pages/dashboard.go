package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"hostpro/interfaces/web/templates/components/ui"
	"hostpro/interfaces/web/templates/markup"
)

// Overview renders the dashboard landing page.
func Overview(v OverviewView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Render(ctx, ui.SectionHeader(v.Greeting, "Here's what's happening with your services today."))

		m.Raw(`<section class="grid stats">`)
		for _, s := range v.Stats {
			m.Raw(`<div class="card stat"><p class="muted">`)
			m.Text(s.Title)
			m.Raw(`</p><p class="price">`)
			m.Text(s.Value)
			m.Raw(`</p><p`)
			m.Attr("class", markup.Classes("change", markup.If(s.Positive, "positive"), markup.If(!s.Positive, "negative")))
			m.Raw(`>`)
			m.Text(s.Change)
			m.Raw(`</p></div>`)
		}
		m.Raw(`</section>`)

		m.Raw(`<div class="grid"><section class="card"><h2>Recent services</h2><table><thead><tr><th>Service</th><th>Status</th><th>Uptime</th><th>Updated</th></tr></thead><tbody>`)
		for _, s := range v.Services {
			m.Raw(`<tr><td><strong>`)
			m.Text(s.Name)
			m.Raw(`</strong><br><span class="muted">`)
			m.Text(s.Domain)
			m.Raw(`</span></td><td>`)
			m.Render(ctx, ui.StatusBadge(s.Status))
			m.Raw(`</td><td>`)
			m.Text(s.Uptime)
			m.Raw(`</td><td class="muted">`)
			m.Text(s.Updated)
			m.Raw(`</td></tr>`)
		}
		m.Raw(`</tbody></table><a href="/dashboard/services">View all services</a></section>`)

		m.Raw(`<section class="card"><h2>System alerts</h2><ul class="alerts">`)
		for _, a := range v.Alerts {
			m.Raw(`<li`)
			m.Attr("class", "alert alert-"+alertKind(a.Type))
			m.Raw(`>`)
			m.Text(a.Message)
			m.Raw(` <span class="muted">`)
			m.Text(a.When)
			m.Raw(`</span></li>`)
		}
		m.Raw(`</ul></section></div>`)

		m.Raw(`<section class="card"><h2>Quick Actions</h2><div class="grid quick-actions">`)
		for _, qa := range v.QuickActions {
			m.Raw(`<div class="quick-action"><p class="muted">`)
			m.Text(qa.Description)
			m.Raw(`</p>`)
			m.Render(ctx, ui.ActionButton(qa.Name, "quick."+qa.Slug, "", "btn-secondary"))
			m.Raw(`</div>`)
		}
		m.Raw(`</div></section>`)
	})
}

func alertKind(alertType string) string {
	switch alertType {
	case "success":
		return "success"
	case "warning", "error":
		return "error"
	default:
		return "info"
	}
}

// Services renders the services page with filters.
func Services(v ServicesView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<div class="page-header">`)
		m.Render(ctx, ui.SectionHeader("My Services", "Manage your hosting services and domains."))
		m.Render(ctx, ui.ActionButton("Add Service", "services.add", "", "btn-primary"))
		m.Raw(`</div>`)

		m.Raw(`<form method="get" action="/dashboard/services" class="filters" hx-get="/dashboard/services" hx-trigger="change, keyup changed delay:300ms from:input[name=q]" hx-push-url="true">`)
		m.Raw(`<input type="search" name="q" class="input" placeholder="Search services..."`)
		m.Attr("value", v.Search)
		m.Raw(`>`)
		filterSelect(m, "status", "All Status", v.Statuses, v.Status)
		filterSelect(m, "type", "All Types", v.Types, v.Type)
		m.Raw(`</form>`)

		m.Raw(`<p class="muted count">`)
		m.Text("Showing " + strconv.Itoa(len(v.Services)) + " of " + strconv.Itoa(v.Total) + " services")
		m.Raw(`</p><div class="grid services">`)
		for _, s := range v.Services {
			m.Raw(`<article class="card service"`)
			m.Attr("data-service-id", strconv.Itoa(s.ID))
			m.Raw(`><header><h3>`)
			m.Text(s.Name)
			m.Raw(`</h3>`)
			m.Render(ctx, ui.StatusBadge(s.Status))
			m.Raw(`</header><p class="muted">`)
			m.Text(s.Type + " · " + s.Domain)
			m.Raw(`</p><dl>`)
			for _, kv := range [][2]string{
				{"Price", s.Price + "/" + s.Period},
				{"Renews", s.Renews},
				{"Uptime", s.Uptime},
				{"Last backup", s.LastBackup},
				{"SSL", s.SSL},
				{"Disk", s.Disk},
				{"Bandwidth", s.Bandwidth},
			} {
				m.Raw(`<dt>`)
				m.Text(kv[0])
				m.Raw(`</dt><dd>`)
				m.Text(kv[1])
				m.Raw(`</dd>`)
			}
			m.Raw(`</dl><footer class="actions">`)
			m.Render(ctx, ui.ActionButton("View", "service.view", strconv.Itoa(s.ID), "btn-link"))
			m.Render(ctx, ui.ActionButton("Edit", "service.edit", strconv.Itoa(s.ID), "btn-link"))
			m.Render(ctx, ui.ActionButton("Settings", "service.settings", strconv.Itoa(s.ID), "btn-link"))
			m.Render(ctx, ui.ActionButton("More", "service.more", strconv.Itoa(s.ID), "btn-link"))
			m.Raw(`</footer></article>`)
		}
		m.Raw(`</div>`)
		if len(v.Services) == 0 {
			m.Raw(`<p class="empty muted">No services match your filters.</p>`)
		}
	})
}

func filterSelect(m *markup.Writer, name, allLabel string, options []string, selected string) {
	m.Raw(`<select class="input"`)
	m.Attr("name", name)
	m.Raw(`><option value="all">`)
	m.Text(allLabel)
	m.Raw(`</option>`)
	for _, opt := range options {
		m.Raw(`<option`)
		m.Attr("value", opt)
		m.BoolAttr("selected", opt == selected)
		m.Raw(`>`)
		m.Text(opt)
		m.Raw(`</option>`)
	}
	m.Raw(`</select>`)
}

// Invoices renders the billing page.
func Invoices(v InvoicesView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<div class="page-header">`)
		m.Render(ctx, ui.SectionHeader("Invoices", "View and manage your billing history."))
		m.Render(ctx, ui.ActionButton("Pay Outstanding", "invoices.pay-outstanding", "", "btn-primary"))
		m.Raw(`</div>`)

		m.Raw(`<section class="grid stats">`)
		for _, kv := range [][2]string{
			{"Total Paid", v.Paid},
			{"Outstanding", v.Outstanding},
			{"Overdue", strconv.Itoa(v.Overdue)},
			{"Total Invoices", v.Count},
		} {
			m.Raw(`<div class="card stat"><p class="muted">`)
			m.Text(kv[0])
			m.Raw(`</p><p class="price">`)
			m.Text(kv[1])
			m.Raw(`</p></div>`)
		}
		m.Raw(`</section>`)

		m.Raw(`<form method="get" action="/dashboard/invoices" class="filters" hx-get="/dashboard/invoices" hx-trigger="change, keyup changed delay:300ms from:input[name=q]" hx-push-url="true">`)
		m.Raw(`<input type="search" name="q" class="input" placeholder="Search invoices..."`)
		m.Attr("value", v.Search)
		m.Raw(`>`)
		filterSelect(m, "status", "All Status", v.Statuses, v.Status)
		m.Raw(`</form>`)

		m.Raw(`<table class="invoices"><thead><tr><th>Invoice</th><th>Service</th><th>Date</th><th>Due</th><th class="num">Amount</th><th>Status</th><th>Actions</th></tr></thead><tbody>`)
		for _, inv := range v.Invoices {
			m.Raw(`<tr`)
			m.Attr("data-invoice-id", inv.ID)
			m.Raw(`><td><a`)
			m.URLAttr("href", "/dashboard/invoices/"+inv.ID)
			m.Raw(`>`)
			m.Text(inv.ID)
			m.Raw(`</a></td><td>`)
			m.Text(inv.Service)
			m.Raw(`</td><td>`)
			m.Text(inv.Date)
			m.Raw(`</td><td>`)
			m.Text(inv.DueDate)
			m.Raw(`</td><td class="num">`)
			m.Text(inv.Amount)
			m.Raw(`</td><td>`)
			m.Render(ctx, ui.StatusBadge(inv.Status))
			m.Raw(`</td><td class="actions">`)
			m.Render(ctx, ui.ActionButton("View", "invoice.view", inv.ID, "btn-link"))
			m.Render(ctx, ui.ActionButton("Download", "invoice.download", inv.ID, "btn-link"))
			if inv.Payable {
				m.Render(ctx, ui.ActionButton("Pay", "invoice.pay", inv.ID, "btn-link"))
			}
			m.Raw(`</td></tr>`)
		}
		m.Raw(`</tbody></table>`)
		if len(v.Invoices) == 0 {
			m.Raw(`<p class="empty muted">No invoices match your filters.</p>`)
		}
	})
}

// InvoiceDetail renders a single invoice.
func InvoiceDetail(v InvoiceDetailView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<a href="/dashboard/invoices" class="back">&larr; Back to invoices</a>`)
		if v.Fallback {
			m.Render(ctx, ui.Alert("info", "Invoice "+v.RequestedID+" was not found. Showing "+v.ID+" instead."))
		}
		m.Raw(`<article class="card invoice"><header class="page-header"><div><h1>`)
		m.Text(v.ID)
		m.Raw(`</h1><p class="muted">`)
		m.Text(v.Service)
		m.Raw(`</p></div>`)
		m.Render(ctx, ui.StatusBadge(v.Status))
		m.Raw(`</header><dl class="invoice-meta">`)
		for _, kv := range [][2]string{
			{"Invoice date", v.Date},
			{"Due date", v.DueDate},
			{"Payment method", v.PaymentMethod},
			{"Paid on", v.PaidDate},
		} {
			if kv[1] == "" {
				continue
			}
			m.Raw(`<dt>`)
			m.Text(kv[0])
			m.Raw(`</dt><dd>`)
			m.Text(kv[1])
			m.Raw(`</dd>`)
		}
		m.Raw(`</dl>`)

		m.Raw(`<table class="items"><thead><tr><th>Description</th><th class="num">Qty</th><th class="num">Unit price</th><th class="num">Total</th></tr></thead><tbody>`)
		for _, item := range v.Items {
			m.Raw(`<tr><td>`)
			m.Text(item.Description)
			m.Raw(`</td><td class="num">`)
			m.Text(strconv.Itoa(item.Quantity))
			m.Raw(`</td><td class="num">`)
			m.Text(item.UnitPrice)
			m.Raw(`</td><td class="num">`)
			m.Text(item.Total)
			m.Raw(`</td></tr>`)
		}
		m.Raw(`</tbody><tfoot>`)
		for _, kv := range [][3]string{
			{"Subtotal", v.Subtotal, "subtotal"},
			{"Tax (" + v.TaxRate + ")", v.Tax, "tax"},
			{"Total", v.Total, "total"},
		} {
			m.Raw(`<tr`)
			m.Attr("class", kv[2])
			m.Raw(`><td colspan="3">`)
			m.Text(kv[0])
			m.Raw(`</td><td class="num">`)
			m.Text(kv[1])
			m.Raw(`</td></tr>`)
		}
		m.Raw(`</tfoot></table>`)

		if v.Notes != "" {
			m.Raw(`<p class="notes muted">`)
			m.Text(v.Notes)
			m.Raw(`</p>`)
		}

		m.Raw(`<footer class="actions">`)
		m.Render(ctx, ui.ActionButton("Download PDF", "invoice.download", v.ID, "btn-secondary"))
		m.Render(ctx, ui.ActionButton("Print", "invoice.print", v.ID, "btn-secondary"))
		if v.Payable {
			m.Render(ctx, ui.ActionButton("Pay Now", "invoice.pay-now", v.ID, "btn-primary"))
		}
		m.Raw(`</footer></article>`)
	})
}
