package presenters

import (
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"hostpro/application"
	"hostpro/domain/catalog"
	"hostpro/interfaces/web/templates/pages"
)

const catalogDateLayout = "2006-01-02"

// DashboardPresenter builds view models for the protected dashboard pages.
type DashboardPresenter struct {
	now func() time.Time
}

// NewDashboardPresenter creates a new dashboard presenter.
func NewDashboardPresenter() *DashboardPresenter {
	return &DashboardPresenter{now: time.Now}
}

// Overview builds the dashboard landing page for the client's workspace.
func (p *DashboardPresenter) Overview(c *catalog.Catalog, ws *application.Workspace) pages.OverviewView {
	now := p.now()
	v := pages.OverviewView{
		Greeting:     "Welcome back, " + ws.Profile().FirstName + "!",
		Stats:        c.DashboardStats,
		QuickActions: c.QuickActions,
	}
	for _, s := range c.RecentServices {
		v.Services = append(v.Services, pages.RecentServiceView{
			Name:    s.Name,
			Domain:  s.Domain,
			Status:  s.Status,
			Uptime:  s.Uptime,
			Updated: HoursAgo(s.UpdatedHoursAgo, now),
		})
	}
	for _, a := range c.SystemAlerts {
		v.Alerts = append(v.Alerts, pages.AlertView{
			Type:    a.Type,
			Message: a.Message,
			When:    HoursAgo(a.HoursAgo, now),
		})
	}
	return v
}

// Services builds the services page for the filtered list.
func (p *DashboardPresenter) Services(c *catalog.Catalog, filter application.ServiceFilter, services []catalog.Service) pages.ServicesView {
	now := p.now()
	v := pages.ServicesView{
		Search:   filter.Search,
		Status:   filter.Status,
		Type:     filter.Type,
		Total:    len(c.Services),
		Statuses: distinct(c.Services, func(s catalog.Service) string { return s.Status }),
		Types:    distinct(c.Services, func(s catalog.Service) string { return s.Type }),
	}
	for _, s := range services {
		v.Services = append(v.Services, pages.ServiceView{
			ID:         s.ID,
			Name:       s.Name,
			Type:       s.Type,
			Domain:     s.Domain,
			Status:     s.Status,
			Price:      Money(s.Price),
			Period:     "year",
			Renews:     renewal(s.EndDate, now),
			Uptime:     s.Uptime,
			LastBackup: s.LastBackup,
			SSL:        s.SSLStatus,
			Disk:       s.DiskUsage,
			Bandwidth:  s.Bandwidth,
		})
	}
	return v
}

func renewal(endDate string, now time.Time) string {
	end, err := time.Parse(catalogDateLayout, endDate)
	if err != nil {
		return endDate
	}
	return endDate + " (" + humanize.RelTime(now, end, "left", "ago") + ")"
}

func distinct[T any](items []T, key func(T) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		k := key(item)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Invoices builds the invoices page for the filtered list.
func (p *DashboardPresenter) Invoices(c *catalog.Catalog, filter application.InvoiceFilter, invoices []catalog.Invoice, totals application.InvoiceTotals) pages.InvoicesView {
	v := pages.InvoicesView{
		Search:      filter.Search,
		Status:      filter.Status,
		Statuses:    distinct(c.Invoices, func(i catalog.Invoice) string { return i.Status }),
		Paid:        Money(totals.Paid),
		Outstanding: Money(totals.Outstanding),
		Overdue:     totals.Overdue,
		Count:       Count(totals.Count),
	}
	for _, inv := range invoices {
		v.Invoices = append(v.Invoices, pages.InvoiceRowView{
			ID:      inv.ID,
			Service: inv.Service,
			Date:    inv.Date,
			DueDate: inv.DueDate,
			Amount:  Money(inv.Amount),
			Status:  inv.Status,
			Payable: inv.Status != "Paid",
		})
	}
	return v
}

// InvoiceDetail builds the single invoice page. requestedID is the id from
// the URL, shown when the lookup fell back to another invoice.
func (p *DashboardPresenter) InvoiceDetail(d application.InvoiceDetail, requestedID string) pages.InvoiceDetailView {
	inv := d.Invoice
	v := pages.InvoiceDetailView{
		ID:            inv.ID,
		RequestedID:   requestedID,
		Fallback:      d.Fallback,
		Service:       inv.Service,
		Date:          inv.Date,
		DueDate:       inv.DueDate,
		Status:        inv.Status,
		PaymentMethod: inv.PaymentMethod,
		PaidDate:      inv.PaidDate,
		Notes:         inv.Notes,
		Subtotal:      Money(d.Subtotal),
		Tax:           Money(d.Tax),
		TaxRate:       Percent(application.TaxRate),
		Total:         Money(d.Total),
		Payable:       inv.Status != "Paid",
	}
	for _, item := range inv.Items {
		v.Items = append(v.Items, pages.InvoiceItemView{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   Money(item.UnitPrice),
			Total:       Money(item.Total()),
		})
	}
	return v
}

// Profile builds the account settings page. profile overrides the stored
// profile so a rejected submit is shown with the values the client typed.
func (p *DashboardPresenter) Profile(ws *application.Workspace, tab string, profile *catalog.Profile, errs map[string]string) pages.ProfileView {
	switch tab {
	case pages.TabSecurity, pages.TabNotifications:
	default:
		tab = pages.TabProfile
	}
	v := pages.ProfileView{
		Tab:           tab,
		Profile:       ws.Profile(),
		Notifications: ws.Notifications(),
		Security:      ws.Security(),
		Errors:        errs,
	}
	if profile != nil {
		v.Profile = *profile
	}
	return v
}

// Support builds the support page. form carries the values of a rejected submit.
func (p *DashboardPresenter) Support(ws *application.Workspace, form application.TicketForm, errs map[string]string) pages.SupportView {
	v := pages.SupportView{
		Form: pages.TicketFormView{
			Subject:    form.Subject,
			Department: form.Department,
			Priority:   form.Priority,
			Message:    form.Message,
		},
		Errors:        errs,
		Departments:   application.TicketDepartments,
		Priorities:    application.TicketPriorities,
		MaxAttachment: humanize.IBytes(application.MaxAttachmentSize),
	}
	if v.Form.Department == "" {
		v.Form.Department = application.DefaultTicketDepartment
	}
	if v.Form.Priority == "" {
		v.Form.Priority = application.DefaultTicketPriority
	}
	for _, t := range ws.Tickets() {
		v.Tickets = append(v.Tickets, pages.TicketView{
			ID:         t.ID,
			Subject:    t.Subject,
			Department: t.Department,
			Priority:   t.Priority,
			Status:     t.Status,
			Message:    t.Message,
			Attachment: t.Attachment,
			CreatedAt:  t.CreatedAt,
			LastUpdate: t.LastUpdate,
		})
	}
	return v
}
