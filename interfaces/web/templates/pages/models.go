package pages

import "hostpro/domain/catalog"

// PlanCardView is a priced hosting plan.
type PlanCardView struct {
	Name        string
	Description string
	Price       string
	Period      string
	Popular     bool
	Highlights  []string
	Savings     string
}

// HomeView is the landing page.
type HomeView struct {
	Features     []catalog.Feature
	Plans        []PlanCardView
	Testimonials []catalog.Testimonial
	Clients      []string
}

// ComparisonRow is one line of the plan comparison table.
type ComparisonRow struct {
	Label  string
	Values []string
}

// PlansView is the hosting plans page.
type PlansView struct {
	Cycle      string
	Plans      []PlanCardView
	PlanNames  []string
	Comparison []ComparisonRow
}

// TLDOption is a selectable extension in the domain search form.
type TLDOption struct {
	Name      string
	Extension string
	Price     string
	Popular   bool
	Selected  bool
}

// DomainResultView is one availability result.
type DomainResultView struct {
	Domain    string
	Available bool
	Popular   bool
	Price     string
	Features  []string
}

// DomainSearchView is the domain search page and its results partial.
type DomainSearchView struct {
	Query       string
	Searched    bool
	Error       string
	TLDs        []TLDOption
	Results     []DomainResultView
	Available   int
	Suggestions []string
	Features    []string
}

// AboutView is the company page.
type AboutView struct {
	Stats      []catalog.CompanyStat
	Values     []catalog.Feature
	Team       []catalog.TeamMember
	Milestones []catalog.Milestone
}

// ContactFormView holds submitted contact form values.
type ContactFormView struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactView is the contact page.
type ContactView struct {
	Form     ContactFormView
	Errors   map[string]string
	Sent     bool
	Channels []catalog.ContactChannel
	Topics   []catalog.SupportTopic
}

// LoginView is the sign-in page.
type LoginView struct {
	Email  string
	Next   string
	Errors map[string]string
}

// RegisterView is the sign-up page.
type RegisterView struct {
	Name   string
	Email  string
	Errors map[string]string
}

// RecentServiceView is a service row on the overview.
type RecentServiceView struct {
	Name    string
	Domain  string
	Status  string
	Uptime  string
	Updated string
}

// AlertView is a system notice on the overview.
type AlertView struct {
	Type    string
	Message string
	When    string
}

// OverviewView is the dashboard landing page.
type OverviewView struct {
	Greeting     string
	Stats        []catalog.DashboardStat
	Services     []RecentServiceView
	Alerts       []AlertView
	QuickActions []catalog.QuickAction
}

// ServiceView is a row of the services table.
type ServiceView struct {
	ID         int
	Name       string
	Type       string
	Domain     string
	Status     string
	Price      string
	Period     string
	Renews     string
	Uptime     string
	LastBackup string
	SSL        string
	Disk       string
	Bandwidth  string
}

// ServicesView is the services page.
type ServicesView struct {
	Search   string
	Status   string
	Type     string
	Statuses []string
	Types    []string
	Services []ServiceView
	Total    int
}

// InvoiceRowView is a row of the invoices table.
type InvoiceRowView struct {
	ID      string
	Service string
	Date    string
	DueDate string
	Amount  string
	Status  string
	Payable bool
}

// InvoicesView is the invoices page.
type InvoicesView struct {
	Search      string
	Status      string
	Statuses    []string
	Invoices    []InvoiceRowView
	Paid        string
	Outstanding string
	Overdue     int
	Count       string
}

// InvoiceItemView is one billed line.
type InvoiceItemView struct {
	Description string
	Quantity    int
	UnitPrice   string
	Total       string
}

// InvoiceDetailView is the single invoice page.
type InvoiceDetailView struct {
	ID            string
	RequestedID   string
	Fallback      bool
	Service       string
	Date          string
	DueDate       string
	Status        string
	PaymentMethod string
	PaidDate      string
	Notes         string
	Items         []InvoiceItemView
	Subtotal      string
	Tax           string
	TaxRate       string
	Total         string
	Payable       bool
}

// ProfileView is the account settings page.
type ProfileView struct {
	Tab           string
	Profile       catalog.Profile
	Notifications []catalog.Toggle
	Security      catalog.SecuritySettings
	Errors        map[string]string
}

// TicketView is a support ticket row.
type TicketView struct {
	ID         string
	Subject    string
	Department string
	Priority   string
	Status     string
	Message    string
	Attachment string
	CreatedAt  string
	LastUpdate string
}

// TicketFormView holds submitted ticket form values.
type TicketFormView struct {
	Subject    string
	Department string
	Priority   string
	Message    string
}

// SupportView is the support tickets page.
type SupportView struct {
	Tickets       []TicketView
	Form          TicketFormView
	Errors        map[string]string
	Departments   []string
	Priorities    []string
	MaxAttachment string
}
