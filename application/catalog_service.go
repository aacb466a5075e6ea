package application

import (
	"errors"
	"math"
	"strings"

	"hostpro/domain/catalog"
)

// ErrInvoiceNotFound is returned when the catalog has no invoices at all.
var ErrInvoiceNotFound = errors.New("invoice not found")

// TaxRate applied to invoice subtotals.
const TaxRate = 0.10

// Billing cycles for plan pricing.
const (
	BillingMonthly = "monthly"
	BillingYearly  = "yearly"
)

// CatalogService answers read-only queries over the mock catalog.
type CatalogService struct {
	catalog *catalog.Catalog
}

// NewCatalogService creates a new catalog service
func NewCatalogService(c *catalog.Catalog) *CatalogService {
	return &CatalogService{catalog: c}
}

// Catalog returns the underlying catalog.
func (s *CatalogService) Catalog() *catalog.Catalog {
	return s.catalog
}

// PlanPrice is a plan priced for a billing cycle.
type PlanPrice struct {
	catalog.Plan
	Price          float64
	Period         string
	YearlySavings  float64
	SavingsPercent int
}

// Plans prices every plan for cycle. Unknown cycles price monthly.
func (s *CatalogService) Plans(cycle string) []PlanPrice {
	out := make([]PlanPrice, 0, len(s.catalog.Plans))
	for _, p := range s.catalog.Plans {
		savings := roundCents(p.MonthlyPrice*12 - p.YearlyPrice)
		percent := 0
		if p.MonthlyPrice > 0 {
			percent = int(math.Round(savings / (p.MonthlyPrice * 12) * 100))
		}
		pp := PlanPrice{Plan: p, Price: p.MonthlyPrice, Period: "month", YearlySavings: savings, SavingsPercent: percent}
		if cycle == BillingYearly {
			pp.Price = p.YearlyPrice
			pp.Period = "year"
		}
		out = append(out, pp)
	}
	return out
}

// FeaturedPlans returns the first three plans for the home page.
func (s *CatalogService) FeaturedPlans() []catalog.Plan {
	if len(s.catalog.Plans) <= 3 {
		return s.catalog.Plans
	}
	return s.catalog.Plans[:3]
}

// ServiceFilter narrows the services list. Empty or "all" matches anything.
type ServiceFilter struct {
	Search string
	Status string
	Type   string
}

// Services returns the services matching f.
func (s *CatalogService) Services(f ServiceFilter) []catalog.Service {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	var out []catalog.Service
	for _, svc := range s.catalog.Services {
		if term != "" && !strings.Contains(strings.ToLower(svc.Name), term) && !strings.Contains(strings.ToLower(svc.Domain), term) {
			continue
		}
		if !matchesOption(f.Status, svc.Status) || !matchesOption(f.Type, svc.Type) {
			continue
		}
		out = append(out, svc)
	}
	return out
}

// FindService returns the service with the given id.
func (s *CatalogService) FindService(id int) (catalog.Service, bool) {
	for _, svc := range s.catalog.Services {
		if svc.ID == id {
			return svc, true
		}
	}
	return catalog.Service{}, false
}

// InvoiceFilter narrows the invoice list. Empty or "all" matches anything.
type InvoiceFilter struct {
	Search string
	Status string
}

// Invoices returns the invoices matching f.
func (s *CatalogService) Invoices(f InvoiceFilter) []catalog.Invoice {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	var out []catalog.Invoice
	for _, inv := range s.catalog.Invoices {
		if term != "" && !strings.Contains(strings.ToLower(inv.ID), term) && !strings.Contains(strings.ToLower(inv.Service), term) {
			continue
		}
		if !matchesOption(f.Status, inv.Status) {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// InvoiceTotals summarises the whole invoice list.
type InvoiceTotals struct {
	Paid        float64
	Outstanding float64
	Overdue     int
	Count       int
}

// Totals sums paid and outstanding amounts across every invoice.
func (s *CatalogService) Totals() InvoiceTotals {
	var t InvoiceTotals
	for _, inv := range s.catalog.Invoices {
		t.Count++
		switch inv.Status {
		case "Paid":
			t.Paid += inv.Amount
		case "Overdue":
			t.Overdue++
			t.Outstanding += inv.Amount
		default:
			t.Outstanding += inv.Amount
		}
	}
	t.Paid = roundCents(t.Paid)
	t.Outstanding = roundCents(t.Outstanding)
	return t
}

// InvoiceDetail is an invoice with computed amounts.
type InvoiceDetail struct {
	Invoice  catalog.Invoice
	Subtotal float64
	Tax      float64
	Total    float64
	// Fallback is set when the requested id was unknown and the first
	// invoice was returned instead.
	Fallback bool
}

// InvoiceDetail returns the invoice with id, falling back to the first
// invoice when id is unknown.
func (s *CatalogService) InvoiceDetail(id string) (InvoiceDetail, error) {
	if len(s.catalog.Invoices) == 0 {
		return InvoiceDetail{}, ErrInvoiceNotFound
	}

	inv := s.catalog.Invoices[0]
	fallback := true
	for _, candidate := range s.catalog.Invoices {
		if candidate.ID == id {
			inv = candidate
			fallback = false
			break
		}
	}

	var subtotal float64
	for _, item := range inv.Items {
		subtotal += item.Total()
	}
	subtotal = roundCents(subtotal)
	tax := roundCents(subtotal * TaxRate)

	return InvoiceDetail{
		Invoice:  inv,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    roundCents(subtotal + tax),
		Fallback: fallback,
	}, nil
}

func matchesOption(want, have string) bool {
	return want == "" || strings.EqualFold(want, "all") || want == have
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
