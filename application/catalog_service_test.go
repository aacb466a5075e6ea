package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostpro/application"
	"hostpro/domain/catalog"
	"hostpro/test/helpers"
)

func TestCatalogService_InvoiceDetailTotals(t *testing.T) {
	svc := application.NewCatalogService(helpers.LoadCatalog(t))

	detail, err := svc.InvoiceDetail("INV-2025-002")
	require.NoError(t, err)
	assert.False(t, detail.Fallback)
	assert.Equal(t, "INV-2025-002", detail.Invoice.ID)
	assert.InDelta(t, 109.98, detail.Subtotal, 1e-9)
	assert.InDelta(t, 11.00, detail.Tax, 1e-9)
	assert.InDelta(t, 120.98, detail.Total, 1e-9)
}

func TestCatalogService_UnknownInvoiceFallsBackToFirst(t *testing.T) {
	svc := application.NewCatalogService(helpers.LoadCatalog(t))

	detail, err := svc.InvoiceDetail("INV-404")
	require.NoError(t, err)
	assert.True(t, detail.Fallback)
	assert.Equal(t, "INV-2025-001", detail.Invoice.ID)
	assert.InDelta(t, 49.99, detail.Subtotal, 1e-9)
	assert.InDelta(t, 5.00, detail.Tax, 1e-9)
	assert.InDelta(t, 54.99, detail.Total, 1e-9)
}

func TestCatalogService_InvoiceDetailEmptyCatalog(t *testing.T) {
	svc := application.NewCatalogService(&catalog.Catalog{})
	_, err := svc.InvoiceDetail("anything")
	assert.ErrorIs(t, err, application.ErrInvoiceNotFound)
}

func TestCatalogService_Plans(t *testing.T) {
	svc := application.NewCatalogService(helpers.LoadCatalog(t))

	monthly := svc.Plans(application.BillingMonthly)
	require.Len(t, monthly, 4)
	assert.Equal(t, 2.99, monthly[0].Price)
	assert.Equal(t, "month", monthly[0].Period)
	assert.InDelta(t, 5.89, monthly[0].YearlySavings, 1e-9)
	assert.Equal(t, 16, monthly[0].SavingsPercent)

	yearly := svc.Plans(application.BillingYearly)
	assert.Equal(t, 29.99, yearly[0].Price)
	assert.Equal(t, "year", yearly[0].Period)

	assert.Len(t, svc.FeaturedPlans(), 3)
}

func TestCatalogService_ServicesFilter(t *testing.T) {
	svc := application.NewCatalogService(helpers.LoadCatalog(t))

	assert.Len(t, svc.Services(application.ServiceFilter{}), 6)
	assert.Len(t, svc.Services(application.ServiceFilter{Type: "Domain"}), 2)
	assert.Len(t, svc.Services(application.ServiceFilter{Status: "Pending", Type: "all"}), 1)
	assert.Len(t, svc.Services(application.ServiceFilter{Search: "BUSINESS"}), 2)
	assert.Empty(t, svc.Services(application.ServiceFilter{Status: "Expired"}))

	found, ok := svc.FindService(2)
	require.True(t, ok)
	assert.Equal(t, "Professional Hosting", found.Name)
	_, ok = svc.FindService(99)
	assert.False(t, ok)
}

func TestCatalogService_InvoicesFilterAndTotals(t *testing.T) {
	svc := application.NewCatalogService(helpers.LoadCatalog(t))

	assert.Len(t, svc.Invoices(application.InvoiceFilter{Status: "Paid"}), 2)
	assert.Len(t, svc.Invoices(application.InvoiceFilter{Search: "hosting"}), 4)
	assert.Len(t, svc.Invoices(application.InvoiceFilter{Search: "inv-2025-003"}), 1)

	totals := svc.Totals()
	assert.Equal(t, 5, totals.Count)
	assert.Equal(t, 1, totals.Overdue)
	assert.InDelta(t, 62.98, totals.Paid, 1e-9)
	assert.InDelta(t, 274.97, totals.Outstanding, 1e-9)
}
