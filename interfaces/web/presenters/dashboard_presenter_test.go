package presenters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostpro/application"
	"hostpro/infrastructure/repositories"
	"hostpro/interfaces/web/templates/pages"
	"hostpro/test/helpers"
)

func newWorkspace(t *testing.T) *application.Workspace {
	t.Helper()
	registry := application.NewContextRegistry(repositories.NewMemoryPreferenceRepository(), helpers.LoadCatalog(t), nil, application.ContextRegistryConfig{
		Scheduler: helpers.NewFakeScheduler(),
	})
	t.Cleanup(registry.Close)
	ac, err := registry.Resolve(context.Background(), "presenter-client", false)
	require.NoError(t, err)
	return ac.Workspace()
}

func fixedDashboardPresenter() *DashboardPresenter {
	p := NewDashboardPresenter()
	p.now = func() time.Time { return time.Date(2025, 8, 12, 12, 0, 0, 0, time.UTC) }
	return p
}

func TestDashboardPresenter_Overview(t *testing.T) {
	c := helpers.LoadCatalog(t)
	v := fixedDashboardPresenter().Overview(c, newWorkspace(t))

	assert.Equal(t, "Welcome back, John!", v.Greeting)
	assert.Len(t, v.Services, len(c.RecentServices))
	assert.Len(t, v.QuickActions, len(c.QuickActions))
	for _, a := range v.Alerts {
		assert.NotEmpty(t, a.When)
	}
}

func TestDashboardPresenter_ServicesFilters(t *testing.T) {
	c := helpers.LoadCatalog(t)
	svc := application.NewCatalogService(c)
	filter := application.ServiceFilter{Type: "Domain"}

	v := fixedDashboardPresenter().Services(c, filter, svc.Services(filter))

	assert.Equal(t, len(c.Services), v.Total)
	assert.Contains(t, v.Types, "Domain")
	assert.Contains(t, v.Statuses, "Active")
	require.NotEmpty(t, v.Services)
	for _, s := range v.Services {
		assert.Equal(t, "Domain", s.Type)
		assert.Contains(t, s.Renews, "left")
	}
}

func TestDashboardPresenter_InvoiceDetail(t *testing.T) {
	svc := application.NewCatalogService(helpers.LoadCatalog(t))
	detail, err := svc.InvoiceDetail("INV-DOES-NOT-EXIST")
	require.NoError(t, err)

	v := fixedDashboardPresenter().InvoiceDetail(detail, "INV-DOES-NOT-EXIST")

	assert.True(t, v.Fallback)
	assert.Equal(t, "INV-DOES-NOT-EXIST", v.RequestedID)
	assert.Equal(t, "INV-2025-001", v.ID)
	assert.Equal(t, "10%", v.TaxRate)
	assert.Equal(t, Money(detail.Total), v.Total)
	assert.Len(t, v.Items, len(detail.Invoice.Items))
}

func TestDashboardPresenter_ProfileTabs(t *testing.T) {
	ws := newWorkspace(t)
	p := fixedDashboardPresenter()

	assert.Equal(t, pages.TabProfile, p.Profile(ws, "bogus", nil, nil).Tab)
	assert.Equal(t, pages.TabSecurity, p.Profile(ws, pages.TabSecurity, nil, nil).Tab)

	typed := ws.Profile()
	typed.Email = "typed@example"
	v := p.Profile(ws, "", &typed, map[string]string{"email": "Enter a valid email address"})
	assert.Equal(t, "typed@example", v.Profile.Email)
	assert.Equal(t, "john.doe@example.com", ws.Profile().Email)
}

func TestDashboardPresenter_SupportDefaults(t *testing.T) {
	v := fixedDashboardPresenter().Support(newWorkspace(t), application.TicketForm{}, nil)

	assert.Equal(t, application.DefaultTicketDepartment, v.Form.Department)
	assert.Equal(t, application.DefaultTicketPriority, v.Form.Priority)
	assert.Equal(t, "5.0 MiB", v.MaxAttachment)
	assert.NotEmpty(t, v.Tickets)
}
