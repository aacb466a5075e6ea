package presenters

import (
	"errors"

	"hostpro/application"
	"hostpro/domain/catalog"
	"hostpro/interfaces/web/templates/pages"
)

// SitePresenter builds view models for the public pages.
type SitePresenter struct{}

// NewSitePresenter creates a new site presenter.
func NewSitePresenter() *SitePresenter {
	return &SitePresenter{}
}

// Home builds the landing page.
func (p *SitePresenter) Home(svc *application.CatalogService) pages.HomeView {
	c := svc.Catalog()
	featured := svc.FeaturedPlans()
	cards := make([]pages.PlanCardView, 0, len(featured))
	for _, plan := range featured {
		cards = append(cards, planCard(application.PlanPrice{Plan: plan, Price: plan.MonthlyPrice, Period: "month"}))
	}
	return pages.HomeView{
		Features:     c.Features,
		Plans:        cards,
		Testimonials: c.Testimonials,
		Clients:      c.Clients,
	}
}

// Plans builds the hosting plans page for a billing cycle.
func (p *SitePresenter) Plans(svc *application.CatalogService, cycle string) pages.PlansView {
	if cycle != application.BillingYearly {
		cycle = application.BillingMonthly
	}
	priced := svc.Plans(cycle)

	v := pages.PlansView{Cycle: cycle}
	for _, pp := range priced {
		card := planCard(pp)
		if cycle == application.BillingYearly && pp.YearlySavings > 0 {
			card.Savings = "Save " + Money(pp.YearlySavings) + " (" + Count(pp.SavingsPercent) + "%)"
		}
		v.Plans = append(v.Plans, card)
		v.PlanNames = append(v.PlanNames, pp.Name)
	}
	for _, label := range svc.Catalog().PlanFeatureLabels {
		row := pages.ComparisonRow{Label: label.Label}
		for _, pp := range priced {
			value, ok := pp.Features[label.Key]
			if !ok {
				value = "—"
			}
			row.Values = append(row.Values, value)
		}
		v.Comparison = append(v.Comparison, row)
	}
	return v
}

func planCard(pp application.PlanPrice) pages.PlanCardView {
	return pages.PlanCardView{
		Name:        pp.Name,
		Description: pp.Description,
		Price:       Money(pp.Price),
		Period:      pp.Period,
		Popular:     pp.Popular,
		Highlights:  pp.Highlights,
	}
}

// DomainSearchForm builds the search page before or after a search.
// selected lists the chosen extensions without dots; empty selects the defaults.
func (p *SitePresenter) DomainSearchForm(c *catalog.Catalog, query string, selected []string) pages.DomainSearchView {
	if len(selected) == 0 {
		selected = c.DefaultTLDs()
	}
	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}

	v := pages.DomainSearchView{Query: query, Features: c.DomainFeatures}
	for _, tld := range c.TLDs {
		v.TLDs = append(v.TLDs, pages.TLDOption{
			Name:      tld.Name(),
			Extension: tld.Extension,
			Price:     Money(tld.Price) + "/yr",
			Popular:   tld.Popular,
			Selected:  chosen[tld.Name()],
		})
	}
	return v
}

// DomainResults adds search results, or the search error, to v.
func (p *SitePresenter) DomainResults(v pages.DomainSearchView, results []catalog.DomainResult, suggestions []string, err error) pages.DomainSearchView {
	v.Searched = true
	switch {
	case errors.Is(err, application.ErrEmptyQuery):
		v.Error = "Please enter a domain name to search."
		return v
	case err != nil:
		v.Error = "Search failed. Please try again."
		return v
	}

	for _, r := range results {
		if r.Available {
			v.Available++
		}
		v.Results = append(v.Results, pages.DomainResultView{
			Domain:    r.Domain,
			Available: r.Available,
			Popular:   r.Popular,
			Price:     Money(r.Price),
			Features:  r.Features,
		})
	}
	v.Suggestions = suggestions
	return v
}

// About builds the company page.
func (p *SitePresenter) About(c *catalog.Catalog) pages.AboutView {
	return pages.AboutView{
		Stats:      c.CompanyStats,
		Values:     c.Values,
		Team:       c.Team,
		Milestones: c.Milestones,
	}
}

// Contact builds the contact page. errs holds field errors from a failed submit.
func (p *SitePresenter) Contact(c *catalog.Catalog, form application.ContactForm, errs map[string]string, sent bool) pages.ContactView {
	return pages.ContactView{
		Form: pages.ContactFormView{
			Name:    form.Name,
			Email:   form.Email,
			Subject: form.Subject,
			Message: form.Message,
		},
		Errors:   errs,
		Sent:     sent,
		Channels: c.ContactChannels,
		Topics:   c.SupportTopics,
	}
}
