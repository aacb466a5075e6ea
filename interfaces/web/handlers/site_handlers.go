package handlers

import (
	"errors"
	"net/http"

	"hostpro/application"
	"hostpro/domain/navigation"
	"hostpro/domain/toast"
	"hostpro/interfaces/web/presenters"
	"hostpro/interfaces/web/templates/pages"
	"hostpro/logging"
)

// SiteHandlers serves the public marketing pages and their simulated operations.
type SiteHandlers struct {
	catalogService *application.CatalogService
	domainService  *application.DomainSearchService
	contactService *application.ContactService
	sitePresenter  *presenters.SitePresenter
	renderer       *Renderer
	logger         *logging.Logger
}

// NewSiteHandlers creates the public page handlers.
func NewSiteHandlers(
	catalogService *application.CatalogService,
	domainService *application.DomainSearchService,
	contactService *application.ContactService,
	sitePresenter *presenters.SitePresenter,
	renderer *Renderer,
) *SiteHandlers {
	return &SiteHandlers{
		catalogService: catalogService,
		domainService:  domainService,
		contactService: contactService,
		sitePresenter:  sitePresenter,
		renderer:       renderer,
		logger:         logging.Default().WithComponent("site_handler"),
	}
}

// Home renders the landing page.
func (h *SiteHandlers) Home(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, http.StatusOK, navigation.Home, pages.Home(h.sitePresenter.Home(h.catalogService)))
}

// HostingPlans renders plan pricing for the billing cycle in ?cycle.
func (h *SiteHandlers) HostingPlans(w http.ResponseWriter, r *http.Request) {
	cycle := r.URL.Query().Get("cycle")
	if cycle != application.BillingYearly {
		cycle = application.BillingMonthly
	}
	view := h.sitePresenter.Plans(h.catalogService, cycle)
	h.renderer.Page(w, r, http.StatusOK, navigation.HostingPlans, pages.HostingPlans(view))
}

// About renders the company page.
func (h *SiteHandlers) About(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, http.StatusOK, navigation.About, pages.About(h.sitePresenter.About(h.catalogService.Catalog())))
}

// DomainSearchPage renders the search form. A ?q parameter runs the search
// right away so result pages can be linked.
func (h *SiteHandlers) DomainSearchPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	tlds := r.URL.Query()["tld"]
	if query == "" {
		view := h.sitePresenter.DomainSearchForm(h.catalogService.Catalog(), "", tlds)
		h.renderer.Page(w, r, http.StatusOK, navigation.DomainSearch, pages.DomainSearch(view))
		return
	}
	h.search(w, r, query, tlds)
}

// DomainSearch runs a submitted search. HTMX requests aimed at the results
// element get only the results partial.
func (h *SiteHandlers) DomainSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form data", http.StatusBadRequest)
		return
	}
	h.search(w, r, r.FormValue("q"), r.Form["tld"])
}

func (h *SiteHandlers) search(w http.ResponseWriter, r *http.Request, query string, tlds []string) {
	view := h.sitePresenter.DomainSearchForm(h.catalogService.Catalog(), query, tlds)

	results, err := h.domainService.Search(r.Context(), query, tlds)
	if err != nil && abandoned(r, err) {
		h.logger.Debug("Domain search abandoned by client", "query", query)
		return
	}

	var suggestions []string
	if err == nil {
		suggestions = h.domainService.Suggestions(query)
	} else if !errors.Is(err, application.ErrEmptyQuery) {
		h.logger.Error("Domain search failed", "query", query, "error", err)
	}
	view = h.sitePresenter.DomainResults(view, results, suggestions, err)

	status := http.StatusOK
	if err != nil {
		status = http.StatusUnprocessableEntity
	}

	if IsHTMXPartialRequest(r) && GetHTMXTarget(r) == pages.DomainResultsID {
		h.renderer.Render(w, r, status, pages.DomainResults(view))
		return
	}
	h.renderer.Page(w, r, status, navigation.DomainSearch, pages.DomainSearch(view))
}

// ContactPage renders the contact form.
func (h *SiteHandlers) ContactPage(w http.ResponseWriter, r *http.Request) {
	view := h.sitePresenter.Contact(h.catalogService.Catalog(), application.ContactForm{}, nil, false)
	h.renderer.Page(w, r, http.StatusOK, navigation.Contact, pages.Contact(view))
}

// Contact submits the contact form. Validation failures re-render the form
// with 422 so HTMX swaps the errors in.
func (h *SiteHandlers) Contact(w http.ResponseWriter, r *http.Request) {
	var form application.ContactForm
	if err := bindForm(r, &form); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	err := h.contactService.Submit(r.Context(), form)
	if err != nil && abandoned(r, err) {
		h.logger.Debug("Contact submission abandoned by client")
		return
	}

	status := http.StatusOK
	var errs map[string]string
	if err != nil {
		status = http.StatusUnprocessableEntity
		errs = formErrors(err)
	} else {
		application.MustToasts(r.Context()).Show(toast.Options{
			Title:       "Message sent",
			Description: "We'll get back to you within 24 hours.",
		})
	}

	view := h.sitePresenter.Contact(h.catalogService.Catalog(), form, errs, err == nil)
	if IsHTMXPartialRequest(r) && GetHTMXTarget(r) == pages.ContactFormID {
		h.renderer.Render(w, r, status, pages.ContactForm(view))
		return
	}
	h.renderer.Page(w, r, status, navigation.Contact, pages.Contact(view))
}
