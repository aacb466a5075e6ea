package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"

	"hostpro/application"
	"hostpro/domain/catalog"
	"hostpro/domain/navigation"
	"hostpro/interfaces/web/presenters"
	"hostpro/interfaces/web/templates/pages"
	"hostpro/logging"
)

// DashboardHandlers serves the protected customer dashboard. Routes are
// mounted behind ClientMiddleware.RequireAuth.
type DashboardHandlers struct {
	catalogService *application.CatalogService
	profileService *application.ProfileService
	supportService *application.SupportService
	presenter      *presenters.DashboardPresenter
	renderer       *Renderer
	logger         *logging.Logger
}

// NewDashboardHandlers creates the dashboard handlers.
func NewDashboardHandlers(
	catalogService *application.CatalogService,
	profileService *application.ProfileService,
	supportService *application.SupportService,
	presenter *presenters.DashboardPresenter,
	renderer *Renderer,
) *DashboardHandlers {
	return &DashboardHandlers{
		catalogService: catalogService,
		profileService: profileService,
		supportService: supportService,
		presenter:      presenter,
		renderer:       renderer,
		logger:         logging.Default().WithComponent("dashboard_handler"),
	}
}

// Overview renders the dashboard landing page.
func (h *DashboardHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	ac := application.MustFromContext(r.Context())
	view := h.presenter.Overview(h.catalogService.Catalog(), ac.Workspace())
	h.renderer.Page(w, r, http.StatusOK, navigation.Dashboard, pages.Overview(view))
}

// Services renders the filtered services list.
func (h *DashboardHandlers) Services(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := application.ServiceFilter{
		Search: q.Get("q"),
		Status: q.Get("status"),
		Type:   q.Get("type"),
	}
	view := h.presenter.Services(h.catalogService.Catalog(), filter, h.catalogService.Services(filter))
	h.renderer.Page(w, r, http.StatusOK, navigation.Services, pages.Services(view))
}

// Invoices renders the filtered invoice list with account totals.
func (h *DashboardHandlers) Invoices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := application.InvoiceFilter{
		Search: q.Get("q"),
		Status: q.Get("status"),
	}
	view := h.presenter.Invoices(h.catalogService.Catalog(), filter, h.catalogService.Invoices(filter), h.catalogService.Totals())
	h.renderer.Page(w, r, http.StatusOK, navigation.Invoices, pages.Invoices(view))
}

// InvoiceDetail renders one invoice. Unknown ids show the first invoice
// with a notice.
func (h *DashboardHandlers) InvoiceDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "invoiceID")
	detail, err := h.catalogService.InvoiceDetail(id)
	if err != nil {
		http.Error(w, "Invoice not found", http.StatusNotFound)
		return
	}
	if detail.Fallback {
		h.logger.Debug("Unknown invoice requested, showing first invoice", "requested_id", id, "shown_id", detail.Invoice.ID)
	}

	view := navigation.InvoiceDetail
	view.Path = r.URL.Path
	h.renderer.Page(w, r, http.StatusOK, view, pages.InvoiceDetail(h.presenter.InvoiceDetail(detail, id)))
}

// Profile renders the account settings tab in ?tab.
func (h *DashboardHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	h.renderProfile(w, r, http.StatusOK, r.URL.Query().Get("tab"), nil, nil)
}

// SaveProfile stores the submitted account details.
func (h *DashboardHandlers) SaveProfile(w http.ResponseWriter, r *http.Request) {
	ac := application.MustFromContext(r.Context())

	var profile catalog.Profile
	if err := bindForm(r, &profile); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	err := h.profileService.Save(r.Context(), ac, profile)
	if err != nil && abandoned(r, err) {
		h.logger.Debug("Profile save abandoned by client", "client_id", ac.ClientID)
		return
	}
	if err != nil {
		h.renderProfile(w, r, http.StatusUnprocessableEntity, pages.TabProfile, &profile, formErrors(err))
		return
	}
	h.afterSave(w, r, pages.TabProfile)
}

// ChangePassword runs the simulated password change.
func (h *DashboardHandlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ac := application.MustFromContext(r.Context())

	var form application.PasswordForm
	if err := bindForm(r, &form); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	err := h.profileService.ChangePassword(r.Context(), ac, form)
	if err != nil && abandoned(r, err) {
		return
	}
	if err != nil {
		errs := formErrors(err)
		if errors.Is(err, application.ErrPasswordMismatch) {
			errs = map[string]string{"form": "New passwords don't match", "confirmPassword": "Does not match"}
		}
		h.renderProfile(w, r, http.StatusUnprocessableEntity, pages.TabSecurity, nil, errs)
		return
	}
	h.afterSave(w, r, pages.TabSecurity)
}

// SaveSecurity stores the security settings form. Numbers that fail to
// parse keep their current value; unticked boxes switch off.
func (h *DashboardHandlers) SaveSecurity(w http.ResponseWriter, r *http.Request) {
	ac := application.MustFromContext(r.Context())
	current := ac.Workspace().Security()

	settings := catalog.SecuritySettings{
		SessionTimeout: current.SessionTimeout,
		PasswordExpiry: current.PasswordExpiry,
	}
	if err := bindForm(r, &settings); err != nil {
		if !isDecodeError(err) {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		h.logger.Debug("Ignoring unparsable security fields", "client_id", ac.ClientID, "error", err)
	}

	h.profileService.UpdateSecurity(ac, settings)
	h.afterSave(w, r, pages.TabSecurity)
}

// SaveNotifications stores the notification toggles. Unchecked boxes are
// absent from the form and switch the preference off.
func (h *DashboardHandlers) SaveNotifications(w http.ResponseWriter, r *http.Request) {
	ac := application.MustFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	enabled := make(map[string]bool)
	for _, n := range ac.Workspace().Notifications() {
		enabled[n.Key] = checked(r.Form[n.Key])
	}
	h.profileService.UpdateNotifications(ac, enabled)
	h.afterSave(w, r, pages.TabNotifications)
}

// afterSave shows the saved tab. Plain posts are redirected so a reload does
// not resubmit; HTMX requests get the page directly.
func (h *DashboardHandlers) afterSave(w http.ResponseWriter, r *http.Request, tab string) {
	if !IsHTMXRequest(r) {
		http.Redirect(w, r, navigation.Profile.Path+"?tab="+tab, http.StatusSeeOther)
		return
	}
	h.renderProfile(w, r, http.StatusOK, tab, nil, nil)
}

func (h *DashboardHandlers) renderProfile(w http.ResponseWriter, r *http.Request, status int, tab string, profile *catalog.Profile, errs map[string]string) {
	ac := application.MustFromContext(r.Context())
	view := h.presenter.Profile(ac.Workspace(), tab, profile, errs)
	h.renderer.Page(w, r, status, navigation.Profile, pages.Profile(view))
}

// Support renders the ticket list and form.
func (h *DashboardHandlers) Support(w http.ResponseWriter, r *http.Request) {
	ac := application.MustFromContext(r.Context())
	view := h.presenter.Support(ac.Workspace(), application.TicketForm{}, nil)
	h.renderer.Page(w, r, http.StatusOK, navigation.Support, pages.Support(view))
}

// CreateTicket accepts the multipart ticket form with an optional attachment.
func (h *DashboardHandlers) CreateTicket(w http.ResponseWriter, r *http.Request) {
	ac := application.MustFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, application.MaxAttachmentSize+1<<20)
	if err := r.ParseMultipartForm(application.MaxAttachmentSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.logger.ClientError("Failed to parse ticket form", err, ac.ClientID)
		h.renderSupport(w, r, http.StatusUnprocessableEntity, application.TicketForm{}, map[string]string{
			"attachment": "Attachment must be smaller than " + humanize.IBytes(application.MaxAttachmentSize),
		})
		return
	}

	var form application.TicketForm
	if err := bindForm(r, &form); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	attachment, err := readAttachment(r, "attachment")
	if err != nil {
		h.logger.ClientError("Failed to read ticket attachment", err, ac.ClientID)
		h.renderSupport(w, r, http.StatusUnprocessableEntity, form, map[string]string{"attachment": "Could not read the attachment"})
		return
	}
	form.Attachment = attachment

	if _, err := h.supportService.CreateTicket(ac, form); err != nil {
		errs := formErrors(err)
		if errors.Is(err, application.ErrAttachmentRejected) {
			errs = map[string]string{"attachment": "Attachment type or size is not supported"}
		}
		h.renderSupport(w, r, http.StatusUnprocessableEntity, form, errs)
		return
	}

	if !IsHTMXRequest(r) {
		http.Redirect(w, r, navigation.Support.Path, http.StatusSeeOther)
		return
	}
	h.renderSupport(w, r, http.StatusOK, application.TicketForm{}, nil)
}

func (h *DashboardHandlers) renderSupport(w http.ResponseWriter, r *http.Request, status int, form application.TicketForm, errs map[string]string) {
	ac := application.MustFromContext(r.Context())
	view := h.presenter.Support(ac.Workspace(), form, errs)
	h.renderer.Page(w, r, status, navigation.Support, pages.Support(view))
}

// readAttachment returns the uploaded file under field, or nil when none was sent.
func readAttachment(r *http.Request, field string) (*application.Attachment, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, application.MaxAttachmentSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &application.Attachment{Name: header.Filename, Data: data}, nil
}
