package handlers

import (
	"errors"
	"mime"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"hostpro/application"
	"hostpro/domain/toast"
	"hostpro/infrastructure/serialization"
	"hostpro/interfaces/web/presenters"
	"hostpro/interfaces/web/templates/components/ui"
	"hostpro/logging"
)

// ToastHandlers exposes the client's toast stack over HTTP and runs the mock
// actions that produce toasts.
type ToastHandlers struct {
	actions    *application.MockActionService
	presenter  *presenters.ToastPresenter
	serializer *serialization.ToastSerializer
	renderer   *Renderer
	logger     *logging.Logger
}

// NewToastHandlers creates the toast handlers.
func NewToastHandlers(
	actions *application.MockActionService,
	presenter *presenters.ToastPresenter,
	serializer *serialization.ToastSerializer,
	renderer *Renderer,
) *ToastHandlers {
	return &ToastHandlers{
		actions:    actions,
		presenter:  presenter,
		serializer: serializer,
		renderer:   renderer,
		logger:     logging.Default().WithComponent("toast_handler"),
	}
}

// List returns the current stack as HTML, or JSON when the client asks for it.
func (h *ToastHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.writeStack(w, r, http.StatusOK)
}

// Create shows a toast described by a JSON body or form fields. Unknown
// kinds fall back to info; over-long text is rejected with 422.
func (h *ToastHandlers) Create(w http.ResponseWriter, r *http.Request) {
	notifier := application.MustToasts(r.Context())

	opts, err := h.decodeOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := application.Validate(opts); err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	id := notifier.Show(opts)
	h.logger.Debug("Toast shown on request", "toast_id", id)

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = serialization.Encode(w, map[string]uint64{"id": id})
		return
	}
	h.writeStack(w, r, http.StatusCreated)
}

// Dismiss removes a toast. Unknown ids are ignored so double clicks and
// races with expiry are harmless.
func (h *ToastHandlers) Dismiss(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid toast id", http.StatusBadRequest)
		return
	}
	application.MustToasts(r.Context()).Remove(id)
	h.writeStack(w, r, http.StatusOK)
}

// TriggerAction shows the toast bound to a stand-in button. Actions that
// belong to the dashboard require a signed-in client.
func (h *ToastHandlers) TriggerAction(w http.ResponseWriter, r *http.Request) {
	ac := application.MustFromContext(r.Context())
	name := chi.URLParam(r, "action")

	action, err := h.actions.Lookup(name)
	if err != nil {
		http.Error(w, "unknown action", http.StatusNotFound)
		return
	}
	if action.Protected && !ac.Session.IsAuthenticated() {
		h.logger.Security("Rejected protected action", "client_id", ac.ClientID, "action", name)
		http.Error(w, "sign in required", http.StatusUnauthorized)
		return
	}

	subject := r.URL.Query().Get("subject")
	if _, err := h.actions.Trigger(ac, name, subject); err != nil {
		h.logger.ClientError("Failed to trigger action", err, ac.ClientID)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeStack(w, r, http.StatusOK)
}

func (h *ToastHandlers) decodeOptions(r *http.Request) (toast.Options, error) {
	if isJSONBody(r) {
		req, err := h.serializer.DecodeRequest(r.Body)
		if err != nil {
			return toast.Options{}, err
		}
		return req.Options()
	}

	var req serialization.ToastRequest
	if err := bindForm(r, &req); err != nil {
		if isDecodeError(err) {
			return toast.Options{}, errors.New("duration must be a whole number of milliseconds")
		}
		return toast.Options{}, errors.New("failed to parse form data")
	}
	return req.Options()
}

func (h *ToastHandlers) writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	fields := formErrors(err)
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = serialization.Encode(w, map[string]any{"errors": fields})
		return
	}
	msg := make([]string, 0, len(fields))
	for field, m := range fields {
		msg = append(msg, field+": "+m)
	}
	sort.Strings(msg)
	h.renderer.Render(w, r, http.StatusUnprocessableEntity, ui.Alert("error", strings.Join(msg, "; ")))
}

func (h *ToastHandlers) writeStack(w http.ResponseWriter, r *http.Request, status int) {
	toasts := application.MustToasts(r.Context()).List()
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := h.serializer.EncodeToasts(w, toasts); err != nil {
			h.logger.Error("Failed to encode toasts", "error", err)
		}
		return
	}
	h.renderer.Render(w, r, status, ui.ToastStack(h.presenter.ToStackView(toasts)))
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func isJSONBody(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}
