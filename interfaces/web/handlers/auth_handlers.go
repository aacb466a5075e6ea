package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"hostpro/application"
	"hostpro/domain/navigation"
	"hostpro/interfaces/web/templates/pages"
	"hostpro/logging"
)

// AuthHandlers serves the mock sign-in, sign-up and sign-out flows and the
// theme toggle.
type AuthHandlers struct {
	authService *application.AuthService
	renderer    *Renderer
	logger      *logging.Logger
}

// NewAuthHandlers creates the auth handlers.
func NewAuthHandlers(authService *application.AuthService, renderer *Renderer) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		renderer:    renderer,
		logger:      logging.Default().WithComponent("auth_handler"),
	}
}

// LoginPage renders the sign-in form. Clients that are already signed in go
// straight to their destination.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	ac := application.MustFromContext(r.Context())
	next := r.URL.Query().Get("next")
	if ac.Session.IsAuthenticated() {
		Redirect(w, r, application.SafeReturnPath(next))
		return
	}
	h.renderer.Page(w, r, http.StatusOK, navigation.Login, pages.Login(pages.LoginView{Next: next}))
}

// Login signs the client in and sends it to the page it originally asked for.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	ac := application.MustFromContext(r.Context())

	var form application.LoginForm
	if err := bindForm(r, &form); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	next := r.FormValue("next")

	if err := h.authService.Login(r.Context(), ac, form); err != nil {
		view := pages.LoginView{Email: form.Email, Next: next, Errors: formErrors(err)}
		h.renderer.Page(w, r, http.StatusUnprocessableEntity, navigation.Login, pages.Login(view))
		return
	}
	Redirect(w, r, application.SafeReturnPath(next))
}

// RegisterPage renders the sign-up form.
func (h *AuthHandlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	ac := application.MustFromContext(r.Context())
	if ac.Session.IsAuthenticated() {
		Redirect(w, r, navigation.Dashboard.Path)
		return
	}
	h.renderer.Page(w, r, http.StatusOK, navigation.Register, pages.Register(pages.RegisterView{}))
}

// Register creates the mock account and signs the client in.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	ac := application.MustFromContext(r.Context())

	var form application.RegisterForm
	if err := bindForm(r, &form); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	if err := h.authService.Register(r.Context(), ac, form); err != nil {
		view := pages.RegisterView{Name: form.Name, Email: form.Email, Errors: formErrors(err)}
		h.renderer.Page(w, r, http.StatusUnprocessableEntity, navigation.Register, pages.Register(view))
		return
	}
	Redirect(w, r, navigation.Dashboard.Path)
}

// Logout clears the session and returns the client to the home page.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout(r.Context(), application.MustFromContext(r.Context()))
	Redirect(w, r, navigation.Home.Path)
}

// ToggleTheme flips the client's theme. HTMX requests reload in place;
// plain form posts go back to the page they came from.
func (h *AuthHandlers) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	ac := application.MustFromContext(r.Context())
	dark := ac.Theme.Toggle(r.Context())
	h.logger.Debug("Theme toggled", "client_id", ac.ClientID, "dark", dark)

	if IsHTMXRequest(r) {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, localPath(r.FormValue("return")), http.StatusSeeOther)
}

// localPath keeps only same-site paths, defaulting to the home page.
func localPath(p string) string {
	u, err := url.Parse(p)
	if err != nil || p == "" || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(p, "//") {
		return navigation.Home.Path
	}
	return u.RequestURI()
}
