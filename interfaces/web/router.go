// Package web assembles the HTTP surface: middleware, routes and static assets.
package web

import (
	"io"
	"io/fs"
	"net/http"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"

	"hostpro/interfaces/web/handlers"
	"hostpro/interfaces/web/templates"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Client    *handlers.ClientMiddleware
	Site      *handlers.SiteHandlers
	Auth      *handlers.AuthHandlers
	Dashboard *handlers.DashboardHandlers
	Toasts    *handlers.ToastHandlers
	System    *handlers.SystemHandlers
	SSE       *handlers.SSEManager
}

// RouterOptions configures the outer middleware.
type RouterOptions struct {
	// HTTPLogger enables access logging when set.
	HTTPLogger *httplog.Logger
	// Compression enables gzip and brotli response compression.
	Compression bool
}

var compressibleTypes = []string{
	"text/html",
	"text/css",
	"text/plain",
	"text/javascript",
	"application/javascript",
	"application/json",
	"image/svg+xml",
}

// NewRouter builds the application router.
func NewRouter(h *Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if opts.HTTPLogger != nil {
		r.Use(httplog.RequestLogger(opts.HTTPLogger))
	}
	r.Use(middleware.Recoverer)
	if opts.Compression {
		r.Use(newCompressor().Handler)
	}

	mountStaticAssets(r)
	r.Get("/health", h.System.Health)

	r.Group(func(r chi.Router) {
		r.Use(h.Client.Identify)

		r.Get("/events", h.SSE.HandleSSEConnection)

		// Public pages
		r.Get("/", h.Site.Home)
		r.Get("/hosting-plans", h.Site.HostingPlans)
		r.Get("/domain-search", h.Site.DomainSearchPage)
		r.Post("/domain-search", h.Site.DomainSearch)
		r.Get("/about", h.Site.About)
		r.Get("/contact", h.Site.ContactPage)
		r.Post("/contact", h.Site.Contact)

		// Session and theme
		r.Get("/login", h.Auth.LoginPage)
		r.Post("/login", h.Auth.Login)
		r.Get("/register", h.Auth.RegisterPage)
		r.Post("/register", h.Auth.Register)
		r.Post("/logout", h.Auth.Logout)
		r.Post("/theme/toggle", h.Auth.ToggleTheme)

		// Toasts
		r.Get("/toasts", h.Toasts.List)
		r.Post("/toasts", h.Toasts.Create)
		r.Delete("/toasts/{id}", h.Toasts.Dismiss)
		r.Post("/toasts/{id}/dismiss", h.Toasts.Dismiss)
		r.Post("/actions/{action}", h.Toasts.TriggerAction)

		// Dashboard
		r.Route("/dashboard", func(r chi.Router) {
			r.Use(h.Client.RequireAuth)

			r.Get("/", h.Dashboard.Overview)
			r.Get("/services", h.Dashboard.Services)
			r.Get("/invoices", h.Dashboard.Invoices)
			r.Get("/invoices/{invoiceID}", h.Dashboard.InvoiceDetail)
			r.Get("/profile", h.Dashboard.Profile)
			r.Post("/profile", h.Dashboard.SaveProfile)
			r.Post("/profile/password", h.Dashboard.ChangePassword)
			r.Post("/profile/security", h.Dashboard.SaveSecurity)
			r.Post("/profile/notifications", h.Dashboard.SaveNotifications)
			r.Get("/support", h.Dashboard.Support)
			r.Post("/support", h.Dashboard.CreateTicket)
		})
	})

	return r
}

func newCompressor() *middleware.Compressor {
	c := middleware.NewCompressor(5, compressibleTypes...)
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return c
}

func mountStaticAssets(r chi.Router) {
	sub, _ := fs.Sub(templates.FS, "assets")
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))
}
