// Package handlers render provides HTTP response and HTMX utilities.
package handlers

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/yosssi/gohtml"

	"hostpro/application"
	"hostpro/domain/navigation"
	"hostpro/interfaces/web/presenters"
	"hostpro/interfaces/web/templates/components/core"
	"hostpro/logging"
)

// Renderer writes templ components, wrapping full page loads in the layout.
type Renderer struct {
	pages  *presenters.PagePresenter
	pretty bool
	logger *logging.Logger
}

// NewRenderer creates a renderer. pretty indents the HTML output for debugging.
func NewRenderer(pages *presenters.PagePresenter, pretty bool) *Renderer {
	return &Renderer{
		pages:  pages,
		pretty: pretty,
		logger: logging.Default().WithComponent("renderer"),
	}
}

// Page renders body for view. HTMX requests that target the main element
// only get the main element; everything else gets the full document.
func (rr *Renderer) Page(w http.ResponseWriter, r *http.Request, status int, view navigation.View, body templ.Component) {
	ac, _ := application.FromContext(r.Context())
	page := rr.pages.Page(ac, view, r.URL.Path)

	component := core.Layout(page, body)
	if IsHTMXPartialRequest(r) && GetHTMXTarget(r) == core.MainID {
		component = core.Main(page, body)
	}
	rr.Render(w, r, status, component)
}

// Render writes component with the given status.
func (rr *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	var buf bytes.Buffer
	if err := component.Render(r.Context(), &buf); err != nil {
		rr.logger.Error("Failed to render component", "path", r.URL.Path, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	out := buf.Bytes()
	if rr.pretty {
		out = gohtml.FormatBytes(out)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

// IsHTMXRequest checks if the request came from HTMX.
func IsHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// IsHTMXPartialRequest checks if this is a targeted HTMX partial update.
func IsHTMXPartialRequest(r *http.Request) bool {
	return IsHTMXRequest(r) && r.Header.Get("HX-Target") != ""
}

// GetHTMXTarget returns the HTMX target element ID.
func GetHTMXTarget(r *http.Request) string {
	target := r.Header.Get("HX-Target")
	// Remove # prefix if present
	return strings.TrimPrefix(target, "#")
}

// Redirect sends the browser to location. HTMX requests get HX-Redirect so
// the whole page reloads instead of swapping the redirect target into the DOM.
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	if IsHTMXRequest(r) {
		w.Header().Set("HX-Redirect", location)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}
