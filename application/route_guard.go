package application

import (
	"net/url"

	"hostpro/domain/navigation"
)

// Decision is the outcome of guarding a view.
type Decision struct {
	// View is the requested view when allowed, or the login view when the
	// request must be redirected.
	View     navigation.View
	Redirect bool
	// ReturnTo is the path the client asked for, set on redirects.
	ReturnTo string
}

// Location returns the URL a redirect decision points at, carrying the
// requested path so login can send the client back.
func (d Decision) Location() string {
	if !d.Redirect {
		return d.View.Path
	}
	if d.ReturnTo == "" {
		return d.View.Path
	}
	return d.View.Path + "?next=" + url.QueryEscape(d.ReturnTo)
}

// Guard decides whether view may be shown. Unauthenticated clients are
// redirected to the login view; authenticated clients get the view unchanged.
func Guard(isAuthenticated bool, view navigation.View) Decision {
	if !isAuthenticated {
		return Decision{View: navigation.Login, Redirect: true, ReturnTo: view.Path}
	}
	return Decision{View: view}
}

// SafeReturnPath accepts a post-login destination only if it is a local
// dashboard path.
func SafeReturnPath(next string) string {
	if next == "" {
		return navigation.Dashboard.Path
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return navigation.Dashboard.Path
	}
	v, ok := navigation.ForPath(u.Path)
	if !ok || !v.Protected {
		return navigation.Dashboard.Path
	}
	return u.Path
}
