package navigation

import "strings"

// View is a navigable page of the site.
type View struct {
	Name      string
	Title     string
	Path      string
	Protected bool
}

// Public views.
var (
	Home         = View{Name: "home", Title: "Home", Path: "/"}
	HostingPlans = View{Name: "hosting-plans", Title: "Hosting", Path: "/hosting-plans"}
	DomainSearch = View{Name: "domain-search", Title: "Domains", Path: "/domain-search"}
	About        = View{Name: "about", Title: "About", Path: "/about"}
	Contact      = View{Name: "contact", Title: "Contact", Path: "/contact"}
	Login        = View{Name: "login", Title: "Login", Path: "/login"}
	Register     = View{Name: "register", Title: "Get Started", Path: "/register"}
)

// Protected dashboard views.
var (
	Dashboard     = View{Name: "dashboard", Title: "Dashboard", Path: "/dashboard", Protected: true}
	Services      = View{Name: "services", Title: "Services", Path: "/dashboard/services", Protected: true}
	Invoices      = View{Name: "invoices", Title: "Invoices", Path: "/dashboard/invoices", Protected: true}
	InvoiceDetail = View{Name: "invoice-detail", Title: "Invoice", Path: "/dashboard/invoices/", Protected: true}
	Profile       = View{Name: "profile", Title: "Profile", Path: "/dashboard/profile", Protected: true}
	Support       = View{Name: "support", Title: "Support", Path: "/dashboard/support", Protected: true}
)

// PublicNav lists the views shown in the public navigation bar.
func PublicNav() []View {
	return []View{Home, HostingPlans, DomainSearch, About, Contact}
}

// DashboardNav lists the views shown in the dashboard sidebar.
func DashboardNav() []View {
	return []View{Dashboard, Services, Invoices, Profile, Support}
}

// ForPath resolves a request path to the view that serves it. Unknown paths
// under /dashboard resolve to a protected view so they are still guarded.
func ForPath(path string) (View, bool) {
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	for _, v := range append(append(PublicNav(), Login, Register), DashboardNav()...) {
		if v.Path == path {
			return v, true
		}
	}
	if strings.HasPrefix(path, InvoiceDetail.Path) {
		v := InvoiceDetail
		v.Path = path
		return v, true
	}
	if strings.HasPrefix(path, Dashboard.Path+"/") {
		return View{Name: "dashboard", Title: "Dashboard", Path: path, Protected: true}, true
	}
	return View{}, false
}

// IsActive reports whether the nav entry v should be highlighted for the
// current path. The home entry only matches exactly.
func IsActive(v View, currentPath string) bool {
	if v.Path == "/" || v.Path == Dashboard.Path {
		return currentPath == v.Path
	}
	return currentPath == v.Path || strings.HasPrefix(currentPath, v.Path+"/")
}
