package presenters

import (
	"time"

	"hostpro/application"
	"hostpro/domain/navigation"
	"hostpro/interfaces/web/templates/components/core"
)

// PagePresenter builds the shared layout model for a request.
type PagePresenter struct {
	toasts *ToastPresenter
	now    func() time.Time
}

// NewPagePresenter creates a new page presenter.
func NewPagePresenter(toasts *ToastPresenter) *PagePresenter {
	return &PagePresenter{toasts: toasts, now: time.Now}
}

// Page describes view for the client owning ac. currentPath selects the
// highlighted navigation entries.
func (p *PagePresenter) Page(ac *application.AppContext, view navigation.View, currentPath string) core.PageView {
	page := core.PageView{
		Title:       view.Title,
		CurrentPath: currentPath,
		Dashboard:   view.Protected,
		Nav:         navItems(navigation.PublicNav(), currentPath),
		Year:        p.now().Year(),
	}
	if view.Protected {
		page.Sidebar = navItems(navigation.DashboardNav(), currentPath)
	}
	if ac != nil {
		page.Dark = ac.Theme.IsDark()
		page.Authenticated = ac.Session.IsAuthenticated()
		page.Toasts = p.toasts.ToStackView(ac.Toasts.List())
	}
	return page
}

func navItems(views []navigation.View, currentPath string) []core.NavItem {
	items := make([]core.NavItem, 0, len(views))
	for _, v := range views {
		items = append(items, core.NavItem{
			Title:  v.Title,
			Path:   v.Path,
			Active: navigation.IsActive(v, currentPath),
		})
	}
	return items
}
