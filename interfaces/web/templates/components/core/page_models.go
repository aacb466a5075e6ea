package core

import "hostpro/interfaces/web/templates/components/ui"

// NavItem is one entry of the navigation bar or dashboard sidebar.
type NavItem struct {
	Title  string
	Path   string
	Active bool
}

// PageView carries everything the shared layout needs for one request.
type PageView struct {
	Title         string
	CurrentPath   string
	Dark          bool
	Authenticated bool
	// Dashboard selects the sidebar layout.
	Dashboard bool
	Nav       []NavItem
	Sidebar   []NavItem
	Toasts    ui.ToastStackView
	Year      int
}
