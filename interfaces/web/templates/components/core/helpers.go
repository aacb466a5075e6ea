package core

func isActive(active bool) string {
	if active {
		return "nav-link nav-link-active"
	}
	return "nav-link"
}

func isSelected(active bool) string {
	if active {
		return "page"
	}
	return "false"
}
