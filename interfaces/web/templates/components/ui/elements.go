package ui

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"hostpro/interfaces/web/templates/markup"
)

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// StatusBadge renders a coloured pill for service, invoice and ticket states.
func StatusBadge(status string) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<span`)
		m.Attr("class", "badge "+badgeClass(status))
		m.Raw(`>`)
		m.Text(status)
		m.Raw(`</span>`)
	})
}

func badgeClass(status string) string {
	switch strings.ToLower(status) {
	case "active", "paid", "valid", "resolved", "success":
		return "badge-green"
	case "pending", "open", "in progress", "warning", "medium":
		return "badge-yellow"
	case "overdue", "expired", "suspended", "error", "high":
		return "badge-red"
	default:
		return "badge-gray"
	}
}

// Field describes one form control.
type Field struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Placeholder string
	Required    bool
	Error       string
	Rows        int
	Options     []string
}

// FormField renders a labelled input, textarea or select with its error.
func FormField(f Field) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<div class="form-field">`)
		m.Raw(`<label`)
		m.Attr("for", f.Name)
		m.Raw(`>`)
		m.Text(f.Label)
		m.Raw(`</label>`)

		class := markup.Classes("input", markup.If(f.Error != "", "input-error"))
		switch {
		case f.Type == "textarea":
			m.Raw(`<textarea`)
			m.Attr("id", f.Name)
			m.Attr("name", f.Name)
			m.Attr("class", class)
			m.Attr("rows", strconv.Itoa(max(f.Rows, 3)))
			m.Attr("placeholder", f.Placeholder)
			m.BoolAttr("required", f.Required)
			m.Raw(`>`)
			m.Text(f.Value)
			m.Raw(`</textarea>`)
		case len(f.Options) > 0:
			m.Raw(`<select`)
			m.Attr("id", f.Name)
			m.Attr("name", f.Name)
			m.Attr("class", class)
			m.Raw(`>`)
			for _, opt := range f.Options {
				m.Raw(`<option`)
				m.Attr("value", opt)
				m.BoolAttr("selected", opt == f.Value)
				m.Raw(`>`)
				m.Text(opt)
				m.Raw(`</option>`)
			}
			m.Raw(`</select>`)
		default:
			typ := f.Type
			if typ == "" {
				typ = "text"
			}
			m.Raw(`<input`)
			m.Attr("id", f.Name)
			m.Attr("name", f.Name)
			m.Attr("type", typ)
			m.Attr("class", class)
			if typ != "password" {
				m.Attr("value", f.Value)
			}
			m.Attr("placeholder", f.Placeholder)
			m.BoolAttr("required", f.Required)
			m.Raw(`>`)
		}

		if f.Error != "" {
			m.Raw(`<p class="field-error">`)
			m.Text(f.Error)
			m.Raw(`</p>`)
		}
		m.Raw(`</div>`)
	})
}

// Checkbox renders a labelled toggle.
func Checkbox(name, label, description string, checked bool) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<label class="toggle"><input type="checkbox" value="on"`)
		m.Attr("name", name)
		m.BoolAttr("checked", checked)
		m.Raw(`><span class="toggle-label">`)
		m.Text(label)
		m.Raw(`</span>`)
		if description != "" {
			m.Raw(`<span class="toggle-description">`)
			m.Text(description)
			m.Raw(`</span>`)
		}
		m.Raw(`</label>`)
	})
}

// Alert renders an inline banner. Kind is success, error or info.
func Alert(kind, message string) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		if message == "" {
			return
		}
		m.Raw(`<div role="alert"`)
		m.Attr("class", "alert alert-"+kind)
		m.Raw(`>`)
		m.Text(message)
		m.Raw(`</div>`)
	})
}

// ActionButton renders a button that posts a mock action and
// swaps the resulting toast stack into the toast region.
func ActionButton(label, action, subject, class string) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		target := "/actions/" + action
		if subject != "" {
			target += "?subject=" + url.QueryEscape(subject)
		}
		m.Raw(`<button type="button"`)
		m.Attr("class", markup.Classes("btn", class))
		m.Attr("hx-post", target)
		m.Attr("hx-target", "#"+ToastRegionID)
		m.Raw(` hx-select="unset" hx-swap="innerHTML">`)
		m.Text(label)
		m.Raw(`</button>`)
	})
}

// SectionHeader renders a page heading with an optional subtitle.
func SectionHeader(title, subtitle string) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<header class="section-header"><h1>`)
		m.Text(title)
		m.Raw(`</h1>`)
		if subtitle != "" {
			m.Raw(`<p class="subtitle">`)
			m.Text(subtitle)
			m.Raw(`</p>`)
		}
		m.Raw(`</header>`)
	})
}
