package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"hostpro/interfaces/web/templates/components/ui"
	"hostpro/interfaces/web/templates/markup"
)

// Profile tabs.
const (
	TabProfile       = "profile"
	TabSecurity      = "security"
	TabNotifications = "notifications"
)

// Profile renders the account settings page.
func Profile(v ProfileView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Render(ctx, ui.SectionHeader("Account Settings", "Manage your profile, security and notifications."))

		m.Raw(`<nav class="tabs" role="tablist">`)
		for _, tab := range []struct{ id, label string }{
			{TabProfile, "Profile"},
			{TabSecurity, "Security"},
			{TabNotifications, "Notifications"},
		} {
			m.Raw(`<a role="tab"`)
			m.URLAttr("href", "/dashboard/profile?tab="+tab.id)
			m.Attr("class", markup.Classes("tab", markup.If(v.Tab == tab.id, "tab-active")))
			m.Attr("aria-selected", boolString(v.Tab == tab.id))
			m.Raw(`>`)
			m.Text(tab.label)
			m.Raw(`</a>`)
		}
		m.Raw(`</nav>`)

		switch v.Tab {
		case TabSecurity:
			securityTab(ctx, m, v)
		case TabNotifications:
			notificationsTab(ctx, m, v)
		default:
			profileTab(ctx, m, v)
		}
	})
}

func profileTab(ctx context.Context, m *markup.Writer, v ProfileView) {
	p := v.Profile
	m.Raw(`<form method="post" action="/dashboard/profile" class="card" hx-disabled-elt="find button">`)
	m.Raw(`<div class="grid">`)
	m.Render(ctx, ui.FormField(ui.Field{Name: "firstName", Label: "First Name", Value: p.FirstName, Required: true, Error: v.Errors["firstName"]}))
	m.Render(ctx, ui.FormField(ui.Field{Name: "lastName", Label: "Last Name", Value: p.LastName, Required: true, Error: v.Errors["lastName"]}))
	m.Render(ctx, ui.FormField(ui.Field{Name: "email", Label: "Email", Type: "email", Value: p.Email, Required: true, Error: v.Errors["email"]}))
	m.Render(ctx, ui.FormField(ui.Field{Name: "phone", Label: "Phone", Type: "tel", Value: p.Phone, Error: v.Errors["phone"]}))
	m.Render(ctx, ui.FormField(ui.Field{Name: "company", Label: "Company", Value: p.Company, Error: v.Errors["company"]}))
	m.Render(ctx, ui.FormField(ui.Field{Name: "country", Label: "Country", Value: p.Country, Error: v.Errors["country"]}))
	m.Render(ctx, ui.FormField(ui.Field{Name: "timezone", Label: "Timezone", Value: p.Timezone, Error: v.Errors["timezone"]}))
	m.Render(ctx, ui.FormField(ui.Field{Name: "language", Label: "Language", Value: p.Language, Error: v.Errors["language"]}))
	m.Raw(`</div><button type="submit" class="btn btn-primary">Save Changes</button></form>`)
}

func securityTab(ctx context.Context, m *markup.Writer, v ProfileView) {
	m.Raw(`<form method="post" action="/dashboard/profile/password" class="card password-form" hx-disabled-elt="find button"><h2>Change Password</h2>`)
	m.Render(ctx, ui.Alert("error", v.Errors["form"]))
	m.Render(ctx, ui.FormField(ui.Field{Name: "currentPassword", Label: "Current Password", Type: "password", Required: true, Error: v.Errors["currentPassword"]}))
	m.Render(ctx, ui.FormField(ui.Field{Name: "newPassword", Label: "New Password", Type: "password", Required: true, Error: v.Errors["newPassword"]}))
	m.Render(ctx, ui.FormField(ui.Field{Name: "confirmPassword", Label: "Confirm New Password", Type: "password", Required: true, Error: v.Errors["confirmPassword"]}))
	m.Raw(`<button type="submit" class="btn btn-primary">Update Password</button></form>`)

	s := v.Security
	m.Raw(`<form method="post" action="/dashboard/profile/security" class="card security-form"><h2>Security Settings</h2>`)
	m.Render(ctx, ui.Checkbox("twoFactorAuth", "Two-factor authentication", "Require a code from your phone when signing in.", s.TwoFactorAuth))
	m.Render(ctx, ui.Checkbox("loginNotifications", "Login notifications", "Email me when a new device signs in.", s.LoginNotifications))
	m.Render(ctx, ui.FormField(ui.Field{Name: "sessionTimeout", Label: "Session timeout (minutes)", Type: "number", Value: strconv.Itoa(s.SessionTimeout)}))
	m.Render(ctx, ui.FormField(ui.Field{Name: "passwordExpiry", Label: "Password expiry (days)", Type: "number", Value: strconv.Itoa(s.PasswordExpiry)}))
	m.Raw(`<button type="submit" class="btn btn-primary">Save Security Settings</button></form>`)
}

func notificationsTab(ctx context.Context, m *markup.Writer, v ProfileView) {
	m.Raw(`<form method="post" action="/dashboard/profile/notifications" class="card notifications-form"><h2>Notification Preferences</h2>`)
	for _, n := range v.Notifications {
		m.Render(ctx, ui.Checkbox(n.Key, n.Label, n.Description, n.Enabled))
	}
	m.Raw(`<button type="submit" class="btn btn-primary">Save Preferences</button></form>`)
}

// Support renders the ticket list and the new ticket form.
func Support(v SupportView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Render(ctx, ui.SectionHeader("Support", "Create and track support tickets."))
		m.Raw(`<div class="grid support">`)

		m.Raw(`<form method="post" action="/dashboard/support" enctype="multipart/form-data" class="card ticket-form" hx-encoding="multipart/form-data" hx-disabled-elt="find button"><h2>New Ticket</h2>`)
		m.Render(ctx, ui.Alert("error", v.Errors["form"]))
		m.Render(ctx, ui.FormField(ui.Field{Name: "subject", Label: "Subject", Value: v.Form.Subject, Required: true, Error: v.Errors["subject"]}))
		m.Render(ctx, ui.FormField(ui.Field{Name: "department", Label: "Department", Value: v.Form.Department, Options: v.Departments, Error: v.Errors["department"]}))
		m.Render(ctx, ui.FormField(ui.Field{Name: "priority", Label: "Priority", Value: v.Form.Priority, Options: v.Priorities, Error: v.Errors["priority"]}))
		m.Render(ctx, ui.FormField(ui.Field{Name: "message", Label: "Message", Type: "textarea", Rows: 5, Value: v.Form.Message, Required: true, Error: v.Errors["message"]}))
		m.Raw(`<div class="form-field"><label for="attachment">Attachment</label><input type="file" id="attachment" name="attachment" accept="image/png,image/jpeg,image/gif,application/pdf,text/plain">`)
		m.Raw(`<p class="muted">Up to `)
		m.Text(v.MaxAttachment)
		m.Raw(`. PNG, JPEG, GIF, PDF or text.</p>`)
		if msg := v.Errors["attachment"]; msg != "" {
			m.Raw(`<p class="field-error">`)
			m.Text(msg)
			m.Raw(`</p>`)
		}
		m.Raw(`</div><button type="submit" class="btn btn-primary">Submit Ticket</button></form>`)

		m.Raw(`<section class="card tickets"><h2>Your Tickets</h2><ul>`)
		for _, t := range v.Tickets {
			m.Raw(`<li class="ticket"`)
			m.Attr("data-ticket-id", t.ID)
			m.Raw(`><header><strong>`)
			m.Text(t.ID)
			m.Raw(`</strong> `)
			m.Text(t.Subject)
			m.Raw(` `)
			m.Render(ctx, ui.StatusBadge(t.Status))
			m.Raw(`</header><p class="muted">`)
			m.Text(t.Department + " · " + t.Priority + " priority · opened " + t.CreatedAt)
			m.Raw(`</p><p>`)
			m.Text(t.Message)
			m.Raw(`</p>`)
			if t.Attachment != "" {
				m.Raw(`<p class="attachment muted">Attachment: `)
				m.Text(t.Attachment)
				m.Raw(`</p>`)
			}
			m.Raw(`<p class="muted">Last update: `)
			m.Text(t.LastUpdate)
			m.Raw(`</p></li>`)
		}
		m.Raw(`</ul></section></div>`)
	})
}
