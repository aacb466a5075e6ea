package pages

import (
	"context"

	"github.com/a-h/templ"

	"hostpro/interfaces/web/templates/components/ui"
	"hostpro/interfaces/web/templates/markup"
)

// ContactFormID is the element the contact form replaces on submit.
const ContactFormID = "contact-form"

// Contact renders the contact page.
func Contact(v ContactView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Render(ctx, ui.SectionHeader("Get in touch", "Our team is here to help around the clock."))
		m.Raw(`<div class="grid contact">`)
		m.Render(ctx, ContactForm(v))

		m.Raw(`<aside class="channels">`)
		for _, c := range v.Channels {
			m.Raw(`<div class="card channel"><h3>`)
			m.Text(c.Title)
			m.Raw(`</h3>`)
			for _, d := range c.Details {
				m.Raw(`<p>`)
				m.Text(d)
				m.Raw(`</p>`)
			}
			m.Raw(`<p class="muted">`)
			m.Text(c.Description)
			m.Raw(`</p></div>`)
		}
		m.Raw(`</aside></div>`)

		m.Raw(`<section><h2>Support options</h2><div class="grid">`)
		for _, t := range v.Topics {
			m.Raw(`<article class="card"><h3>`)
			m.Text(t.Title)
			m.Raw(`</h3><p class="muted">`)
			m.Text(t.Description)
			m.Raw(`</p><p class="response-time">Response time: `)
			m.Text(t.ResponseTime)
			m.Raw(`</p></article>`)
		}
		m.Raw(`</div></section>`)
	})
}

// ContactForm renders the contact form, or the thank-you state once sent.
func ContactForm(v ContactView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<form method="post" action="/contact" class="card" hx-post="/contact"`)
		m.Attr("id", ContactFormID)
		m.Attr("hx-target", "#"+ContactFormID)
		m.Raw(` hx-select="#contact-form" hx-swap="outerHTML" hx-disabled-elt="find button">`)
		if v.Sent {
			m.Render(ctx, ui.Alert("success", "Thank you! Your message has been sent. We'll get back to you within 24 hours."))
			m.Raw(`<a href="/contact" class="btn btn-secondary">Send another message</a></form>`)
			return
		}
		m.Render(ctx, ui.FormField(ui.Field{Name: "name", Label: "Full Name", Value: v.Form.Name, Required: true, Error: v.Errors["name"]}))
		m.Render(ctx, ui.FormField(ui.Field{Name: "email", Label: "Email Address", Type: "email", Value: v.Form.Email, Required: true, Error: v.Errors["email"]}))
		m.Render(ctx, ui.FormField(ui.Field{Name: "subject", Label: "Subject", Value: v.Form.Subject, Required: true, Error: v.Errors["subject"]}))
		m.Render(ctx, ui.FormField(ui.Field{Name: "message", Label: "Message", Type: "textarea", Rows: 6, Value: v.Form.Message, Required: true, Error: v.Errors["message"]}))
		m.Raw(`<button type="submit" class="btn btn-primary">Send Message</button></form>`)
	})
}

// Login renders the sign-in form.
func Login(v LoginView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<div class="auth card">`)
		m.Render(ctx, ui.SectionHeader("Welcome back", "Sign in to manage your hosting."))
		m.Render(ctx, ui.Alert("error", v.Errors["form"]))
		m.Raw(`<form method="post" action="/login">`)
		m.Raw(`<input type="hidden" name="next"`)
		m.Attr("value", v.Next)
		m.Raw(`>`)
		m.Render(ctx, ui.FormField(ui.Field{Name: "email", Label: "Email Address", Type: "email", Value: v.Email, Required: true, Error: v.Errors["email"]}))
		m.Render(ctx, ui.FormField(ui.Field{Name: "password", Label: "Password", Type: "password", Required: true, Error: v.Errors["password"]}))
		m.Raw(`<button type="submit" class="btn btn-primary">Sign In</button></form>`)
		m.Raw(`<p class="muted">Don't have an account? <a href="/register">Sign up</a></p></div>`)
	})
}

// Register renders the sign-up form.
func Register(v RegisterView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<div class="auth card">`)
		m.Render(ctx, ui.SectionHeader("Create your account", "Start hosting in minutes."))
		m.Raw(`<form method="post" action="/register">`)
		m.Render(ctx, ui.FormField(ui.Field{Name: "name", Label: "Full Name", Value: v.Name, Required: true, Error: v.Errors["name"]}))
		m.Render(ctx, ui.FormField(ui.Field{Name: "email", Label: "Email Address", Type: "email", Value: v.Email, Required: true, Error: v.Errors["email"]}))
		m.Render(ctx, ui.FormField(ui.Field{Name: "password", Label: "Password", Type: "password", Required: true, Error: v.Errors["password"]}))
		m.Render(ctx, ui.FormField(ui.Field{Name: "confirmPassword", Label: "Confirm Password", Type: "password", Required: true, Error: v.Errors["confirmPassword"]}))
		m.Raw(`<button type="submit" class="btn btn-primary">Create Account</button></form>`)
		m.Raw(`<p class="muted">Already have an account? <a href="/login">Sign in</a></p></div>`)
	})
}
