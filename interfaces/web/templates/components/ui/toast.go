package ui

import (
	"context"

	"github.com/a-h/templ"

	"hostpro/interfaces/web/templates/markup"
)

// ToastRegionID is the element the SSE stream and dismiss buttons swap into.
const ToastRegionID = "toast-region"

var toastKindClasses = map[string]string{
	"success": "toast-success",
	"error":   "toast-error",
	"info":    "toast-info",
}

// ToastRegion renders the fixed container that subscribes to the toast stream.
func ToastRegion(stack ToastStackView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<div`)
		m.Attr("id", ToastRegionID)
		m.Raw(` class="toast-region" aria-live="polite" hx-ext="sse" sse-connect="/events" sse-swap="toasts" hx-select="unset" hx-swap="innerHTML">`)
		m.Render(ctx, ToastStack(stack))
		m.Raw(`</div>`)
	})
}

// ToastStack renders the toasts newest first.
func ToastStack(stack ToastStackView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<ol class="toast-stack">`)
		for _, t := range stack.Toasts {
			m.Render(ctx, Toast(t))
		}
		m.Raw(`</ol>`)
	})
}

// Toast renders a single toast with its dismiss control.
func Toast(t ToastView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw(`<li`)
		m.Attr("class", markup.Classes("toast", toastKindClasses[t.Kind], markup.If(t.Persistent, "toast-persistent")))
		m.Attr("id", "toast-"+formatID(t.ID))
		m.Attr("data-kind", t.Kind)
		m.Raw(` role="status">`)

		m.Raw(`<span class="toast-icon" aria-hidden="true">`)
		m.Text(t.Icon)
		m.Raw(`</span><div class="toast-body">`)
		if t.Title != "" {
			m.Raw(`<p class="toast-title">`)
			m.Text(t.Title)
			m.Raw(`</p>`)
		}
		if t.Description != "" {
			m.Raw(`<p class="toast-description">`)
			m.Text(t.Description)
			m.Raw(`</p>`)
		}
		m.Raw(`</div>`)

		m.Raw(`<button type="button" class="toast-dismiss" aria-label="Dismiss"`)
		m.Attr("hx-post", t.DismissURL)
		m.Attr("hx-target", "#"+ToastRegionID)
		m.Raw(` hx-select="unset" hx-swap="innerHTML">&times;</button>`)

		if !t.Persistent && t.DurationMs > 0 {
			m.Raw(`<span class="toast-progress"`)
			m.Attr("style", "animation-duration: "+formatID(uint64(t.DurationMs))+"ms")
			m.Raw(`></span>`)
		}
		m.Raw(`</li>`)
	})
}
