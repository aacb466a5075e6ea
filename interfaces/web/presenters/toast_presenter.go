package presenters

import (
	"context"
	"strconv"
	"strings"

	"hostpro/domain/toast"
	"hostpro/interfaces/web/templates/components/ui"
)

var toastIcons = map[toast.Kind]string{
	toast.KindSuccess: "✓",
	toast.KindError:   "✕",
	toast.KindInfo:    "ℹ",
}

// ToastPresenter handles toast notification view logic and formatting.
type ToastPresenter struct{}

// NewToastPresenter creates a new toast presenter.
func NewToastPresenter() *ToastPresenter {
	return &ToastPresenter{}
}

// ToView converts one toast into its view model.
func (p *ToastPresenter) ToView(t toast.Toast) ui.ToastView {
	icon, ok := toastIcons[t.Kind]
	if !ok {
		icon = toastIcons[toast.KindInfo]
	}
	return ui.ToastView{
		ID:          t.ID,
		Kind:        string(t.Kind),
		Title:       t.Title,
		Description: t.Description,
		Icon:        icon,
		Persistent:  t.Persistent(),
		DurationMs:  t.Duration.Milliseconds(),
		DismissURL:  "/toasts/" + strconv.FormatUint(t.ID, 10) + "/dismiss",
	}
}

// ToStackView converts the notifier snapshot, keeping its newest-first order.
func (p *ToastPresenter) ToStackView(toasts []toast.Toast) ui.ToastStackView {
	views := make([]ui.ToastView, 0, len(toasts))
	for _, t := range toasts {
		views = append(views, p.ToView(t))
	}
	return ui.ToastStackView{Toasts: views}
}

// RenderStack renders the stack markup pushed over SSE.
func (p *ToastPresenter) RenderStack(ctx context.Context, toasts []toast.Toast) (string, error) {
	var buf strings.Builder
	if err := ui.ToastStack(p.ToStackView(toasts)).Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
