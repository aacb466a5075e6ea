package presenters

import (
	"context"

	"hostpro/domain/toast"
)

// ToastRenderer renders a client's toast stack for push delivery.
type ToastRenderer interface {
	RenderStack(ctx context.Context, toasts []toast.Toast) (string, error)
}

// Ensure ToastPresenter implements the interface.
var _ ToastRenderer = (*ToastPresenter)(nil)
