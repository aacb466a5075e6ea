package ui

// ToastView represents the view model for one toast in the stack.
type ToastView struct {
	ID          uint64
	Kind        string
	Title       string
	Description string
	Icon        string
	Persistent  bool
	// DurationMs drives the CSS progress bar; zero for persistent toasts.
	DurationMs int64
	DismissURL string
}

// ToastStackView represents the whole toast region, newest first.
type ToastStackView struct {
	Toasts []ToastView
}

// Empty reports whether no toast is showing.
func (v ToastStackView) Empty() bool {
	return len(v.Toasts) == 0
}
