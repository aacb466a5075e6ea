package application

import (
	"sync"
	"time"

	"hostpro/domain/toast"
	"hostpro/logging"
)

// ToastNotifier owns a newest-first sequence of toasts and their expiry
// timers. HTTP handlers and expiry callbacks run on different goroutines, so
// every mutation is serialized under mu.
type ToastNotifier struct {
	mu              sync.Mutex
	scheduler       Scheduler
	defaultDuration time.Duration
	now             func() time.Time
	logger          *logging.Logger

	nextID uint64
	toasts []toast.Toast
	timers map[uint64]Timer
	closed bool

	subs listeners[[]toast.Toast]
}

// NewToastNotifier creates a notifier. A nil scheduler uses RealScheduler and
// a non-positive default duration uses toast.DefaultDuration.
func NewToastNotifier(scheduler Scheduler, defaultDuration time.Duration) *ToastNotifier {
	if scheduler == nil {
		scheduler = RealScheduler{}
	}
	if defaultDuration <= 0 {
		defaultDuration = toast.DefaultDuration
	}
	return &ToastNotifier{
		scheduler:       scheduler,
		defaultDuration: defaultDuration,
		now:             time.Now,
		logger:          logging.Default().WithComponent("toast_notifier"),
		timers:          make(map[uint64]Timer),
	}
}

// Show adds a toast at the head of the sequence and returns its id. Toasts
// with a positive duration are removed automatically once it elapses.
// After Close, Show does nothing and returns 0.
func (n *ToastNotifier) Show(opts toast.Options) uint64 {
	kind, title, description, duration := opts.Normalize(n.defaultDuration)

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return 0
	}

	n.nextID++
	t := toast.Toast{
		ID:          n.nextID,
		Kind:        kind,
		Title:       title,
		Description: description,
		Duration:    duration,
		CreatedAt:   n.now(),
	}
	n.toasts = append([]toast.Toast{t}, n.toasts...)

	if duration > 0 {
		id := t.ID
		n.timers[id] = n.scheduler.AfterFunc(duration, func() { n.Remove(id) })
	}

	n.publishLocked()

	n.logger.Debug("Toast shown", "toast_id", t.ID, "kind", t.Kind, "duration", duration)
	return t.ID
}

// Remove deletes the toast with the given id and cancels its expiry timer.
// Unknown ids are ignored and do not notify subscribers.
func (n *ToastNotifier) Remove(id uint64) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}

	idx := -1
	for i, t := range n.toasts {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		n.mu.Unlock()
		return
	}

	n.toasts = append(n.toasts[:idx:idx], n.toasts[idx+1:]...)
	if timer, ok := n.timers[id]; ok {
		timer.Stop()
		delete(n.timers, id)
	}

	n.publishLocked()
}

// List returns a snapshot of the current toasts, newest first.
func (n *ToastNotifier) List() []toast.Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.snapshotLocked()
}

// Len returns the number of active toasts.
func (n *ToastNotifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.toasts)
}

// Subscribe registers fn to receive the toast sequence after every change.
// fn must not call Show or Remove synchronously.
func (n *ToastNotifier) Subscribe(fn func([]toast.Toast)) (unsubscribe func()) {
	return n.subs.add(fn)
}

// Close stops every pending timer and turns later calls into no-ops.
func (n *ToastNotifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	for id, timer := range n.timers {
		timer.Stop()
		delete(n.timers, id)
	}
	n.toasts = nil
	n.subs.clear()
}

// publishLocked hands the current snapshot to subscribers. It must be called
// with mu held and returns with mu released.
func (n *ToastNotifier) publishLocked() {
	snapshot := n.snapshotLocked()
	n.subs.deliver.Lock()
	n.mu.Unlock()
	n.subs.emit(snapshot)
	n.subs.deliver.Unlock()
}

func (n *ToastNotifier) snapshotLocked() []toast.Toast {
	out := make([]toast.Toast, len(n.toasts))
	copy(out, n.toasts)
	return out
}
