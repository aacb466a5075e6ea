package application

import (
	"context"
	"sync"
	"time"

	"hostpro/domain/catalog"
)

// AppContext bundles the state of one client: its theme, session, toasts
// and the dashboard data it has edited. The ContextRegistry owns its
// lifecycle.
type AppContext struct {
	ClientID string
	Theme    *ThemeStore
	Session  *SessionStore
	Toasts   *ToastNotifier

	workspace *Workspace

	mu          sync.Mutex
	lastSeen    time.Time
	unsubscribe []func()
	closed      bool
}

// Workspace returns the client's editable dashboard data.
func (ac *AppContext) Workspace() *Workspace {
	return ac.workspace
}

// LastSeen returns the time of the last request that resolved this context.
func (ac *AppContext) LastSeen() time.Time {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	return ac.lastSeen
}

func (ac *AppContext) touch(now time.Time) {
	ac.mu.Lock()
	ac.lastSeen = now
	ac.mu.Unlock()
}

// Close detaches subscribers and stops pending toast timers.
func (ac *AppContext) Close() {
	ac.mu.Lock()
	if ac.closed {
		ac.mu.Unlock()
		return
	}
	ac.closed = true
	unsubscribe := ac.unsubscribe
	ac.unsubscribe = nil
	ac.mu.Unlock()

	for _, fn := range unsubscribe {
		fn()
	}
	ac.Toasts.Close()
	ac.Theme.close()
	ac.Session.close()
}

// Workspace holds per-client copies of editable mock data. Edits live only
// as long as the owning AppContext.
type Workspace struct {
	mu            sync.RWMutex
	profile       catalog.Profile
	notifications []catalog.Toggle
	security      catalog.SecuritySettings
	tickets       []catalog.Ticket
	ticketSeq     int
}

func newWorkspace(c *catalog.Catalog) *Workspace {
	w := &Workspace{ticketSeq: 1000}
	if c == nil {
		return w
	}
	w.profile = c.Profile
	w.notifications = append([]catalog.Toggle(nil), c.Notifications...)
	w.security = c.Security
	w.tickets = append([]catalog.Ticket(nil), c.Tickets...)
	w.ticketSeq += len(c.Tickets)
	return w
}

// Profile returns the client's account details.
func (w *Workspace) Profile() catalog.Profile {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.profile
}

// Notifications returns the client's notification toggles.
func (w *Workspace) Notifications() []catalog.Toggle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]catalog.Toggle(nil), w.notifications...)
}

// Security returns the client's security settings.
func (w *Workspace) Security() catalog.SecuritySettings {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.security
}

// Tickets returns the client's tickets, newest first.
func (w *Workspace) Tickets() []catalog.Ticket {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]catalog.Ticket(nil), w.tickets...)
}

func (w *Workspace) setProfile(p catalog.Profile) {
	w.mu.Lock()
	w.profile = p
	w.mu.Unlock()
}

func (w *Workspace) setNotifications(enabled map[string]bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.notifications {
		w.notifications[i].Enabled = enabled[w.notifications[i].Key]
	}
}

func (w *Workspace) setSecurity(s catalog.SecuritySettings) {
	w.mu.Lock()
	w.security = s
	w.mu.Unlock()
}

// addTicket assigns the next ticket id and prepends t.
func (w *Workspace) addTicket(t catalog.Ticket) catalog.Ticket {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ticketSeq++
	t.ID = ticketID(w.ticketSeq)
	w.tickets = append([]catalog.Ticket{t}, w.tickets...)
	return t
}

type appContextKey struct{}

// WithAppContext returns a copy of ctx carrying ac.
func WithAppContext(ctx context.Context, ac *AppContext) context.Context {
	return context.WithValue(ctx, appContextKey{}, ac)
}

// FromContext returns the AppContext carried by ctx, if any.
func FromContext(ctx context.Context) (*AppContext, bool) {
	ac, ok := ctx.Value(appContextKey{}).(*AppContext)
	return ac, ok && ac != nil
}

// MustFromContext returns the AppContext carried by ctx and panics if there
// is none.
func MustFromContext(ctx context.Context) *AppContext {
	ac, ok := FromContext(ctx)
	if !ok {
		panic("app context requested outside of an app context scope")
	}
	return ac
}

// ToastsFrom returns the toast notifier of the AppContext carried by ctx.
func ToastsFrom(ctx context.Context) (*ToastNotifier, bool) {
	ac, ok := FromContext(ctx)
	if !ok {
		return nil, false
	}
	return ac.Toasts, true
}

// MustToasts returns the toast notifier of the AppContext carried by ctx and
// panics if there is none.
func MustToasts(ctx context.Context) *ToastNotifier {
	n, ok := ToastsFrom(ctx)
	if !ok {
		panic("toast notifier requested outside of an app context scope")
	}
	return n
}
