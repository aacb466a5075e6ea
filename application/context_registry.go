package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"hostpro/domain/catalog"
	"hostpro/domain/contracts"
	"hostpro/domain/events"
	"hostpro/domain/toast"
	"hostpro/logging"
)

// ErrRegistryClosed is returned by Resolve after Close.
var ErrRegistryClosed = errors.New("context registry is closed")

// ContextRegistryConfig configures a ContextRegistry.
type ContextRegistryConfig struct {
	IdleTTL              time.Duration
	SweepInterval        time.Duration
	ToastDefaultDuration time.Duration
	Scheduler            Scheduler
}

// ContextRegistry is the single owner of AppContexts. It builds one per
// client on first request and tears them down when idle or at shutdown.
type ContextRegistry struct {
	mu        sync.Mutex
	contexts  map[string]*AppContext
	closed    bool
	prefs     contracts.PreferenceStore
	catalog   *catalog.Catalog
	publisher events.AppEventPublisher
	cfg       ContextRegistryConfig
	now       func() time.Time
	logger    *logging.Logger

	stop    chan struct{}
	done    chan struct{}
	started bool
}

// NewContextRegistry creates a registry. publisher may be nil.
func NewContextRegistry(prefs contracts.PreferenceStore, c *catalog.Catalog, publisher events.AppEventPublisher, cfg ContextRegistryConfig) *ContextRegistry {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 30 * time.Minute
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = cfg.IdleTTL / 4
		if cfg.SweepInterval < time.Second {
			cfg.SweepInterval = time.Second
		}
	}
	if cfg.ToastDefaultDuration <= 0 {
		cfg.ToastDefaultDuration = toast.DefaultDuration
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = RealScheduler{}
	}
	return &ContextRegistry{
		contexts:  make(map[string]*AppContext),
		prefs:     prefs,
		catalog:   c,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
		logger:    logging.Default().WithComponent("context_registry"),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the idle sweeper.
func (r *ContextRegistry) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started || r.closed {
		return
	}
	r.started = true
	go r.sweepLoop()
}

func (r *ContextRegistry) sweepLoop() {
	defer close(r.done)

	ticker := time.NewTicker(r.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Info("Expired idle client contexts", "count", n)
			}
		}
	}
}

// Resolve returns the AppContext for clientID, constructing and initialising
// it on first use. systemPrefersDark seeds the theme when nothing is stored.
func (r *ContextRegistry) Resolve(ctx context.Context, clientID string, systemPrefersDark bool) (*AppContext, error) {
	if clientID == "" {
		return nil, contracts.ErrInvalidClientID
	}

	now := r.now()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRegistryClosed
	}
	if ac, ok := r.contexts[clientID]; ok {
		r.mu.Unlock()
		ac.touch(now)
		return ac, nil
	}
	r.mu.Unlock()

	// Initialisation reads the preference store, so it runs outside the lock.
	fresh := r.build(ctx, clientID, systemPrefersDark)
	fresh.touch(now)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		fresh.Close()
		return nil, ErrRegistryClosed
	}
	if existing, ok := r.contexts[clientID]; ok {
		r.mu.Unlock()
		fresh.Close()
		existing.touch(now)
		return existing, nil
	}
	r.contexts[clientID] = fresh
	r.mu.Unlock()

	r.logger.Client("Created client context", clientID)
	return fresh, nil
}

func (r *ContextRegistry) build(ctx context.Context, clientID string, systemPrefersDark bool) *AppContext {
	ac := &AppContext{
		ClientID:  clientID,
		Theme:     NewThemeStore(r.prefs, clientID),
		Session:   NewSessionStore(r.prefs, clientID),
		Toasts:    NewToastNotifier(r.cfg.Scheduler, r.cfg.ToastDefaultDuration),
		workspace: newWorkspace(r.catalog),
	}
	ac.Theme.Init(ctx, systemPrefersDark)
	ac.Session.Init(ctx)

	if r.publisher != nil {
		pub := r.publisher
		ac.unsubscribe = append(ac.unsubscribe,
			ac.Toasts.Subscribe(func([]toast.Toast) {
				pub.PublishToastsChanged(events.ToastsChangedEvent{ClientID: clientID, Timestamp: time.Now()})
			}),
			ac.Theme.Subscribe(func(dark bool) {
				pub.PublishThemeChanged(events.ThemeChangedEvent{ClientID: clientID, Dark: dark, Timestamp: time.Now()})
			}),
			ac.Session.Subscribe(func(state SessionState) {
				pub.PublishSessionChanged(events.SessionChangedEvent{
					ClientID:      clientID,
					Authenticated: state == Authenticated,
					Timestamp:     time.Now(),
				})
			}),
		)
	}
	return ac
}

// Get returns the live AppContext for clientID without creating one.
func (r *ContextRegistry) Get(clientID string) (*AppContext, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ac, ok := r.contexts[clientID]
	return ac, ok
}

// Len returns the number of live contexts.
func (r *ContextRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.contexts)
}

// Sweep tears down contexts idle for longer than the configured TTL and
// returns how many were removed.
func (r *ContextRegistry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	var expired []*AppContext
	for id, ac := range r.contexts {
		if now.Sub(ac.LastSeen()) > r.cfg.IdleTTL {
			expired = append(expired, ac)
			delete(r.contexts, id)
		}
	}
	r.mu.Unlock()

	for _, ac := range expired {
		idle := now.Sub(ac.LastSeen())
		ac.Close()
		r.logger.Client("Expired idle client context", ac.ClientID)
		if r.publisher != nil {
			r.publisher.PublishContextExpired(events.ContextExpiredEvent{ClientID: ac.ClientID, IdleFor: idle, Timestamp: now})
		}
	}
	return len(expired)
}

// Close stops the sweeper and tears down every context. Later calls to
// Resolve fail with ErrRegistryClosed.
func (r *ContextRegistry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	started := r.started
	contexts := r.contexts
	r.contexts = make(map[string]*AppContext)
	r.mu.Unlock()

	close(r.stop)
	if started {
		<-r.done
	}

	for _, ac := range contexts {
		ac.Close()
	}
	r.logger.Info("Closed context registry", "contexts", len(contexts))
}
