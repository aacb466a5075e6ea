package events

import (
	"sync"

	"hostpro/domain/events"
	"hostpro/logging"
)

// AppEventBus provides type-safe event publishing and subscription for client state events
type AppEventBus struct {
	mu     sync.RWMutex
	logger *logging.Logger

	// Event handler slices for each event type
	toastsChangedHandlers  []func(events.ToastsChangedEvent)
	themeChangedHandlers   []func(events.ThemeChangedEvent)
	sessionChangedHandlers []func(events.SessionChangedEvent)
	contextExpiredHandlers []func(events.ContextExpiredEvent)
}

var _ events.AppEventPublisher = (*AppEventBus)(nil)

// NewAppEventBus creates a new typed app event bus
func NewAppEventBus() *AppEventBus {
	return &AppEventBus{
		logger:                 logging.Default().WithComponent("app_event_bus"),
		toastsChangedHandlers:  make([]func(events.ToastsChangedEvent), 0),
		themeChangedHandlers:   make([]func(events.ThemeChangedEvent), 0),
		sessionChangedHandlers: make([]func(events.SessionChangedEvent), 0),
		contextExpiredHandlers: make([]func(events.ContextExpiredEvent), 0),
	}
}

// Subscribe methods for each event type

func (bus *AppEventBus) OnToastsChanged(handler func(events.ToastsChangedEvent)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.toastsChangedHandlers = append(bus.toastsChangedHandlers, handler)
}

func (bus *AppEventBus) OnThemeChanged(handler func(events.ThemeChangedEvent)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.themeChangedHandlers = append(bus.themeChangedHandlers, handler)
}

func (bus *AppEventBus) OnSessionChanged(handler func(events.SessionChangedEvent)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.sessionChangedHandlers = append(bus.sessionChangedHandlers, handler)
}

func (bus *AppEventBus) OnContextExpired(handler func(events.ContextExpiredEvent)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.contextExpiredHandlers = append(bus.contextExpiredHandlers, handler)
}

// Publish methods for each event type. Handlers run asynchronously so a
// slow subscriber never blocks the store that published.

func (bus *AppEventBus) PublishToastsChanged(event events.ToastsChangedEvent) {
	bus.mu.RLock()
	handlers := make([]func(events.ToastsChangedEvent), len(bus.toastsChangedHandlers))
	copy(handlers, bus.toastsChangedHandlers)
	bus.mu.RUnlock()

	dispatch(bus.logger, "ToastsChanged", event.ClientID, handlers, event)
}

func (bus *AppEventBus) PublishThemeChanged(event events.ThemeChangedEvent) {
	bus.mu.RLock()
	handlers := make([]func(events.ThemeChangedEvent), len(bus.themeChangedHandlers))
	copy(handlers, bus.themeChangedHandlers)
	bus.mu.RUnlock()

	dispatch(bus.logger, "ThemeChanged", event.ClientID, handlers, event)
}

func (bus *AppEventBus) PublishSessionChanged(event events.SessionChangedEvent) {
	bus.mu.RLock()
	handlers := make([]func(events.SessionChangedEvent), len(bus.sessionChangedHandlers))
	copy(handlers, bus.sessionChangedHandlers)
	bus.mu.RUnlock()

	dispatch(bus.logger, "SessionChanged", event.ClientID, handlers, event)
}

func (bus *AppEventBus) PublishContextExpired(event events.ContextExpiredEvent) {
	bus.mu.RLock()
	handlers := make([]func(events.ContextExpiredEvent), len(bus.contextExpiredHandlers))
	copy(handlers, bus.contextExpiredHandlers)
	bus.mu.RUnlock()

	dispatch(bus.logger, "ContextExpired", event.ClientID, handlers, event)
}

func dispatch[E any](logger *logging.Logger, name, clientID string, handlers []func(E), event E) {
	for _, handler := range handlers {
		go func(h func(E)) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Event handler panicked in "+name,
						"client_id", clientID,
						"panic", r)
				}
			}()
			h(event)
		}(handler)
	}
}
