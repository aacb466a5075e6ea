package events

// AppEventPublisher defines the interface for publishing client state events.
type AppEventPublisher interface {
	PublishToastsChanged(event ToastsChangedEvent)
	PublishThemeChanged(event ThemeChangedEvent)
	PublishSessionChanged(event SessionChangedEvent)
	PublishContextExpired(event ContextExpiredEvent)
}
