package events

import (
	"hostpro/domain/events"
	"hostpro/logging"
)

// SSEBroadcaster pushes updates to the open tabs of a client.
type SSEBroadcaster interface {
	BroadcastToasts(clientID string)
	BroadcastRefresh(clientID, reason string)
	DisconnectClient(clientID string)
}

// NotificationEventHandlers turns client state events into SSE pushes
type NotificationEventHandlers struct {
	sseBroadcaster SSEBroadcaster
	logger         *logging.Logger
}

// NewNotificationEventHandlers creates event handlers for notifications
func NewNotificationEventHandlers(sseBroadcaster SSEBroadcaster) *NotificationEventHandlers {
	return &NotificationEventHandlers{
		sseBroadcaster: sseBroadcaster,
		logger:         logging.Default().WithComponent("notification_events"),
	}
}

// RegisterHandlers registers all notification event handlers with the event bus
func (h *NotificationEventHandlers) RegisterHandlers(eventBus *AppEventBus) {
	eventBus.OnToastsChanged(h.handleToastsChanged)
	eventBus.OnThemeChanged(h.handleThemeChanged)
	eventBus.OnSessionChanged(h.handleSessionChanged)
	eventBus.OnContextExpired(h.handleContextExpired)
}

func (h *NotificationEventHandlers) handleToastsChanged(event events.ToastsChangedEvent) {
	// The broadcaster renders the current stack, so late or reordered
	// events still converge on the latest state.
	h.sseBroadcaster.BroadcastToasts(event.ClientID)
}

func (h *NotificationEventHandlers) handleThemeChanged(event events.ThemeChangedEvent) {
	h.logger.Debug("Handling theme changed event", "client_id", event.ClientID, "dark", event.Dark)
	h.sseBroadcaster.BroadcastRefresh(event.ClientID, "theme")
}

func (h *NotificationEventHandlers) handleSessionChanged(event events.SessionChangedEvent) {
	h.logger.Info("Handling session changed event", "client_id", event.ClientID, "authenticated", event.Authenticated)
	h.sseBroadcaster.BroadcastRefresh(event.ClientID, "session")
}

func (h *NotificationEventHandlers) handleContextExpired(event events.ContextExpiredEvent) {
	h.logger.Info("Handling context expired event", "client_id", event.ClientID, "idle_for", event.IdleFor)
	h.sseBroadcaster.DisconnectClient(event.ClientID)
}
